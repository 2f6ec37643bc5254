package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/weekshift/pkg/core/roster"
	"github.com/jakechorley/weekshift/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateSchedule <roster.yaml>",
		Short: "Generate the week's schedule from a roster file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetInt64("seed")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			outPath, _ := cmd.Flags().GetString("out")

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			workers, err := roster.Load(args[0])
			if err != nil {
				return err
			}
			app.Logger.Info("Roster loaded",
				zap.String("path", args[0]),
				zap.Int("workers", len(workers)))

			shiftDates, err := app.Cfg.ShiftDates()
			if err != nil {
				return err
			}

			database, err := app.Database()
			if err != nil {
				return err
			}

			result, err := services.GenerateSchedule(app.Ctx, database, app.Logger, workers, services.GenerateParams{
				MaxPerShift: app.Cfg.MaxPerShift,
				Seed:        seed,
				DryRun:      dryRun,
				ShiftDates:  shiftDates,
			})
			if err != nil {
				return err
			}

			rendered := services.RenderSchedule(result.Outcome.Schedule, shiftDates)
			fmt.Println(rendered)
			fmt.Println(services.RenderSummary(result.Outcome.Workers, result.Outcome.Schedule))

			if len(result.Outcome.Shortages) > 0 {
				fmt.Printf("⚠️  %d shift(s) remain below minimum staffing.\n", len(result.Outcome.Shortages))
			}
			if result.Persisted {
				fmt.Printf("\n✓ Schedule saved with run ID %s\n", result.RunID)
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(rendered), 0644); err != nil {
					return fmt.Errorf("failed to write schedule file: %w", err)
				}
				fmt.Printf("Saved to %s\n", outPath)
			}

			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Seed for the shuffle (defaults to the clock)")
	cmd.Flags().Bool("dry-run", false, "Run without saving to the database")
	cmd.Flags().String("out", "", "Also save the rendered schedule to this file")

	return cmd
}
