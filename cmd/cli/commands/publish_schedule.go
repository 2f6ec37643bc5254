package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/weekshift/pkg/core/services"
)

// PublishScheduleCmd creates the publishSchedule command
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishSchedule [run_id]",
		Short: "Publish a saved schedule to the rota sheet (defaults to the latest run)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var runID string
			if len(args) > 0 {
				runID = args[0]
			}

			database, err := app.RequireDatabase()
			if err != nil {
				return err
			}

			sheets, err := app.Sheets()
			if err != nil {
				return err
			}

			err = services.PublishSchedule(app.Ctx, database, sheets, app.Logger,
				app.Cfg.RotaSheetID, app.Cfg.RotaSheetTab, runID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Schedule published to tab %q\n", app.Cfg.RotaSheetTab)
			return nil
		},
	}
}
