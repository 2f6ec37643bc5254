package commands

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/weekshift/pkg/core/roster"
)

// SampleRosterCmd creates the sampleRoster command
func SampleRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sampleRoster",
		Short: "Generate a sample roster file to try the scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetInt64("seed")
			outPath, _ := cmd.Flags().GetString("out")

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			workers := roster.Sample(rand.New(rand.NewSource(seed)))
			data, err := roster.MarshalWorkers(workers)
			if err != nil {
				return fmt.Errorf("failed to marshal sample roster: %w", err)
			}

			if outPath == "" {
				fmt.Print(string(data))
				return nil
			}

			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write roster file: %w", err)
			}
			fmt.Printf("✓ Sample roster with %d workers written to %s\n", len(workers), outPath)
			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Seed for the sample preferences (defaults to the clock)")
	cmd.Flags().String("out", "", "Write the roster to this file instead of stdout")

	return cmd
}
