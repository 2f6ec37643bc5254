package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/weekshift/pkg/core/roster"
	"github.com/jakechorley/weekshift/pkg/core/scheduler"
)

// ListWorkersCmd creates the listWorkers command
func ListWorkersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listWorkers <roster.yaml>",
		Short: "List workers and their parsed preferences from a roster file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, err := roster.Load(args[0])
			if err != nil {
				return err
			}

			app.Logger.Info("Roster parsed", zap.Int("count", len(workers)))

			fmt.Printf("\nFound %d workers:\n\n", len(workers))
			for _, w := range workers {
				fmt.Printf("- %s\n", w.Name)
				for day := 0; day < scheduler.DaysPerWeek; day++ {
					prefs := w.Preferences[day]
					if len(prefs) == 0 {
						continue
					}
					tokens := make([]string, len(prefs))
					for i, shift := range prefs {
						tokens[i] = string(shift)
					}
					fmt.Printf("    %-9s: %s\n", scheduler.DayNames[day], strings.Join(tokens, " > "))
				}
			}

			return nil
		},
	}
}
