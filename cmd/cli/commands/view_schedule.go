package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/weekshift/pkg/core/scheduler"
	"github.com/jakechorley/weekshift/pkg/core/services"
)

// ViewScheduleCmd creates the viewSchedule command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewSchedule [run_id]",
		Short: "View a saved schedule (defaults to the latest run)",
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

			view, err := services.ViewSchedule(app.Ctx, database, app.Logger, runID)
			if err != nil {
				return err
			}

			fmt.Printf("\nRun ID:      %s\n", view.Run.ID)
			fmt.Printf("Week Start:  %s\n", view.Run.WeekStart)
			fmt.Printf("Max/Shift:   %d\n\n", view.Run.MaxPerShift)
			fmt.Println(services.RenderSchedule(view.Schedule, nil))

			if len(view.Shortages) > 0 {
				fmt.Println("Unresolved shortages:")
				for _, sh := range view.Shortages {
					fmt.Printf("  %s %s: missing %d\n", scheduler.DayNames[sh.Day], sh.Shift, sh.Missing)
				}
			}

			return nil
		},
	}
}
