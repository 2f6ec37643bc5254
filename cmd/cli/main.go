package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/weekshift/cmd/cli/commands"
	"github.com/jakechorley/weekshift/internal/config"
	"github.com/jakechorley/weekshift/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	// Commands capture the app context pointer; config and logger are
	// filled in by PersistentPreRunE before any RunE executes
	app = &commands.AppContext{Ctx: context.Background()}

	rootCmd := &cobra.Command{
		Use:   "weekshift",
		Short: "Weekshift CLI - Generate weekly shift schedules",
		Long:  `A CLI tool for generating weekly shift schedules from worker preference rosters.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.GenerateScheduleCmd(app))
	rootCmd.AddCommand(commands.ViewScheduleCmd(app))
	rootCmd.AddCommand(commands.ListWorkersCmd(app))
	rootCmd.AddCommand(commands.SampleRosterCmd(app))
	rootCmd.AddCommand(commands.PublishScheduleCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger and config shared by all commands
func initApp() error {
	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Starting application", zap.String("environment", env))

	cfg, err := config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("Configuration loaded successfully")

	app.Cfg = cfg
	app.Logger = logger
	return nil
}
