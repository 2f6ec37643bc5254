package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/weekshift/internal/config"
	"github.com/jakechorley/weekshift/pkg/clients/sheetsclient"
	"github.com/jakechorley/weekshift/pkg/db"
	"github.com/jakechorley/weekshift/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands.
// Database and sheets connections are opened lazily so commands that only
// touch local files never dial out.
type AppContext struct {
	Cfg    *config.Config
	Logger *zap.Logger
	Ctx    context.Context

	database db.Database
	sheets   *sheetsclient.Client
}

// Database returns the configured schedule store, connecting on first use.
// Returns nil without error when no databaseURL is configured.
func (app *AppContext) Database() (db.Database, error) {
	if app.database != nil {
		return app.database, nil
	}
	if app.Cfg.DatabaseURL == "" {
		return nil, nil
	}

	app.Logger.Debug("Connecting to database")
	pg, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pg.RunMigrations(app.Ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	app.database = pg
	return app.database, nil
}

// RequireDatabase returns the schedule store or an error if none is configured
func (app *AppContext) RequireDatabase() (db.Database, error) {
	database, err := app.Database()
	if err != nil {
		return nil, err
	}
	if database == nil {
		return nil, fmt.Errorf("no databaseURL configured")
	}
	return database, nil
}

// Sheets returns the Google Sheets client, authenticating on first use
func (app *AppContext) Sheets() (*sheetsclient.Client, error) {
	if app.sheets != nil {
		return app.sheets, nil
	}
	if app.Cfg.CredentialsFile == "" {
		return nil, fmt.Errorf("no credentialsFile configured")
	}

	app.Logger.Debug("Initializing sheets client")
	client, err := sheetsclient.NewClient(app.Ctx, app.Cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	app.sheets = client
	return app.sheets, nil
}
