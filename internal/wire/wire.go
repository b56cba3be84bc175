// Package wire constructs the application from its parts. No package-level
// state: every invocation opens its own store handle and closes it on exit.
package wire

import (
	"database/sql"

	"github.com/example/tempo/internal/adapters/dateparse"
	"github.com/example/tempo/internal/adapters/sqlite"
	"github.com/example/tempo/internal/app"
	"github.com/example/tempo/internal/config"
	"github.com/example/tempo/internal/db"
)

// App bundles the open store handle with the services built on it.
type App struct {
	Missions *app.MissionService
	DBPath   string

	database *sql.DB
}

// New resolves the store path, opens the database, and builds the services.
// The caller must Close the returned App.
func New() (*App, error) {
	path, err := config.DBPath()
	if err != nil {
		return nil, err
	}

	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}

	missionRepo := sqlite.NewMissionRepository(database)
	missions := app.NewMissionService(missionRepo, dateparse.NewResolver())

	return &App{
		Missions: missions,
		DBPath:   path,
		database: database,
	}, nil
}

// Close releases the store handle.
func (a *App) Close() error {
	return a.database.Close()
}
