package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/younwookim/seekstars/internal/application/session"
	"github.com/younwookim/seekstars/internal/infrastructure/config"
	"github.com/younwookim/seekstars/internal/infrastructure/savedata"
)

// appName names the gdata save location
const appName = "seekstars"

// Record store backends
const (
	storeGdata  = "gdata"
	storeSQLite = "sqlite"
	storeMemory = "memory"
)

// app bundles what every command needs
type app struct {
	cfg    *config.GameConfig
	levels *config.Loader
	logger *log.Logger
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "seekstars",
	})
	logger.SetLevel(lvl)
	return logger, nil
}

// newApp loads game.json and picks the levels source from the global flags
func newApp() (*app, error) {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return nil, err
	}

	loader, err := configLoader(flagConfigDir)
	if err != nil {
		return nil, err
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		return nil, err
	}

	levels := loader
	if flagLevelsDir != "" {
		levels = config.NewLevelsLoader(flagLevelsDir)
	}
	logger.Debug("config loaded", "config", loader.BasePath(), "levels", levels.BasePath())

	return &app{cfg: cfg, levels: levels, logger: logger}, nil
}

// configLoader reads from dir, or from the bundled configs when dir is empty
func configLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// openStore opens the record store selected by --store
func openStore(kind, dbPath string, logger *log.Logger) (savedata.Store, error) {
	switch kind {
	case storeGdata:
		store, err := savedata.OpenGdata(appName, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case storeSQLite:
		store, err := savedata.OpenSQLite(dbPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case storeMemory:
		return savedata.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store %q (want %s, %s or %s)", kind, storeGdata, storeSQLite, storeMemory)
	}
}

// newSession loads a level by name and starts a session on it
func (a *app) newSession(level string, store savedata.Store) (*session.Session, error) {
	src, err := a.levels.LoadLevel(level)
	if err != nil {
		return nil, err
	}
	return session.New(level, src, a.cfg, store, a.logger)
}
