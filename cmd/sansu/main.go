package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sansu-app/sansu/internal/cli"
	"github.com/sansu-app/sansu/internal/config"
	"github.com/sansu-app/sansu/internal/db"
	"github.com/sansu-app/sansu/internal/logging"
	"github.com/sansu-app/sansu/internal/repository"
	"github.com/sansu-app/sansu/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, logFile, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	progressRepo := repository.NewSQLiteProgressRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	sessionRepo := repository.NewSQLitePlaySessionRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(log)

	app := &cli.App{
		Progress:        service.NewProgressService(progressRepo, settingsRepo, uow, cfg.DailyGoal, observer),
		Sessions:        service.NewSessionService(sessionRepo, observer),
		Log:             log,
		RefreshInterval: cfg.RefreshInterval(),
		DefaultGoal:     cfg.DailyGoal,
	}

	// The home screen only runs on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
