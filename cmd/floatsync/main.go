package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/floatsync/internal/cli"
	"github.com/alexanderramin/floatsync/internal/config"
	"github.com/alexanderramin/floatsync/internal/db"
	"github.com/alexanderramin/floatsync/internal/repository"
	"github.com/alexanderramin/floatsync/internal/service"
	"github.com/alexanderramin/floatsync/internal/sheet"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("FLOATSYNC_CONFIG")
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	runRepo := repository.NewSQLiteRunRepo(database)

	var observer sheet.Observer = sheet.NoopObserver{}
	if cfg.LogCalls {
		observer = sheet.NewLogObserver(logger)
	}
	client := sheet.NewRESTClient(cfg.Sheet(), observer, logger)
	useCases := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Float:            service.NewFloatService(client, uow, useCases),
		History:          service.NewHistoryService(runRepo, useCases),
		SheetID:          cfg.SheetID,
		FloatColumnTitle: cfg.FloatColumnTitle,
		Preflight: func(sheetID string) error {
			c := cfg
			c.SheetID = sheetID
			return c.ValidateForRun()
		},
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
