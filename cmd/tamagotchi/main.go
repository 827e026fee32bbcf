// Package main is the entry point for the tamagotchi console game.
// It only handles dependency injection and startup.
// NO business logic belongs here.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/MRamiBalles/tamagotchi/internal/console"
	"github.com/MRamiBalles/tamagotchi/internal/engine"
	"github.com/MRamiBalles/tamagotchi/internal/events"
	"github.com/MRamiBalles/tamagotchi/internal/infra/storage"
	"github.com/MRamiBalles/tamagotchi/internal/platform/config"
	"github.com/MRamiBalles/tamagotchi/internal/platform/logger"
	"github.com/MRamiBalles/tamagotchi/internal/platform/metrics"
)

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		config.Exitf("tamagotchi: %v", err)
	}
}

type options struct {
	cfg     config.Config
	history bool
}

// loadConfig reads the environment, lets flags override it, and only then
// validates the merged result.
func loadConfig(args []string) (options, error) {
	var opts options
	if err := config.ParseEnv(&opts.cfg); err != nil {
		return options{}, err
	}

	fs := flag.NewFlagSet("tamagotchi", flag.ContinueOnError)
	fs.StringVar(&opts.cfg.UI, "ui", opts.cfg.UI, "user interface: tui or plain")
	fs.DurationVar(&opts.cfg.TickInterval, "tick", opts.cfg.TickInterval, "time between decay ticks")
	fs.StringVar(&opts.cfg.JournalPath, "journal", opts.cfg.JournalPath, "SQLite journal path (empty disables the journal)")
	fs.StringVar(&opts.cfg.LogPath, "log", opts.cfg.LogPath, "log file path")
	fs.BoolVar(&opts.history, "history", false, "print the last journaled run and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if err := opts.cfg.Validate(); err != nil {
		return options{}, err
	}
	return opts, nil
}

func run(args []string) error {
	opts, err := loadConfig(args)
	if err != nil {
		return err
	}
	cfg := opts.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.history {
		return runHistory(ctx, cfg)
	}

	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	appLogger := logger.NewLogger(logFile)
	collector := metrics.New()

	var persister events.EventPersister
	if cfg.JournalPath != "" {
		appLogger.Info("Opening SQLite journal", "path", cfg.JournalPath)
		db, err := storage.InitSQLite(cfg.JournalPath)
		if err != nil {
			appLogger.Error("journal unavailable", "err", err)
			return err
		}
		defer db.Close()
		runID := uuid.NewString()
		persister = newJournalPersister(storage.NewSQLiteJournalRepository(db), runID)
		appLogger.Info("Journal run started", "run_id", runID)
	}

	eventLog := events.NewEventLog(persister)
	eventLog.OnPersist(func(err error) {
		collector.RecordJournalWrite(err)
		if err != nil {
			appLogger.Error("journal write failed", "err", err)
		}
	})

	// The one engine for this process; everything below gets this reference.
	petEngine := engine.NewEngine(engine.Config{TickInterval: cfg.TickInterval}, eventLog, appLogger, collector)
	petEngine.Start(ctx)

	uiErr := runUI(ctx, cfg, petEngine)
	if uiErr != nil {
		appLogger.Error("ui failed", "err", uiErr)
	}

	stop()
	<-petEngine.Done()
	if backlog := eventLog.Backlog(); backlog > 0 {
		appLogger.Info("Flushing journal", "backlog", backlog)
	}
	eventLog.Close()
	appLogger.Info("Shutting down", "state", petEngine.State().String(), "metrics", collector.Snapshot())
	return uiErr
}

func runUI(ctx context.Context, cfg config.Config, core console.Core) error {
	if cfg.UI == config.UIPlain {
		// Stdin reads cannot be interrupted; on a signal just stop waiting.
		errCh := make(chan error, 1)
		go func() {
			errCh <- console.NewPrompt(core, os.Stdin, os.Stdout).Run()
		}()
		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			fmt.Println()
			return nil
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return console.NewTUI(core, screen, cfg.RedrawInterval).Run(ctx)
}

func runHistory(ctx context.Context, cfg config.Config) error {
	if cfg.JournalPath == "" {
		return fmt.Errorf("-history needs a journal (set PET_JOURNAL_PATH or -journal)")
	}
	db, err := storage.InitSQLite(cfg.JournalPath)
	if err != nil {
		return err
	}
	defer db.Close()
	return printRecap(ctx, storage.NewSQLiteJournalRepository(db), os.Stdout)
}
