package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"campaigen/internal/cli"
	"campaigen/internal/config"
	"campaigen/internal/logging"
	"campaigen/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	config.LoadEnvFile()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("campaigen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		cli.Usage(stderr)
		fmt.Fprintln(stderr, "\nGlobal flags:")
		fs.PrintDefaults()
	}
	dbPath := fs.String("db", cfg.DBPath, "Path to database file (env DB_PATH)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Arguments are fully validated before the database is touched.
	action, err := cli.Parse(fs.Args(), stderr)
	if err != nil {
		return err
	}

	db, err := storage.Open(ctx, *dbPath, storage.Options{
		BusyTimeout: cfg.DBBusyTimeout,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	return action(ctx, cli.NewServices(db, logger), stdout)
}
