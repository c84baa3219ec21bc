package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"buildledger/internal/backup"
	"buildledger/internal/cli"
	"buildledger/internal/storage"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := cli.OpenBackend(ctx, logger, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	repo := storage.New(res.Store, logger)
	app := &cli.App{
		Repo:   repo,
		Backup: backup.New(repo, logger),
		Logger: logger,
		Out:    os.Stdout,
	}

	err = cli.NewRootCommand(app).ExecuteContext(ctx)
	if cerr := res.Cleanup(); cerr != nil {
		logger.Warn("Backend cleanup failed", "error", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
