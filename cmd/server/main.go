// Package main - Entry point for the cargo market HTTP server
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"cargo-market/api"
	"cargo-market/core/dataset"
	"cargo-market/internal/config"
	"cargo-market/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	addr := flag.String("addr", "", "Server address (overrides config)")
	dataDir := flag.String("data", "", "Dataset directory (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.Address = *addr
	}
	if *dataDir != "" {
		cfg.Dataset.Path = *dataDir
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	if err := run(cfg); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	var (
		catalog *dataset.Source
		err     error
	)
	opt := dataset.WithLogger(logging.Named("dataset"))
	if cfg.Dataset.Path != "" {
		catalog, err = dataset.Open(cfg.Dataset.Path, opt)
	} else {
		catalog, err = dataset.Builtin(opt)
	}
	if err != nil {
		return err
	}

	apiServer, err := api.NewServer(version, catalog,
		api.WithLogger(logging.Named("api")),
		api.WithAllowedOrigins(cfg.Server.AllowedOrigins),
	)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           apiServer,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info("cargo market server listening",
			zap.String("addr", cfg.Server.Address),
			zap.String("version", version),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
