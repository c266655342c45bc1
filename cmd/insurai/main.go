package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/SohamMhatre7788/insurai/internal/api"
	"github.com/SohamMhatre7788/insurai/internal/cli"
	"github.com/SohamMhatre7788/insurai/internal/config"
	"github.com/SohamMhatre7788/insurai/internal/events"
	"github.com/SohamMhatre7788/insurai/internal/observability"
	"github.com/SohamMhatre7788/insurai/internal/session"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cancelOnSignal(cancel, logger)

	dispatcher := events.NewInMemoryDispatcher()
	storage := session.NewStorage(cfg.State.Dir)
	store := session.NewStore(storage, dispatcher, logger)

	metrics := observability.NewMetrics()
	app := cli.NewApp(cfg, logger, store, nil, os.Stdout, os.Stderr)

	client := api.NewClient(cfg.API.BaseURL, cfg.API.RequestTimeout(), store, logger,
		api.WithMetrics(metrics),
		api.WithUnauthorizedHook(app.ForceLogin),
	)
	app.SetServices(api.NewServices(client))
	app.RegisterEventHandlers(dispatcher)

	if err := store.Initialize(); err != nil {
		logger.Fatal("failed to load session state", zap.Error(err))
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		if ce := util.ToClientError(err); ce != nil {
			fmt.Fprintln(os.Stderr, "Error:", ce.Message)
			for field, problem := range ce.Details {
				fmt.Fprintf(os.Stderr, "  %s: %v\n", field, problem)
			}
		}
		os.Exit(1)
	}
}

func cancelOnSignal(cancel context.CancelFunc, logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
	cancel()
}
