package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/reelstack/catalog/internal/config"
	"github.com/reelstack/catalog/internal/container"
	"github.com/reelstack/catalog/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.NewZapLogger(cfg.Logger.Development, cfg.Logger.Level)
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	defer log.Sync()

	zapLog := log.Zap()
	zapLog.Info("starting service",
		zap.String("service", cfg.Service.Name),
		zap.String("environment", cfg.Service.Environment),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serviceContainer, cleanup, err := container.InitializeCatalogService(ctx, cfg, zapLog, log)
	if err != nil {
		zapLog.Fatal("failed to initialize service", zap.Error(err))
	}
	defer cleanup()

	consumerDone := make(chan error, 1)
	go func() {
		consumerDone <- serviceContainer.EncodedConsumer.Start(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		zapLog.Info("shutting down", zap.String("signal", sig.String()))
		cancel()
		select {
		case <-consumerDone:
		case <-time.After(cfg.Service.ShutdownTimeout):
			zapLog.Warn("shutdown timeout exceeded")
		}
	case err := <-consumerDone:
		if err != nil {
			zapLog.Error("consumer stopped", zap.Error(err))
		}
	}

	zapLog.Info("service stopped")
}
