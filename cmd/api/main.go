package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/api"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/application/factories/infrastructure"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/config"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/infrastructure/postgres"
	redisInfra "github.com/aydogmusserhat/monte-pine-meal-orders/internal/infrastructure/redis"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/usecase"
)

func main() {
	// Structured JSON logs for every binary
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	infraFactory := infrastructure.NewFactory(cfg)
	defer infraFactory.Close()

	pgPool, err := infraFactory.Postgres(ctx)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}

	redisClient, err := redisInfra.NewClient(ctx, redisInfra.Config{
		Addr: cfg.Redis.Addr,
	})
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// Repositories
	orderRepo := postgres.NewOrderRepository(pgPool)
	outboxRepo := postgres.NewOutboxRepository(pgPool)
	txManager := postgres.NewTxManager(pgPool)

	// UseCases
	submitOrderUC := usecase.NewSubmitOrder(txManager, orderRepo, outboxRepo)
	listOrdersUC := usecase.NewListOrders(orderRepo)

	handlers := api.NewHandlers(submitOrderUC, listOrdersUC)
	apiHandler := api.NewRouter(handlers, redisClient)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: apiHandler,
	}

	go func() {
		logger.Info("server starting", "port", cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exiting")
}
