package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/application/factories/infrastructure"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/config"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/infrastructure/kafka"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/infrastructure/postgres"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/worker"
)

func main() {
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

	outboxRepo := postgres.NewOutboxRepository(pgPool)

	kafkaProd := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer kafkaProd.Close()

	// Metrics endpoint for the worker process
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		logger.Info("worker metrics listening", "addr", cfg.Worker.MetricsAddr)
		if err := http.ListenAndServe(cfg.Worker.MetricsAddr, mux); err != nil {
			logger.Error("metrics server stopped", "error", err)
		}
	}()

	p := worker.NewOutboxPoller(outboxRepo, kafkaProd, cfg.Worker.PollInterval, cfg.Worker.BatchSize)

	if err := p.Run(ctx); err != nil {
		logger.Error("worker stopped with error", "error", err)
	}

	logger.Info("worker exited")
}
