package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sahasra-foods/config"
	httpapi "sahasra-foods/sales-svc/internal/api/http"
	"sahasra-foods/sales-svc/internal/service"
	"sahasra-foods/sales-svc/internal/storage"
)

func main() {
	config.InitLogger("sales-svc")

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	loc, err := time.LoadLocation(config.GetEnv("ORDER_TIMEZONE", "Asia/Kolkata"))
	if err != nil {
		slog.Warn("unknown ORDER_TIMEZONE, using UTC", "error", err)
		loc = time.UTC
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := config.NewKafkaReader(config.OrdersTopic, "sales-svc-consumer")
	defer reader.Close()

	store := storage.NewStore(rdb)
	consumer := service.NewConsumer(reader, store, loc)
	go consumer.Start(ctx)

	analytics := service.NewAnalyticsService(store, storage.NewPostgresRepository(db), loc)
	handler := httpapi.NewRouter(httpapi.NewHandler(analytics))

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpapi.StartServer(":"+config.GetEnv("PORT", "8083"), handler)
	}()

	select {
	case <-ctx.Done():
		slog.Info("sales service shutting down")
	case err := <-errCh:
		slog.Error("sales service stopped", "error", err)
		os.Exit(1)
	}
}
