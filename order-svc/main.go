package main

import (
	"log/slog"
	"os"
	"time"

	"sahasra-foods/config"
	httpapi "sahasra-foods/order-svc/internal/api/http"
	"sahasra-foods/order-svc/internal/notify"
	"sahasra-foods/order-svc/internal/service"
	"sahasra-foods/order-svc/internal/storage"
)

func main() {
	config.InitLogger("order-svc")

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(config.OrdersTopic)
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	redisStore := storage.NewRedisStore(rdb, service.DefaultRefPrefix,
		config.GetDuration("SUBMISSION_TTL", storage.DefaultSubmissionTTL))
	mailer := notify.NewMailer(config.LoadSMTP(), config.GetEnv("OPERATOR_EMAIL", "orders@sahasra-homefoods.in"))

	orders := service.NewOrderService(repo, redisStore, redisStore, mailer, storage.NewKafkaPublisher(writer), loadOptions())
	menu := service.NewMenuService(repo)

	handler := httpapi.NewRouter(httpapi.NewHandler(orders, menu))
	if err := httpapi.StartServer(":"+config.GetEnv("PORT", "8081"), handler); err != nil {
		slog.Error("order service stopped", "error", err)
		os.Exit(1)
	}
}

func loadOptions() service.Options {
	opts := service.DefaultOptions()

	loc, err := time.LoadLocation(config.GetEnv("ORDER_TIMEZONE", "Asia/Kolkata"))
	if err != nil {
		slog.Warn("unknown ORDER_TIMEZONE, using UTC", "error", err)
	} else {
		opts.Location = loc
	}

	return opts
}
