package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"sahasra-foods/config"
	"sahasra-foods/storefront/internal/checkout"
	"sahasra-foods/storefront/internal/gateway"

	"github.com/rs/cors"
)

const sessionIdleTimeout = 24 * time.Hour

func main() {
	config.InitLogger("storefront")

	orderSvcURL := config.GetEnv("ORDER_SVC_URL", "http://localhost:8081")
	httpClient := &http.Client{Timeout: 30 * time.Second}

	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL:    orderSvcURL,
		WhatsAppNumber: config.GetEnv("WHATSAPP_NUMBER", "918328299113"),
		StaticDir:      config.GetEnv("STATIC_DIR", "./frontend"),
	}, httpClient,
		checkout.NewClient(orderSvcURL, httpClient, config.GetDuration("CHECKOUT_TIMEOUT", checkout.DefaultTimeout)),
		checkout.DefaultQRGenerator{})

	go pruneSessions(gw.Sessions())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(gw.SetupRoutes())

	addr := ":" + config.GetEnv("PORT", "8080")
	slog.Info("storefront starting", "addr", addr, "order_svc", orderSvcURL)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("storefront stopped", "error", err)
		os.Exit(1)
	}
}

func pruneSessions(store *gateway.SessionStore) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for now := range ticker.C {
		if removed := store.Prune(now.Add(-sessionIdleTimeout)); removed > 0 {
			slog.Info("pruned idle sessions", "removed", removed, "remaining", store.Len())
		}
	}
}
