package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"sahasra-foods/storefront/internal/cart"
	"sahasra-foods/storefront/internal/checkout"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OrderSubmitter sends a built payload to the order gateway.
type OrderSubmitter interface {
	Submit(ctx context.Context, payload cart.OrderPayload) (string, error)
}

type Config struct {
	OrderSvcURL    string
	WhatsAppNumber string
	StaticDir      string
}

type Gateway struct {
	config   Config
	client   HTTPClient
	orders   OrderSubmitter
	qr       checkout.QRGenerator
	sessions *SessionStore
	refs     *cart.RefGenerator
	now      func() time.Time
}

func NewGateway(config Config, client HTTPClient, orders OrderSubmitter, qr checkout.QRGenerator) *Gateway {
	if config.StaticDir == "" {
		config.StaticDir = "./frontend"
	}
	if qr == nil {
		qr = checkout.DefaultQRGenerator{}
	}
	return &Gateway{
		config:   config,
		client:   client,
		orders:   orders,
		qr:       qr,
		sessions: NewSessionStore(),
		refs:     cart.NewRefGenerator(cart.DefaultRefPrefix),
		now:      time.Now,
	}
}

// Sessions exposes the cart store so the caller can prune idle sessions.
func (g *Gateway) Sessions() *SessionStore {
	return g.sessions
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "storefront",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	slog.Debug("proxy", "method", r.Method, "path", r.URL.Path, "target", targetURL)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		slog.Error("failed to create proxy request", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// The session cookie only means something to the storefront.
	for k, v := range r.Header {
		if k == "Cookie" {
			continue
		}
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		slog.Error("proxy failed", "target", targetURL, "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		slog.Warn("failed to copy proxy response", "error", err)
	}
}

func (g *Gateway) proxyMenu(w http.ResponseWriter, r *http.Request) {
	g.ProxyRequest(w, r, g.config.OrderSvcURL)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.HandleFunc("/api/menu", g.proxyMenu).Methods("GET")

	r.HandleFunc("/api/cart", g.getCart).Methods("GET")
	r.HandleFunc("/api/cart", g.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", g.addItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{index}", g.removeItem).Methods("DELETE")
	r.HandleFunc("/api/cart/items/{index}", g.changeQuantity).Methods("PATCH")

	r.HandleFunc("/api/checkout", g.placeOrder).Methods("POST")
	r.HandleFunc("/api/checkout/last/whatsapp", g.lastWhatsApp).Methods("GET")
	r.HandleFunc("/api/checkout/last/qrcode", g.lastQRCode).Methods("GET")

	r.PathPrefix("/api/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "API route not found")
	})
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(g.config.StaticDir)))
	return r
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"success": false, "error": message})
}
