package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"sahasra-foods/order-svc/internal/domain"
	"sahasra-foods/order-svc/internal/service"

	"github.com/gorilla/mux"
)

const maxOrderBody = 1 << 20

type Handler struct {
	Orders service.OrderServiceInterface
	Menu   service.MenuServiceInterface
}

func NewHandler(orders service.OrderServiceInterface, menu service.MenuServiceInterface) *Handler {
	return &Handler{Orders: orders, Menu: menu}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.submitOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/status", h.orderSystemStatus).Methods("GET")
	r.HandleFunc("/api/orders/{ref}", h.getOrder).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.upsertMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{name}", h.getMenuItem).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) orderSystemStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Sahasra Home-Foods Order System is running!",
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"status":       "active",
		"instructions": "This endpoint accepts POST requests with order data.",
	})
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxOrderBody))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, domain.SubmitResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	orderRef, err := h.Orders.Submit(r.Context(), raw)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrMalformedRequest) {
			status = http.StatusBadRequest
		}
		slog.WarnContext(r.Context(), "order rejected", "status", status, "error", err)
		writeJSON(w, status, domain.SubmitResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, domain.SubmitResponse{Success: true, OrderRef: orderRef})
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	orders, err := h.Orders.List(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["ref"])
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menu.Get(r.Context(), mux.Vars(r)["name"])
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) upsertMenuItem(w http.ResponseWriter, r *http.Request) {
	item := domain.MenuItem{Available: true}
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Menu.Upsert(r.Context(), &item); err != nil {
		if errors.Is(err, service.ErrInvalidMenuItem) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
