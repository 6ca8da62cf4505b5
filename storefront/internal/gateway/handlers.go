package gateway

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"sahasra-foods/storefront/internal/cart"
	"sahasra-foods/storefront/internal/checkout"

	"github.com/gorilla/mux"
)

type cartView struct {
	Items     []cart.Item `json:"items"`
	ItemCount int         `json:"itemCount"`
	cart.Totals
	Submitting bool `json:"submitting"`
}

func newCartView(c *cart.Cart, submitting bool) cartView {
	items := c.Items()
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return cartView{Items: items, ItemCount: count, Totals: c.Totals(), Submitting: submitting}
}

type addItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type changeQuantityRequest struct {
	Delta int `json:"delta"`
}

func (g *Gateway) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, g.session(w, r).view())
}

func (g *Gateway) addItem(w http.ResponseWriter, r *http.Request) {
	sess := g.session(w, r)

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "item name is required")
		return
	}

	item, err := g.lookupItem(r.Context(), req.Name)
	if errors.Is(err, ErrUnknownItem) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "menu lookup failed", "item", req.Name, "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	g.applyMutation(w, sess, func(c *cart.Cart) {
		c.AddItem(item.Name, item.Price, req.Quantity)
	})
}

func (g *Gateway) removeItem(w http.ResponseWriter, r *http.Request) {
	sess := g.session(w, r)
	index, ok := itemIndex(w, r)
	if !ok {
		return
	}
	g.applyMutation(w, sess, func(c *cart.Cart) {
		c.RemoveItem(index)
	})
}

func (g *Gateway) changeQuantity(w http.ResponseWriter, r *http.Request) {
	sess := g.session(w, r)
	index, ok := itemIndex(w, r)
	if !ok {
		return
	}
	var req changeQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	g.applyMutation(w, sess, func(c *cart.Cart) {
		c.ChangeQuantity(index, req.Delta)
	})
}

func (g *Gateway) clearCart(w http.ResponseWriter, r *http.Request) {
	g.applyMutation(w, g.session(w, r), func(c *cart.Cart) {
		c.Clear()
	})
}

func (g *Gateway) applyMutation(w http.ResponseWriter, sess *Session, fn func(c *cart.Cart)) {
	if err := sess.mutate(fn); err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sess.view())
}

func itemIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item index")
		return 0, false
	}
	return index, true
}

func (g *Gateway) placeOrder(w http.ResponseWriter, r *http.Request) {
	sess := g.session(w, r)

	var customer cart.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	customer = trimCustomer(customer)
	if customer.Name == "" || customer.Phone == "" || customer.Address == "" {
		writeError(w, http.StatusBadRequest, "name, phone and address are required")
		return
	}

	payload, err := sess.beginCheckout(customer, g.refs, g.now())
	switch {
	case errors.Is(err, cart.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, ErrCheckoutInProgress):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	orderRef, err := g.orders.Submit(r.Context(), payload)
	if err != nil {
		sess.finishCheckout(nil)
		status := checkoutStatus(err)
		slog.WarnContext(r.Context(), "checkout failed",
			"client_ref", payload.OrderRef, "submission_id", payload.SubmissionID, "status", status, "error", err)
		writeError(w, status, err.Error())
		return
	}

	link := checkout.WhatsAppLink(g.config.WhatsAppNumber, checkout.WhatsAppMessage(orderRef, payload))
	sess.finishCheckout(&Confirmation{OrderRef: orderRef, WhatsAppURL: link, PlacedAt: g.now()})
	slog.InfoContext(r.Context(), "order placed", "order_ref", orderRef, "client_ref", payload.OrderRef)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":     true,
		"orderRef":    orderRef,
		"whatsappUrl": link,
	})
}

func checkoutStatus(err error) int {
	var gatewayErr *checkout.GatewayError
	switch {
	case errors.As(err, &gatewayErr) && gatewayErr.StatusCode >= http.StatusBadRequest:
		return gatewayErr.StatusCode
	case errors.Is(err, checkout.ErrTransport), errors.As(err, &gatewayErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func trimCustomer(c cart.Customer) cart.Customer {
	return cart.Customer{
		Name:                strings.TrimSpace(c.Name),
		Phone:               strings.TrimSpace(c.Phone),
		Email:               strings.TrimSpace(c.Email),
		Address:             strings.TrimSpace(c.Address),
		SpecialInstructions: strings.TrimSpace(c.SpecialInstructions),
	}
}

func (g *Gateway) lastWhatsApp(w http.ResponseWriter, r *http.Request) {
	last := g.session(w, r).lastConfirmation()
	if last == nil {
		writeError(w, http.StatusNotFound, "no order placed in this session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"orderRef":    last.OrderRef,
		"whatsappUrl": last.WhatsAppURL,
	})
}

func (g *Gateway) lastQRCode(w http.ResponseWriter, r *http.Request) {
	last := g.session(w, r).lastConfirmation()
	if last == nil {
		writeError(w, http.StatusNotFound, "no order placed in this session")
		return
	}
	png, err := g.qr.Generate(last.WhatsAppURL)
	if err != nil {
		slog.ErrorContext(r.Context(), "qr generation failed", "order_ref", last.OrderRef, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
