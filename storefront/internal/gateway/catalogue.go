package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownItem          = errors.New("item is not on the menu")
	ErrCatalogueUnavailable = errors.New("menu catalogue unavailable")
)

type menuItem struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

// lookupItem fetches the current catalogue entry so cart prices come from
// the menu rather than from the browser.
func (g *Gateway) lookupItem(ctx context.Context, name string) (menuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.config.OrderSvcURL+"/api/menu/"+url.PathEscape(name), nil)
	if err != nil {
		return menuItem{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return menuItem{}, fmt.Errorf("%w: %v", ErrCatalogueUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return menuItem{}, ErrUnknownItem
	case resp.StatusCode != http.StatusOK:
		return menuItem{}, fmt.Errorf("%w: status %d", ErrCatalogueUnavailable, resp.StatusCode)
	}

	var item menuItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return menuItem{}, fmt.Errorf("%w: %v", ErrCatalogueUnavailable, err)
	}
	if !item.Available {
		return menuItem{}, ErrUnknownItem
	}
	return item, nil
}
