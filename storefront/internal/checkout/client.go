// Package checkout submits cart payloads to the order gateway and prepares
// the WhatsApp fallback shown after a successful order.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sahasra-foods/storefront/internal/cart"
)

const (
	DefaultTimeout  = 15 * time.Second
	maxResponseBody = 1 << 20
)

// ErrTransport means the gateway could not be reached or did not answer in time.
var ErrTransport = errors.New("order gateway unreachable")

// GatewayError is a response from the gateway that did not accept the order.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("order gateway rejected order (%d): %s", e.StatusCode, e.Message)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	client  HTTPClient
	timeout time.Duration
}

func NewClient(baseURL string, client HTTPClient, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: client, timeout: timeout}
}

type submitResponse struct {
	Success  bool   `json:"success"`
	OrderRef string `json:"orderRef"`
	Error    string `json:"error"`
}

// Submit posts the payload and returns the order reference assigned by the
// gateway.
func (c *Client) Submit(ctx context.Context, payload cart.OrderPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	var out submitResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", &GatewayError{StatusCode: resp.StatusCode, Message: "unreadable response: " + strings.TrimSpace(string(raw))}
	}
	if !out.Success || resp.StatusCode >= http.StatusMultipleChoices {
		message := out.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return "", &GatewayError{StatusCode: resp.StatusCode, Message: message}
	}

	if out.OrderRef == "" {
		return payload.OrderRef, nil
	}
	return out.OrderRef, nil
}
