package upstream

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

	"github.com/flexipack-labs/order-portal/models"
)

// ErrNotFound marks a 404 from the upstream API.
var ErrNotFound = errors.New("upstream: not found")

// StatusError carries a non-success upstream response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream: %d %s", e.Code, e.Message)
	}
	return fmt.Sprintf("upstream: unexpected status %d", e.Code)
}

// Client talks to the order API. Streaming endpoints (invoice, chat) use a
// client without an overall timeout so long bodies are not cut off.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	streamClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		streamClient: &http.Client{},
	}
}

// LoginResult is the upstream login response.
type LoginResult struct {
	Success  bool   `json:"success"`
	Redirect string `json:"redirect,omitempty"`
	Message  string `json:"message,omitempty"`
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.httpClient.Do(req)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login proxies a credential check. A 401 is reported through the result,
// not as an error, so the login page can show the upstream message inline.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var result LoginResult

	resp, err := c.postJSON(ctx, "/api/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, err
	}
	return result, nil
}

// ListOrders fetches the full order collection.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var list models.OrderList
	if err := c.getJSON(ctx, "/api/orders", &list); err != nil {
		return nil, err
	}
	return list.Orders, nil
}

// GetOrder fetches a single order by order number.
func (c *Client) GetOrder(ctx context.Context, orderNo string) (*models.Order, error) {
	var order models.Order
	if err := c.getJSON(ctx, "/api/order/"+orderNo, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetTracking fetches the shipment timeline for an order.
func (c *Client) GetTracking(ctx context.Context, orderNo string) ([]models.TrackingStep, error) {
	var tr models.TrackingResponse
	if err := c.getJSON(ctx, "/api/track/"+orderNo, &tr); err != nil {
		return nil, err
	}
	return tr.Tracking, nil
}

// CancelOrder asks the upstream API to cancel an order. The returned
// message is the success banner text.
func (c *Client) CancelOrder(ctx context.Context, orderNo, reason string) (string, error) {
	resp, err := c.postJSON(ctx, "/api/cancel/"+orderNo, map[string]string{"reason": reason})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message,omitempty"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if !body.Success {
		return "", &StatusError{Code: resp.StatusCode, Message: body.Message}
	}
	return body.Message, nil
}

// Invoice fetches the invoice document. The caller owns the response and
// must close its body; headers are relayed to the browser as-is.
func (c *Client) Invoice(ctx context.Context, orderNo string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/invoice/"+orderNo, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.streamClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode}
	}
	return resp, nil
}

// Chat sends a query and returns the raw event stream body. The caller
// feeds it through a chatstream.Parser and closes it when done.
func (c *Client) Chat(ctx context.Context, query string) (io.ReadCloser, error) {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.streamClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode}
	}
	return resp.Body, nil
}
