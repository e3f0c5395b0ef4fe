// Package gateway is the HTTP boundary to the remote product/order API. It
// exposes exactly two operations, with no retrying, caching or deduplication;
// preventing duplicate submissions is the orchestrator's job.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain"
)

// Client defines the two remote operations the storefront consumes.
type Client interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	SubmitOrder(ctx context.Context, order domain.Order) (*domain.OrderResponse, error)
}

// APIError is a non-2xx response surfaced as a rejected operation.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api responded with status %d", e.Status)
	}
	return fmt.Sprintf("api responded with status %d: %s", e.Status, e.Message)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a gateway client against the given API base URL.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type productList struct {
	Items []domain.Product `json:"items"`
}

// FetchProducts reads the full product listing in server order.
func (c *httpClient) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var list productList
	if err := c.do(ctx, http.MethodGet, "/product/", nil, &list); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return list.Items, nil
}

// SubmitOrder posts the order payload and returns the confirmed order.
func (c *httpClient) SubmitOrder(ctx context.Context, order domain.Order) (*domain.OrderResponse, error) {
	var resp domain.OrderResponse
	if err := c.do(ctx, http.MethodPost, "/order/", order, &resp); err != nil {
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}
	return &resp, nil
}

func (c *httpClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *httpClient) apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	// The error body is best effort; the status code alone is enough.
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	return &APIError{
		Status:  resp.StatusCode,
		Message: payload.Error,
	}
}
