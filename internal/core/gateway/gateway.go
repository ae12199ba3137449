// Package gateway is the single request/response wrapper around the shop
// backend. It never retries; callers decide how to degrade on failure.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Error is the gateway failure taxonomy. Status 0 means the backend could
// not be reached at all (including client-side timeout); any other value is
// the non-2xx HTTP status the backend answered with. Callers treat both the
// same way: fall back, never retry.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return "backend unreachable: " + e.Detail
	}
	return fmt.Sprintf("backend returned HTTP %d: %s", e.Status, e.Detail)
}

// Unreachable reports whether the failure was transport-level.
func (e *Error) Unreachable() bool {
	return e.Status == 0
}

// Client issues JSON requests against a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for baseURL. A timeout of zero disables the
// client-side deadline.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Do executes one request against endpoint (e.g. "/cart?cart_id=3"),
// marshalling body as JSON and unmarshalling the response into out. Pass nil
// body for GET/DELETE, nil out to discard the response. Any failure is
// returned as a *Error.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway marshal: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("gateway new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Status: 0, Detail: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return &Error{Status: resp.StatusCode, Detail: string(bytes.TrimSpace(snippet))}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("gateway decode: %w", err)
		}
	}
	return nil
}
