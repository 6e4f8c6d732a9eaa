// Package gateway is the HTTP client for the analysis endpoint.
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

	"codelens/internal/domain/analysis"
)

const defaultTimeout = 60 * time.Second

// Client performs one POST /analyze round trip per call. No retry, no
// idempotency key; cancellation and deadline come from the context plus the
// configured timeout.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the endpoint at baseURL. timeout <= 0 falls back
// to the default; use the context to disable it entirely.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Analyze(ctx context.Context, req analysis.Request) (*analysis.Suggestion, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverError(resp.StatusCode, data)
	}

	var s analysis.Suggestion
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	return &s, nil
}

// serverError surfaces the server-supplied detail field verbatim when present.
func serverError(status int, body []byte) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return fmt.Errorf("%s", payload.Detail)
	}
	return fmt.Errorf("analysis failed with status %d", status)
}
