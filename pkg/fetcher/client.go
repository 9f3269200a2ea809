package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/altverseweb3/analytics-fetcher/pkg/catalog"
	"github.com/altverseweb3/analytics-fetcher/pkg/report"
)

// Client issues queries against the remote analytics endpoint. One Client
// is shared by every query in a run; each request carries the x-api-key
// credential and the JSON content type.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// NewClient creates a client for the analytics endpoint under baseURL.
// The timeout bounds each individual call.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		endpoint: strings.TrimRight(baseURL, "/") + "/analytics",
		apiKey:   apiKey,
	}
}

// Endpoint returns the full analytics endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// apiError is the structured error body the endpoint may return on 4xx/5xx.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Query issues one POST carrying the descriptor and returns the outcome.
// Every failure is recovered into a failure result rather than a Go error:
// one bad query must not abort the batch.
func (c *Client) Query(ctx context.Context, desc catalog.Descriptor) report.QueryResult {
	body, err := json.Marshal(desc)
	if err != nil {
		return report.Failure(fmt.Sprintf("failed to encode query: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return report.Failure(fmt.Sprintf("failed to build request: %v", err))
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return report.Failure(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return report.Failure(fmt.Sprintf("failed to read response: %v", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return report.Failure(errorDescription(resp.Status, raw))
	}

	if !json.Valid(raw) {
		return report.Failure(fmt.Sprintf("invalid JSON in response body (%s)", resp.Status))
	}

	return report.Success(raw)
}

// errorDescription builds the failure text for a non-2xx response. The
// endpoint's structured error message wins over the raw body text, which
// wins over the bare status line.
func errorDescription(status string, body []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Error != "" {
			return fmt.Sprintf("%s: %s", status, apiErr.Error)
		}
		if apiErr.Message != "" {
			return fmt.Sprintf("%s: %s", status, apiErr.Message)
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return fmt.Sprintf("%s: %s", status, text)
	}
	return status
}
