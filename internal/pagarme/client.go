package pagarme

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lucascresencio/leet-test/internal/logger"
	"github.com/lucascresencio/leet-test/internal/metrics"
)

const defaultTimeout = 15 * time.Second

// Payload is a request body in the processor's documented shape.
type Payload map[string]interface{}

// Response is a parsed response body for endpoints the orchestrator does
// not consume as typed objects.
type Response map[string]interface{}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client issues authenticated calls to the Pagar.me v5 API. It holds no
// mutable state and is safe for concurrent use; retry policy belongs to
// callers.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Content-Type", "application/json")

	resource := pathResource(path)

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordGatewayCall(resource, "unavailable")
		return &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordGatewayCall(resource, "unavailable")
		return &UnavailableError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordGatewayCall(resource, "error")
		logger.Error("pagarme request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	metrics.RecordGatewayCall(resource, "ok")

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// doList unwraps the "data" envelope of list endpoints.
func (c *Client) doList(ctx context.Context, path string, query url.Values) ([]Response, error) {
	var envelope struct {
		Data []Response `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func pathResource(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i > 0 {
		return trimmed[:i]
	}
	return trimmed
}

func listQuery(params Payload) url.Values {
	if len(params) == 0 {
		return nil
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, fmt.Sprint(v))
	}
	return q
}
