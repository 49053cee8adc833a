package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"stock-sync/core/stores"
)

// Client executes GraphQL operations against one store's Admin API.
// The operation name is used only for error reporting.
type Client interface {
	Execute(ctx context.Context, operation, query string, variables map[string]any, out any) error
}

// NewClient creates a client bound to the given store's credentials and
// API version.
func NewClient(store stores.Store, cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		endpoint: fmt.Sprintf("https://%s/admin/api/%s/graphql.json", store.Domain(), store.APIVersion),
		token:    store.AccessToken,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

type httpClient struct {
	endpoint string
	token    string
	http     *http.Client
}

// graphqlResponse is the standard response envelope.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

func (c *httpClient) Execute(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	payload := map[string]any{"query": query}
	if variables != nil {
		payload["variables"] = variables
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return &QueryError{Operation: operation, Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return &QueryError{Operation: operation, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return &QueryError{Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &QueryError{Operation: operation, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return &QueryError{Operation: operation, Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(raw, 200))}
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &QueryError{Operation: operation, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(envelope.Errors) > 0 {
		return &QueryError{Operation: operation, Errors: envelope.Errors}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &QueryError{Operation: operation, Err: fmt.Errorf("failed to decode data: %w", err)}
		}
	}

	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
