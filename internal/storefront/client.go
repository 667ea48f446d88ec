// Package storefront talks to the Shopify Storefront GraphQL API and
// reshapes its nested edge/node payloads into the flat structures the HTTP
// surface returns.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hairloompk/hairloom-chatgpt-plugin/internal/logging"
)

// apiVersion pins the Storefront API release the proxy is written against.
const apiVersion = "2023-07"

// requestTimeout bounds every upstream call. No retry follows a timeout.
const requestTimeout = 10 * time.Second

// Client executes GraphQL queries against one configured shop. It holds no
// per-request state and is safe for concurrent use.
type Client struct {
	domain string
	token  string
	http   *http.Client
	logger logging.Logger
}

// NewClient builds a Client for the given shop domain and Storefront access
// token. httpClient may be nil, in which case a default with the standard
// request timeout is used. Missing domain or token is not an error here;
// Execute reports it per call so the server can keep serving discovery files.
func NewClient(domain, token string, logger logging.Logger, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		domain: strings.TrimSuffix(domain, "/"),
		token:  token,
		http:   httpClient,
		logger: logger.With(logging.Field{Key: "component", Value: "storefront"}),
	}
}

// baseURL returns the shop origin. A bare domain is assumed to be https;
// a domain carrying an explicit scheme (tests, local tunnels) is kept as-is.
func (c *Client) baseURL() string {
	if strings.Contains(c.domain, "://") {
		return c.domain
	}
	return "https://" + c.domain
}

// Endpoint returns the version-pinned GraphQL URL for the configured shop.
func (c *Client) Endpoint() string {
	return fmt.Sprintf("%s/api/%s/graphql.json", c.baseURL(), apiVersion)
}

// graphQLError is one entry of the upstream errors array.
type graphQLError struct {
	Message string `json:"message"`
}

// Execute POSTs query and variables to the storefront endpoint and returns
// the raw data object. It makes exactly one attempt.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	if c.domain == "" {
		return nil, &ConfigError{Missing: "SHOPIFY_SHOP_DOMAIN"}
	}
	if c.token == "" {
		return nil, &ConfigError{Missing: "SHOPIFY_STOREFRONT_TOKEN"}
	}

	payload, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("storefront request failed",
			logging.Field{Key: "error", Value: err.Error()})
		return nil, &UpstreamError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Detail: "read body: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("storefront non-success status",
			logging.Field{Key: "status", Value: resp.StatusCode})
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Detail: strings.TrimSpace(string(body))}
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Detail: "invalid JSON from upstream: " + err.Error()}
	}

	// Any GraphQL-level error aborts the whole request; there is no
	// partial-success handling.
	if len(envelope.Errors) > 0 {
		msgs := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			msgs = append(msgs, e.Message)
		}
		c.logger.Warn("storefront GraphQL errors",
			logging.Field{Key: "errors", Value: msgs})
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Detail: strings.Join(msgs, "; ")}
	}

	return envelope.Data, nil
}
