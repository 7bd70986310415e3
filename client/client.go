// Package client implements the authenticated HTTP client for the
// ClaimReady backend and the error classification shared by the session
// manager and every optimistic mutation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

const maxErrorBodySize = 64 << 10

// TokenFunc returns the current bearer token, or false when no session
// exists. It is consulted on every request so a renewed token takes
// effect without rebuilding the client.
type TokenFunc func() (string, bool)

// Client is an HTTP client for the ClaimReady backend. All non-2xx
// responses are mapped through the shared error taxonomy before being
// returned.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenFunc
	logger  *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the structured logger for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a Client for the given backend. token may be nil for
// unauthenticated use (login).
func New(cfg Config, token TokenFunc, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		token:   token,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Put issues a PUT request with a JSON body and decodes the response
// into out. out may be nil when the response body is irrelevant.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Post issues a POST request with a JSON body and decodes the response
// into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok, ok := c.token(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Connectivity problems must never masquerade as auth failures.
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		// An undecodable error body still classifies by status alone.
		_ = json.Unmarshal(data, &eb)
		err := classifyStatus(resp.StatusCode, eb)
		c.logger.Debug("backend request failed",
			"method", method, "path", path, "status", resp.StatusCode, "code", eb.Code())
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w: %v", method, path, ErrTransient, err)
	}
	return nil
}
