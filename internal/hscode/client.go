// Package hscode talks to the HS-code inference endpoint.
package hscode

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

	"github.com/guttosm/sourcing-lens/internal/circuitbreaker"
	"github.com/guttosm/sourcing-lens/internal/domain/model"
)

var (
	// ErrLookupDisabled is returned when no inference endpoint is configured.
	ErrLookupDisabled = errors.New("hs code lookup is disabled")
	// ErrUnexpectedStatus is returned for non-2xx responses.
	ErrUnexpectedStatus = errors.New("unexpected hs lookup status")
)

const maxResponseBytes = 64 << 10

// Inferrer suggests an HS code for a product.
type Inferrer interface {
	Infer(ctx context.Context, productName, description string) (model.HSCodeSuggestion, error)
}

// Config holds the inference endpoint settings.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client is an HTTP Inferrer guarded by a circuit breaker.
type Client struct {
	url     string
	apiKey  string
	http    *http.Client
	breaker *circuitbreaker.CircuitBreaker
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithCircuitBreaker guards requests with cb.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) {
		c.breaker = cb
	}
}

// NewClient creates a Client for cfg.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type inferRequest struct {
	ProductName string `json:"productName,omitempty"`
	Description string `json:"description"`
}

type inferResponse struct {
	HSCode string `json:"hsCode"`
	Reason string `json:"reason"`
}

// Infer posts the product to the endpoint and returns a normalized suggestion.
// A response without a usable code yields an empty HSCode and no error.
func (c *Client) Infer(ctx context.Context, productName, description string) (model.HSCodeSuggestion, error) {
	if c.url == "" {
		return model.HSCodeSuggestion{}, ErrLookupDisabled
	}

	var suggestion model.HSCodeSuggestion
	call := func() error {
		s, err := c.do(ctx, productName, description)
		suggestion = s
		return err
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.Execute(ctx, call)
	} else {
		err = call()
	}
	if err != nil {
		return model.HSCodeSuggestion{}, err
	}
	return suggestion, nil
}

func (c *Client) do(ctx context.Context, productName, description string) (model.HSCodeSuggestion, error) {
	body, err := json.Marshal(inferRequest{ProductName: productName, Description: description})
	if err != nil {
		return model.HSCodeSuggestion{}, fmt.Errorf("encode hs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return model.HSCodeSuggestion{}, fmt.Errorf("build hs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return model.HSCodeSuggestion{}, fmt.Errorf("hs request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return model.HSCodeSuggestion{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out inferResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return model.HSCodeSuggestion{}, fmt.Errorf("decode hs response: %w", err)
	}

	return model.HSCodeSuggestion{
		HSCode: Normalize(out.HSCode),
		Reason: strings.TrimSpace(out.Reason),
	}, nil
}

// Normalize strips non-digits and keeps the result only when it has 4 to 6
// digits and is not all zeros.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	code := b.String()
	if len(code) < 4 || len(code) > 6 {
		return ""
	}
	if strings.Trim(code, "0") == "" {
		return ""
	}
	return code
}
