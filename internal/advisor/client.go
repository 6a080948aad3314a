// Package advisor sends a spending snapshot to an external language model
// and returns its structured advice.
//
// This is a single-shot, non-streaming call: repeated calls with identical
// input may return different text, so callers must not cache or assume
// determinism. Callers own the timeout policy via the request context.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	defaultModel     = "claude-3-5-haiku-latest"
	defaultMaxTokens = 1024
	apiVersion       = "2023-06-01"
	maxBodySize      = 1 << 20 // 1 MB
)

// ErrAdvice is the single failure signal for analysis calls. Transport
// errors, upstream refusals, and malformed responses all wrap it; callers
// surface one generic, retriable failure.
var ErrAdvice = errors.New("advisor: analysis failed")

// Config holds the advisor client settings.
type Config struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
}

// Client calls the Anthropic messages API for spending advice.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
	maxTokens  int
}

// NewClient creates an advisor client. The API key is required; everything
// else falls back to defaults.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("advisor: API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	return &Client{
		apiKey:    cfg.APIKey,
		model:     model,
		baseURL:   baseURL,
		maxTokens: maxTokens,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 90 * time.Second,
			},
		},
	}, nil
}

// Analyze sends one spending snapshot and returns the model's analysis and
// tips. Any failure — outbound shape, transport, upstream error, or a
// response that doesn't match the advice schema — wraps ErrAdvice.
func (c *Client) Analyze(ctx context.Context, req Request) (Result, error) {
	if err := req.validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrAdvice, err)
	}

	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    systemPrompt,
		Messages:  []message{{Role: "user", Content: buildPrompt(req)}},
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: encoding request: %v", ErrAdvice, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/messages", strings.NewReader(string(body)))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrAdvice, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrAdvice, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Result{}, fmt.Errorf("%w: reading response: %v", ErrAdvice, err)
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("%w: upstream status %d", ErrAdvice, resp.StatusCode)
	}

	var mr messagesResponse
	if err := json.Unmarshal(respBody, &mr); err != nil {
		return Result{}, fmt.Errorf("%w: parsing response: %v", ErrAdvice, err)
	}
	if len(mr.Content) == 0 {
		return Result{}, fmt.Errorf("%w: empty response", ErrAdvice)
	}

	return parseResult(mr.Content[0].Text)
}

// parseResult extracts and schema-checks the advice JSON from the model's
// text output.
func parseResult(text string) (Result, error) {
	var res Result
	if err := json.Unmarshal([]byte(stripMarkdownFence(text)), &res); err != nil {
		return Result{}, fmt.Errorf("%w: malformed advice: %v", ErrAdvice, err)
	}
	if err := res.validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrAdvice, err)
	}
	return res, nil
}
