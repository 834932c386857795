package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"remitscan/internal/config"
	"remitscan/internal/domain"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"
)

// Client relays validated documents to the Anthropic Messages API.
type Client struct {
	apiKey    string
	model     string
	maxTokens int
	endpoint  string
	client    *http.Client
}

// NewClient creates a relay client from the upstream config. The config's
// endpoint override takes precedence over the default API URL (for testing).
func NewClient(cfg *config.AnthropicConfig) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}
	return &Client{
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: maxTokens,
		endpoint:  endpoint,
		// No client-level timeout; the per-request deadline on ctx governs,
		// and cancelling it tears down the in-flight connection.
		client: &http.Client{},
	}
}

// Model returns the upstream model identifier the client targets.
func (c *Client) Model() string {
	return c.model
}

// Extract sends one document block plus the extraction prompt upstream and
// returns the raw JSON response body verbatim. The caller supplies the
// deadline on ctx; expiry is reported as domain.ErrUpstreamTimeout.
func (c *Client) Extract(ctx context.Context, block *domain.DocumentBlock, prompt string) ([]byte, error) {
	reqBody := map[string]interface{}{
		"model":      c.model,
		"max_tokens": c.maxTokens,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []interface{}{
					block,
					map[string]interface{}{"type": "text", "text": prompt},
				},
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after deadline: %v", domain.ErrUpstreamTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w while reading response", domain.ErrUpstreamTimeout)
		}
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// apiError models the Anthropic error envelope.
type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func classifyStatus(status int, body []byte) error {
	// Best effort; an unparseable body yields an empty detail.
	var envelope apiError
	_ = json.Unmarshal(body, &envelope)
	detail := envelope.Error.Message

	switch status {
	case http.StatusUnauthorized:
		// Detail deliberately dropped so credential context never propagates.
		return &domain.UpstreamError{Kind: domain.ErrUpstreamAuth, Status: status}
	case http.StatusTooManyRequests:
		return &domain.UpstreamError{Kind: domain.ErrUpstreamRateLimited, Status: status, Detail: detail}
	case http.StatusBadRequest:
		return &domain.UpstreamError{Kind: domain.ErrUpstreamBadRequest, Status: status, Detail: detail}
	default:
		return &domain.UpstreamError{Kind: domain.ErrUpstreamFailed, Status: status, Detail: detail}
	}
}
