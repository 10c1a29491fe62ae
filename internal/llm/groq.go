// Package llm wraps the Groq chat-completions endpoint used for voice
// command intent extraction.
package llm

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
)

const (
	DefaultURL   = "https://api.groq.com/openai/v1/chat/completions"
	DefaultModel = "llama-3.1-8b-instant"

	defaultTimeout = 10 * time.Second

	temperature = 0.3
	maxTokens   = 200
)

// ErrNoAPIKey means the client was built without a usable key; callers are
// expected to skip the model and use their fallback path.
var ErrNoAPIKey = errors.New("groq api key not configured")

type Config struct {
	APIKey  string
	URL     string
	Model   string
	Timeout time.Duration
}

// Client is a minimal chat-completions caller. One fixed-shape POST, no
// streaming, no retries.
type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	cfg.APIKey = sanitizeAPIKey(cfg.APIKey)
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// sanitizeAPIKey cuts anything from "https://" onward; keys pasted together
// with a docs URL have been seen in the wild.
func sanitizeAPIKey(key string) string {
	if i := strings.Index(key, "https://"); i >= 0 {
		return strings.TrimSpace(key[:i])
	}
	return strings.TrimSpace(key)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends one system+user exchange and returns the first choice's
// content, trimmed.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrNoAPIKey
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call groq: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read groq response: %w", err)
	}
	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode groq response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("groq response has no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
