// Package upstream selects and forwards to the Transfermarkt statistics
// API: a local instance when one is listening, else the hosted fallback.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL targets a locally run API instance; when the probe
	// fails the client falls back to the hosted deployment.
	DefaultBaseURL     = "http://localhost:8000"
	DefaultFallbackURL = "https://transfermarkt-api.fly.dev"

	defaultTimeout      = 30 * time.Second
	defaultProbeTimeout = 500 * time.Millisecond

	// The upstream blocks non-browser user agents.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/113.0.0.0 Safari/537.36"
)

// Result carries the upstream response verbatim; translation to client
// facing errors happens at the HTTP layer.
type Result struct {
	StatusCode int
	Body       []byte
}

// Forwarder is what handlers depend on, so tests can stub the upstream.
type Forwarder interface {
	Get(ctx context.Context, path string, query url.Values) (*Result, error)
}

type Config struct {
	BaseURL      string        // explicit override or localhost default
	FallbackURL  string        // hosted deployment
	Timeout      time.Duration // per forwarded request
	ProbeTimeout time.Duration // TCP probe of the local instance
}

type Client struct {
	cfg  Config
	http *http.Client

	// probe is swappable in tests.
	probe func(addr string, timeout time.Duration) bool
}

var _ Forwarder = (*Client)(nil)

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.FallbackURL == "" {
		cfg.FallbackURL = DefaultFallbackURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = defaultProbeTimeout
	}
	return &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: cfg.Timeout},
		probe: tcpProbe,
	}
}

func tcpProbe(addr string, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// isLocal reports whether the configured base URL targets localhost, which
// is the only case where probing and fallback apply.
func isLocal(baseURL string) bool {
	return strings.HasPrefix(baseURL, "http://localhost") ||
		strings.HasPrefix(baseURL, "localhost")
}

// normalizeURL ensures a scheme so url.Parse and the HTTP client accept it.
func normalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "http://" + raw
}

// baseURL picks the backend for this request. A non-localhost override is
// used verbatim; a localhost target is probed first and the hosted
// deployment used when nothing is listening.
func (c *Client) baseURL() string {
	if !isLocal(c.cfg.BaseURL) {
		return c.cfg.BaseURL
	}
	local := normalizeURL(c.cfg.BaseURL)
	if u, err := url.Parse(local); err == nil && c.probe(probeAddr(u), c.cfg.ProbeTimeout) {
		return local
	}
	return c.cfg.FallbackURL
}

func probeAddr(u *url.URL) string {
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	return net.JoinHostPort(host, port)
}

// Get forwards a GET for path (already URL-safe, leading slash) with the
// given query and returns the upstream status and body unmodified.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Result, error) {
	target := c.baseURL() + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request %q: %w", path, err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call upstream %q: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response %q: %w", path, err)
	}
	return &Result{StatusCode: resp.StatusCode, Body: body}, nil
}
