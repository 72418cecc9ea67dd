package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"

	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/log"
	"github.com/cuemby/weaviate-client-go/pkg/metrics"
)

const (
	// DefaultConnectTimeout bounds TCP connection establishment.
	DefaultConnectTimeout = 10 * time.Second
	// DefaultReadTimeout bounds the full request/response exchange.
	DefaultReadTimeout = 60 * time.Second
)

// TokenProvider resolves the current Authorization header value. The
// provider is consulted on every request so that rotated tokens take
// effect without rebuilding the transport.
type TokenProvider interface {
	// AuthHeader returns the header value ("Bearer ..." form) and whether
	// a credential is currently available.
	AuthHeader() (string, bool)
}

// HTTPConfig configures the control-plane transport.
type HTTPConfig struct {
	// BaseURL is the API root including the version prefix, for example
	// "http://localhost:8080/v1".
	BaseURL string
	// Headers are static headers attached to every request.
	Headers map[string]string
	// Auth, when set, supplies the Authorization header per request and
	// takes precedence over a static Authorization entry in Headers.
	Auth TokenProvider
	// ConnectTimeout and ReadTimeout split the request deadline into
	// connection establishment and full exchange. Zero selects defaults.
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	// ProxyURL routes requests through an HTTP proxy when non-empty.
	ProxyURL string
}

// HTTP is the JSON-over-HTTP control-plane transport.
type HTTP struct {
	baseURL string
	headers map[string]string
	auth    TokenProvider
	client  *http.Client
	readTO  time.Duration
	closed  atomic.Bool
	logger  zerolog.Logger
}

// Response is a completed control-plane exchange.
type Response struct {
	StatusCode int
	Body       []byte
}

// Into unmarshals the response body into v.
func (r *Response) Into(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// NewHTTP builds the control-plane transport. It does not contact the
// server; the first Send does.
func NewHTTP(cfg HTTPConfig) (*HTTP, error) {
	if cfg.BaseURL == "" {
		return nil, errors.NewInvalidInput("base URL is required")
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}

	pooled := cleanhttp.DefaultPooledTransport()
	pooled.DialContext = (&net.Dialer{
		Timeout:   cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, errors.NewInvalidInput("invalid proxy URL %q: %v", cfg.ProxyURL, err)
		}
		pooled.Proxy = http.ProxyURL(proxy)
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}
	if cfg.Auth != nil {
		if _, ok := headers["Authorization"]; ok {
			log.Warn("static Authorization header ignored in favor of configured credentials")
			delete(headers, "Authorization")
		}
	}

	return &HTTP{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		headers: headers,
		auth:    cfg.Auth,
		client: &http.Client{
			Transport: pooled,
			Timeout:   cfg.ConnectTimeout + cfg.ReadTimeout,
		},
		readTO: cfg.ReadTimeout,
		logger: log.WithComponent("transport.http"),
	}, nil
}

// ReadTimeout reports the configured read timeout. The batch engine uses
// it to derive per-flush deadlines.
func (h *HTTP) ReadTimeout() time.Duration { return h.readTO }

// Close releases pooled connections. Subsequent Sends fail with
// ClosedClientError.
func (h *HTTP) Close() {
	if h.closed.CompareAndSwap(false, true) {
		h.client.CloseIdleConnections()
	}
}

// Send performs one control-plane exchange. body is JSON-encoded when
// non-nil. Only statuses listed in okIn are treated as success; anything
// else becomes an UnexpectedStatusError carrying label and a body
// snippet. Network failures become ConnectionError.
func (h *HTTP) Send(ctx context.Context, method, path string, body any, params url.Values, okIn []int, label string) (*Response, error) {
	if h.closed.Load() {
		return nil, &errors.ClosedClientError{}
	}

	u := h.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, errors.NewInvalidInput("failed to encode request body for %s: %v", label, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, errors.NewInvalidInput("failed to build request for %s: %v", label, err)
	}
	for k, v := range h.headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.auth != nil {
		if val, ok := h.auth.AuthHeader(); ok {
			req.Header.Set("Authorization", val)
		}
	}

	h.logger.Debug().
		Str("method", method).
		Str("url", u).
		Interface("headers", log.RedactHeaders(req.Header)).
		Msg("sending request")

	start := time.Now()
	resp, err := h.client.Do(req)
	metrics.RequestDuration.WithLabelValues("http", method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RequestErrors.WithLabelValues("http", "connection").Inc()
		return nil, &errors.ConnectionError{Label: label, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RequestErrors.WithLabelValues("http", "read").Inc()
		return nil, &errors.ConnectionError{Label: label, Err: err}
	}

	for _, code := range okIn {
		if resp.StatusCode == code {
			return &Response{StatusCode: resp.StatusCode, Body: raw}, nil
		}
	}
	metrics.RequestErrors.WithLabelValues("http", "status").Inc()
	return nil, &errors.UnexpectedStatusError{Label: label, StatusCode: resp.StatusCode, Body: raw}
}

// GetJSON fetches path expecting 200 and decodes the body into out.
func (h *HTTP) GetJSON(ctx context.Context, path string, out any, label string) error {
	resp, err := h.Send(ctx, http.MethodGet, path, nil, nil, []int{http.StatusOK}, label)
	if err != nil {
		return err
	}
	return resp.Into(out)
}
