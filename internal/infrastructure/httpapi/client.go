// Package httpapi is the single outbound call surface for the flight backend.
//
// Every request gets the same treatment before it leaves: an Accept header
// asking for JSON, a JSON content type on body-carrying calls, a scrubbed
// JSON body, deterministic query encoding and a request id. Every response
// gets its body decoded, with "204 No Content" normalized to nil. Failures are
// returned as *Error and never retried.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://localhost:8080"
	// DefaultTimeout bounds every call.
	DefaultTimeout = 10 * time.Second

	// HeaderRequestID correlates a call with backend logs.
	HeaderRequestID = "X-Request-ID"

	mimeJSON = "application/json"
)

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Diagnostics logs failed calls. It is meant for interactive development
	// and stays off in production and tests.
	Diagnostics bool
}

// Client issues requests against the backend. It holds no per-call state and
// is safe for concurrent use.
type Client struct {
	baseURL     string
	http        *http.Client
	logger      *zap.Logger
	diagnostics bool
	requestID   func() string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport client. Its timeout is
// kept when set, otherwise the configured timeout applies.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h == nil {
			return
		}
		hc := *h
		if hc.Timeout == 0 {
			hc.Timeout = c.http.Timeout
		}
		c.http = &hc
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Client. An empty base URL falls back to DefaultBaseURL and a
// zero timeout to DefaultTimeout.
func New(cfg Config, opts ...Option) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:     baseURL,
		http:        &http.Client{Timeout: timeout},
		logger:      zap.NewNop(),
		diagnostics: cfg.Diagnostics,
		requestID:   uuid.NewString,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the resolved base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestOption customizes a single call.
type RequestOption func(*requestConfig)

type requestConfig struct {
	query  Query
	header http.Header
}

// WithQuery sets the call's query parameters.
func WithQuery(q Query) RequestOption {
	return func(rc *requestConfig) {
		rc.query = q
	}
}

// WithHeader sets a header on the call. It overrides the client defaults,
// including Accept and Content-Type.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		rc.header.Set(key, value)
	}
}

// Get issues a GET.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, opts...)
}

// Post issues a POST with body.
func (c *Client) Post(ctx context.Context, path string, body Body, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body, opts...)
}

// Put issues a PUT with body.
func (c *Client) Put(ctx context.Context, path string, body Body, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, body, opts...)
}

// Patch issues a PATCH with body.
func (c *Client) Patch(ctx context.Context, path string, body Body, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, path, body, opts...)
}

// Delete issues a DELETE. body may be nil.
func (c *Client) Delete(ctx context.Context, path string, body Body, opts ...RequestOption) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, body, opts...)
}

// Do sends a request and returns the decoded response. Transport failures and
// non-2xx statuses are returned as *Error.
func (c *Client) Do(ctx context.Context, method, path string, body Body, opts ...RequestOption) (*Response, error) {
	req, err := c.NewRequest(ctx, method, path, body, opts...)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(&Error{Method: method, URL: req.URL.String(), Err: err})
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(&Error{
			Method:     method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Err:        fmt.Errorf("reading response body: %w", err),
		})
	}

	out := newResponse(resp.StatusCode, resp.Header, data)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(&Error{
			Method:     method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       data,
			Data:       out.Data,
		})
	}

	return out, nil
}

// NewRequest builds the outbound request with the default headers, the
// scrubbed body and the encoded query applied.
func (c *Client) NewRequest(ctx context.Context, method, path string, body Body, opts ...RequestOption) (*http.Request, error) {
	rc := requestConfig{header: http.Header{}}
	for _, opt := range opts {
		opt(&rc)
	}

	header := http.Header{}
	header.Set("Accept", mimeJSON)
	header.Set(HeaderRequestID, c.requestID())

	reader, err := encodeBody(method, body, header)
	if err != nil {
		return nil, err
	}

	for k, vals := range rc.header {
		header[k] = vals
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path, rc.query), reader)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", method, err)
	}
	req.Header = header

	return req, nil
}

func encodeBody(method string, body Body, header http.Header) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case JSONBody:
		v := Scrub(b.Value)
		if v == nil || isOmit(v) {
			return nil, nil
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		if carriesBody(method) {
			header.Set("Content-Type", mimeJSON)
		}
		return bytes.NewReader(data), nil
	case BinaryBody:
		if b.ContentType != "" {
			header.Set("Content-Type", b.ContentType)
		}
		return b.Reader, nil
	default:
		return nil, fmt.Errorf("unsupported body type %T", body)
	}
}

func carriesBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func (c *Client) resolve(path string, q Query) string {
	target := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		target = c.baseURL + "/" + strings.TrimLeft(path, "/")
	}

	encoded := EncodeQuery(q)
	if encoded == "" {
		return target
	}
	if strings.Contains(target, "?") {
		return target + "&" + encoded
	}
	return target + "?" + encoded
}

func (c *Client) fail(apiErr *Error) error {
	if c.diagnostics {
		c.logger.Error("api request failed",
			zap.String("method", apiErr.Method),
			zap.String("url", apiErr.URL),
			zap.Int("status", apiErr.StatusCode),
			zap.Any("data", apiErr.Data),
			zap.Error(apiErr.Err),
		)
	}
	return apiErr
}
