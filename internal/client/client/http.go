package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/dataguard/internal/common"
	"github.com/dmitrijs2005/dataguard/internal/logging"
	"github.com/dmitrijs2005/dataguard/internal/netx"
	"github.com/google/uuid"
)

// HTTPClient talks JSON over HTTP to the backend, carrying the session
// cookie on every request.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
	headers http.Header
}

type Option func(*HTTPClient)

// WithHTTPClient uses a copy of hc as transport. A cookie jar is attached
// to the copy when hc has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc == nil {
			return
		}
		cp := *hc
		c.http = &cp
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHeader adds a header sent on every request. Per-call headers win.
func WithHeader(key, value string) Option {
	return func(c *HTTPClient) {
		c.headers.Set(key, value)
	}
}

// WithTimeout bounds each round trip. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.http.Timeout = d
	}
}

// NewHTTPClient builds a client for the API rooted at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{},
		logger:  logging.NewNop(),
		headers: http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		c.http.Jar = jar
	}

	return c, nil
}

// CredentialsIncluded reports whether cookies are stored and replayed.
// It is always true for clients built by NewHTTPClient.
func (c *HTTPClient) CredentialsIncluded() bool {
	return c.http.Jar != nil
}

// BaseURL returns the normalized API root.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// request describes one API call. body is JSON-encoded unless form is set.
type request struct {
	method  string
	path    string
	query   url.Values
	body    any
	form    *netx.FileForm
	headers http.Header
}

func (c *HTTPClient) buildRequest(ctx context.Context, r *request, requestID string) (*http.Request, error) {
	method := r.method
	if method == "" {
		method = http.MethodGet
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	switch {
	case r.form != nil:
		body = bytes.NewReader(r.form.Body)
	case r.body != nil:
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if r.form == nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	for k, vs := range c.headers {
		req.Header[k] = append([]string(nil), vs...)
	}
	for k, vs := range r.headers {
		req.Header[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}
	if r.form != nil {
		req.Header.Set("Content-Type", r.form.ContentType)
	}

	return req, nil
}

// do performs one round trip and decodes a 2xx body into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, r *request, out any) error {
	requestID := uuid.NewString()
	log := c.logger.With("method", r.method, "path", r.path, "request_id", requestID)

	req, err := c.buildRequest(ctx, r, requestID)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "api request failed", "error", err)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "api response read failed", "status", resp.StatusCode, "error", err)
		return &TransportError{Err: err}
	}

	log.Debug(ctx, "api request done", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: extractMessage(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("could not decode %s response: %w", r.path, err)
	}
	return nil
}

// extractMessage pulls "message" out of an error body, falling back to the
// generic network error text.
func extractMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil || body.Message == "" {
		return common.MsgNetworkError
	}
	return body.Message
}

// call runs r and returns the decoded body as a fresh T.
func call[T any](ctx context.Context, c *HTTPClient, r *request) (*T, error) {
	var out T
	if err := c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func idPath(prefix, id, suffix string) string {
	return prefix + "/" + url.PathEscape(id) + suffix
}
