package api

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/steadfast/pkg/buildinfo"
	"github.com/matzehuels/steadfast/pkg/errors"
	"github.com/matzehuels/steadfast/pkg/httputil"
	"github.com/matzehuels/steadfast/pkg/observability"
)

const (
	// DefaultBaseURL is the production Steadfast API endpoint.
	DefaultBaseURL = "https://api.steadfast.io/v1"

	// DefaultTimeout bounds each individual attempt, not the whole call.
	DefaultTimeout = 30 * time.Second

	// RequestIDHeader carries a per-call id, reused across retries.
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 8 << 20
)

// Doer executes HTTP requests. *http.Client satisfies it.
//
//go:generate mockgen -destination=mock_doer_test.go -package=api . Doer
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the read-only transport settings.
type Config struct {
	BaseURL   string            // API root; paths are joined onto it
	Timeout   time.Duration     // per-attempt timeout (0 disables)
	Retry     httputil.Policy   // connection/timeout retry policy
	Headers   map[string]string // sent with every request (credentials)
	UserAgent string            // defaults to steadfast-go/<version>
	Logger    *log.Logger       // debug request logs; defaults to log.Default()
	HTTP      Doer              // defaults to a plain *http.Client
}

// DefaultConfig returns the production endpoint, a 30s attempt timeout and
// the default retry policy.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
		Retry:   httputil.DefaultPolicy(),
	}
}

// Client is the transport shared by all resource packages. It joins paths
// onto the base URL, applies default headers, retries connection failures
// and timeouts, and maps responses to typed errors.
//
// A Client is safe for concurrent use; its configuration never changes
// after construction.
type Client struct {
	baseURL   string
	timeout   time.Duration
	retry     httputil.Policy
	headers   map[string]string
	userAgent string
	logger    *log.Logger
	http      Doer
}

// NewClient validates cfg and returns a Client.
// The base URL must be absolute; an invalid one is a configuration error.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Configuration("base URL must be absolute: %q", cfg.BaseURL)
	}

	// Clone headers to avoid caller mutation.
	hdr := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		hdr[k] = v
	}

	c := &Client{
		baseURL:   strings.TrimRight(base, "/"),
		timeout:   cfg.Timeout,
		retry:     cfg.Retry,
		headers:   hdr,
		userAgent: cfg.UserAgent,
		logger:    cfg.Logger,
		http:      cfg.HTTP,
	}
	if c.userAgent == "" {
		c.userAgent = "steadfast-go/" + buildinfo.Version
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.retry.MaxRetries < 0 {
		c.retry.MaxRetries = 0
	}
	return c, nil
}

// BaseURL returns the normalized API root (no trailing slash).
func (c *Client) BaseURL() string { return c.baseURL }

// Request describes one API call.
type Request struct {
	Method string
	Path   string
	Header map[string]string // overrides client defaults for the same key
	Query  url.Values
	Body   any // JSON-encoded when non-nil
}

// Get performs a GET and decodes the JSON response into v.
func (c *Client) Get(ctx context.Context, path string, v any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path}, v)
}

// Post sends body as JSON and decodes the JSON response into v.
func (c *Client) Post(ctx context.Context, path string, body, v any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, v)
}

// URL joins path and query onto the base URL, collapsing the slash between them.
func (c *Client) URL(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Do executes req and decodes a 2xx JSON body into v (v may be nil).
//
// Errors are always *errors.Error:
//   - NOT_FOUND for 404, AUTHENTICATION_ERROR for 401, API_ERROR for any
//     other non-2xx status or a body that is not valid JSON
//   - NETWORK_ERROR for transport failures; connection failures and timeouts
//     are retried per the policy first, HTTP errors never are
func (c *Client) Do(ctx context.Context, req Request, v any) error {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	var body []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return errors.Network(err, "Request failed: cannot encode body")
		}
		body = b
	}

	path := "/" + strings.TrimLeft(req.Path, "/")
	target := c.URL(req.Path, req.Query)
	header := c.buildHeader(req.Header, body != nil)
	reqID := header.Get(RequestIDHeader)
	hooks := observability.HTTP()

	var data []byte
	err := c.retry.Retry(ctx, func(a *httputil.Attempt) error {
		c.debug(fmt.Sprintf("Making %s request to %s (attempt %d/%d)", method, target, a.Number(), a.Total()), reqID)
		hooks.OnRequest(ctx, method, path, a.Number())

		start := time.Now()
		var (
			status int
			err    error
		)
		data, status, err = c.send(ctx, method, target, header, body)
		if status != 0 {
			hooks.OnResponse(ctx, method, path, status, time.Since(start))
		}
		if err != nil && httputil.IsRetryable(err) && a.CanRetry() {
			c.debug(fmt.Sprintf("Retrying in %.2f seconds: %v", a.NextDelay().Seconds(), err), reqID)
			hooks.OnRetry(ctx, method, path, a.Number(), a.NextDelay(), err)
		}
		return err
	})
	if err != nil {
		err = c.finish(err)
		if errors.StatusOf(err) == 0 {
			hooks.OnError(ctx, method, path, err)
		}
		return err
	}
	return Decode(data, v)
}

func (c *Client) buildHeader(extra map[string]string, hasBody bool) http.Header {
	h := make(http.Header)
	for k, v := range c.headers {
		h.Set(k, v)
	}
	for k, v := range extra {
		h.Set(k, v)
	}
	if hasBody && h.Get("Content-Type") == "" {
		h.Set("Content-Type", "application/json")
	}
	if h.Get("Accept") == "" {
		h.Set("Accept", "application/json")
	}
	if h.Get("User-Agent") == "" {
		h.Set("User-Agent", c.userAgent)
	}
	if h.Get(RequestIDHeader) == "" {
		h.Set(RequestIDHeader, uuid.NewString())
	}
	return h
}

// send performs a single attempt. Retryable failures come back wrapped in
// httputil.RetryableError around the raw transport error; everything else
// is a terminal *errors.Error.
// The returned status is 0 when no response arrived.
func (c *Client) send(ctx context.Context, method, target string, header http.Header, body []byte) ([]byte, int, error) {
	actx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		actx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	hreq, err := http.NewRequestWithContext(actx, method, target, r)
	if err != nil {
		return nil, 0, errors.Network(err, "Request failed")
	}
	hreq.Header = header.Clone()

	resp, err := c.http.Do(hreq)
	if err != nil {
		return nil, 0, transportError(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, 0, transportError(ctx, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, statusError(resp.StatusCode, data)
	}
	return data, resp.StatusCode, nil
}

// finish turns whatever the retry loop returned into a *errors.Error.
func (c *Client) finish(err error) error {
	var e *errors.Error
	var re *httputil.RetryableError
	switch {
	case stderrors.As(err, &re):
		ne := errors.Network(re.Err, "Request failed after %d attempts", c.retry.MaxRetries+1)
		ne.RetryAfter = c.retry.Delay(c.retry.MaxRetries)
		return ne
	case stderrors.As(err, &e):
		return err
	default:
		// context cancellation while waiting between attempts
		return errors.Network(err, "Request cancelled")
	}
}

// transportError classifies an error from Doer.Do or from reading the body.
// Connection failures and timeouts are retryable unless the caller's own
// context has ended.
func transportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return errors.Network(err, "Request cancelled")
	}
	if isTransient(err) {
		return httputil.Retryable(err)
	}
	return errors.Network(err, "Request failed")
}

func isTransient(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) ||
		stderrors.Is(err, io.EOF) ||
		stderrors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	// *url.Error implements net.Error itself, so look beneath it.
	var ue *url.Error
	if stderrors.As(err, &ue) {
		err = ue.Err
	}
	var ne net.Error
	return stderrors.As(err, &ne)
}

// statusError maps a non-2xx response to the error taxonomy.
func statusError(status int, body []byte) error {
	msg := errorMessage(status, body)
	switch status {
	case http.StatusNotFound:
		return errors.NotFound(msg)
	case http.StatusUnauthorized:
		return errors.Authentication(msg)
	default:
		return errors.API(status, msg)
	}
}

// errorMessage prefers a JSON "message" or "error" key, then the raw body
// text, then "HTTP <status>".
func errorMessage(status int, body []byte) string {
	fallback := fmt.Sprintf("HTTP %d", status)
	if !json.Valid(body) {
		if text := strings.TrimSpace(string(body)); text != "" {
			return text
		}
		return fallback
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}
	for _, key := range []string{"message", "error"} {
		if raw, ok := payload[key]; ok {
			return rawText(raw)
		}
	}
	return fallback
}

func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// Decode unmarshals a JSON response body into v, reporting malformed bodies
// as API_ERROR. A nil v only checks that data is valid JSON.
func Decode(data []byte, v any) error {
	if v == nil {
		if !json.Valid(data) {
			return errors.API(0, "Invalid JSON response")
		}
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(errors.ErrCodeAPI, err, "Invalid JSON response")
	}
	return nil
}

func (c *Client) debug(msg, reqID string) {
	c.logger.Debug(httputil.Sanitize(msg), "request_id", reqID)
}
