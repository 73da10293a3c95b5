// Package steadfast is the entry point of the Steadfast courier API client.
//
// # Usage
//
//	client, err := steadfast.New(steadfast.WithCredentials(apiKey, secretKey))
//	if err != nil {
//	    return err
//	}
//	o, err := client.Orders().Create(ctx, order.CreateParams{...})
//	st, err := client.Tracking().ByInvoice(ctx, o.Invoice)
//
// Credentials fall back to STEADFAST_API_KEY / STEADFAST_SECRET_KEY and the
// base URL to STEADFAST_BASE_URL. Resource clients are built on first use
// and shared; a Client is safe for concurrent use.
package steadfast

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/steadfast/pkg/api"
	"github.com/matzehuels/steadfast/pkg/api/balance"
	"github.com/matzehuels/steadfast/pkg/api/location"
	"github.com/matzehuels/steadfast/pkg/api/order"
	"github.com/matzehuels/steadfast/pkg/api/payment"
	"github.com/matzehuels/steadfast/pkg/api/returns"
	"github.com/matzehuels/steadfast/pkg/api/tracking"
	"github.com/matzehuels/steadfast/pkg/config"
	"github.com/matzehuels/steadfast/pkg/errors"
	"github.com/matzehuels/steadfast/pkg/httputil"
)

// Credential header names expected by the API.
const (
	HeaderAPIKey    = "Api-Key"
	HeaderSecretKey = "Secret-Key"
)

type options struct {
	apiKey    string
	secretKey string
	baseURL   string
	timeout   time.Duration
	retries   int
	backoff   time.Duration
	logger    *log.Logger
	doer      api.Doer
	userAgent string
}

// Option configures a Client.
type Option func(*options)

// WithCredentials sets the API and secret keys.
func WithCredentials(apiKey, secretKey string) Option {
	return func(o *options) {
		o.apiKey = apiKey
		o.secretKey = secretKey
	}
}

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithMaxRetries sets how often connection failures and timeouts are retried.
func WithMaxRetries(n int) Option {
	return func(o *options) { o.retries = n }
}

// WithRetryBackoff sets the base delay of the exponential backoff.
func WithRetryBackoff(d time.Duration) Option {
	return func(o *options) { o.backoff = d }
}

// WithLogger sets the logger for request debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithHTTPClient replaces the HTTP executor, e.g. with a custom *http.Client.
func WithHTTPClient(d api.Doer) Option {
	return func(o *options) { o.doer = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// Client gives access to every resource of the API through one transport.
type Client struct {
	transport *api.Client

	ordersOnce    sync.Once
	orders        *order.Client
	trackingOnce  sync.Once
	tracking      *tracking.Client
	balanceOnce   sync.Once
	balance       *balance.Client
	returnsOnce   sync.Once
	returns       *returns.Client
	paymentsOnce  sync.Once
	payments      *payment.Client
	locationsOnce sync.Once
	locations     *location.Client
}

// New returns a Client. Missing credentials are a CONFIGURATION_ERROR; no
// request is made.
func New(opts ...Option) (*Client, error) {
	o := options{
		timeout: api.DefaultTimeout,
		retries: httputil.DefaultMaxRetries,
		backoff: httputil.DefaultBackoff,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.apiKey == "" {
		o.apiKey = os.Getenv(config.EnvAPIKey)
	}
	if o.secretKey == "" {
		o.secretKey = os.Getenv(config.EnvSecretKey)
	}
	if o.baseURL == "" {
		o.baseURL = os.Getenv(config.EnvBaseURL)
	}
	if o.baseURL == "" {
		o.baseURL = api.DefaultBaseURL
	}

	if strings.TrimSpace(o.apiKey) == "" || strings.TrimSpace(o.secretKey) == "" {
		return nil, errors.Configuration(
			"API key and secret key are required. Provide them with WithCredentials or set %s and %s",
			config.EnvAPIKey, config.EnvSecretKey)
	}
	if o.retries < 0 {
		return nil, errors.Configuration("max retries cannot be negative")
	}

	tr, err := api.NewClient(api.Config{
		BaseURL: o.baseURL,
		Timeout: o.timeout,
		Retry:   httputil.Policy{MaxRetries: o.retries, Base: o.backoff},
		Headers: map[string]string{
			HeaderAPIKey:    o.apiKey,
			HeaderSecretKey: o.secretKey,
		},
		UserAgent: o.userAgent,
		Logger:    o.logger,
		HTTP:      o.doer,
	})
	if err != nil {
		return nil, err
	}
	return &Client{transport: tr}, nil
}

// NewFromConfig builds a Client from loaded configuration. opts are applied
// after the configuration values.
func NewFromConfig(cfg config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := []Option{
		WithCredentials(cfg.APIKey, cfg.SecretKey),
		WithBaseURL(cfg.BaseURL),
		WithTimeout(cfg.Timeout.Duration),
		WithMaxRetries(cfg.MaxRetries),
		WithRetryBackoff(cfg.RetryBackoff.Duration),
	}
	return New(append(base, opts...)...)
}

// BaseURL returns the API endpoint in use.
func (c *Client) BaseURL() string { return c.transport.BaseURL() }

// Orders returns the order client.
func (c *Client) Orders() *order.Client {
	c.ordersOnce.Do(func() { c.orders = order.NewClient(c.transport) })
	return c.orders
}

// Tracking returns the tracking client.
func (c *Client) Tracking() *tracking.Client {
	c.trackingOnce.Do(func() { c.tracking = tracking.NewClient(c.transport) })
	return c.tracking
}

// Balance returns the balance client.
func (c *Client) Balance() *balance.Client {
	c.balanceOnce.Do(func() { c.balance = balance.NewClient(c.transport) })
	return c.balance
}

// Returns returns the return request client.
func (c *Client) Returns() *returns.Client {
	c.returnsOnce.Do(func() { c.returns = returns.NewClient(c.transport) })
	return c.returns
}

// Payments returns the payment client.
func (c *Client) Payments() *payment.Client {
	c.paymentsOnce.Do(func() { c.payments = payment.NewClient(c.transport) })
	return c.payments
}

// Locations returns the location client.
func (c *Client) Locations() *location.Client {
	c.locationsOnce.Do(func() { c.locations = location.NewClient(c.transport) })
	return c.locations
}
