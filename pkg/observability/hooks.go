// Package observability provides hooks for metrics and tracing of API calls.
//
// The transport reports every attempt through the registered [HTTPHooks]
// without depending on a specific backend. Register hooks once at startup:
//
//	func main() {
//	    observability.SetHTTPHooks(&myHooks{})
//	    // ... run application
//	}
//
// The transport emits:
//
//	observability.HTTP().OnRequest(ctx, "GET", "/get_balance", 1)
//	observability.HTTP().OnResponse(ctx, "GET", "/get_balance", 200, elapsed)
package observability

import (
	"context"
	"sync"
	"time"
)

// HTTPHooks receives events from the API transport. Paths are relative to
// the base URL and never contain credentials.
type HTTPHooks interface {
	// OnRequest records an attempt about to be sent (attempt is 1-based).
	OnRequest(ctx context.Context, method, path string, attempt int)

	// OnResponse records any HTTP response, including error statuses.
	OnResponse(ctx context.Context, method, path string, status int, duration time.Duration)

	// OnRetry records a transient failure that will be retried after delay.
	OnRetry(ctx context.Context, method, path string, attempt int, delay time.Duration, err error)

	// OnError records a call that failed without an HTTP response.
	OnError(ctx context.Context, method, path string, err error)
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, int)                     {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration)     {}
func (NoopHTTPHooks) OnRetry(context.Context, string, string, int, time.Duration, error) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                     {}

var (
	httpHooks HTTPHooks = NoopHTTPHooks{}
	hooksMu   sync.RWMutex
)

// SetHTTPHooks registers custom HTTP hooks. nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores the no-op default. Mainly useful in tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	httpHooks = NoopHTTPHooks{}
}
