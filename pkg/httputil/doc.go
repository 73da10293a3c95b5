// Package httputil provides HTTP plumbing shared by the Steadfast transport.
//
// # Overview
//
//   - [Policy]: retry with exponential backoff for transient failures
//   - [Sanitize]: credential masking for log lines
//
// # Retry
//
// [Policy.Retry] re-runs an operation only when it fails with a
// [RetryableError]. The transport wraps connection failures and timeouts
// this way; HTTP error responses are never wrapped, so a 404 or 500 is
// returned after a single attempt.
//
//	p := httputil.DefaultPolicy() // 3 retries, 300ms, 600ms, 1.2s
//	err := p.Retry(ctx, func(a *httputil.Attempt) error {
//	    log.Debugf("attempt %d/%d", a.Number(), a.Total())
//	    return send()
//	})
//
// The per-request state lives in an [Attempt], which exposes the attempt
// counter and the next delay so the retry budget can be tested without
// real sleeps (set [Policy.Sleep]).
//
// # Sanitizing
//
//	httputil.Sanitize("GET /x?api_key=abc123") // "GET /x?api_key=***"
package httputil
