// Package cli implements the steadfast command-line interface.
//
// The commands wrap the [steadfast] client: creating orders (single and
// bulk), tracking consignments, managing return requests, and inspecting
// the balance, payments and police stations. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - balance: show the current account balance
//   - order: create orders (create, bulk)
//   - status: delivery status by consignment id, invoice or tracking code
//   - return: create, get and list return requests
//   - payment: list, get and interactively browse payments
//   - locations: list police stations
//   - config: show configuration paths
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// prints every API attempt and retry. Loggers are passed through
// context.Context.
//
// [steadfast]: github.com/matzehuels/steadfast/pkg/steadfast
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration at debug level.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Fetched 12 payments (412ms)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
