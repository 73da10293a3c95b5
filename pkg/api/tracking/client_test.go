package tracking

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/steadfast/pkg/api"
	"github.com/matzehuels/steadfast/pkg/errors"
	"github.com/matzehuels/steadfast/pkg/httputil"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	tr, err := api.NewClient(api.Config{
		BaseURL: baseURL,
		Timeout: time.Second,
		Retry:   httputil.Policy{Base: time.Millisecond},
		Logger:  log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("api.NewClient() error = %v", err)
	}
	return NewClient(tr)
}

func TestClient_Lookups(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.EscapedPath() {
		case "/status_by_cid/1001":
			w.Write([]byte(`{"status": 200, "delivery_status": "delivered"}`))
		case "/status_by_invoice/INV-001":
			w.Write([]byte(`{"delivery_status": "in_review"}`))
		case "/status_by_trackingcode/TRK%2F42":
			w.Write([]byte(`{"status": 200, "delivery_status": "returned_to_hub"}`))
		case "/status_by_trackingcode/EMPTY":
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "Consignment not found"}`))
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func() (*OrderStatus, error)
		wantStatus int
		want       DeliveryStatus
	}{
		{"by id", func() (*OrderStatus, error) { return c.ByConsignmentID(ctx, 1001) }, 200, StatusDelivered},
		{"by invoice", func() (*OrderStatus, error) { return c.ByInvoice(ctx, "INV-001") }, 200, StatusInReview},
		{"tracking code escaped and trimmed", func() (*OrderStatus, error) { return c.ByTrackingCode(ctx, "  TRK/42 ") }, 200, "returned_to_hub"},
		{"defaults", func() (*OrderStatus, error) { return c.ByTrackingCode(ctx, "EMPTY") }, 200, StatusUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.call()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if s.Status != tt.wantStatus || s.DeliveryStatus != tt.want {
				t.Errorf("got %+v, want %d/%s", s, tt.wantStatus, tt.want)
			}
		})
	}

	if _, err := c.ByConsignmentID(ctx, 999); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing consignment err = %v, want NOT_FOUND", err)
	}
}

func TestClient_Validation(t *testing.T) {
	c := testClient(t, "http://127.0.0.1:1")
	ctx := context.Background()

	tests := []struct {
		name  string
		call  func() error
		field string
	}{
		{"zero id", func() error { _, err := c.ByConsignmentID(ctx, 0); return err }, "consignment_id"},
		{"negative id", func() error { _, err := c.ByConsignmentID(ctx, -5); return err }, "consignment_id"},
		{"bad invoice", func() error { _, err := c.ByInvoice(ctx, "INV/1"); return err }, "invoice"},
		{"blank code", func() error { _, err := c.ByTrackingCode(ctx, "   "); return err }, "tracking_code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, errors.ErrCodeValidation) || errors.FieldOf(err) != tt.field {
				t.Errorf("err = %v, want validation error on %q", err, tt.field)
			}
		})
	}
}
