package returns

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/steadfast/pkg/api"
	"github.com/matzehuels/steadfast/pkg/errors"
	"github.com/matzehuels/steadfast/pkg/httputil"
	"github.com/matzehuels/steadfast/pkg/validate"
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

func TestClient_Create(t *testing.T) {
	tests := []struct {
		name       string
		params     CreateParams
		wantID     any
		wantType   string
		wantReason bool
	}{
		{"consignment id default type", CreateParams{Identifier: " 1001 ", Reason: "Damaged"}, float64(1001), "consignment_id", true},
		{"invoice", CreateParams{Identifier: "INV-9", IdentifierType: validate.ByInvoice}, "INV-9", "invoice", false},
		{"tracking code trimmed", CreateParams{Identifier: " TRK#9 ", IdentifierType: validate.ByTrackingCode, Reason: "   "}, "TRK#9", "tracking_code", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/return-request/store" {
					t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
				}
				var got map[string]any
				json.NewDecoder(r.Body).Decode(&got)
				if got["identifier"] != tt.wantID {
					t.Errorf("identifier = %#v, want %#v", got["identifier"], tt.wantID)
				}
				if got["identifier_type"] != tt.wantType {
					t.Errorf("identifier_type = %v", got["identifier_type"])
				}
				if _, ok := got["reason"]; ok != tt.wantReason {
					t.Errorf("reason present = %v, want %v", ok, tt.wantReason)
				}
				w.Write([]byte(`{"id": 1, "user_id": 2, "consignment_id": 1001}`))
			}))
			defer server.Close()

			r, err := testClient(t, server.URL).Create(context.Background(), tt.params)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if r.ID != 1 || r.Status != StatusPending {
				t.Errorf("got %+v", r)
			}
		})
	}
}

func TestClient_CreateValidation(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()
	c := testClient(t, server.URL)

	tests := []struct {
		name   string
		params CreateParams
		field  string
	}{
		{"non-numeric id", CreateParams{Identifier: "abc"}, "consignment_id"},
		{"zero id", CreateParams{Identifier: "0"}, "consignment_id"},
		{"bad type", CreateParams{Identifier: "1", IdentifierType: "phone"}, "identifier_type"},
		{"bad invoice", CreateParams{Identifier: "INV 1", IdentifierType: validate.ByInvoice}, "invoice"},
		{"empty tracking code", CreateParams{Identifier: " ", IdentifierType: validate.ByTrackingCode}, "tracking_code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Create(context.Background(), tt.params)
			if !errors.Is(err, errors.ErrCodeValidation) || errors.FieldOf(err) != tt.field {
				t.Errorf("err = %v, want validation error on %q", err, tt.field)
			}
		})
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("server called %d times", n)
	}
}

func TestClient_GetAndList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/return-request/5":
			w.Write([]byte(`{"id": 5, "user_id": "3", "consignment_id": 77, "status": "approved", "reason": "Wrong item"}`))
		case "/return-request/list":
			w.Write([]byte(`{"data": [{"id": 5}, {"id": 6, "status": "completed"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	ctx := context.Background()

	r, err := c.Get(ctx, 5)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if r.UserID != 3 || r.ConsignmentID != 77 || r.Status != StatusApproved || r.Reason != "Wrong item" {
		t.Errorf("Get() = %+v", r)
	}

	l, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(l.Data) != 2 || l.Data[0].Status != StatusPending || l.Data[1].Status != StatusCompleted {
		t.Errorf("List() = %+v", l.Data)
	}

	if _, err := c.Get(ctx, 0); errors.FieldOf(err) != "return_request_id" {
		t.Errorf("Get(0) err = %v", err)
	}
	if _, err := c.Get(ctx, 99); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Get(99) err = %v, want NOT_FOUND", err)
	}
}

func TestClient_ListEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	l, err := testClient(t, server.URL).List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if l.Data == nil || len(l.Data) != 0 {
		t.Errorf("Data = %#v, want empty slice", l.Data)
	}
}
