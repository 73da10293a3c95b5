// Package tracking looks up the delivery status of a consignment.
package tracking

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/matzehuels/steadfast/pkg/api"
	"github.com/matzehuels/steadfast/pkg/validate"
)

// DeliveryStatus is the courier's status for a consignment. Values outside
// the known set are kept as-is.
type DeliveryStatus string

// Known delivery statuses.
const (
	StatusPending                  DeliveryStatus = "pending"
	StatusInReview                 DeliveryStatus = "in_review"
	StatusHold                     DeliveryStatus = "hold"
	StatusDelivered                DeliveryStatus = "delivered"
	StatusPartialDelivered         DeliveryStatus = "partial_delivered"
	StatusCancelled                DeliveryStatus = "cancelled"
	StatusDeliveredApprovalPending DeliveryStatus = "delivered_approval_pending"
	StatusCancelledApprovalPending DeliveryStatus = "cancelled_approval_pending"
	StatusUnknown                  DeliveryStatus = "unknown"
)

// OrderStatus is the result of a status lookup.
type OrderStatus struct {
	Status         int            `json:"status"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`
}

// UnmarshalJSON defaults Status to 200 and DeliveryStatus to "unknown".
func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	type plain OrderStatus
	p := plain{Status: 200, DeliveryStatus: StatusUnknown}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = OrderStatus(p)
	return nil
}

// Client queries delivery status.
type Client struct {
	api *api.Client
}

// NewClient returns a tracking client on top of the shared transport.
func NewClient(c *api.Client) *Client {
	return &Client{api: c}
}

// ByConsignmentID returns the status of consignment id (> 0).
func (c *Client) ByConsignmentID(ctx context.Context, id int64) (*OrderStatus, error) {
	id, err := validate.ConsignmentID(id)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "/status_by_cid/"+strconv.FormatInt(id, 10))
}

// ByInvoice returns the status of the order with the given invoice.
func (c *Client) ByInvoice(ctx context.Context, invoice string) (*OrderStatus, error) {
	invoice, err := validate.Invoice(invoice)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "/status_by_invoice/"+url.PathEscape(invoice))
}

// ByTrackingCode returns the status for a tracking code. The code is trimmed
// and escaped into the path.
func (c *Client) ByTrackingCode(ctx context.Context, code string) (*OrderStatus, error) {
	code, err := validate.TrackingCode(code)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "/status_by_trackingcode/"+url.PathEscape(code))
}

func (c *Client) get(ctx context.Context, path string) (*OrderStatus, error) {
	var s OrderStatus
	if err := c.api.Get(ctx, path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
