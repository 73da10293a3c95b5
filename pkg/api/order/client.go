// Package order creates consignments, one at a time or in bulk.
package order

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/matzehuels/steadfast/pkg/api"
	"github.com/matzehuels/steadfast/pkg/errors"
	"github.com/matzehuels/steadfast/pkg/validate"
)

const (
	createPath = "/create_order"
	bulkPath   = "/create_bulk_order"

	// MaxBulkOrders is the largest batch the bulk endpoint accepts.
	MaxBulkOrders = 500
)

// Client creates orders.
type Client struct {
	api *api.Client
}

// NewClient returns an order client on top of the shared transport.
func NewClient(c *api.Client) *Client {
	return &Client{api: c}
}

// Create validates p and creates a single order.
// Validation errors are returned before any request is sent.
func (c *Client) Create(ctx context.Context, p CreateParams) (*Order, error) {
	body, err := build(p)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := c.api.Post(ctx, createPath, body, &raw); err != nil {
		return nil, err
	}

	// Some deployments wrap the order in a "consignment" object.
	var wrapped struct {
		Consignment json.RawMessage `json:"consignment"`
	}
	if err := api.Decode(raw, &wrapped); err != nil {
		return nil, err
	}
	if len(wrapped.Consignment) > 0 && !bytes.Equal(wrapped.Consignment, []byte("null")) {
		raw = wrapped.Consignment
	}

	var o Order
	if err := api.Decode(raw, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateBulk validates every order and submits them in one request.
//
// An empty batch or one larger than MaxBulkOrders is rejected with field
// "orders". The first invalid item fails the whole call; its message is
// prefixed with its 1-based position. Per-item API failures are reported
// inline in the response, never retried.
func (c *Client) CreateBulk(ctx context.Context, orders []CreateParams) (*BulkResponse, error) {
	if len(orders) == 0 {
		return nil, errors.Validation("orders", "Orders list cannot be empty")
	}
	if len(orders) > MaxBulkOrders {
		return nil, errors.Validation("orders", "Cannot create more than %d orders at once", MaxBulkOrders)
	}

	items := make([]payload, 0, len(orders))
	for i, p := range orders {
		item, err := build(p)
		if err != nil {
			return nil, annotate(i+1, err)
		}
		items = append(items, item)
	}

	var raw json.RawMessage
	if err := c.api.Post(ctx, bulkPath, map[string]any{"orders": items}, &raw); err != nil {
		return nil, err
	}

	resp := &BulkResponse{Results: []BulkResult{}}
	if t := bytes.TrimSpace(raw); len(t) > 0 && t[0] == '[' {
		if err := api.Decode(t, &resp.Results); err != nil {
			return nil, err
		}
		return resp, nil
	}
	if err := api.Decode(raw, resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []BulkResult{}
	}
	return resp, nil
}

// build validates p in field order and returns the request payload.
func build(p CreateParams) (payload, error) {
	var (
		out payload
		err error
	)
	if out.Invoice, err = validate.Invoice(p.Invoice); err != nil {
		return out, err
	}
	if out.RecipientName, err = validate.RecipientName(p.RecipientName); err != nil {
		return out, err
	}
	if out.RecipientPhone, err = validate.Phone(p.RecipientPhone); err != nil {
		return out, err
	}
	if out.RecipientAddress, err = validate.Address(p.RecipientAddress); err != nil {
		return out, err
	}
	if out.CODAmount, err = validate.CODAmount(p.CODAmount); err != nil {
		return out, err
	}
	if out.DeliveryType, err = validate.DeliveryType(p.DeliveryType); err != nil {
		return out, err
	}
	if p.AlternativePhone != "" {
		if out.AlternativePhone, err = validate.PhoneField("alternative_phone", p.AlternativePhone); err != nil {
			return out, err
		}
	}
	if p.RecipientEmail != "" {
		if out.RecipientEmail, err = validate.Email(p.RecipientEmail); err != nil {
			return out, err
		}
	}
	out.Note = p.Note
	out.ItemDescription = p.ItemDescription
	out.TotalLot = p.TotalLot
	return out, nil
}

// annotate prefixes a validation error with the item's position, keeping
// its field (or "orders" when it had none).
func annotate(n int, err error) error {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return err
	}
	field := e.Field
	if field == "" {
		field = "orders"
	}
	return errors.Validation(field, "order %d: %s", n, e.Message)
}
