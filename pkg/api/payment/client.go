// Package payment lists merchant payments and their consignments.
package payment

import (
	"context"
	"strconv"

	"github.com/matzehuels/steadfast/pkg/api"
	"github.com/matzehuels/steadfast/pkg/validate"
)

// Payment is one payout to the merchant.
type Payment struct {
	ID        api.ID     `json:"id"`
	Amount    api.Number `json:"amount"`
	CreatedAt string     `json:"created_at,omitempty"`
	UpdatedAt string     `json:"updated_at,omitempty"`
}

// Details is a payment with the consignments it settles. Each consignment
// entry is passed through as returned by the API.
type Details struct {
	Payment
	Consignments []map[string]any `json:"consignments"`
}

// List is the response of the list endpoint.
type List struct {
	Data []Payment `json:"data"`
}

// Client reads payments.
type Client struct {
	api *api.Client
}

// NewClient returns a payment client on top of the shared transport.
func NewClient(c *api.Client) *Client {
	return &Client{api: c}
}

// List returns the account's payments.
func (c *Client) List(ctx context.Context) (*List, error) {
	var l List
	if err := c.api.Get(ctx, "/payment/list", &l); err != nil {
		return nil, err
	}
	if l.Data == nil {
		l.Data = []Payment{}
	}
	return &l, nil
}

// Get returns a payment with its consignments.
func (c *Client) Get(ctx context.Context, id int64) (*Details, error) {
	id, err := validate.PositiveID("payment_id", id)
	if err != nil {
		return nil, err
	}
	var d Details
	if err := c.api.Get(ctx, "/payment/"+strconv.FormatInt(id, 10), &d); err != nil {
		return nil, err
	}
	if d.Consignments == nil {
		d.Consignments = []map[string]any{}
	}
	return &d, nil
}
