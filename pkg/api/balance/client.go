// Package balance reads the merchant account balance.
package balance

import (
	"context"
	"encoding/json"

	"github.com/matzehuels/steadfast/pkg/api"
)

const path = "/get_balance"

// Balance is the current account balance.
type Balance struct {
	Status         int        `json:"status"`
	CurrentBalance api.Number `json:"current_balance"`
}

// UnmarshalJSON defaults Status to 200.
func (b *Balance) UnmarshalJSON(data []byte) error {
	type plain Balance
	p := plain{Status: 200}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*b = Balance(p)
	return nil
}

// Client reads the balance.
type Client struct {
	api *api.Client
}

// NewClient returns a balance client on top of the shared transport.
func NewClient(c *api.Client) *Client {
	return &Client{api: c}
}

// Current returns the account's current balance.
func (c *Client) Current(ctx context.Context) (*Balance, error) {
	var b Balance
	if err := c.api.Get(ctx, path, &b); err != nil {
		return nil, err
	}
	return &b, nil
}
