// Package returns manages return requests for delivered consignments.
package returns

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/matzehuels/steadfast/pkg/api"
	"github.com/matzehuels/steadfast/pkg/errors"
	"github.com/matzehuels/steadfast/pkg/validate"
)

const (
	storePath = "/return-request/store"
	listPath  = "/return-request/list"
	getPrefix = "/return-request/"
)

// Return request statuses.
const (
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// ReturnRequest is a return request as stored by the API.
type ReturnRequest struct {
	ID            api.ID `json:"id"`
	UserID        api.ID `json:"user_id"`
	ConsignmentID api.ID `json:"consignment_id"`
	Reason        string `json:"reason,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

// UnmarshalJSON defaults Status to "pending".
func (r *ReturnRequest) UnmarshalJSON(data []byte) error {
	type plain ReturnRequest
	p := plain{Status: StatusPending}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = ReturnRequest(p)
	return nil
}

// List is the response of the list endpoint.
type List struct {
	Data []ReturnRequest `json:"data"`
}

// CreateParams identifies the consignment to return.
type CreateParams struct {
	// Identifier is a consignment id, invoice or tracking code depending on
	// IdentifierType.
	Identifier string

	// IdentifierType defaults to validate.ByConsignmentID.
	IdentifierType validate.IdentifierType

	// Reason is optional; blank reasons are omitted.
	Reason string
}

type createPayload struct {
	Identifier     any                     `json:"identifier"`
	IdentifierType validate.IdentifierType `json:"identifier_type"`
	Reason         string                  `json:"reason,omitempty"`
}

// Client manages return requests.
type Client struct {
	api *api.Client
}

// NewClient returns a return request client on top of the shared transport.
func NewClient(c *api.Client) *Client {
	return &Client{api: c}
}

// Create files a return request.
//
// Consignment ids must parse as positive integers and are sent as JSON
// numbers; invoices must match the invoice pattern; tracking codes are only
// trimmed and checked for emptiness.
func (c *Client) Create(ctx context.Context, p CreateParams) (*ReturnRequest, error) {
	body, err := build(p)
	if err != nil {
		return nil, err
	}
	var r ReturnRequest
	if err := c.api.Post(ctx, storePath, body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Get returns a single return request.
func (c *Client) Get(ctx context.Context, id int64) (*ReturnRequest, error) {
	id, err := validate.PositiveID("return_request_id", id)
	if err != nil {
		return nil, err
	}
	var r ReturnRequest
	if err := c.api.Get(ctx, getPrefix+strconv.FormatInt(id, 10), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// List returns all return requests of the account.
func (c *Client) List(ctx context.Context) (*List, error) {
	l := List{Data: []ReturnRequest{}}
	if err := c.api.Get(ctx, listPath, &l); err != nil {
		return nil, err
	}
	if l.Data == nil {
		l.Data = []ReturnRequest{}
	}
	return &l, nil
}

func build(p CreateParams) (createPayload, error) {
	kind := p.IdentifierType
	if kind == "" {
		kind = validate.ByConsignmentID
	}
	kind, err := validate.IdentifierTypeOf(string(kind))
	if err != nil {
		return createPayload{}, err
	}

	out := createPayload{IdentifierType: kind, Reason: strings.TrimSpace(p.Reason)}
	switch kind {
	case validate.ByConsignmentID:
		n, perr := strconv.ParseInt(strings.TrimSpace(p.Identifier), 10, 64)
		if perr != nil {
			return createPayload{}, errors.Validation("consignment_id", "Consignment ID must be a positive integer")
		}
		id, err := validate.ConsignmentID(n)
		if err != nil {
			return createPayload{}, err
		}
		out.Identifier = id
	case validate.ByInvoice:
		inv, err := validate.Invoice(p.Identifier)
		if err != nil {
			return createPayload{}, err
		}
		out.Identifier = inv
	case validate.ByTrackingCode:
		code, err := validate.TrackingCode(p.Identifier)
		if err != nil {
			return createPayload{}, err
		}
		out.Identifier = code
	}
	return out, nil
}
