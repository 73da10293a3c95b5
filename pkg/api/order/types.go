package order

import (
	"encoding/json"

	"github.com/matzehuels/steadfast/pkg/api"
)

// Order statuses reported for a newly created consignment.
const (
	StatusPending = "pending"
)

// Bulk item outcomes.
const (
	BulkSuccess = "success"
	BulkError   = "error"
)

// Delivery types.
const (
	HomeDelivery  = 0
	PointDelivery = 1
)

// CreateParams describes one order to create.
//
// The tags let bulk order files (JSON or TOML) decode straight into a slice
// of CreateParams.
type CreateParams struct {
	Invoice          string  `json:"invoice" toml:"invoice"`
	RecipientName    string  `json:"recipient_name" toml:"recipient_name"`
	RecipientPhone   string  `json:"recipient_phone" toml:"recipient_phone"`
	RecipientAddress string  `json:"recipient_address" toml:"recipient_address"`
	CODAmount        float64 `json:"cod_amount" toml:"cod_amount"`
	DeliveryType     int     `json:"delivery_type" toml:"delivery_type"`

	// Optional; validated when non-empty.
	AlternativePhone string `json:"alternative_phone,omitempty" toml:"alternative_phone"`
	RecipientEmail   string `json:"recipient_email,omitempty" toml:"recipient_email"`

	// Optional; passed through unchanged.
	Note            string `json:"note,omitempty" toml:"note"`
	ItemDescription string `json:"item_description,omitempty" toml:"item_description"`
	TotalLot        int    `json:"total_lot,omitempty" toml:"total_lot"`
}

// payload is the validated request body for one order.
type payload struct {
	Invoice          string  `json:"invoice"`
	RecipientName    string  `json:"recipient_name"`
	RecipientPhone   string  `json:"recipient_phone"`
	RecipientAddress string  `json:"recipient_address"`
	CODAmount        float64 `json:"cod_amount"`
	DeliveryType     int     `json:"delivery_type"`
	AlternativePhone string  `json:"alternative_phone,omitempty"`
	RecipientEmail   string  `json:"recipient_email,omitempty"`
	Note             string  `json:"note,omitempty"`
	ItemDescription  string  `json:"item_description,omitempty"`
	TotalLot         int     `json:"total_lot,omitempty"`
}

// Order is a created consignment.
type Order struct {
	ConsignmentID    api.ID     `json:"consignment_id"`
	Invoice          string     `json:"invoice"`
	TrackingCode     string     `json:"tracking_code"`
	RecipientName    string     `json:"recipient_name"`
	RecipientPhone   string     `json:"recipient_phone"`
	RecipientAddress string     `json:"recipient_address"`
	CODAmount        api.Number `json:"cod_amount"`
	Status           string     `json:"status"`
	Note             string     `json:"note,omitempty"`
	CreatedAt        string     `json:"created_at,omitempty"`
	UpdatedAt        string     `json:"updated_at,omitempty"`
}

// UnmarshalJSON fills Status with StatusPending when the response omits it.
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	p := plain{Status: StatusPending}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*o = Order(p)
	return nil
}

// BulkResult is the outcome for one item of a bulk request.
// ConsignmentID and TrackingCode are zero when the item failed.
type BulkResult struct {
	Invoice          string     `json:"invoice"`
	RecipientName    string     `json:"recipient_name"`
	RecipientAddress string     `json:"recipient_address"`
	RecipientPhone   string     `json:"recipient_phone"`
	CODAmount        api.Number `json:"cod_amount"`
	Note             string     `json:"note,omitempty"`
	ConsignmentID    api.ID     `json:"consignment_id,omitempty"`
	TrackingCode     string     `json:"tracking_code,omitempty"`
	Status           string     `json:"status"`
	Error            string     `json:"error,omitempty"`
}

// UnmarshalJSON fills Status with BulkError when the response omits it.
func (r *BulkResult) UnmarshalJSON(data []byte) error {
	type plain BulkResult
	p := plain{Status: BulkError}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = BulkResult(p)
	return nil
}

// OK reports whether the item was created.
func (r BulkResult) OK() bool { return r.Status == BulkSuccess }

// BulkResponse holds one result per submitted order, in submission order.
type BulkResponse struct {
	Results []BulkResult `json:"results"`
}

// Counts returns the number of succeeded and failed items.
func (b *BulkResponse) Counts() (ok, failed int) {
	for _, r := range b.Results {
		if r.OK() {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}
