// Package validate checks and normalizes individual request fields before
// they are sent to the Steadfast API.
//
// Each validator is a pure function that returns the normalized value or an
// [errors.Error] with code VALIDATION_ERROR whose Field names the offending
// input. Resource packages call several validators in sequence and stop at
// the first failure, so no request is issued for bad input.
package validate

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/steadfast/pkg/errors"
)

// Length limits enforced by the API.
const (
	MaxRecipientNameLen = 100
	MaxAddressLen       = 250
	PhoneDigits         = 11
)

// IdentifierType selects how a return request identifies its consignment.
type IdentifierType string

// Known identifier types.
const (
	ByConsignmentID IdentifierType = "consignment_id"
	ByInvoice       IdentifierType = "invoice"
	ByTrackingCode  IdentifierType = "tracking_code"
)

// IdentifierTypes lists the accepted identifier types in display order.
var IdentifierTypes = []IdentifierType{ByConsignmentID, ByInvoice, ByTrackingCode}

var (
	invoiceRE = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailRE   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Invoice validates a caller-assigned order reference.
// The raw value must be non-empty and consist only of letters, digits,
// hyphens and underscores; surrounding whitespace is therefore rejected.
func Invoice(value string) (string, error) {
	if value == "" {
		return "", errors.Validation("invoice", "Invoice cannot be empty")
	}
	if !invoiceRE.MatchString(value) {
		return "", errors.Validation("invoice",
			"Invoice must contain only alphanumeric characters, hyphens, and underscores")
	}
	return strings.TrimSpace(value), nil
}

// Phone normalizes a phone number to its digits and requires exactly 11 of them.
// Punctuation and spaces are dropped, not rejected: "+880 1712-345678" has 13
// digits and fails, "017-1234-5678" passes as "01712345678".
func Phone(value string) (string, error) {
	return PhoneField("phone", value)
}

// PhoneField is [Phone] reporting failures against the given field name.
func PhoneField(field, value string) (string, error) {
	if value == "" {
		return "", errors.Validation(field, "Phone number cannot be empty")
	}
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		if c := value[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	if b.Len() != PhoneDigits {
		return "", errors.Validation(field, "Phone number must be exactly %d digits", PhoneDigits)
	}
	return b.String(), nil
}

// RecipientName trims the name and enforces the 100 character limit.
func RecipientName(value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", errors.Validation("recipient_name", "Recipient name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxRecipientNameLen {
		return "", errors.Validation("recipient_name",
			"Recipient name cannot exceed %d characters", MaxRecipientNameLen)
	}
	return name, nil
}

// Address trims the address and enforces the 250 character limit.
func Address(value string) (string, error) {
	addr := strings.TrimSpace(value)
	if addr == "" {
		return "", errors.Validation("address", "Address cannot be empty")
	}
	if utf8.RuneCountInString(addr) > MaxAddressLen {
		return "", errors.Validation("address", "Address cannot exceed %d characters", MaxAddressLen)
	}
	return addr, nil
}

// Email checks the address format.
func Email(value string) (string, error) {
	if value == "" {
		return "", errors.Validation("email", "Email cannot be empty")
	}
	if !emailRE.MatchString(value) {
		return "", errors.Validation("email", "Invalid email format")
	}
	return strings.TrimSpace(value), nil
}

// CODAmount coerces a cash-on-delivery amount to float64.
//
// Accepted inputs are Go integer and float kinds, json.Number and numeric
// strings. nil, booleans, NaN, infinities, other types and negative amounts
// are rejected.
func CODAmount(value any) (float64, error) {
	if value == nil {
		return 0, errors.Validation("cod_amount", "COD amount is required")
	}
	amount, ok := toFloat(value)
	if !ok || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errors.Validation("cod_amount", "COD amount must be numeric")
	}
	if amount < 0 {
		return 0, errors.Validation("cod_amount", "COD amount cannot be negative")
	}
	return amount + 0, nil // +0 folds -0 to 0
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// DeliveryType accepts 0 (home delivery) or 1 (point delivery).
func DeliveryType(value int) (int, error) {
	if value != 0 && value != 1 {
		return 0, errors.Validation("delivery_type", "Delivery type must be 0 (home) or 1 (point)")
	}
	return value, nil
}

// ConsignmentID requires a positive integer. The check is type-strict:
// numeric strings, floats and booleans are rejected even if they look valid.
func ConsignmentID(value any) (int64, error) {
	id, ok := toInt(value)
	if !ok || id <= 0 {
		return 0, errors.Validation("consignment_id", "Consignment ID must be a positive integer")
	}
	return id, nil
}

func toInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), uint64(v) <= math.MaxInt64
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), v <= math.MaxInt64
	default:
		return 0, false
	}
}

// PositiveID requires id > 0, reporting failures against field.
func PositiveID(field string, id int64) (int64, error) {
	if id <= 0 {
		return 0, errors.Validation(field, "%s must be a positive integer", humanize(field))
	}
	return id, nil
}

// humanize turns "payment_id" into "Payment ID".
func humanize(field string) string {
	parts := strings.Split(field, "_")
	for i, p := range parts {
		switch {
		case p == "id":
			parts[i] = "ID"
		case p != "":
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// IdentifierTypeOf validates an identifier type name.
func IdentifierTypeOf(value string) (IdentifierType, error) {
	for _, t := range IdentifierTypes {
		if string(t) == value {
			return t, nil
		}
	}
	return "", errors.Validation("identifier_type",
		"Identifier type must be one of: consignment_id, invoice, tracking_code")
}

// TrackingCode trims a tracking code and rejects empty input.
func TrackingCode(value string) (string, error) {
	code := strings.TrimSpace(value)
	if code == "" {
		return "", errors.Validation("tracking_code", "Tracking code cannot be empty")
	}
	return code, nil
}
