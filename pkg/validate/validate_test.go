package validate

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/steadfast/pkg/errors"
)

func assertField(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error for %s, got nil", field)
	}
	if !errors.Is(err, errors.ErrCodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
	if got := errors.FieldOf(err); got != field {
		t.Errorf("field = %q, want %q", got, field)
	}
}

func TestInvoice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "ORD-2024-001", false},
		{"underscore", "inv_42", false},
		{"digits only", "123456", false},

		{"empty", "", true},
		{"at sign", "invalid@invoice", true},
		{"space inside", "INV 1", true},
		{"leading space", " INV1", true},
		{"slash", "INV/1", true},
		{"dot", "INV.1", true},
		{"unicode", "চালান", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Invoice(tt.input)
			if tt.wantErr {
				assertField(t, err, "invoice")
				return
			}
			if err != nil {
				t.Fatalf("Invoice(%q) error = %v", tt.input, err)
			}
			if got != tt.input {
				t.Errorf("Invoice(%q) = %q", tt.input, got)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"01712345678", "01712345678", false},
		{"017-1234-5678", "01712345678", false},
		{"(017) 1234 5678", "01712345678", false},
		{"+0.1.7.1.2.3.4.5.6.7.8", "01712345678", false},

		{"", "", true},
		{"0171234567", "", true},
		{"+880 1712-345678", "", true},
		{"phone", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Phone(tt.input)
			if tt.wantErr {
				assertField(t, err, "phone")
				return
			}
			if err != nil {
				t.Fatalf("Phone(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Phone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPhoneField(t *testing.T) {
	_, err := PhoneField("alternative_phone", "123")
	assertField(t, err, "alternative_phone")
}

func TestPhone_PunctuationIsStripped(t *testing.T) {
	digits := "01987654321"
	separators := []string{"-", " ", ".", "(", ")", "+", "/", "\t"}
	for _, sep := range separators {
		var b strings.Builder
		for i, r := range digits {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteRune(r)
		}
		got, err := Phone(b.String())
		if err != nil {
			t.Fatalf("Phone(%q) error = %v", b.String(), err)
		}
		if got != digits {
			t.Errorf("Phone(%q) = %q, want %q", b.String(), got, digits)
		}
	}
}

func TestRecipientName(t *testing.T) {
	got, err := RecipientName("  John Smith  ")
	if err != nil || got != "John Smith" {
		t.Fatalf("RecipientName() = %q, %v", got, err)
	}

	if _, err := RecipientName(strings.Repeat("a", MaxRecipientNameLen)); err != nil {
		t.Errorf("name at limit should pass: %v", err)
	}

	_, err = RecipientName(strings.Repeat("a", MaxRecipientNameLen+1))
	assertField(t, err, "recipient_name")

	_, err = RecipientName("   ")
	assertField(t, err, "recipient_name")
}

func TestAddress(t *testing.T) {
	got, err := Address(" House 123, Dhaka ")
	if err != nil || got != "House 123, Dhaka" {
		t.Fatalf("Address() = %q, %v", got, err)
	}

	if _, err := Address(strings.Repeat("x", MaxAddressLen)); err != nil {
		t.Errorf("address at limit should pass: %v", err)
	}

	_, err = Address(strings.Repeat("x", MaxAddressLen+1))
	assertField(t, err, "address")

	_, err = Address("")
	assertField(t, err, "address")
}

func TestEmail(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"john@example.com", false},
		{"first.last+tag@mail.example.org", false},

		{"", true},
		{"john", true},
		{"john@", true},
		{"john@example", true},
		{"john@example.c", true},
		{"jo hn@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Email(tt.input)
			if tt.wantErr {
				assertField(t, err, "email")
			} else if err != nil {
				t.Errorf("Email(%q) error = %v", tt.input, err)
			}
		})
	}
}

func TestCODAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    float64
		wantErr bool
	}{
		{"zero int", 0, 0, false},
		{"int", 1060, 1060, false},
		{"float", 99.5, 99.5, false},
		{"int64", int64(250), 250, false},
		{"uint8", uint8(7), 7, false},
		{"json number", json.Number("12.25"), 12.25, false},
		{"numeric string", " 300 ", 300, false},
		{"negative zero", math.Copysign(0, -1), 0, false},

		{"nil", nil, 0, true},
		{"negative", -0.01, 0, true},
		{"negative int", -5, 0, true},
		{"word", "abc", 0, true},
		{"bool", true, 0, true},
		{"nan", math.NaN(), 0, true},
		{"inf", math.Inf(1), 0, true},
		{"slice", []int{1}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CODAmount(tt.input)
			if tt.wantErr {
				assertField(t, err, "cod_amount")
				return
			}
			if err != nil {
				t.Fatalf("CODAmount(%v) error = %v", tt.input, err)
			}
			if got != tt.want || math.Signbit(got) {
				t.Errorf("CODAmount(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDeliveryType(t *testing.T) {
	for v := -2; v <= 3; v++ {
		got, err := DeliveryType(v)
		if v == 0 || v == 1 {
			if err != nil || got != v {
				t.Errorf("DeliveryType(%d) = %d, %v", v, got, err)
			}
			continue
		}
		assertField(t, err, "delivery_type")
	}
}

func TestConsignmentID(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    int64
		wantErr bool
	}{
		{"int", 1424107, 1424107, false},
		{"int64", int64(1), 1, false},
		{"uint32", uint32(9), 9, false},

		{"zero", 0, 0, true},
		{"negative", -1, 0, true},
		{"numeric string", "1424107", 0, true},
		{"float", 12.0, 0, true},
		{"bool", true, 0, true},
		{"nil", nil, 0, true},
		{"uint64 overflow", uint64(math.MaxUint64), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConsignmentID(tt.input)
			if tt.wantErr {
				assertField(t, err, "consignment_id")
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ConsignmentID(%v) = %d, %v; want %d", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestPositiveID(t *testing.T) {
	if got, err := PositiveID("payment_id", 5); err != nil || got != 5 {
		t.Errorf("PositiveID() = %d, %v", got, err)
	}
	_, err := PositiveID("payment_id", 0)
	assertField(t, err, "payment_id")
	if !strings.Contains(err.Error(), "Payment ID must be a positive integer") {
		t.Errorf("unexpected message: %v", err)
	}
	_, err = PositiveID("return_request_id", -3)
	assertField(t, err, "return_request_id")
}

func TestIdentifierTypeOf(t *testing.T) {
	for _, want := range IdentifierTypes {
		got, err := IdentifierTypeOf(string(want))
		if err != nil || got != want {
			t.Errorf("IdentifierTypeOf(%q) = %q, %v", want, got, err)
		}
	}
	for _, bad := range []string{"", "CONSIGNMENT_ID", "order_id"} {
		_, err := IdentifierTypeOf(bad)
		assertField(t, err, "identifier_type")
	}
}

func TestTrackingCode(t *testing.T) {
	got, err := TrackingCode("  15BAEB8A  ")
	if err != nil || got != "15BAEB8A" {
		t.Fatalf("TrackingCode() = %q, %v", got, err)
	}
	for _, bad := range []string{"", "   ", "\t\n"} {
		_, err := TrackingCode(bad)
		assertField(t, err, "tracking_code")
	}
}
