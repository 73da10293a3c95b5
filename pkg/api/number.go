package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a float that decodes from a JSON number, a numeric JSON string
// ("150.50") or null. The Steadfast API returns amounts in both forms.
type Number float64

// Float64 returns n as a float64.
func (n Number) Float64() float64 { return float64(n) }

// UnmarshalJSON implements json.Unmarshaler. null and "" leave n unchanged.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		data = []byte(s)
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("api: invalid number %s", data)
	}
	*n = Number(f)
	return nil
}

// MarshalJSON encodes n as a plain JSON number.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(n), 'f', -1, 64)), nil
}

// ID is an integer identifier that also accepts a numeric string or null.
type ID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	n := Number(*id)
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}
	*id = ID(int64(n))
	return nil
}
