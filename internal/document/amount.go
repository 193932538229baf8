package document

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amount is a nullable money value in a persisted document.
//
// Decoding is lenient: a JSON number or a numeric string is accepted, and
// anything else (null, garbage, objects) decodes as absent instead of failing.
// Encoding writes a bare JSON number, or null when absent.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// Some returns a present Amount.
func Some(v decimal.Decimal) Amount {
	return Amount{Value: v, Valid: true}
}

// IsZero reports whether the amount is absent. It lets `omitzero` drop
// legacy-only keys.
func (a Amount) IsZero() bool {
	return !a.Valid
}

// Or returns the amount when present, otherwise fallback.
func (a Amount) Or(fallback Amount) Amount {
	if a.Valid {
		return a
	}
	return fallback
}

// OrZero returns the value, or zero when absent.
func (a Amount) OrZero() decimal.Decimal {
	if a.Valid {
		return a.Value
	}
	return decimal.Zero
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return []byte(a.Value.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
	} else {
		s = string(b)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	*a = Some(v)
	return nil
}
