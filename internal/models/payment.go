package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how money changed hands.
type PaymentMethod string

const (
	MethodCheck PaymentMethod = "check"
	MethodZelle PaymentMethod = "zelle"
	MethodCash  PaymentMethod = "cash"
	MethodOther PaymentMethod = "other"
)

// ParsePaymentMethod validates a payment method string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCheck, MethodZelle, MethodCash, MethodOther:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// Payment is money received from the client.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// ProjectID is the owning project.
	ProjectID string

	// Method is how the client paid.
	Method PaymentMethod

	// Reference is free text such as a check number.
	Reference string

	// Amount is the total amount received.
	Amount decimal.Decimal

	// Date is the day the payment was received.
	Date Date

	// Notes is an optional comment.
	Notes string

	// Allocations are the per-category parts of this payment.
	Allocations []Allocation

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64
}

// Share is the money an allocation attributes to its category. It is
// implemented only by LumpSum and LaborMaterials.
type Share interface {
	Mode() Mode
	// Positive reports whether any amount of the share is above zero.
	Positive() bool
	isShare()
}

// LumpSum is an allocation to an all-inclusive category.
type LumpSum struct {
	Amount decimal.Decimal
}

// LaborMaterials is an allocation to a separate category.
type LaborMaterials struct {
	Labor     decimal.Decimal
	Materials decimal.Decimal
}

func (LumpSum) Mode() Mode       { return ModeAllInclusive }
func (s LumpSum) Positive() bool { return s.Amount.IsPositive() }
func (LumpSum) isShare()         {}

func (LaborMaterials) Mode() Mode { return ModeSeparate }
func (s LaborMaterials) Positive() bool {
	return s.Labor.IsPositive() || s.Materials.IsPositive()
}
func (LaborMaterials) isShare() {}

// Allocation is the part of a payment attributed to one category.
type Allocation struct {
	// ID is the unique identifier for the allocation (UUID format).
	ID string

	// PaymentID references the payment this money came from.
	PaymentID string

	// CategoryID references the category the money is attributed to. The
	// category may have been deleted since.
	CategoryID string

	// Share holds the mode-dependent amounts.
	Share Share

	// Date is copied from the payment.
	Date Date
}
