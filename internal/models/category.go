package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Mode is the accounting mode of a category.
type Mode string

const (
	// ModeAllInclusive: one client price and one subcontractor cost.
	ModeAllInclusive Mode = "all-inclusive"
	// ModeSeparate: labor with margin, materials billed at cost.
	ModeSeparate Mode = "separate"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAllInclusive, ModeSeparate:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Budget is the mode-dependent budget of a category. It is implemented only
// by AllInclusive and Separate.
type Budget interface {
	Mode() Mode
	isBudget()
}

// AllInclusive is the budget of an all-inclusive category.
type AllInclusive struct {
	// TotalBudget is what the client will pay for this category.
	TotalBudget decimal.Decimal

	// TotalCost is what the contractor will pay the subcontractor.
	TotalCost decimal.Decimal
}

// Separate is the budget of a category that splits labor and materials.
type Separate struct {
	// LaborBudget is what the client will pay for labor.
	LaborBudget decimal.Decimal

	// LaborCost is what the contractor will pay for labor.
	LaborCost decimal.Decimal

	// MaterialsBudget is both the client price and the actual cost of
	// materials. Materials are pass-through and carry no markup.
	MaterialsBudget decimal.Decimal
}

func (AllInclusive) Mode() Mode { return ModeAllInclusive }
func (AllInclusive) isBudget()  {}

func (Separate) Mode() Mode { return ModeSeparate }
func (Separate) isBudget()  {}

// Category is a cost category of a project (e.g. "Framing", "Electrical").
type Category struct {
	// ID is the unique identifier for the category (UUID format).
	ID string

	// ProjectID is the owning project.
	ProjectID string

	// Name is the display name.
	Name string

	// Budget holds the mode-dependent budget fields.
	Budget Budget

	// Allocations are the client payments attributed to this category.
	// Populated when the category is read as part of a project graph.
	Allocations []Allocation

	// Expenses are the payments made to subcontractors for this category.
	Expenses []Expense

	// CreatedAt is the Unix timestamp when the category was created.
	CreatedAt int64
}

// Mode returns the category's accounting mode. A category without a budget
// is treated as all-inclusive.
func (c Category) Mode() Mode {
	if c.Budget == nil {
		return ModeAllInclusive
	}
	return c.Budget.Mode()
}
