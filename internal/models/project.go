package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UnknownCategory is displayed for an allocation whose category was deleted.
const UnknownCategory = "Unknown"

// Project is a job for one client.
type Project struct {
	// ID is the unique identifier for the project (UUID format).
	ID string

	// Name is the display name of the project (e.g., "Miller kitchen remodel").
	Name string

	// ClientName is who the contractor is working for.
	ClientName string

	// Categories are the cost categories, in creation order.
	Categories []Category

	// Payments are the client payments, in recording order.
	Payments []Payment

	// CreatedAt is the Unix timestamp when the project was created.
	CreatedAt int64
}

// CategoryName returns the name of the category with the given ID, or
// UnknownCategory when the project has no such category.
func (p Project) CategoryName(categoryID string) string {
	for _, c := range p.Categories {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return UnknownCategory
}

// ExpenseType says whether an expense in a separate category was labor or
// materials. It is empty for all-inclusive categories.
type ExpenseType string

const (
	ExpenseLabor     ExpenseType = "labor"
	ExpenseMaterials ExpenseType = "materials"
)

// ParseExpenseType validates an expense type. Empty input is allowed.
func ParseExpenseType(s string) (ExpenseType, error) {
	switch ExpenseType(s) {
	case "", ExpenseLabor, ExpenseMaterials:
		return ExpenseType(s), nil
	}
	return "", fmt.Errorf("unknown expense type %q", s)
}

// Expense is money paid to a subcontractor or supplier.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// CategoryID is the owning category.
	CategoryID string

	// Amount is what was paid.
	Amount decimal.Decimal

	// Date is the day of the payment.
	Date Date

	// Description says what was paid for.
	Description string

	// Type is set only when the owning category is in separate mode.
	Type ExpenseType

	// Method is optional; empty when not recorded.
	Method PaymentMethod

	// Reference is optional free text such as a check number.
	Reference string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
