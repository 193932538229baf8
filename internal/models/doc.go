// Package models defines the core domain models for jobledger.
//
// # Models
//
//   - Project: a job for one client, owning its categories and payments
//   - Category: a cost category with a budget in one of two accounting modes
//   - Payment: money received from the client, split into allocations
//   - Allocation: the part of a payment attributed to one category
//   - Expense: money paid to a subcontractor or supplier for one category
//   - User: the single owner allowed to sign in
//
// # Accounting modes
//
// A category is either all-inclusive (one client price, one subcontractor
// cost) or separate (labor carries the contractor margin, materials are billed
// at cost). The mode-dependent fields are modelled as tagged unions: Budget for
// categories and Share for allocations. A value of the wrong shape cannot be
// built, so "only one field group is populated" needs no runtime check.
//
// # Relationships
//
// Relationships use ID strings instead of pointers. Allocation.PaymentID is a
// weak reference used for lookup only; Allocation.CategoryID may point at a
// category that no longer exists (see UnknownCategory).
//
// Money is decimal.Decimal everywhere. Never convert to float64 for arithmetic.
package models
