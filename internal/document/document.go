// Package document defines the persisted document shape used by the local
// file store and by imports, and migrates older versions of it.
//
// A document is a single JSON object:
//
//	{ "schemaVersion": 2, "projects": [ ... ] }
//
// Version 1 documents (no schemaVersion) stored one client budget and one cost
// per category (clientBudget/yourCost) and a checkNumber on payments. Version 2
// adds accounting modes, the separate-mode fields and the type, payment method
// and reference fields on expenses and allocations.
package document

import (
	"encoding/json"
	"fmt"
	"io"
)

// CurrentSchemaVersion is the version written by this package.
const CurrentSchemaVersion = 2

// Document is the root of a persisted ledger.
type Document struct {
	SchemaVersion int       `json:"schemaVersion,omitempty"`
	Projects      []Project `json:"projects"`
}

// Project is a persisted project with its categories and payments.
type Project struct {
	ID         Text       `json:"id"`
	Name       Text       `json:"name"`
	ClientName Text       `json:"clientName"`
	CreatedAt  Text       `json:"createdAt,omitempty"`
	Categories []Category `json:"categories"`
	Payments   []Payment  `json:"payments"`
}

// Category is a persisted category. Both field groups are always written;
// the group not used by Mode is null.
type Category struct {
	ID              Text         `json:"id"`
	Name            Text         `json:"name"`
	Mode            *Text        `json:"mode"`
	TotalBudget     Amount       `json:"totalBudget"`
	TotalCost       Amount       `json:"totalCost"`
	LaborBudget     Amount       `json:"laborBudget"`
	LaborCost       Amount       `json:"laborCost"`
	MaterialsBudget Amount       `json:"materialsBudget"`
	Allocations     []Allocation `json:"allocations"`
	Expenses        []Expense    `json:"expenses"`
	CreatedAt       Text         `json:"createdAt,omitempty"`

	// Version 1 fields, folded into TotalBudget/TotalCost by Migrate.
	ClientBudget Amount `json:"clientBudget,omitzero"`
	YourCost     Amount `json:"yourCost,omitzero"`
}

// Allocation is a persisted allocation. Unused amount fields are null.
type Allocation struct {
	ID              Text   `json:"id,omitempty"`
	PaymentID       Text   `json:"paymentId"`
	CategoryID      Text   `json:"categoryId"`
	Amount          Amount `json:"amount"`
	LaborAmount     Amount `json:"laborAmount"`
	MaterialsAmount Amount `json:"materialsAmount"`
	Date            Text   `json:"date"`
}

// Payment is a persisted client payment with its allocations embedded.
type Payment struct {
	ID            Text         `json:"id"`
	PaymentMethod *Text        `json:"paymentMethod"`
	Reference     *Text        `json:"reference"`
	Amount        Amount       `json:"amount"`
	Date          Text         `json:"date"`
	Notes         Text         `json:"notes,omitempty"`
	Allocations   []Allocation `json:"allocations"`
	CreatedAt     Text         `json:"createdAt,omitempty"`

	// Version 1 field, folded into Reference by Migrate.
	CheckNumber *Text `json:"checkNumber,omitempty"`
}

// Expense is a persisted subcontractor/supplier payment.
type Expense struct {
	ID            Text   `json:"id"`
	Amount        Amount `json:"amount"`
	Date          Text   `json:"date"`
	Description   Text   `json:"description"`
	Type          *Text  `json:"type"`
	PaymentMethod *Text  `json:"paymentMethod"`
	Reference     *Text  `json:"reference"`
	CreatedAt     Text   `json:"createdAt,omitempty"`
}

// Decode reads a document. Missing fields take their zero values; amounts
// and strings are decoded leniently (see Amount and Text). Only malformed
// JSON is an error.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

// Encode writes a document as indented JSON.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}
