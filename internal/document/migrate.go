package document

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Migrate upgrades a document to CurrentSchemaVersion.
//
// The input is not modified. Migrating an already current document returns
// an equal copy, so Migrate(Migrate(d)) equals Migrate(d). Every project,
// category, payment, allocation and expense is kept; fields the new shape
// needs but the old one lacks take documented defaults.
func Migrate(doc *Document) *Document {
	if doc == nil {
		return &Document{SchemaVersion: CurrentSchemaVersion, Projects: []Project{}}
	}
	out := clone(doc)

	version := out.SchemaVersion
	if version == 0 {
		version = 1
	}
	if version >= CurrentSchemaVersion {
		return out
	}

	for pi := range out.Projects {
		p := &out.Projects[pi]
		for ci := range p.Categories {
			migrateCategory(&p.Categories[ci])
		}
		for i := range p.Payments {
			migratePayment(&p.Payments[i])
		}
	}

	out.SchemaVersion = CurrentSchemaVersion
	return out
}

func migrateCategory(c *Category) {
	c.Mode = textPtr(modeAllInclusive)
	c.TotalBudget = c.ClientBudget.Or(c.TotalBudget).Or(Some(decimal.Zero))
	c.TotalCost = c.YourCost.Or(c.TotalCost).Or(Some(decimal.Zero))
	c.ClientBudget = Amount{}
	c.YourCost = Amount{}
	c.LaborBudget = Amount{}
	c.LaborCost = Amount{}
	c.MaterialsBudget = Amount{}

	// Absent pointers already encode as null; nothing else to default.
	for i := range c.Allocations {
		migrateAllocation(&c.Allocations[i])
	}
}

func migratePayment(p *Payment) {
	if p.PaymentMethod == nil {
		p.PaymentMethod = textPtr(methodCheck)
	}
	if p.Reference == nil {
		if p.CheckNumber != nil {
			p.Reference = textPtr(string(*p.CheckNumber))
		} else {
			p.Reference = textPtr("")
		}
	}
	p.CheckNumber = nil
	for i := range p.Allocations {
		migrateAllocation(&p.Allocations[i])
	}
}

func migrateAllocation(a *Allocation) {
	a.Amount = a.Amount.Or(Some(decimal.Zero))
	a.LaborAmount = Amount{}
	a.MaterialsAmount = Amount{}
}

// clone deep-copies the parts of a document that Migrate rewrites. Text
// pointers are shared; Migrate replaces them rather than writing through them.
func clone(doc *Document) *Document {
	out := &Document{
		SchemaVersion: doc.SchemaVersion,
		Projects:      make([]Project, len(doc.Projects)),
	}
	for pi, p := range doc.Projects {
		p.Categories = cloneCategories(p.Categories)
		p.Payments = clonePayments(p.Payments)
		out.Projects[pi] = p
	}
	return out
}

func cloneCategories(in []Category) []Category {
	if in == nil {
		return nil
	}
	out := make([]Category, len(in))
	for i, c := range in {
		c.Allocations = slices.Clone(c.Allocations)
		c.Expenses = slices.Clone(c.Expenses)
		out[i] = c
	}
	return out
}

func clonePayments(in []Payment) []Payment {
	if in == nil {
		return nil
	}
	out := make([]Payment, len(in))
	for i, p := range in {
		p.Allocations = slices.Clone(p.Allocations)
		out[i] = p
	}
	return out
}
