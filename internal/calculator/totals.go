package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/jobledger/internal/models"
)

// LaborTotals are the labor figures of a separate category.
type LaborTotals struct {
	Collected          decimal.Decimal
	Paid               decimal.Decimal
	RemainingToCollect decimal.Decimal
	RemainingToPay     decimal.Decimal
	Buffer             decimal.Decimal
	Level              Level
	Profit             decimal.Decimal
}

// MaterialsTotals are the materials figures of a separate category.
// Materials are pass-through, so the budget stands in for the cost.
type MaterialsTotals struct {
	Collected          decimal.Decimal
	Paid               decimal.Decimal
	RemainingToCollect decimal.Decimal
	RemainingToPay     decimal.Decimal
	Buffer             decimal.Decimal
}

// Totals are the derived money figures of one category.
//
// The combined fields are always set. Labor and Materials are set only for
// separate categories.
type Totals struct {
	Mode models.Mode

	TotalBudget        decimal.Decimal
	TotalCost          decimal.Decimal
	TotalCollected     decimal.Decimal
	TotalPaid          decimal.Decimal
	RemainingToCollect decimal.Decimal
	RemainingToPay     decimal.Decimal
	Buffer             decimal.Decimal
	ProjectedProfit    decimal.Decimal
	CurrentMargin      decimal.Decimal

	// Level is the category's health: the overall level for all-inclusive
	// categories, the labor level for separate ones.
	Level Level

	Labor     *LaborTotals
	Materials *MaterialsTotals
}

// CategoryTotals computes every derived figure of a category from its budget,
// allocations and expenses. It has no side effects; callers recompute on
// every read.
func CategoryTotals(c models.Category) Totals {
	switch b := c.Budget.(type) {
	case models.Separate:
		return separateTotals(b, c.Allocations, c.Expenses)
	case models.AllInclusive:
		return allInclusiveTotals(b, c.Allocations, c.Expenses)
	default:
		return allInclusiveTotals(models.AllInclusive{}, c.Allocations, c.Expenses)
	}
}

func allInclusiveTotals(b models.AllInclusive, allocations []models.Allocation, expenses []models.Expense) Totals {
	collected := decimal.Zero
	for _, a := range allocations {
		if s, ok := a.Share.(models.LumpSum); ok {
			collected = collected.Add(s.Amount)
		}
	}
	paid := decimal.Zero
	for _, e := range expenses {
		paid = paid.Add(e.Amount)
	}

	remainingToCollect := b.TotalBudget.Sub(collected)
	remainingToPay := b.TotalCost.Sub(paid)
	buffer := remainingToCollect.Sub(remainingToPay)

	return Totals{
		Mode:               models.ModeAllInclusive,
		TotalBudget:        b.TotalBudget,
		TotalCost:          b.TotalCost,
		TotalCollected:     collected,
		TotalPaid:          paid,
		RemainingToCollect: remainingToCollect,
		RemainingToPay:     remainingToPay,
		Buffer:             buffer,
		ProjectedProfit:    b.TotalBudget.Sub(b.TotalCost),
		CurrentMargin:      collected.Sub(paid),
		Level:              WarningLevel(buffer, remainingToPay),
	}
}

func separateTotals(b models.Separate, allocations []models.Allocation, expenses []models.Expense) Totals {
	labor := &LaborTotals{Collected: decimal.Zero, Paid: decimal.Zero}
	materials := &MaterialsTotals{Collected: decimal.Zero, Paid: decimal.Zero}

	for _, a := range allocations {
		if s, ok := a.Share.(models.LaborMaterials); ok {
			labor.Collected = labor.Collected.Add(s.Labor)
			materials.Collected = materials.Collected.Add(s.Materials)
		}
	}
	for _, e := range expenses {
		switch e.Type {
		case models.ExpenseLabor:
			labor.Paid = labor.Paid.Add(e.Amount)
		case models.ExpenseMaterials:
			materials.Paid = materials.Paid.Add(e.Amount)
		}
	}

	labor.RemainingToCollect = b.LaborBudget.Sub(labor.Collected)
	labor.RemainingToPay = b.LaborCost.Sub(labor.Paid)
	labor.Buffer = labor.RemainingToCollect.Sub(labor.RemainingToPay)
	labor.Level = WarningLevel(labor.Buffer, labor.RemainingToPay)
	labor.Profit = b.LaborBudget.Sub(b.LaborCost)

	materials.RemainingToCollect = b.MaterialsBudget.Sub(materials.Collected)
	materials.RemainingToPay = b.MaterialsBudget.Sub(materials.Paid)
	materials.Buffer = materials.RemainingToCollect.Sub(materials.RemainingToPay)

	collected := labor.Collected.Add(materials.Collected)
	paid := labor.Paid.Add(materials.Paid)
	remainingToCollect := labor.RemainingToCollect.Add(materials.RemainingToCollect)
	remainingToPay := labor.RemainingToPay.Add(materials.RemainingToPay)

	return Totals{
		Mode:               models.ModeSeparate,
		TotalBudget:        b.LaborBudget.Add(b.MaterialsBudget),
		TotalCost:          b.LaborCost.Add(b.MaterialsBudget),
		TotalCollected:     collected,
		TotalPaid:          paid,
		RemainingToCollect: remainingToCollect,
		RemainingToPay:     remainingToPay,
		Buffer:             remainingToCollect.Sub(remainingToPay),
		ProjectedProfit:    labor.Profit,
		CurrentMargin:      collected.Sub(paid),
		Level:              labor.Level,
		Labor:              labor,
		Materials:          materials,
	}
}
