package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/jobledger/internal/models"
)

// Health counts categories by level.
type Health struct {
	Green  int
	Yellow int
	Red    int
}

// CategorySummary pairs a category with its totals.
type CategorySummary struct {
	CategoryID string
	Name       string
	Totals     Totals
}

// ProjectSummary rolls category totals up to the project.
type ProjectSummary struct {
	ProjectID       string
	TotalBudget     decimal.Decimal
	TotalCost       decimal.Decimal
	TotalCollected  decimal.Decimal
	TotalPaid       decimal.Decimal
	ProjectedProfit decimal.Decimal
	Health          Health
	Categories      []CategorySummary
}

// ProjectTotals sums the combined totals of every category of a project and
// counts categories by their single health level.
func ProjectTotals(p models.Project) ProjectSummary {
	summary := ProjectSummary{
		ProjectID:       p.ID,
		TotalBudget:     decimal.Zero,
		TotalCost:       decimal.Zero,
		TotalCollected:  decimal.Zero,
		TotalPaid:       decimal.Zero,
		ProjectedProfit: decimal.Zero,
		Categories:      make([]CategorySummary, 0, len(p.Categories)),
	}

	for _, c := range p.Categories {
		t := CategoryTotals(c)
		summary.TotalBudget = summary.TotalBudget.Add(t.TotalBudget)
		summary.TotalCost = summary.TotalCost.Add(t.TotalCost)
		summary.TotalCollected = summary.TotalCollected.Add(t.TotalCollected)
		summary.TotalPaid = summary.TotalPaid.Add(t.TotalPaid)
		summary.ProjectedProfit = summary.ProjectedProfit.Add(t.ProjectedProfit)

		switch t.Level {
		case Red:
			summary.Health.Red++
		case Yellow:
			summary.Health.Yellow++
		default:
			summary.Health.Green++
		}

		summary.Categories = append(summary.Categories, CategorySummary{
			CategoryID: c.ID,
			Name:       c.Name,
			Totals:     t,
		})
	}

	return summary
}
