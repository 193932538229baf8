package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/jobledger/internal/calculator"
	"github.com/mmynk/jobledger/internal/models"
	pb "github.com/mmynk/jobledger/pkg/proto"
)

func money(d decimal.Decimal) string {
	return d.String()
}

func toProtoProject(p models.Project) *pb.Project {
	out := &pb.Project{
		Id:         p.ID,
		Name:       p.Name,
		ClientName: p.ClientName,
		CreatedAt:  p.CreatedAt,
		Categories: make([]*pb.Category, 0, len(p.Categories)),
		Payments:   make([]*pb.Payment, 0, len(p.Payments)),
	}
	for _, c := range p.Categories {
		out.Categories = append(out.Categories, toProtoCategory(c))
	}
	for _, pay := range p.Payments {
		out.Payments = append(out.Payments, toProtoPayment(pay, p.CategoryName))
	}
	return out
}

func toProtoCategory(c models.Category) *pb.Category {
	out := &pb.Category{
		Id:          c.ID,
		Name:        c.Name,
		Mode:        string(c.Mode()),
		CreatedAt:   c.CreatedAt,
		Allocations: make([]*pb.Allocation, 0, len(c.Allocations)),
		Expenses:    make([]*pb.Expense, 0, len(c.Expenses)),
	}
	switch b := c.Budget.(type) {
	case models.AllInclusive:
		out.TotalBudget = money(b.TotalBudget)
		out.TotalCost = money(b.TotalCost)
	case models.Separate:
		out.LaborBudget = money(b.LaborBudget)
		out.LaborCost = money(b.LaborCost)
		out.MaterialsBudget = money(b.MaterialsBudget)
	}
	for _, a := range c.Allocations {
		line := toProtoAllocation(a)
		line.CategoryName = c.Name
		out.Allocations = append(out.Allocations, line)
	}
	for _, e := range c.Expenses {
		out.Expenses = append(out.Expenses, toProtoExpense(e))
	}
	return out
}

// toProtoPayment converts a payment, naming each allocation's category with
// categoryName.
func toProtoPayment(p models.Payment, categoryName func(string) string) *pb.Payment {
	out := &pb.Payment{
		Id:            p.ID,
		PaymentMethod: string(p.Method),
		Reference:     p.Reference,
		Amount:        money(p.Amount),
		Date:          p.Date.String(),
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		Allocations:   make([]*pb.Allocation, 0, len(p.Allocations)),
	}
	for _, a := range p.Allocations {
		line := toProtoAllocation(a)
		line.CategoryName = categoryName(a.CategoryID)
		out.Allocations = append(out.Allocations, line)
	}
	return out
}

func toProtoAllocation(a models.Allocation) *pb.Allocation {
	out := &pb.Allocation{
		Id:         a.ID,
		PaymentId:  a.PaymentID,
		CategoryId: a.CategoryID,
		Date:       a.Date.String(),
	}
	switch s := a.Share.(type) {
	case models.LumpSum:
		out.Amount = money(s.Amount)
	case models.LaborMaterials:
		out.LaborAmount = money(s.Labor)
		out.MaterialsAmount = money(s.Materials)
	}
	return out
}

func toProtoExpense(e models.Expense) *pb.Expense {
	return &pb.Expense{
		Id:            e.ID,
		CategoryId:    e.CategoryID,
		Amount:        money(e.Amount),
		Date:          e.Date.String(),
		Description:   e.Description,
		Type:          string(e.Type),
		PaymentMethod: string(e.Method),
		Reference:     e.Reference,
		CreatedAt:     e.CreatedAt,
	}
}

func toProtoSummary(s calculator.ProjectSummary) *pb.ProjectSummary {
	out := &pb.ProjectSummary{
		ProjectId:       s.ProjectID,
		TotalBudget:     money(s.TotalBudget),
		TotalCost:       money(s.TotalCost),
		TotalCollected:  money(s.TotalCollected),
		TotalPaid:       money(s.TotalPaid),
		ProjectedProfit: money(s.ProjectedProfit),
		Health: &pb.Health{
			Green:  int32(s.Health.Green),
			Yellow: int32(s.Health.Yellow),
			Red:    int32(s.Health.Red),
		},
		Categories: make([]*pb.CategorySummary, 0, len(s.Categories)),
	}
	for _, c := range s.Categories {
		out.Categories = append(out.Categories, toProtoCategorySummary(c))
	}
	return out
}

func toProtoCategorySummary(c calculator.CategorySummary) *pb.CategorySummary {
	t := c.Totals
	out := &pb.CategorySummary{
		CategoryId:         c.CategoryID,
		Name:               c.Name,
		Mode:               string(t.Mode),
		TotalBudget:        money(t.TotalBudget),
		TotalCost:          money(t.TotalCost),
		TotalCollected:     money(t.TotalCollected),
		TotalPaid:          money(t.TotalPaid),
		RemainingToCollect: money(t.RemainingToCollect),
		RemainingToPay:     money(t.RemainingToPay),
		Buffer:             money(t.Buffer),
		ProjectedProfit:    money(t.ProjectedProfit),
		CurrentMargin:      money(t.CurrentMargin),
		WarningLevel:       string(t.Level),
	}
	if l := t.Labor; l != nil {
		out.Labor = &pb.LaborSummary{
			Collected:          money(l.Collected),
			Paid:               money(l.Paid),
			RemainingToCollect: money(l.RemainingToCollect),
			RemainingToPay:     money(l.RemainingToPay),
			Buffer:             money(l.Buffer),
			WarningLevel:       string(l.Level),
			Profit:             money(l.Profit),
		}
	}
	if m := t.Materials; m != nil {
		out.Materials = &pb.MaterialsSummary{
			Collected:          money(m.Collected),
			Paid:               money(m.Paid),
			RemainingToCollect: money(m.RemainingToCollect),
			RemainingToPay:     money(m.RemainingToPay),
		}
	}
	return out
}
