package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/jobledger/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(d(want)) {
		t.Errorf("%s = %s, want %s", field, got, want)
	}
}

func TestWarningLevel(t *testing.T) {
	tests := []struct {
		name           string
		buffer         string
		remainingToPay string
		want           Level
	}{
		{"nothing left to pay", "-500", "0", Green},
		{"overpaid subcontractor", "-500", "-10", Green},
		{"negative buffer is red", "-1", "1000", Red},
		{"zero buffer is yellow", "0", "1000", Yellow},
		{"exactly twenty percent is yellow", "200", "1000", Yellow},
		{"just above twenty percent is green", "200.01", "1000", Green},
		{"comfortable cushion", "5000", "1000", Green},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WarningLevel(d(tt.buffer), d(tt.remainingToPay))
			if got != tt.want {
				t.Errorf("WarningLevel(%s, %s) = %s, want %s", tt.buffer, tt.remainingToPay, got, tt.want)
			}
		})
	}
}

func TestCategoryTotals(t *testing.T) {
	tests := []struct {
		name         string
		category     models.Category
		validateFunc func(t *testing.T, got Totals)
	}{
		{
			name: "all-inclusive with thin buffer",
			category: models.Category{
				Budget:      models.AllInclusive{TotalBudget: d("30000"), TotalCost: d("22000")},
				Allocations: []models.Allocation{{Share: models.LumpSum{Amount: d("10000")}}},
				Expenses:    []models.Expense{{Amount: d("5000")}},
			},
			validateFunc: func(t *testing.T, got Totals) {
				// remainingToPay 17000 > 0 and buffer 3000 <= 0.2*17000 = 3400
				assertAmount(t, "TotalCollected", got.TotalCollected, "10000")
				assertAmount(t, "TotalPaid", got.TotalPaid, "5000")
				assertAmount(t, "RemainingToCollect", got.RemainingToCollect, "20000")
				assertAmount(t, "RemainingToPay", got.RemainingToPay, "17000")
				assertAmount(t, "Buffer", got.Buffer, "3000")
				assertAmount(t, "ProjectedProfit", got.ProjectedProfit, "8000")
				assertAmount(t, "CurrentMargin", got.CurrentMargin, "5000")
				if got.Level != Yellow {
					t.Errorf("Level = %s, want yellow", got.Level)
				}
				if got.Labor != nil || got.Materials != nil {
					t.Error("all-inclusive totals should not carry labor/materials breakdown")
				}
			},
		},
		{
			name: "all-inclusive ignores labor/materials shares",
			category: models.Category{
				Budget: models.AllInclusive{TotalBudget: d("1000"), TotalCost: d("800")},
				Allocations: []models.Allocation{
					{Share: models.LaborMaterials{Labor: d("500")}},
					{Share: models.LumpSum{Amount: d("100")}},
				},
			},
			validateFunc: func(t *testing.T, got Totals) {
				assertAmount(t, "TotalCollected", got.TotalCollected, "100")
			},
		},
		{
			name: "all-inclusive red when collected funds fall short",
			category: models.Category{
				Budget:      models.AllInclusive{TotalBudget: d("10000"), TotalCost: d("9000")},
				Allocations: []models.Allocation{{Share: models.LumpSum{Amount: d("9000")}}},
			},
			validateFunc: func(t *testing.T, got Totals) {
				// remainingToCollect 1000, remainingToPay 9000, buffer -8000
				assertAmount(t, "Buffer", got.Buffer, "-8000")
				if got.Level != Red {
					t.Errorf("Level = %s, want red", got.Level)
				}
			},
		},
		{
			name: "separate with labor fully paid",
			category: models.Category{
				Budget: models.Separate{LaborBudget: d("45000"), LaborCost: d("32000"), MaterialsBudget: d("12000")},
				Allocations: []models.Allocation{
					{Share: models.LaborMaterials{Labor: d("32000"), Materials: d("4000")}},
				},
				Expenses: []models.Expense{
					{Type: models.ExpenseLabor, Amount: d("32000")},
					{Type: models.ExpenseMaterials, Amount: d("5000")},
				},
			},
			validateFunc: func(t *testing.T, got Totals) {
				if got.Labor == nil || got.Materials == nil {
					t.Fatal("expected labor and materials breakdown")
				}
				assertAmount(t, "Labor.RemainingToPay", got.Labor.RemainingToPay, "0")
				if got.Labor.Level != Green {
					t.Errorf("Labor.Level = %s, want green", got.Labor.Level)
				}
				if got.Level != Green {
					t.Errorf("Level = %s, want green (labor drives health)", got.Level)
				}
				assertAmount(t, "Labor.Profit", got.Labor.Profit, "13000")

				assertAmount(t, "Materials.Collected", got.Materials.Collected, "4000")
				assertAmount(t, "Materials.Paid", got.Materials.Paid, "5000")
				assertAmount(t, "Materials.RemainingToCollect", got.Materials.RemainingToCollect, "8000")
				assertAmount(t, "Materials.RemainingToPay", got.Materials.RemainingToPay, "7000")

				assertAmount(t, "TotalCollected", got.TotalCollected, "36000")
				assertAmount(t, "TotalPaid", got.TotalPaid, "37000")
				assertAmount(t, "TotalBudget", got.TotalBudget, "57000")
				assertAmount(t, "TotalCost", got.TotalCost, "44000")
				assertAmount(t, "ProjectedProfit", got.ProjectedProfit, "13000")
			},
		},
		{
			name: "separate health ignores materials shortfall",
			category: models.Category{
				Budget: models.Separate{LaborBudget: d("10000"), LaborCost: d("5000"), MaterialsBudget: d("8000")},
				Expenses: []models.Expense{
					{Type: models.ExpenseMaterials, Amount: d("8000")},
				},
			},
			validateFunc: func(t *testing.T, got Totals) {
				// labor: remainingToCollect 10000, remainingToPay 5000, buffer 5000 > 1000
				if got.Level != Green {
					t.Errorf("Level = %s, want green", got.Level)
				}
				assertAmount(t, "Materials.Buffer", got.Materials.Buffer, "8000")
			},
		},
		{
			name: "separate labor red",
			category: models.Category{
				Budget: models.Separate{LaborBudget: d("10000"), LaborCost: d("8000")},
				Allocations: []models.Allocation{
					{Share: models.LaborMaterials{Labor: d("9000")}},
				},
			},
			validateFunc: func(t *testing.T, got Totals) {
				assertAmount(t, "Labor.Buffer", got.Labor.Buffer, "-7000")
				if got.Level != Red {
					t.Errorf("Level = %s, want red", got.Level)
				}
			},
		},
		{
			name:     "missing budget treated as empty all-inclusive",
			category: models.Category{},
			validateFunc: func(t *testing.T, got Totals) {
				if got.Mode != models.ModeAllInclusive {
					t.Errorf("Mode = %s", got.Mode)
				}
				if got.Level != Green {
					t.Errorf("Level = %s, want green", got.Level)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, CategoryTotals(tt.category))
		})
	}
}

// A negative buffer with money still owed must never classify as yellow.
func TestRedDominatesYellow(t *testing.T) {
	for _, remaining := range []string{"0.01", "1", "100", "1000000"} {
		for _, buffer := range []string{"-0.01", "-1", "-999999"} {
			if got := WarningLevel(d(buffer), d(remaining)); got != Red {
				t.Errorf("WarningLevel(%s, %s) = %s, want red", buffer, remaining, got)
			}
		}
	}
}

func TestProjectTotals(t *testing.T) {
	project := models.Project{
		ID: "p1",
		Categories: []models.Category{
			{
				ID:          "framing",
				Name:        "Framing",
				Budget:      models.AllInclusive{TotalBudget: d("30000"), TotalCost: d("22000")},
				Allocations: []models.Allocation{{Share: models.LumpSum{Amount: d("10000")}}},
				Expenses:    []models.Expense{{Amount: d("5000")}},
			},
			{
				ID:     "electrical",
				Name:   "Electrical",
				Budget: models.Separate{LaborBudget: d("45000"), LaborCost: d("32000"), MaterialsBudget: d("12000")},
				Allocations: []models.Allocation{
					{Share: models.LaborMaterials{Labor: d("32000")}},
				},
				Expenses: []models.Expense{{Type: models.ExpenseLabor, Amount: d("32000")}},
			},
			{
				ID:          "roofing",
				Name:        "Roofing",
				Budget:      models.AllInclusive{TotalBudget: d("10000"), TotalCost: d("9000")},
				Allocations: []models.Allocation{{Share: models.LumpSum{Amount: d("9000")}}},
			},
		},
	}

	got := ProjectTotals(project)

	assertAmount(t, "TotalBudget", got.TotalBudget, "97000") // 30000 + 57000 + 10000
	assertAmount(t, "TotalCost", got.TotalCost, "75000")     // 22000 + 44000 + 9000
	assertAmount(t, "TotalCollected", got.TotalCollected, "51000")
	assertAmount(t, "TotalPaid", got.TotalPaid, "37000")
	assertAmount(t, "ProjectedProfit", got.ProjectedProfit, "22000")

	want := Health{Green: 1, Yellow: 1, Red: 1}
	if got.Health != want {
		t.Errorf("Health = %+v, want %+v", got.Health, want)
	}
	if len(got.Categories) != 3 || got.Categories[1].Name != "Electrical" {
		t.Errorf("categories not reported in order: %+v", got.Categories)
	}
}

func TestProjectTotalsEmpty(t *testing.T) {
	got := ProjectTotals(models.Project{ID: "empty"})
	if !got.TotalBudget.IsZero() || got.Health != (Health{}) {
		t.Errorf("expected zero summary, got %+v", got)
	}
}
