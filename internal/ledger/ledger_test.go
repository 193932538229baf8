package ledger

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/jobledger/internal/calculator"
	"github.com/mmynk/jobledger/internal/models"
)

func newTestLedger() *Ledger {
	n := 0
	return New(
		WithClock(func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
}

// seed builds a project with one category per mode and one payment that
// allocates to both.
func seed(t *testing.T, l *Ledger) (models.Project, models.Category, models.Category, models.Payment) {
	t.Helper()
	p := l.AddProject(ProjectInput{Name: "Kitchen", ClientName: "Miller"})

	framing, err := l.AddCategory(p.ID, CategoryInput{Name: "Framing", Mode: "all-inclusive", TotalBudget: "30000", TotalCost: "22000"})
	if err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	electrical, err := l.AddCategory(p.ID, CategoryInput{Name: "Electrical", Mode: "separate", LaborBudget: "45000", LaborCost: "32000", MaterialsBudget: "12000"})
	if err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	pay, err := l.RecordPayment(p.ID, PaymentInput{
		Method:    "check",
		Reference: "1042",
		Amount:    "42000",
		Date:      "2024-03-01",
		Allocations: []AllocationInput{
			{CategoryID: framing.ID, Amount: "10000"},
			{CategoryID: electrical.ID, LaborAmount: "32000"},
		},
	})
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	return p, framing, electrical, pay
}

func TestAddCategory(t *testing.T) {
	l := newTestLedger()
	p := l.AddProject(ProjectInput{Name: "Bath"})

	tests := []struct {
		name    string
		in      CategoryInput
		want    models.Budget
		wantErr error
	}{
		{
			name: "all-inclusive ignores separate fields",
			in:   CategoryInput{Name: "Tile", Mode: "all-inclusive", TotalBudget: "$8,000", TotalCost: "5000", LaborBudget: "99"},
			want: models.AllInclusive{TotalBudget: decimal.NewFromInt(8000), TotalCost: decimal.NewFromInt(5000)},
		},
		{
			name: "separate ignores all-inclusive fields",
			in:   CategoryInput{Name: "Plumbing", Mode: "separate", LaborBudget: "6000", LaborCost: "4000", MaterialsBudget: "1500", TotalBudget: "1"},
			want: models.Separate{LaborBudget: decimal.NewFromInt(6000), LaborCost: decimal.NewFromInt(4000), MaterialsBudget: decimal.NewFromInt(1500)},
		},
		{
			name: "unparsable amounts become zero",
			in:   CategoryInput{Name: "Paint", Mode: "all-inclusive", TotalBudget: "lots", TotalCost: ""},
			want: models.AllInclusive{TotalBudget: decimal.Zero, TotalCost: decimal.Zero},
		},
		{
			name:    "unknown mode",
			in:      CategoryInput{Name: "Roof", Mode: "cost-plus"},
			wantErr: ErrInvalidMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := l.AddCategory(p.ID, tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddCategory failed: %v", err)
			}
			if !budgetsEqual(c.Budget, tt.want) {
				t.Errorf("Budget = %+v, want %+v", c.Budget, tt.want)
			}
			if c.Allocations == nil || c.Expenses == nil || len(c.Allocations)+len(c.Expenses) != 0 {
				t.Errorf("expected empty allocation and expense lists, got %v / %v", c.Allocations, c.Expenses)
			}
		})
	}

	if _, err := l.AddCategory("nope", CategoryInput{Mode: "separate"}); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("err = %v, want ErrProjectNotFound", err)
	}
}

func budgetsEqual(a, b models.Budget) bool {
	switch x := a.(type) {
	case models.AllInclusive:
		y, ok := b.(models.AllInclusive)
		return ok && x.TotalBudget.Equal(y.TotalBudget) && x.TotalCost.Equal(y.TotalCost)
	case models.Separate:
		y, ok := b.(models.Separate)
		return ok && x.LaborBudget.Equal(y.LaborBudget) && x.LaborCost.Equal(y.LaborCost) && x.MaterialsBudget.Equal(y.MaterialsBudget)
	}
	return false
}

func TestRecordPayment(t *testing.T) {
	l := newTestLedger()
	p, framing, electrical, pay := seed(t, l)

	if len(pay.Allocations) != 2 {
		t.Fatalf("got %d allocations, want 2", len(pay.Allocations))
	}
	if pay.Date.String() != "2024-03-01" || pay.Method != models.MethodCheck {
		t.Errorf("payment = %+v", pay)
	}

	got, err := l.Project(p.ID)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	fa := got.Categories[0].Allocations
	if len(fa) != 1 || fa[0].PaymentID != pay.ID {
		t.Fatalf("framing allocations = %+v", fa)
	}
	if s, ok := fa[0].Share.(models.LumpSum); !ok || !s.Amount.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("framing share = %+v", fa[0].Share)
	}
	ea := got.Categories[1].Allocations
	if s, ok := ea[0].Share.(models.LaborMaterials); !ok || !s.Labor.Equal(decimal.NewFromInt(32000)) || !s.Materials.IsZero() {
		t.Errorf("electrical share = %+v", ea[0].Share)
	}

	// The payment and the category see the same allocation.
	if got.Payments[0].Allocations[0] != fa[0] {
		t.Errorf("payment copy %+v differs from category copy %+v", got.Payments[0].Allocations[0], fa[0])
	}
	for _, a := range got.Payments[0].Allocations {
		if a.Date != pay.Date {
			t.Errorf("allocation date %s, want %s", a.Date, pay.Date)
		}
	}

	t.Run("zero requests are dropped", func(t *testing.T) {
		pay, err := l.RecordPayment(p.ID, PaymentInput{
			Method: "zelle",
			Amount: "500",
			Allocations: []AllocationInput{
				{CategoryID: framing.ID, Amount: "500"},
				{CategoryID: electrical.ID, Amount: "0", LaborAmount: "", MaterialsAmount: "0"},
			},
		})
		if err != nil {
			t.Fatalf("RecordPayment failed: %v", err)
		}
		if len(pay.Allocations) != 1 || pay.Allocations[0].CategoryID != framing.ID {
			t.Errorf("allocations = %+v", pay.Allocations)
		}
		if pay.Date.String() != "2024-03-15" {
			t.Errorf("empty date should default to today, got %s", pay.Date)
		}
	})

	t.Run("amount on separate category becomes labor", func(t *testing.T) {
		pay, err := l.RecordPayment(p.ID, PaymentInput{
			Method:      "cash",
			Amount:      "700",
			Allocations: []AllocationInput{{CategoryID: electrical.ID, Amount: "700"}},
		})
		if err != nil {
			t.Fatalf("RecordPayment failed: %v", err)
		}
		s, ok := pay.Allocations[0].Share.(models.LaborMaterials)
		if !ok || !s.Labor.Equal(decimal.NewFromInt(700)) {
			t.Errorf("share = %+v", pay.Allocations[0].Share)
		}
	})

	t.Run("validation", func(t *testing.T) {
		other := l.AddProject(ProjectInput{Name: "Other"})
		cases := []struct {
			name      string
			projectID string
			in        PaymentInput
			want      error
		}{
			{"unknown project", "nope", PaymentInput{Method: "check"}, ErrProjectNotFound},
			{"unknown method", p.ID, PaymentInput{Method: "wire"}, ErrInvalidPaymentMethod},
			{"bad date", p.ID, PaymentInput{Method: "check", Date: "03/01/2024"}, ErrInvalidDate},
			{"bad date matches models sentinel", p.ID, PaymentInput{Method: "check", Date: "2024-02-30"}, models.ErrInvalidDate},
			{"unknown category", p.ID, PaymentInput{Method: "check", Allocations: []AllocationInput{{CategoryID: "nope", Amount: "1"}}}, ErrCategoryNotFound},
			{"category of another project", other.ID, PaymentInput{Method: "check", Allocations: []AllocationInput{{CategoryID: framing.ID, Amount: "1"}}}, ErrCategoryNotFound},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := l.RecordPayment(tc.projectID, tc.in); !errors.Is(err, tc.want) {
					t.Errorf("err = %v, want %v", err, tc.want)
				}
			})
		}
	})
}

func TestDeletePaymentRemovesEveryAllocation(t *testing.T) {
	l := newTestLedger()
	p, _, _, pay := seed(t, l)
	keep, err := l.RecordPayment(p.ID, PaymentInput{
		Method: "check",
		Amount: "100",
	})
	if err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}

	projectID, err := l.DeletePayment(pay.ID)
	if err != nil {
		t.Fatalf("DeletePayment failed: %v", err)
	}
	if projectID != p.ID {
		t.Errorf("projectID = %q, want %q", projectID, p.ID)
	}

	got, _ := l.Project(p.ID)
	if len(got.Payments) != 1 || got.Payments[0].ID != keep.ID {
		t.Errorf("payments = %+v", got.Payments)
	}
	for _, c := range got.Categories {
		for _, a := range c.Allocations {
			if a.PaymentID == pay.ID {
				t.Errorf("category %s still has allocation from deleted payment", c.Name)
			}
		}
	}
	if len(l.allocations) != 0 {
		t.Errorf("arena still holds %d allocations", len(l.allocations))
	}

	if _, err := l.DeletePayment(pay.ID); !errors.Is(err, ErrPaymentNotFound) {
		t.Errorf("second delete err = %v, want ErrPaymentNotFound", err)
	}
}

func TestDeleteCategoryKeepsPaymentHistory(t *testing.T) {
	l := newTestLedger()
	p, framing, electrical, pay := seed(t, l)
	if _, err := l.AddExpense(framing.ID, ExpenseInput{Amount: "5000", Description: "Crew"}); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	if _, err := l.DeleteCategory(framing.ID); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}

	got, _ := l.Project(p.ID)
	if len(got.Categories) != 1 || got.Categories[0].ID != electrical.ID {
		t.Fatalf("categories = %+v", got.Categories)
	}
	if len(l.expenses) != 0 {
		t.Errorf("expenses of deleted category remain: %d", len(l.expenses))
	}

	allocs := got.Payments[0].Allocations
	if len(allocs) != 2 {
		t.Fatalf("payment lost historical allocations: %+v", allocs)
	}
	names := map[string]string{}
	for _, a := range allocs {
		names[a.CategoryID] = l.CategoryName(a.CategoryID)
	}
	if names[framing.ID] != models.UnknownCategory {
		t.Errorf("deleted category name = %q, want %q", names[framing.ID], models.UnknownCategory)
	}
	if names[electrical.ID] != "Electrical" {
		t.Errorf("electrical name = %q", names[electrical.ID])
	}

	// Aggregation over the remaining graph must not trip on the dangling id.
	summary := calculator.ProjectTotals(got)
	if len(summary.Categories) != 1 {
		t.Errorf("summary categories = %d, want 1", len(summary.Categories))
	}

	// Deleting the payment afterwards still removes the dangling allocation.
	if _, err := l.DeletePayment(pay.ID); err != nil {
		t.Fatalf("DeletePayment failed: %v", err)
	}
	if len(l.allocations) != 0 {
		t.Errorf("arena still holds %d allocations", len(l.allocations))
	}
}

func TestAddExpense(t *testing.T) {
	l := newTestLedger()
	_, framing, electrical, _ := seed(t, l)

	tests := []struct {
		name       string
		categoryID string
		in         ExpenseInput
		wantType   models.ExpenseType
		wantErr    error
	}{
		{"separate keeps type", electrical.ID, ExpenseInput{Amount: "32000", Type: "labor"}, models.ExpenseLabor, nil},
		{"all-inclusive drops type", framing.ID, ExpenseInput{Amount: "5000", Type: "materials"}, "", nil},
		{"invalid type", electrical.ID, ExpenseInput{Amount: "1", Type: "overhead"}, "", ErrInvalidExpenseType},
		{"invalid method", framing.ID, ExpenseInput{Amount: "1", Method: "barter"}, "", ErrInvalidPaymentMethod},
		{"unknown category", "nope", ExpenseInput{Amount: "1"}, "", ErrCategoryNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := l.AddExpense(tt.categoryID, tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddExpense failed: %v", err)
			}
			if e.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", e.Type, tt.wantType)
			}
		})
	}

	c, _ := l.Category(electrical.ID)
	if len(c.Expenses) != 1 {
		t.Fatalf("electrical expenses = %d, want 1", len(c.Expenses))
	}
	projectID, err := l.DeleteExpense(c.Expenses[0].ID)
	if err != nil || projectID != electrical.ProjectID {
		t.Fatalf("DeleteExpense = %q, %v", projectID, err)
	}
	if c, _ := l.Category(electrical.ID); len(c.Expenses) != 0 {
		t.Errorf("expense not removed")
	}
	if _, err := l.DeleteExpense("nope"); !errors.Is(err, ErrExpenseNotFound) {
		t.Errorf("err = %v, want ErrExpenseNotFound", err)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	l := newTestLedger()
	p, framing, _, _ := seed(t, l)
	other := l.AddProject(ProjectInput{Name: "Other"})
	if _, err := l.AddExpense(framing.ID, ExpenseInput{Amount: "10"}); err != nil {
		t.Fatal(err)
	}

	if err := l.DeleteProject(p.ID); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}
	if got := l.Projects(); len(got) != 1 || got[0].ID != other.ID {
		t.Errorf("projects = %+v", got)
	}
	if len(l.categories)+len(l.payments)+len(l.expenses)+len(l.allocations) != 0 {
		t.Errorf("leftovers: %d categories, %d payments, %d expenses, %d allocations",
			len(l.categories), len(l.payments), len(l.expenses), len(l.allocations))
	}
	if err := l.DeleteProject(p.ID); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	l := newTestLedger()
	seed(t, l)
	before := l.Projects()

	reloaded := newTestLedger()
	reloaded.Load(before)
	after := reloaded.Projects()

	if len(after) != 1 || len(after[0].Categories) != 2 || len(after[0].Payments) != 1 {
		t.Fatalf("reloaded graph = %+v", after)
	}
	if len(reloaded.allocations) != 2 {
		t.Errorf("allocations were duplicated on load: %d", len(reloaded.allocations))
	}
	want := calculator.ProjectTotals(before[0])
	got := calculator.ProjectTotals(after[0])
	if !got.TotalCollected.Equal(want.TotalCollected) || got.Health != want.Health {
		t.Errorf("totals changed across reload: %+v vs %+v", got, want)
	}
}

func TestLoadKeepsCategoryOnlyAllocations(t *testing.T) {
	d := models.NewDate(2023, 6, 1)
	projects := []models.Project{{
		ID: "p1",
		Categories: []models.Category{{
			ID:     "c1",
			Name:   "Framing",
			Budget: models.AllInclusive{TotalBudget: decimal.NewFromInt(100)},
			Allocations: []models.Allocation{
				{PaymentID: "pay1", CategoryID: "c1", Share: models.LumpSum{Amount: decimal.NewFromInt(40)}, Date: d},
				{PaymentID: "gone", CategoryID: "c1", Share: models.LumpSum{Amount: decimal.NewFromInt(10)}, Date: d},
			},
		}},
		Payments: []models.Payment{{
			ID:   "pay1",
			Date: d,
			// Payment listing lost its allocation.
		}},
	}}

	l := newTestLedger()
	l.Load(projects)
	got, err := l.Project("p1")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(got.Categories[0].Allocations); n != 2 {
		t.Errorf("category allocations = %d, want 2", n)
	}
	if n := len(got.Payments[0].Allocations); n != 1 {
		t.Errorf("payment allocations = %d, want 1 (re-attached)", n)
	}
	totals := calculator.CategoryTotals(got.Categories[0])
	if !totals.TotalCollected.Equal(decimal.NewFromInt(50)) {
		t.Errorf("collected = %s, want 50", totals.TotalCollected)
	}
}

func TestLoadMatchesCategorylessPaymentAllocation(t *testing.T) {
	d := models.NewDate(2023, 6, 1)
	share := models.LumpSum{Amount: decimal.NewFromInt(300)}
	projects := []models.Project{{
		ID: "p1",
		Categories: []models.Category{{
			ID:          "c1",
			Name:        "Framing",
			Budget:      models.AllInclusive{TotalBudget: decimal.NewFromInt(1000)},
			Allocations: []models.Allocation{{PaymentID: "pay1", CategoryID: "c1", Share: share, Date: d}},
		}},
		Payments: []models.Payment{{
			ID:          "pay1",
			Date:        d,
			Allocations: []models.Allocation{{PaymentID: "pay1", Share: share, Date: d}},
		}},
	}}

	l := newTestLedger()
	l.Load(projects)
	got, err := l.Project("p1")
	if err != nil {
		t.Fatal(err)
	}

	lines := got.Payments[0].Allocations
	if len(lines) != 1 {
		t.Fatalf("payment allocations = %d, want 1", len(lines))
	}
	if lines[0].CategoryID != "c1" {
		t.Errorf("payment allocation category = %q, want c1", lines[0].CategoryID)
	}
	if l.CategoryName(lines[0].CategoryID) != "Framing" {
		t.Errorf("payment allocation should name its category, got %q", l.CategoryName(lines[0].CategoryID))
	}
	cat := got.Categories[0].Allocations
	if len(cat) != 1 || cat[0].ID != lines[0].ID {
		t.Errorf("category allocations = %+v, want the payment's allocation", cat)
	}
	if len(l.allocations) != 1 {
		t.Errorf("arena holds %d allocations, want 1", len(l.allocations))
	}
}
