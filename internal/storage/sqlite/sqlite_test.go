package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/jobledger/internal/models"
	"github.com/mmynk/jobledger/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	project := &models.Project{Name: "Miller remodel", ClientName: "Miller"}
	if err := store.SaveProject(ctx, project); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}
	if project.ID == "" || project.CreatedAt == 0 {
		t.Fatalf("expected ID and CreatedAt to be generated, got %+v", project)
	}

	framing := &models.Category{
		Name:   "Framing",
		Budget: models.AllInclusive{TotalBudget: dec("30000"), TotalCost: dec("22000")},
	}
	electrical := &models.Category{
		Name:   "Electrical",
		Budget: models.Separate{LaborBudget: dec("45000"), LaborCost: dec("32000"), MaterialsBudget: dec("12000.50")},
	}
	for _, c := range []*models.Category{framing, electrical} {
		if err := store.SaveCategory(ctx, project.ID, c); err != nil {
			t.Fatalf("SaveCategory failed: %v", err)
		}
	}

	payment := &models.Payment{
		Method:    models.MethodCheck,
		Reference: "1042",
		Amount:    dec("42000"),
		Date:      models.NewDate(2024, 3, 1),
		Allocations: []models.Allocation{
			{CategoryID: framing.ID, Share: models.LumpSum{Amount: dec("10000")}},
			{CategoryID: electrical.ID, Share: models.LaborMaterials{Labor: dec("32000"), Materials: decimal.Zero}},
			{CategoryID: framing.ID, Share: models.LumpSum{Amount: decimal.Zero}},
		},
	}
	if err := store.SavePayment(ctx, project.ID, payment); err != nil {
		t.Fatalf("SavePayment failed: %v", err)
	}

	expense := &models.Expense{
		Amount:      dec("32000"),
		Date:        models.NewDate(2024, 3, 2),
		Description: "Electrician",
		Type:        models.ExpenseLabor,
		Method:      models.MethodZelle,
	}
	if err := store.SaveExpense(ctx, electrical.ID, expense); err != nil {
		t.Fatalf("SaveExpense failed: %v", err)
	}

	t.Run("round trip keeps both modes", func(t *testing.T) {
		projects, err := store.ListProjects(ctx)
		if err != nil {
			t.Fatalf("ListProjects failed: %v", err)
		}
		if len(projects) != 1 {
			t.Fatalf("got %d projects, want 1", len(projects))
		}
		p := projects[0]
		if p.Name != "Miller remodel" || p.ClientName != "Miller" {
			t.Errorf("project = %+v", p)
		}
		if len(p.Categories) != 2 {
			t.Fatalf("got %d categories, want 2", len(p.Categories))
		}

		ai, ok := p.Categories[0].Budget.(models.AllInclusive)
		if !ok || !ai.TotalBudget.Equal(dec("30000")) || !ai.TotalCost.Equal(dec("22000")) {
			t.Errorf("framing budget = %+v", p.Categories[0].Budget)
		}
		sep, ok := p.Categories[1].Budget.(models.Separate)
		if !ok || !sep.LaborBudget.Equal(dec("45000")) || !sep.LaborCost.Equal(dec("32000")) || !sep.MaterialsBudget.Equal(dec("12000.50")) {
			t.Errorf("electrical budget = %+v", p.Categories[1].Budget)
		}

		if len(p.Payments) != 1 {
			t.Fatalf("got %d payments, want 1", len(p.Payments))
		}
		got := p.Payments[0]
		if got.Method != models.MethodCheck || got.Reference != "1042" || got.Date.String() != "2024-03-01" {
			t.Errorf("payment = %+v", got)
		}
		if len(got.Allocations) != 2 {
			t.Fatalf("zero allocation should not be stored, got %d", len(got.Allocations))
		}
		if _, ok := got.Allocations[1].Share.(models.LaborMaterials); !ok {
			t.Errorf("electrical share = %T, want LaborMaterials", got.Allocations[1].Share)
		}
		if got.Allocations[0].Date.String() != "2024-03-01" {
			t.Errorf("allocation date = %s", got.Allocations[0].Date)
		}

		if len(p.Categories[0].Allocations) != 1 || len(p.Categories[1].Allocations) != 1 {
			t.Errorf("category allocations = %d / %d", len(p.Categories[0].Allocations), len(p.Categories[1].Allocations))
		}
		exp := p.Categories[1].Expenses
		if len(exp) != 1 || exp[0].Type != models.ExpenseLabor || exp[0].Method != models.MethodZelle {
			t.Errorf("expenses = %+v", exp)
		}
	})

	t.Run("upsert updates in place", func(t *testing.T) {
		framing.Name = "Framing & sheathing"
		framing.Budget = models.AllInclusive{TotalBudget: dec("31000"), TotalCost: dec("22000")}
		if err := store.SaveCategory(ctx, project.ID, framing); err != nil {
			t.Fatalf("SaveCategory failed: %v", err)
		}
		projects, _ := store.ListProjects(ctx)
		c := projects[0].Categories[0]
		if c.Name != "Framing & sheathing" || !c.Budget.(models.AllInclusive).TotalBudget.Equal(dec("31000")) {
			t.Errorf("category = %+v", c)
		}
		if len(projects[0].Categories) != 2 {
			t.Errorf("upsert created a duplicate")
		}
	})

	t.Run("deleting a category keeps payment allocations", func(t *testing.T) {
		if err := store.DeleteCategory(ctx, electrical.ID); err != nil {
			t.Fatalf("DeleteCategory failed: %v", err)
		}
		projects, _ := store.ListProjects(ctx)
		p := projects[0]
		if len(p.Categories) != 1 {
			t.Errorf("got %d categories, want 1", len(p.Categories))
		}
		if len(p.Payments[0].Allocations) != 2 {
			t.Errorf("payment allocations = %d, want 2", len(p.Payments[0].Allocations))
		}
		if name := p.CategoryName(electrical.ID); name != models.UnknownCategory {
			t.Errorf("CategoryName = %q", name)
		}
	})

	t.Run("deleting a payment removes its allocations", func(t *testing.T) {
		if err := store.DeletePayment(ctx, payment.ID); err != nil {
			t.Fatalf("DeletePayment failed: %v", err)
		}
		projects, _ := store.ListProjects(ctx)
		p := projects[0]
		if len(p.Payments) != 0 {
			t.Errorf("payments = %+v", p.Payments)
		}
		for _, c := range p.Categories {
			if len(c.Allocations) != 0 {
				t.Errorf("category %s still has allocations", c.Name)
			}
		}
	})

	t.Run("missing rows report ErrNotFound", func(t *testing.T) {
		for name, err := range map[string]error{
			"project":  store.DeleteProject(ctx, "nope"),
			"category": store.DeleteCategory(ctx, "nope"),
			"payment":  store.DeletePayment(ctx, payment.ID),
			"expense":  store.DeleteExpense(ctx, "nope"),
		} {
			if !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("%s: err = %v, want ErrNotFound", name, err)
			}
		}
	})

	t.Run("deleting a project cascades", func(t *testing.T) {
		if err := store.DeleteProject(ctx, project.ID); err != nil {
			t.Fatalf("DeleteProject failed: %v", err)
		}
		projects, err := store.ListProjects(ctx)
		if err != nil {
			t.Fatalf("ListProjects failed: %v", err)
		}
		if len(projects) != 0 {
			t.Errorf("projects = %+v", projects)
		}
		var n int
		if err := store.db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&n); err != nil || n != 0 {
			t.Errorf("categories left: %d (%v)", n, err)
		}
	})
}

func TestSaveCategoryRequiresProject(t *testing.T) {
	store := newTestStore(t)
	err := store.SaveCategory(context.Background(), "missing", &models.Category{Name: "Orphan"})
	if !errors.Is(err, storage.ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable from rejected write", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	store, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := store.SaveProject(context.Background(), &models.Project{Name: "Deck"}); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}
	store.Close()

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	projects, err := reopened.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "Deck" {
		t.Errorf("projects = %+v", projects)
	}
}
