package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/jobledger/internal/models"
	"github.com/mmynk/jobledger/internal/storage"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "ledger.json")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	ctx := context.Background()

	project := &models.Project{Name: "Garage", ClientName: "Chen"}
	if err := store.SaveProject(ctx, project); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}
	all := &models.Category{Name: "Concrete", Budget: models.AllInclusive{TotalBudget: dec("18000"), TotalCost: dec("12500")}}
	sep := &models.Category{Name: "Roofing", Budget: models.Separate{LaborBudget: dec("9000"), LaborCost: dec("6000"), MaterialsBudget: dec("4000")}}
	for _, c := range []*models.Category{all, sep} {
		if err := store.SaveCategory(ctx, project.ID, c); err != nil {
			t.Fatalf("SaveCategory failed: %v", err)
		}
	}
	payment := &models.Payment{
		Method: models.MethodZelle,
		Amount: dec("12000"),
		Date:   models.NewDate(2024, 5, 1),
		Allocations: []models.Allocation{
			{CategoryID: all.ID, Share: models.LumpSum{Amount: dec("8000")}},
			{CategoryID: sep.ID, Share: models.LaborMaterials{Labor: dec("3000"), Materials: dec("1000")}},
			{CategoryID: sep.ID, Share: models.LaborMaterials{}},
		},
	}
	if err := store.SavePayment(ctx, project.ID, payment); err != nil {
		t.Fatalf("SavePayment failed: %v", err)
	}
	if err := store.SaveExpense(ctx, sep.ID, &models.Expense{Amount: dec("6000"), Type: models.ExpenseLabor}); err != nil {
		t.Fatalf("SaveExpense failed: %v", err)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the document in %s, found %d entries", filepath.Dir(path), len(entries))
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	projects, err := reopened.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("got %d projects", len(projects))
	}
	p := projects[0]

	if b, ok := p.Categories[0].Budget.(models.AllInclusive); !ok || !b.TotalCost.Equal(dec("12500")) {
		t.Errorf("all-inclusive budget = %+v", p.Categories[0].Budget)
	}
	if b, ok := p.Categories[1].Budget.(models.Separate); !ok || !b.MaterialsBudget.Equal(dec("4000")) {
		t.Errorf("separate budget = %+v", p.Categories[1].Budget)
	}
	if n := len(p.Payments[0].Allocations); n != 2 {
		t.Errorf("payment allocations = %d, want 2", n)
	}
	if n := len(p.Categories[1].Allocations); n != 1 {
		t.Errorf("roofing allocations = %d, want 1", n)
	}
	if e := p.Categories[1].Expenses; len(e) != 1 || e[0].Type != models.ExpenseLabor {
		t.Errorf("expenses = %+v", e)
	}

	if err := reopened.DeletePayment(ctx, payment.ID); err != nil {
		t.Fatalf("DeletePayment failed: %v", err)
	}
	projects, _ = reopened.ListProjects(ctx)
	for _, c := range projects[0].Categories {
		if len(c.Allocations) != 0 {
			t.Errorf("category %s kept allocations of a deleted payment", c.Name)
		}
	}
}

func TestOpenMigratesLegacyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	legacy := `{"projects":[{"id":"p1","name":"Porch","clientName":"Diaz",
		"categories":[{"id":"c1","name":"Decking","clientBudget":5000,"yourCost":3500,"allocations":[],"expenses":[]}],
		"payments":[{"id":"pay1","checkNumber":"77","amount":1000,"date":"2022-09-01","allocations":[]}]}]}`
	if err := os.WriteFile(path, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	projects, _ := store.ListProjects(context.Background())
	c := projects[0].Categories[0]
	if b, ok := c.Budget.(models.AllInclusive); !ok || !b.TotalBudget.Equal(dec("5000")) || !b.TotalCost.Equal(dec("3500")) {
		t.Errorf("budget = %+v", c.Budget)
	}
	if ref := projects[0].Payments[0].Reference; ref != "77" {
		t.Errorf("reference = %q, want 77", ref)
	}

	// The first change rewrites the file in the current shape.
	if err := store.SaveProject(context.Background(), &projects[0]); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), `"schemaVersion": 2`) || strings.Contains(string(raw), "clientBudget") {
		t.Errorf("document not rewritten in current shape:\n%s", raw)
	}
}

func TestErrors(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), "ledger.json"))
	if err != nil {
		t.Fatal(err)
	}

	cases := map[string]error{
		"delete project":  store.DeleteProject(ctx, "nope"),
		"delete category": store.DeleteCategory(ctx, "nope"),
		"delete payment":  store.DeletePayment(ctx, "nope"),
		"delete expense":  store.DeleteExpense(ctx, "nope"),
		"save category":   store.SaveCategory(ctx, "nope", &models.Category{}),
		"save expense":    store.SaveExpense(ctx, "nope", &models.Expense{}),
	}
	for name, err := range cases {
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("%s: err = %v, want ErrNotFound", name, err)
		}
	}

	// A directory at the document path makes the final rename fail.
	path := filepath.Join(t.TempDir(), "ledger.json")
	broken, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(path, "occupied"), 0755); err != nil {
		t.Fatal(err)
	}
	err = broken.SaveProject(ctx, &models.Project{Name: "x"})
	if !errors.Is(err, storage.ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
	if projects, _ := broken.ListProjects(ctx); len(projects) != 0 {
		t.Errorf("failed write should not change memory, got %d projects", len(projects))
	}
}
