package document

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/jobledger/internal/models"
)

const legacyJSON = `{
  "projects": [
    {
      "id": "p1",
      "name": "Miller remodel",
      "clientName": "Miller",
      "createdAt": "2023-05-01T10:00:00Z",
      "categories": [
        {
          "id": "c1",
          "name": "Framing",
          "clientBudget": 30000,
          "yourCost": "22000",
          "allocations": [
            {"paymentId": "pay1", "amount": 10000, "date": "2023-06-01"},
            {"paymentId": "pay2", "date": "2023-06-15"}
          ],
          "expenses": [
            {"id": "e1", "amount": 5000, "date": "2023-06-02", "description": "Crew deposit"}
          ]
        },
        {
          "id": "c2",
          "name": "Permits",
          "totalBudget": 1200,
          "allocations": [],
          "expenses": []
        },
        {
          "id": "c3",
          "name": "Cleanup",
          "clientBudget": "abc"
        }
      ],
      "payments": [
        {
          "id": "pay1",
          "checkNumber": "1042",
          "amount": 10000,
          "date": "2023-06-01",
          "allocations": [{"categoryId": "c1", "amount": 10000}]
        },
        {
          "id": "pay2",
          "amount": 0,
          "date": "2023-06-15",
          "allocations": [{"categoryId": "c1"}]
        }
      ]
    },
    {"id": "p2", "name": "Empty job"}
  ]
}`

func decodeLegacy(t *testing.T) *Document {
	t.Helper()
	doc, err := Decode(strings.NewReader(legacyJSON))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return doc
}

func TestMigrateLegacyDocument(t *testing.T) {
	doc := decodeLegacy(t)
	got := Migrate(doc)

	if got.SchemaVersion != CurrentSchemaVersion {
		t.Fatalf("SchemaVersion = %d, want %d", got.SchemaVersion, CurrentSchemaVersion)
	}

	framing := got.Projects[0].Categories[0]
	if framing.Mode == nil || *framing.Mode != "all-inclusive" {
		t.Errorf("Mode = %v, want all-inclusive", framing.Mode)
	}
	if !framing.TotalBudget.Valid || !framing.TotalBudget.Value.Equal(decimal.NewFromInt(30000)) {
		t.Errorf("TotalBudget = %+v, want 30000 from clientBudget", framing.TotalBudget)
	}
	if !framing.TotalCost.Valid || !framing.TotalCost.Value.Equal(decimal.NewFromInt(22000)) {
		t.Errorf("TotalCost = %+v, want 22000 from yourCost", framing.TotalCost)
	}
	if framing.LaborBudget.Valid || framing.LaborCost.Valid || framing.MaterialsBudget.Valid {
		t.Error("separate-mode fields should be null after migration")
	}
	if framing.ClientBudget.Valid || framing.YourCost.Valid {
		t.Error("legacy fields should be cleared after migration")
	}
	if a := framing.Allocations[1]; !a.Amount.Valid || !a.Amount.Value.IsZero() {
		t.Errorf("missing allocation amount should default to 0, got %+v", a.Amount)
	}
	if a := framing.Allocations[0]; a.LaborAmount.Valid || a.MaterialsAmount.Valid {
		t.Error("allocation labor/materials amounts should be null")
	}

	permits := got.Projects[0].Categories[1]
	if !permits.TotalBudget.Value.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("Permits TotalBudget = %s, want existing 1200", permits.TotalBudget.Value)
	}
	if !permits.TotalCost.Valid || !permits.TotalCost.Value.IsZero() {
		t.Errorf("Permits TotalCost = %+v, want 0", permits.TotalCost)
	}

	cleanup := got.Projects[0].Categories[2]
	if !cleanup.TotalBudget.Valid || !cleanup.TotalBudget.Value.IsZero() {
		t.Errorf("unparsable clientBudget should default to 0, got %+v", cleanup.TotalBudget)
	}

	pay1 := got.Projects[0].Payments[0]
	if pay1.PaymentMethod == nil || *pay1.PaymentMethod != "check" {
		t.Errorf("PaymentMethod = %v, want check", pay1.PaymentMethod)
	}
	if pay1.Reference == nil || *pay1.Reference != "1042" {
		t.Errorf("Reference = %v, want checkNumber 1042", pay1.Reference)
	}
	if pay1.CheckNumber != nil {
		t.Error("checkNumber should be cleared")
	}

	pay2 := got.Projects[0].Payments[1]
	if pay2.Reference == nil || *pay2.Reference != "" {
		t.Errorf("Reference = %v, want empty string", pay2.Reference)
	}
	if a := pay2.Allocations[0]; !a.Amount.Valid || !a.Amount.Value.IsZero() {
		t.Errorf("payment allocation amount should default to 0, got %+v", a.Amount)
	}

	expense := framing.Expenses[0]
	if expense.Type != nil || expense.PaymentMethod != nil || expense.Reference != nil {
		t.Error("expense type/paymentMethod/reference should be null")
	}
}

func TestMigrateDoesNotModifyInput(t *testing.T) {
	doc := decodeLegacy(t)
	before := Migrate(&Document{Projects: doc.Projects})
	_ = Migrate(doc)

	if doc.SchemaVersion != 0 {
		t.Errorf("input SchemaVersion changed to %d", doc.SchemaVersion)
	}
	if doc.Projects[0].Categories[0].Mode != nil {
		t.Error("input category mode was set")
	}
	if !reflect.DeepEqual(before, Migrate(doc)) {
		t.Error("repeated migration of the same input differs")
	}
}

func TestMigrateIdempotent(t *testing.T) {
	docs := map[string]*Document{
		"legacy":  decodeLegacy(t),
		"empty":   {},
		"current": FromModels(sampleProjects()),
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			once := Migrate(doc)
			twice := Migrate(once)
			if !reflect.DeepEqual(once, twice) {
				t.Errorf("Migrate is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
			}
		})
	}
}

func TestMigrateKeepsEveryRecord(t *testing.T) {
	doc := decodeLegacy(t)
	got := Migrate(doc)

	if len(got.Projects) != len(doc.Projects) {
		t.Fatalf("projects: got %d, want %d", len(got.Projects), len(doc.Projects))
	}
	for pi, p := range doc.Projects {
		mp := got.Projects[pi]
		if len(mp.Categories) != len(p.Categories) || len(mp.Payments) != len(p.Payments) {
			t.Errorf("project %s lost categories or payments", p.ID)
		}
		for ci, c := range p.Categories {
			mc := mp.Categories[ci]
			if mc.Mode == nil {
				t.Errorf("category %s has no mode", c.ID)
			}
			if len(mc.Allocations) != len(c.Allocations) || len(mc.Expenses) != len(c.Expenses) {
				t.Errorf("category %s lost allocations or expenses", c.ID)
			}
		}
		for i, pay := range p.Payments {
			if len(mp.Payments[i].Allocations) != len(pay.Allocations) {
				t.Errorf("payment %s lost allocations", pay.ID)
			}
		}
	}
}

func TestMigrateCurrentDocumentUnchanged(t *testing.T) {
	doc := &Document{
		SchemaVersion: CurrentSchemaVersion,
		Projects: []Project{{
			ID: "p1",
			Categories: []Category{{
				ID:          "c1",
				Mode:        textPtr("separate"),
				LaborBudget: Some(decimal.NewFromInt(100)),
			}},
		}},
	}
	got := Migrate(doc)
	if *got.Projects[0].Categories[0].Mode != "separate" {
		t.Error("current document mode was rewritten")
	}
	if got.Projects[0].Categories[0].TotalBudget.Valid {
		t.Error("current document totalBudget was defaulted")
	}
}

func TestMigrateNil(t *testing.T) {
	got := Migrate(nil)
	if got.SchemaVersion != CurrentSchemaVersion || got.Projects == nil {
		t.Errorf("unexpected result for nil document: %+v", got)
	}
}

func TestEncodeWritesNullGroups(t *testing.T) {
	doc := FromModels(sampleProjects())
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`"schemaVersion": 2`,
		`"laborBudget": null`,
		`"totalBudget": null`,
		`"totalBudget": 30000`,
		`"laborAmount": 32000`,
		`"amount": null`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded document missing %s", want)
		}
	}
	if strings.Contains(out, "clientBudget") || strings.Contains(out, "checkNumber") {
		t.Error("encoded document should not contain legacy keys")
	}
}

func TestToModelsLegacy(t *testing.T) {
	projects := ToModels(decodeLegacy(t))
	if len(projects) != 2 {
		t.Fatalf("got %d projects", len(projects))
	}
	framing := projects[0].Categories[0]
	b, ok := framing.Budget.(models.AllInclusive)
	if !ok {
		t.Fatalf("Budget = %T, want AllInclusive", framing.Budget)
	}
	if !b.TotalBudget.Equal(decimal.NewFromInt(30000)) {
		t.Errorf("TotalBudget = %s", b.TotalBudget)
	}
	if framing.Allocations[0].CategoryID != "c1" {
		t.Errorf("category allocation should inherit category id, got %q", framing.Allocations[0].CategoryID)
	}
	pay := projects[0].Payments[0]
	if pay.Method != models.MethodCheck || pay.Reference != "1042" {
		t.Errorf("payment = %+v", pay)
	}
	if pay.Allocations[0].PaymentID != "pay1" {
		t.Errorf("payment allocation should inherit payment id, got %q", pay.Allocations[0].PaymentID)
	}
	if projects[0].CreatedAt == 0 {
		t.Error("createdAt should be parsed")
	}
}

func TestRoundTripModels(t *testing.T) {
	projects := sampleProjects()
	var buf bytes.Buffer
	if err := Encode(&buf, FromModels(projects)); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	doc, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	got := ToModels(doc)

	electrical := got[0].Categories[1]
	sep, ok := electrical.Budget.(models.Separate)
	if !ok {
		t.Fatalf("Budget = %T, want Separate", electrical.Budget)
	}
	if !sep.LaborCost.Equal(decimal.NewFromInt(32000)) || !sep.MaterialsBudget.Equal(decimal.NewFromInt(12000)) {
		t.Errorf("separate budget mismatch: %+v", sep)
	}
	share, ok := electrical.Allocations[0].Share.(models.LaborMaterials)
	if !ok || !share.Labor.Equal(decimal.NewFromInt(32000)) {
		t.Errorf("share = %+v", electrical.Allocations[0].Share)
	}
	if electrical.Expenses[0].Type != models.ExpenseLabor {
		t.Errorf("expense type = %q", electrical.Expenses[0].Type)
	}
	if got[0].Payments[0].Method != models.MethodZelle {
		t.Errorf("method = %q", got[0].Payments[0].Method)
	}
	if got[0].Payments[0].Date.String() != "2024-02-01" {
		t.Errorf("date = %s", got[0].Payments[0].Date)
	}
}

func TestAmountLenientDecode(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
		want  string
	}{
		{`12.5`, true, "12.5"},
		{`"300"`, true, "300"},
		{`null`, false, ""},
		{`"n/a"`, false, ""},
		{`{}`, false, ""},
	}
	for _, tc := range cases {
		var a Amount
		if err := a.UnmarshalJSON([]byte(tc.in)); err != nil {
			t.Errorf("%s: unexpected error %v", tc.in, err)
			continue
		}
		if a.Valid != tc.valid {
			t.Errorf("%s: Valid = %v, want %v", tc.in, a.Valid, tc.valid)
			continue
		}
		if tc.valid && !a.Value.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("%s: Value = %s, want %s", tc.in, a.Value, tc.want)
		}
	}
}

func sampleProjects() []models.Project {
	return []models.Project{{
		ID:         "p1",
		Name:       "Lopez addition",
		ClientName: "Lopez",
		CreatedAt:  1700000000,
		Categories: []models.Category{
			{
				ID:     "c1",
				Name:   "Framing",
				Budget: models.AllInclusive{TotalBudget: decimal.NewFromInt(30000), TotalCost: decimal.NewFromInt(22000)},
				Allocations: []models.Allocation{{
					ID: "a1", PaymentID: "pay1", CategoryID: "c1",
					Share: models.LumpSum{Amount: decimal.NewFromInt(10000)},
					Date:  models.NewDate(2024, 2, 1),
				}},
			},
			{
				ID:     "c2",
				Name:   "Electrical",
				Budget: models.Separate{LaborBudget: decimal.NewFromInt(45000), LaborCost: decimal.NewFromInt(32000), MaterialsBudget: decimal.NewFromInt(12000)},
				Allocations: []models.Allocation{{
					ID: "a2", PaymentID: "pay1", CategoryID: "c2",
					Share: models.LaborMaterials{Labor: decimal.NewFromInt(32000), Materials: decimal.Zero},
					Date:  models.NewDate(2024, 2, 1),
				}},
				Expenses: []models.Expense{{
					ID: "e1", CategoryID: "c2", Amount: decimal.NewFromInt(32000),
					Type: models.ExpenseLabor, Date: models.NewDate(2024, 2, 3), Description: "Electrician",
				}},
			},
		},
		Payments: []models.Payment{{
			ID: "pay1", ProjectID: "p1", Method: models.MethodZelle, Reference: "ZL-77",
			Amount: decimal.NewFromInt(42000), Date: models.NewDate(2024, 2, 1),
			Allocations: []models.Allocation{
				{ID: "a1", PaymentID: "pay1", CategoryID: "c1", Share: models.LumpSum{Amount: decimal.NewFromInt(10000)}, Date: models.NewDate(2024, 2, 1)},
				{ID: "a2", PaymentID: "pay1", CategoryID: "c2", Share: models.LaborMaterials{Labor: decimal.NewFromInt(32000), Materials: decimal.Zero}, Date: models.NewDate(2024, 2, 1)},
			},
		}},
	}}
}
