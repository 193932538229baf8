package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"30000", "30000"},
		{" 1.25 ", "1.25"},
		{"$12,500.50", "12500.5"},
		{"", "0"},
		{"abc", "0"},
		{"-5", "-5"},
	}
	for _, tc := range cases {
		got := ParseAmount(tc.in)
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.String() != "2024-03-15" {
		t.Errorf("got %s, want 2024-03-15", d)
	}

	d, err = ParseDate("2024-03-15T18:30:00Z")
	if err != nil {
		t.Fatalf("ParseDate RFC3339 failed: %v", err)
	}
	if d.String() != "2024-03-15" {
		t.Errorf("got %s, want 2024-03-15", d)
	}

	d, err = ParseDate("")
	if err != nil || !d.IsZero() {
		t.Errorf("empty date: got %v, %v", d, err)
	}

	if _, err := ParseDate("15/03/2024"); err == nil {
		t.Error("expected error for unsupported layout")
	}
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}
	b, err := json.Marshal(wrapper{Date: NewDate(2024, 1, 2)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"date":"2024-01-02"}` {
		t.Errorf("unexpected JSON %s", b)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"date":null}`), &w); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !w.Date.IsZero() {
		t.Errorf("expected zero date, got %v", w.Date)
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := ParseMode("separate"); err != nil {
		t.Errorf("separate: %v", err)
	}
	if _, err := ParseMode("hybrid"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if _, err := ParsePaymentMethod("zelle"); err != nil {
		t.Errorf("zelle: %v", err)
	}
	if _, err := ParsePaymentMethod("wire"); err == nil {
		t.Error("expected error for unknown method")
	}
	if typ, err := ParseExpenseType(""); err != nil || typ != "" {
		t.Errorf("empty type: %q, %v", typ, err)
	}
	if _, err := ParseExpenseType("equipment"); err == nil {
		t.Error("expected error for unknown expense type")
	}
}

func TestCategoryName(t *testing.T) {
	p := Project{Categories: []Category{{ID: "c1", Name: "Framing"}}}
	if got := p.CategoryName("c1"); got != "Framing" {
		t.Errorf("got %q", got)
	}
	if got := p.CategoryName("gone"); got != UnknownCategory {
		t.Errorf("got %q, want %q", got, UnknownCategory)
	}
}

func TestSharePositive(t *testing.T) {
	if (LumpSum{}).Positive() {
		t.Error("zero lump sum should not be positive")
	}
	if !(LaborMaterials{Materials: decimal.NewFromInt(1)}).Positive() {
		t.Error("materials-only share should be positive")
	}
	if (Category{}).Mode() != ModeAllInclusive {
		t.Error("category without budget should default to all-inclusive")
	}
}
