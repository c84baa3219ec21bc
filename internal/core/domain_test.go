package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:          "t1",
		Type:        Expense,
		Amount:      decimal.NewFromInt(100),
		Category:    CategoryMaterials,
		Description: "Cement",
		Date:        NewDate(2025, 1, 1),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []struct {
		mut  func(*Transaction)
		want error
	}{
		{func(x *Transaction) { x.ID = " " }, ErrEmptyID},
		{func(x *Transaction) { x.Type = "loan" }, ErrInvalidType},
		{func(x *Transaction) { x.Category = "food" }, ErrInvalidCategory},
		{func(x *Transaction) { x.Amount = decimal.NewFromInt(-1) }, ErrInvalidAmount},
		{func(x *Transaction) { x.Date = Date{} }, nil},
	}
	for i, tc := range bads {
		tx := good
		tc.mut(&tx)
		err := tx.Validate()
		if err == nil {
			t.Fatalf("case %d expected error", i)
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestWorkerValidate(t *testing.T) {
	if err := (Worker{ID: "w", Name: "Rahim", HourlyRate: decimal.NewFromInt(150)}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Worker{ID: "w", Name: "  "}).Validate(); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if err := (Worker{ID: "w", Name: "a", HourlyRate: decimal.NewFromInt(-5)}).Validate(); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate, got %v", err)
	}
}

func TestLaborPaymentValidateWeekStart(t *testing.T) {
	p := LaborPayment{ID: "p", WorkerName: "Karim", WeekStart: NewDate(2025, 1, 6)}
	if err := p.Validate(); err != nil {
		t.Fatalf("monday expected ok, got %v", err)
	}
	p.WeekStart = NewDate(2025, 1, 7)
	if err := p.Validate(); !errors.Is(err, ErrWeekStartNotMonday) {
		t.Fatalf("tuesday expected ErrWeekStartNotMonday, got %v", err)
	}
	p.WeekStart = NewDate(2025, 1, 6)
	p.DaysWorked = 8
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for 8 days")
	}
}

func TestDefaultPlugins(t *testing.T) {
	plugins := DefaultPlugins()
	if len(plugins) != 6 {
		t.Fatalf("expected 6 plugins, got %d", len(plugins))
	}
	seen := map[string]bool{}
	for _, p := range plugins {
		if err := p.Validate(); err != nil {
			t.Fatalf("plugin %s invalid: %v", p.ID, err)
		}
		if p.IsInstalled || p.IsEnabled {
			t.Fatalf("plugin %s should start disabled", p.ID)
		}
		if p.Version != "1.0.0" || p.Author != "BuildLedger Team" {
			t.Fatalf("plugin %s unexpected version/author %q/%q", p.ID, p.Version, p.Author)
		}
		seen[p.ID] = true
	}
	for _, id := range []string{"invoice-generator", "project-tracker", "tax-calculator", "receipt-scanner", "budget-planner", "export-reports"} {
		if !seen[id] {
			t.Fatalf("missing plugin %s", id)
		}
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id == "" || seen[id] {
			t.Fatalf("duplicate or empty id %q", id)
		}
		seen[id] = true
	}
}
