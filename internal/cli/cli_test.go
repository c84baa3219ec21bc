package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"buildledger/internal/backup"
	"buildledger/internal/budget"
	"buildledger/internal/config"
	"buildledger/internal/core"
	"buildledger/internal/invoice"
	"buildledger/internal/kv"
	"buildledger/internal/log"
	"buildledger/internal/storage"
)

var fixedNow = time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC)

type testApp struct {
	repo *storage.Repository
	out  *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return &testApp{
		repo: storage.New(kv.NewMemory(), log.Discard()),
		out:  &bytes.Buffer{},
	}
}

// run executes one command line against a fresh command tree sharing the
// same repository.
func (ta *testApp) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ta.out.Reset()
	app := &App{
		Repo:   ta.repo,
		Backup: backup.New(ta.repo, log.Discard()),
		Logger: log.Discard(),
		Out:    ta.out,
		Now:    func() time.Time { return fixedNow },
	}
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	return ta.out.String(), err
}

func (ta *testApp) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := ta.run(t, args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out
}

func decodeOut[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode %T: %v\n%s", v, err, out)
	}
	return v
}

func TestTaxCommands(t *testing.T) {
	ta := newTestApp(t)
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"tax", "vat", "10000"}, "Total: ৳11,500"},
		{[]string{"tax", "vat", "1150", "--inclusive"}, "Base:  ৳1,000"},
		{[]string{"tax", "vat", "1000", "--material", "bricks"}, "(5%)"},
		{[]string{"tax", "income", "1600000"}, "Total tax: ৳187,500"},
		{[]string{"tax", "year"}, "FY 2024-25 (2024-07-01 to 2025-06-30)"},
		{[]string{"tax", "summary", "--income", "1,200,000"}, "Final tax"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out := ta.mustRun(t, tt.args...)
			if !strings.Contains(out, tt.want) {
				t.Fatalf("output missing %q:\n%s", tt.want, out)
			}
		})
	}

	if _, err := ta.run(t, "tax", "vat", "lots"); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := ta.run(t, "tax", "summary"); err == nil {
		t.Fatalf("summary without --income should fail")
	}
}

func TestLaborFlowCreatesCompanionExpense(t *testing.T) {
	ta := newTestApp(t)
	w := decodeOut[core.Worker](t, ta.mustRun(t, "workers", "add", "Rahim", "100", "--json"))

	p := decodeOut[core.LaborPayment](t, ta.mustRun(t, "labor", "add", w.ID,
		"--week", "2025-01-08", "--days", "6", "--hours", "48", "--overtime", "4", "--json"))
	if p.WeekStart.String() != "2025-01-06" || p.TotalAmount.String() != "5400" {
		t.Fatalf("unexpected payment %+v", p)
	}

	ta.mustRun(t, "labor", "pay", p.ID)
	txs := decodeOut[[]core.Transaction](t, ta.mustRun(t, "transactions", "list", "--json"))
	if len(txs) != 1 || txs[0].ID != core.CompanionID(p.ID) {
		t.Fatalf("expected companion transaction, got %+v", txs)
	}

	out := ta.mustRun(t, "labor", "week", "2025-01-10")
	if !strings.Contains(out, "Paid:     ৳5,400") {
		t.Fatalf("week summary:\n%s", out)
	}

	ta.mustRun(t, "labor", "delete", p.ID)
	if out := ta.mustRun(t, "transactions", "list"); !strings.Contains(out, "0 transactions") {
		t.Fatalf("companion should be gone:\n%s", out)
	}

	if _, err := ta.run(t, "labor", "pay", "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := ta.run(t, "labor", "add", "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown worker, got %v", err)
	}
}

func TestTransactionsAddAndSummary(t *testing.T) {
	ta := newTestApp(t)
	ta.mustRun(t, "transactions", "add", "income", "20000", "Advance")
	ta.mustRun(t, "transactions", "add", "expense", "5,200", "Cement", "--category", "materials", "--date", "2025-01-06")

	s := decodeOut[core.FinancialSummary](t, ta.mustRun(t, "transactions", "summary", "--json"))
	if s.NetProfit.String() != "14800" || s.Count != 2 {
		t.Fatalf("unexpected summary %+v", s)
	}

	expenses := decodeOut[[]core.Transaction](t, ta.mustRun(t, "tx", "list", "--type", "expense", "--json"))
	if len(expenses) != 1 || expenses[0].Category != core.CategoryMaterials {
		t.Fatalf("type filter: %+v", expenses)
	}

	if _, err := ta.run(t, "transactions", "add", "gift", "1", "x"); !errors.Is(err, core.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
	if _, err := ta.run(t, "transactions", "summary", "--period", "decade"); !errors.Is(err, core.ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestInvoiceCommands(t *testing.T) {
	ta := newTestApp(t)
	inv := decodeOut[invoice.Invoice](t, ta.mustRun(t, "invoice", "new",
		"--seller", "J&S Construction", "--buyer", "Karim",
		"--item", "Cement:10:bag:520", "--discount", "10", "--due", "2025-01-01", "--json"))
	if inv.TotalAmount.String() != "5382" {
		t.Fatalf("total = %s", inv.TotalAmount)
	}

	out := ta.mustRun(t, "invoice", "pay", inv.ID, "1000")
	if !strings.Contains(out, "is sent, balance ৳4,382") {
		t.Fatalf("partial payment:\n%s", out)
	}
	s := decodeOut[invoice.Summary](t, ta.mustRun(t, "invoice", "summary", "--json"))
	if s.OverdueCount != 1 || s.TotalOverdue.String() != "4382" {
		t.Fatalf("unexpected summary %+v", s)
	}
	if out := ta.mustRun(t, "invoice", "pay", inv.ID, "5382"); !strings.Contains(out, "is paid") {
		t.Fatalf("full payment:\n%s", out)
	}

	csvOut := ta.mustRun(t, "invoice", "csv", inv.ID)
	if !strings.Contains(csvOut, inv.InvoiceNumber) || !strings.Contains(csvOut, "Cement") {
		t.Fatalf("csv:\n%s", csvOut)
	}

	tpl := decodeOut[invoice.Invoice](t, ta.mustRun(t, "invoice", "new", "--template", "labor-only",
		"--seller", "J&S", "--buyer", "Rahima", "--json"))
	if len(tpl.Items) != 3 || !tpl.VATAmount.IsZero() {
		t.Fatalf("template invoice %+v", tpl)
	}

	if _, err := ta.run(t, "invoice", "new", "--template", "nope", "--seller", "a", "--buyer", "b"); !errors.Is(err, invoice.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if _, err := ta.run(t, "invoice", "new", "--seller", "a", "--buyer", "b", "--item", "Cement:ten:bag:520"); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for a bad item, got %v", err)
	}
}

func TestBudgetCommands(t *testing.T) {
	ta := newTestApp(t)
	b := decodeOut[budget.Budget](t, ta.mustRun(t, "budget", "new", "Flat 4B", "--template", "renovation-standard", "--json"))
	if len(b.Items) == 0 {
		t.Fatalf("template items missing")
	}
	item := b.Items[0]
	over := item.EstimatedAmount.Add(b.TotalEstimated).String()

	ta.mustRun(t, "budget", "actual", b.ID, item.ID, over)
	alerts := decodeOut[[]budget.Alert](t, ta.mustRun(t, "budget", "alerts", b.ID, "--json"))
	if alerts[0].Type != budget.AlertOverBudget {
		t.Fatalf("expected over-budget alert first, got %+v", alerts)
	}
	if out := ta.mustRun(t, "budget", "report", b.ID); !strings.Contains(out, "Budget Report: ") {
		t.Fatalf("report:\n%s", out)
	}
	if out := ta.mustRun(t, "budget", "csv", b.ID); !strings.HasPrefix(out, "Budget Report\n") {
		t.Fatalf("csv:\n%s", out)
	}
	if _, err := ta.run(t, "budget", "actual", b.ID, "missing", "1"); !errors.Is(err, budget.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	empty := decodeOut[budget.Budget](t, ta.mustRun(t, "budget", "new", "Shop", "--json"))
	if empty.Name != "Shop" || len(empty.Items) != 0 {
		t.Fatalf("empty budget %+v", empty)
	}
	if out := ta.mustRun(t, "budget", "list"); !strings.Contains(out, "2 budgets") {
		t.Fatalf("list:\n%s", out)
	}
}

func TestReferenceCommands(t *testing.T) {
	ta := newTestApp(t)
	if out := ta.mustRun(t, "prices", "search", "cement"); !strings.Contains(out, "cement-1") {
		t.Fatalf("search:\n%s", out)
	}
	if _, err := ta.run(t, "prices", "list", "nope"); err == nil {
		t.Fatalf("unknown price category should fail")
	}
	if out := ta.mustRun(t, "materials", "estimate", "1000", "--floors", "2"); !strings.Contains(out, "16000") {
		t.Fatalf("estimate:\n%s", out)
	}
	if _, err := ta.run(t, "materials", "estimate", "0"); !errors.Is(err, core.ErrInvalidArea) {
		t.Fatalf("expected ErrInvalidArea, got %v", err)
	}
	e := decodeOut[core.MaterialEstimate](t, ta.mustRun(t, "materials", "save", "Ground floor", "1200", "--json"))
	if out := ta.mustRun(t, "materials", "list"); !strings.Contains(out, e.ID) {
		t.Fatalf("list:\n%s", out)
	}

	if out := ta.mustRun(t, "currency", "convert", "100", "usd", "bdt"); !strings.HasPrefix(out, "৳") {
		t.Fatalf("convert:\n%s", out)
	}
	s := decodeOut[core.CurrencySettings](t, ta.mustRun(t, "currency", "settings", "--display", "usd", "--json"))
	if s.DisplayCurrency != "USD" || s.DefaultCurrency != "BDT" {
		t.Fatalf("settings %+v", s)
	}
	if _, err := ta.run(t, "currency", "settings", "--display", "XYZ"); !errors.Is(err, storage.ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}

	p := decodeOut[core.Plugin](t, ta.mustRun(t, "plugins", "toggle", "tax-calculator", "--installed=false", "--json"))
	if p.IsInstalled || p.IsEnabled {
		t.Fatalf("plugin %+v", p)
	}
}

func TestBackupAndExportCommands(t *testing.T) {
	ta := newTestApp(t)
	ta.mustRun(t, "workers", "add", "Karim", "90")
	ta.mustRun(t, "transactions", "add", "expense", "300", "Tea")

	dir := t.TempDir()
	file := filepath.Join(dir, "ledger.json")
	if out := ta.mustRun(t, "backup", "create", "-o", file); !strings.Contains(out, "1 transactions") {
		t.Fatalf("create:\n%s", out)
	}

	if _, err := ta.run(t, "backup", "clear"); err == nil {
		t.Fatalf("clear without --yes should fail")
	}
	ta.mustRun(t, "backup", "clear", "--yes")
	if out := ta.mustRun(t, "workers", "list"); !strings.Contains(out, "0 workers") {
		t.Fatalf("workers after clear:\n%s", out)
	}

	if _, err := ta.run(t, "backup", "restore", file); err == nil {
		t.Fatalf("restore without --yes should fail")
	}
	ta.mustRun(t, "backup", "restore", file, "--yes")
	s := decodeOut[backup.Summary](t, ta.mustRun(t, "backup", "summary", "--json"))
	if s.TotalWorkers != 1 || s.TotalTransactions != 1 {
		t.Fatalf("summary after restore %+v", s)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"version":"1.0"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ta.run(t, "backup", "restore", bad, "--yes"); !errors.Is(err, backup.ErrInvalidBackup) {
		t.Fatalf("expected ErrInvalidBackup, got %v", err)
	}

	if out := ta.mustRun(t, "export", "csv", "workers"); !strings.Contains(out, "Karim") {
		t.Fatalf("csv:\n%s", out)
	}
	if _, err := ta.run(t, "export", "csv", "receipts"); err == nil {
		t.Fatalf("unknown collection should fail")
	}
	xlsx := filepath.Join(dir, "ledger.xlsx")
	ta.mustRun(t, "export", "xlsx", xlsx)
	if st, err := os.Stat(xlsx); err != nil || st.Size() == 0 {
		t.Fatalf("xlsx not written: %v", err)
	}
	if out := ta.mustRun(t, "backup", "stats"); !strings.Contains(out, "total") {
		t.Fatalf("stats:\n%s", out)
	}
}

func TestBackendConfig(t *testing.T) {
	cfg := config.Load()
	cfg.DataBackend = "memory"
	cfg.CacheEnabled = false
	res, err := OpenBackend(context.Background(), log.Discard(), cfg)
	if err != nil {
		t.Fatalf("open memory backend: %v", err)
	}
	defer res.Cleanup()
	if res.Cache != nil {
		t.Fatalf("cache should be disabled")
	}

	cfg.DataBackend = "floppy"
	if _, err := OpenBackend(context.Background(), log.Discard(), cfg); err == nil {
		t.Fatalf("unknown backend should fail")
	}
}
