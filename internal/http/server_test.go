package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"buildledger/internal/backup"
	"buildledger/internal/budget"
	"buildledger/internal/core"
	"buildledger/internal/invoice"
	"buildledger/internal/kv"
	"buildledger/internal/log"
	"buildledger/internal/storage"
)

var fixedNow = time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC) // Wednesday

func newTestServer(t *testing.T, store kv.Store, opts Options) *Server {
	t.Helper()
	if store == nil {
		store = kv.NewMemory()
	}
	repo := storage.New(store, log.Discard())
	srv := NewServer(":0", Deps{
		Repo:   repo,
		Backup: backup.New(repo, log.Discard()),
		Logger: log.Discard(),
		Now:    func() time.Time { return fixedNow },
	}, opts)
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })
	return srv
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %T: %v (body %s)", v, err, rr.Body.String())
	}
	return v
}

func TestHealthAndReady(t *testing.T) {
	srv := newTestServer(t, nil, Options{})
	for _, path := range []string{"/healthz", "/readyz"} {
		rr := do(t, srv, http.MethodGet, path, "")
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

type downStore struct{ kv.Store }

func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

func TestReadyReportsStoreFailure(t *testing.T) {
	srv := newTestServer(t, downStore{kv.NewMemory()}, Options{})
	if rr := do(t, srv, http.MethodGet, "/readyz", ""); rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestTransactionsCRUD(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	rr := do(t, srv, http.MethodPost, "/api/transactions",
		`{"type":"expense","amount":5200,"category":"materials","description":"Cement\u0007 bags","date":"2025-01-06"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", rr.Code, rr.Body.String())
	}
	created := decode[core.Transaction](t, rr)
	if created.ID == "" || created.Description != "Cement bags" {
		t.Fatalf("unexpected transaction %+v", created)
	}
	if rr.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("api responses must not be cached")
	}

	rr = do(t, srv, http.MethodPost, "/api/transactions",
		`{"type":"income","amount":20000,"category":"income","description":"Advance"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create income status=%d", rr.Code)
	}
	income := decode[core.Transaction](t, rr)
	if !income.Date.Equal(core.DateOf(fixedNow).Time) {
		t.Fatalf("missing date should default to today, got %s", income.Date)
	}

	list := decode[[]core.Transaction](t, do(t, srv, http.MethodGet, "/api/transactions", ""))
	if len(list) != 2 || list[0].ID != income.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}
	expenses := decode[[]core.Transaction](t, do(t, srv, http.MethodGet, "/api/transactions?type=expense", ""))
	if len(expenses) != 1 || expenses[0].ID != created.ID {
		t.Fatalf("type filter failed: %+v", expenses)
	}

	rr = do(t, srv, http.MethodPut, "/api/transactions/"+created.ID,
		`{"type":"expense","amount":6000,"category":"materials","description":"Cement","date":"2025-01-06"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("update status=%d", rr.Code)
	}
	updated := decode[core.Transaction](t, rr)
	if !updated.Amount.Equal(decimal.NewFromInt(6000)) || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("unexpected update %+v", updated)
	}

	summary := decode[core.FinancialSummary](t, do(t, srv, http.MethodGet, "/api/summary?period=month", ""))
	if !summary.NetProfit.Equal(decimal.NewFromInt(14000)) {
		t.Fatalf("net profit = %s", summary.NetProfit)
	}

	if rr := do(t, srv, http.MethodDelete, "/api/transactions/"+created.ID, ""); rr.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d", rr.Code)
	}
	if rr := do(t, srv, http.MethodPut, "/api/transactions/"+created.ID, `{}`); rr.Code != http.StatusNotFound {
		t.Fatalf("update of deleted transaction should 404, got %d", rr.Code)
	}
}

func TestTransactionValidationErrors(t *testing.T) {
	srv := newTestServer(t, nil, Options{})
	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"type":`, http.StatusBadRequest},
		{"empty body", ``, http.StatusBadRequest},
		{"wrong field type", `{"description":5}`, http.StatusBadRequest},
		{"bad date", `{"type":"expense","amount":1,"category":"other","description":"x","date":"08/01/2025"}`, http.StatusBadRequest},
		{"negative amount", `{"type":"expense","amount":-5,"category":"other","description":"x"}`, http.StatusUnprocessableEntity},
		{"unknown type", `{"type":"gift","amount":1,"category":"other","description":"x"}`, http.StatusUnprocessableEntity},
		{"unknown category", `{"type":"expense","amount":1,"category":"food","description":"x"}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, srv, http.MethodPost, "/api/transactions", tt.body)
			if rr.Code != tt.want {
				t.Fatalf("status=%d want %d body=%s", rr.Code, tt.want, rr.Body.String())
			}
			if e := decode[errorBody](t, rr); e.Error == "" || e.RequestID == "" {
				t.Fatalf("error body should carry a message and request id: %+v", e)
			}
		})
	}

	if rr := do(t, srv, http.MethodGet, "/api/summary?period=decade", ""); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid period should be 422, got %d", rr.Code)
	}
	if rr := do(t, srv, http.MethodGet, "/api/nothing-here", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown api route should be 404, got %d", rr.Code)
	}
}

func TestLaborPaymentFlow(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	worker := decode[core.Worker](t, do(t, srv, http.MethodPost, "/api/workers", `{"name":"Rahim","hourlyRate":100}`))
	if worker.ID == "" {
		t.Fatalf("worker not created")
	}

	rr := do(t, srv, http.MethodPost, "/api/labor",
		`{"workerId":"`+worker.ID+`","weekOf":"2025-01-08","daysWorked":6,"regularHours":48,"overtimeHours":4}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create labor status=%d body=%s", rr.Code, rr.Body.String())
	}
	p := decode[core.LaborPayment](t, rr)
	// 48*100 + 4*150
	if !p.TotalAmount.Equal(decimal.NewFromInt(5400)) || p.WeekStart.String() != "2025-01-06" {
		t.Fatalf("unexpected payment %+v", p)
	}
	if txs := decode[[]core.Transaction](t, do(t, srv, http.MethodGet, "/api/transactions", "")); len(txs) != 0 {
		t.Fatalf("unpaid payment must not create a transaction")
	}

	if rr := do(t, srv, http.MethodPost, "/api/labor/"+p.ID+"/pay", ""); rr.Code != http.StatusOK {
		t.Fatalf("pay status=%d", rr.Code)
	}
	txs := decode[[]core.Transaction](t, do(t, srv, http.MethodGet, "/api/transactions", ""))
	if len(txs) != 1 || txs[0].ID != core.CompanionID(p.ID) || txs[0].Category != core.CategoryLabor {
		t.Fatalf("expected companion transaction, got %+v", txs)
	}

	week := decode[core.WeekSummary](t, do(t, srv, http.MethodGet, "/api/labor/week?date=2025-01-10", ""))
	if week.Payments != 1 || !week.Paid.Equal(decimal.NewFromInt(5400)) {
		t.Fatalf("unexpected week summary %+v", week)
	}
	if got := decode[[]core.LaborPayment](t, do(t, srv, http.MethodGet, "/api/labor?week=2024-12-30", "")); len(got) != 0 {
		t.Fatalf("week filter returned %d payments", len(got))
	}

	if rr := do(t, srv, http.MethodDelete, "/api/labor/"+p.ID, ""); rr.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d", rr.Code)
	}
	if txs := decode[[]core.Transaction](t, do(t, srv, http.MethodGet, "/api/transactions", "")); len(txs) != 0 {
		t.Fatalf("companion should be deleted with the payment")
	}

	if rr := do(t, srv, http.MethodPost, "/api/labor", `{"workerId":"missing"}`); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown worker should 404, got %d", rr.Code)
	}
	if rr := do(t, srv, http.MethodPost, "/api/labor/missing/pay", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown payment should 404, got %d", rr.Code)
	}
}

func TestWorkAmount(t *testing.T) {
	srv := newTestServer(t, nil, Options{})
	got := decode[map[string]any](t, do(t, srv, http.MethodPost, "/api/labor/work-amount",
		`{"days":5,"hoursPerDay":8,"hourlyRate":100,"quantity":10,"unitPrice":50}`))
	if got["amount"] != float64(4000) || got["formula"] != "5×8×100" {
		t.Fatalf("unexpected work amount %v", got)
	}
}

func TestInvoiceEndpoints(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	rr := do(t, srv, http.MethodPost, "/api/invoices", `{
		"seller":{"name":"J&S Construction","address":"Dhaka"},
		"buyer":{"name":"Karim","address":"Chattogram"},
		"items":[{"description":"Cement","quantity":10,"unit":"bag","unitPrice":520}],
		"discountPercent":10,
		"dueDate":"2025-01-01"
	}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", rr.Code, rr.Body.String())
	}
	inv := decode[invoice.Invoice](t, rr)
	// 5200 - 520 discount = 4680, VAT 15% = 702
	if !inv.TotalAmount.Equal(decimal.NewFromInt(5382)) || inv.Status != invoice.StatusDraft {
		t.Fatalf("unexpected invoice totals %+v", inv)
	}
	if view := decode[map[string]any](t, rr); view["formattedTotal"] != "৳5,382" {
		t.Fatalf("formatted total = %v", view["formattedTotal"])
	}

	rr = do(t, srv, http.MethodPatch, "/api/invoices/"+inv.ID+"/status", `{"status":"sent","amountPaid":1000}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status update=%d", rr.Code)
	}
	partial := decode[invoice.Invoice](t, rr)
	if !partial.BalanceDue.Equal(decimal.NewFromInt(4382)) || partial.Status != invoice.StatusSent {
		t.Fatalf("unexpected partial payment %+v", partial)
	}

	sum := decode[invoice.Summary](t, do(t, srv, http.MethodGet, "/api/invoices/summary", ""))
	if sum.OverdueCount != 1 || !sum.TotalOutstanding.Equal(decimal.NewFromInt(4382)) {
		t.Fatalf("unexpected summary %+v", sum)
	}

	if rr := do(t, srv, http.MethodPatch, "/api/invoices/"+inv.ID+"/status", `{"status":"lost"}`); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid status should be 422, got %d", rr.Code)
	}

	withItem := decode[invoice.Invoice](t, do(t, srv, http.MethodPost, "/api/invoices/"+inv.ID+"/items",
		`{"description":"Sand","quantity":100,"unit":"cft","unitPrice":50}`))
	if len(withItem.Items) != 2 {
		t.Fatalf("item not added: %+v", withItem.Items)
	}
	without := decode[invoice.Invoice](t, do(t, srv, http.MethodDelete,
		"/api/invoices/"+inv.ID+"/items/"+withItem.Items[1].ID, ""))
	if len(without.Items) != 1 || !without.TotalAmount.Equal(inv.TotalAmount) {
		t.Fatalf("item not removed: %+v", without)
	}

	rr = do(t, srv, http.MethodGet, "/api/invoices/"+inv.ID+"/csv", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Header().Get("Content-Disposition"), inv.InvoiceNumber) {
		t.Fatalf("csv download failed: %d %v", rr.Code, rr.Header())
	}

	if rr := do(t, srv, http.MethodPost, "/api/invoices", `{"templateId":"nope","seller":{"name":"a"},"buyer":{"name":"b"}}`); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown template should 404, got %d", rr.Code)
	}
	if rr := do(t, srv, http.MethodPost, "/api/invoices", `{"seller":{"name":"a"},"buyer":{"name":"b"}}`); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invoice without items should be 422, got %d", rr.Code)
	}
}

func TestBudgetEndpoints(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	rr := do(t, srv, http.MethodPost, "/api/budgets", `{"templateId":"renovation-standard","projectName":"Flat 4B"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", rr.Code, rr.Body.String())
	}
	b := decode[budget.Budget](t, rr)
	if len(b.Items) == 0 || b.Status != budget.StatusDraft {
		t.Fatalf("template items missing: %+v", b)
	}

	item := b.Items[0]
	over := item.EstimatedAmount.Add(b.TotalEstimated)
	rr = do(t, srv, http.MethodPut, "/api/budgets/"+b.ID+"/items/"+item.ID+"/actual", `{"actualAmount":`+over.String()+`}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("actual update=%d body=%s", rr.Code, rr.Body.String())
	}
	updated := decode[budget.Budget](t, rr)
	if !updated.TotalActual.Equal(over) {
		t.Fatalf("total actual = %s, want %s", updated.TotalActual, over)
	}

	alerts := decode[[]budget.Alert](t, do(t, srv, http.MethodGet, "/api/budgets/"+b.ID+"/alerts", ""))
	if len(alerts) < 2 || alerts[0].Type != budget.AlertOverBudget {
		t.Fatalf("expected over-budget alerts, got %+v", alerts)
	}

	rr = do(t, srv, http.MethodGet, "/api/budgets/"+b.ID+"/report", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "Budget Report") {
		t.Fatalf("report failed: %d %s", rr.Code, rr.Body.String())
	}

	rr = do(t, srv, http.MethodPatch, "/api/budgets/"+b.ID+"/status", `{"status":"active"}`)
	if got := decode[map[string]any](t, rr); got["status"] != "active" {
		t.Fatalf("status not updated: %v", got["status"])
	}

	if rr := do(t, srv, http.MethodPut, "/api/budgets/"+b.ID+"/items/missing/actual", `{"actualAmount":1}`); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown item should 404, got %d", rr.Code)
	}
	if rr := do(t, srv, http.MethodDelete, "/api/budgets/"+b.ID, ""); rr.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d", rr.Code)
	}
	if rr := do(t, srv, http.MethodGet, "/api/budgets/"+b.ID, ""); rr.Code != http.StatusNotFound {
		t.Fatalf("deleted budget should 404, got %d", rr.Code)
	}
}

func TestTaxAndReferenceEndpoints(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	vat := decode[vatResponse](t, do(t, srv, http.MethodPost, "/api/tax/vat", `{"amount":1150,"inclusive":true}`))
	if !vat.Base.Equal(decimal.NewFromInt(1000)) || !vat.VAT.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("unexpected inclusive VAT %+v", vat)
	}
	vat = decode[vatResponse](t, do(t, srv, http.MethodPost, "/api/tax/vat", `{"amount":1000,"material":"bricks"}`))
	if !vat.Rate.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("bricks should use the reduced rate, got %s", vat.Rate)
	}

	year := decode[map[string]any](t, do(t, srv, http.MethodGet, "/api/tax/year", ""))
	if year["label"] != "2024-25" {
		t.Fatalf("fiscal year label = %v", year["label"])
	}

	for _, path := range []string{
		"/api/tax/rates",
		"/api/refdata/categories",
		"/api/refdata/categories?type=income",
		"/api/refdata/quick-expenses",
		"/api/refdata/prices",
		"/api/refdata/prices?q=cement",
		"/api/refdata/currencies",
		"/api/invoices/templates",
		"/api/budgets/templates",
		"/api/plugins",
	} {
		if rr := do(t, srv, http.MethodGet, path, ""); rr.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}

	rr := do(t, srv, http.MethodPut, "/api/settings/currency", `{"displayCurrency":"XYZ"}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown currency should be 422, got %d", rr.Code)
	}
	rr = do(t, srv, http.MethodPut, "/api/settings/currency", `{"displayCurrency":"USD"}`)
	settings := decode[core.CurrencySettings](t, rr)
	if settings.DisplayCurrency != "USD" || settings.DefaultCurrency != "BDT" {
		t.Fatalf("partial update should keep other fields: %+v", settings)
	}
}

func TestPluginToggle(t *testing.T) {
	srv := newTestServer(t, nil, Options{})
	p := decode[core.Plugin](t, do(t, srv, http.MethodPatch, "/api/plugins/tax-calculator", `{"installed":false,"enabled":true}`))
	if p.IsEnabled {
		t.Fatalf("an uninstalled plugin cannot be enabled")
	}
	if rr := do(t, srv, http.MethodPatch, "/api/plugins/unknown", `{"installed":true}`); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown plugin should 404, got %d", rr.Code)
	}
}

func TestMaterialsEndpoints(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	q := decode[core.MaterialQuantities](t, do(t, srv, http.MethodPost, "/api/materials/calculate", `{"area":1000,"floors":2}`))
	if !q.Cement.Equal(decimal.NewFromInt(800)) || !q.Bricks.Equal(decimal.NewFromInt(16000)) {
		t.Fatalf("unexpected quantities %+v", q)
	}
	if rr := do(t, srv, http.MethodPost, "/api/materials/calculate", `{"area":0}`); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("zero area should be 422, got %d", rr.Code)
	}

	rr := do(t, srv, http.MethodPost, "/api/materials", `{"name":"Ground floor","area":1200,"floors":1}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("save estimate status=%d", rr.Code)
	}
	e := decode[core.MaterialEstimate](t, rr)
	if list := decode[[]core.MaterialEstimate](t, do(t, srv, http.MethodGet, "/api/materials", "")); len(list) != 1 {
		t.Fatalf("expected one estimate, got %d", len(list))
	}
	if rr := do(t, srv, http.MethodDelete, "/api/materials/"+e.ID, ""); rr.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d", rr.Code)
	}

	cost := decode[map[string]any](t, do(t, srv, http.MethodPost, "/api/materials/cost",
		`{"lines":[{"itemId":"cement-1","quantity":10},{"itemId":"missing","quantity":5}]}`))
	if cost["subtotal"] != float64(5200) {
		t.Fatalf("unexpected cost %v", cost)
	}
}

func TestBackupRoundTripAndExports(t *testing.T) {
	srv := newTestServer(t, nil, Options{})
	do(t, srv, http.MethodPost, "/api/workers", `{"name":"Karim","hourlyRate":90}`)
	do(t, srv, http.MethodPost, "/api/transactions", `{"type":"expense","amount":300,"category":"other","description":"Tea"}`)

	rr := do(t, srv, http.MethodGet, "/api/backup", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Header().Get("Content-Disposition"), "js-accounting-bd-backup-") {
		t.Fatalf("backup download failed: %d %v", rr.Code, rr.Header())
	}
	bundle := rr.Body.String()

	if rr := do(t, srv, http.MethodDelete, "/api/data", ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("clear without confirmation should be 400, got %d", rr.Code)
	}
	if rr := do(t, srv, http.MethodDelete, "/api/data?confirm=yes", ""); rr.Code != http.StatusNoContent {
		t.Fatalf("clear status=%d", rr.Code)
	}
	if w := decode[[]core.Worker](t, do(t, srv, http.MethodGet, "/api/workers", "")); len(w) != 0 {
		t.Fatalf("workers should be cleared")
	}

	rr = do(t, srv, http.MethodPost, "/api/backup/restore", bundle)
	if rr.Code != http.StatusOK {
		t.Fatalf("restore status=%d body=%s", rr.Code, rr.Body.String())
	}
	if s := decode[backup.Summary](t, rr); s.TotalWorkers != 1 || s.TotalTransactions != 1 {
		t.Fatalf("unexpected restore summary %+v", s)
	}

	if rr := do(t, srv, http.MethodPost, "/api/backup/restore", `{"version":"1.0"}`); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("incomplete bundle should be 422, got %d", rr.Code)
	}
	if w := decode[[]core.Worker](t, do(t, srv, http.MethodGet, "/api/workers", "")); len(w) != 1 {
		t.Fatalf("a rejected restore must leave data untouched")
	}

	downloads := map[string]string{
		"/api/export/csv/transactions":    "text/csv",
		"/api/export/csv/workers":         "text/csv",
		"/api/export/excel":               "application/vnd.ms-excel",
		"/api/export/summary?period=year": "application/vnd.ms-excel",
		"/api/export/xlsx":                "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}
	for path, ct := range downloads {
		rr := do(t, srv, http.MethodGet, path, "")
		if rr.Code != http.StatusOK || !strings.HasPrefix(rr.Header().Get("Content-Type"), ct) || rr.Body.Len() == 0 {
			t.Fatalf("%s: status=%d content-type=%q", path, rr.Code, rr.Header().Get("Content-Type"))
		}
	}
	if rr := do(t, srv, http.MethodGet, "/api/export/csv/receipts", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown collection should 404, got %d", rr.Code)
	}

	stats := decode[map[string]any](t, do(t, srv, http.MethodGet, "/api/backup/stats", ""))
	if stats["itemCount"] == float64(0) || stats["formattedSize"] == "" {
		t.Fatalf("unexpected stats %v", stats)
	}
}

func TestRateLimitAppliesToWrites(t *testing.T) {
	srv := newTestServer(t, nil, Options{RateLimitPerMinute: 2})

	for i := 0; i < 2; i++ {
		if rr := do(t, srv, http.MethodPost, "/api/workers", `{"name":"W","hourlyRate":10}`); rr.Code != http.StatusCreated {
			t.Fatalf("request %d status=%d", i, rr.Code)
		}
	}
	rr := do(t, srv, http.MethodPost, "/api/workers", `{"name":"W","hourlyRate":10}`)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rr.Code)
	}
	if rr := do(t, srv, http.MethodGet, "/api/workers", ""); rr.Code != http.StatusOK {
		t.Fatalf("reads are not limited, got %d", rr.Code)
	}

	m := decode[map[string]map[string]any](t, do(t, srv, http.MethodGet, "/api/metrics", ""))
	if m["rateLimit"]["limitedRequests"] != float64(1) {
		t.Fatalf("unexpected metrics %v", m)
	}
}

func TestSecurityHeadersAndRequestID(t *testing.T) {
	srv := newTestServer(t, nil, Options{})
	req := httptest.NewRequest(http.MethodGet, "/api/workers", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("request id not echoed")
	}
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("security headers missing")
	}
}
