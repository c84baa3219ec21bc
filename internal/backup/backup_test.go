package backup

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"buildledger/internal/core"
	"buildledger/internal/kv"
	"buildledger/internal/log"
	"buildledger/internal/storage"
)

var fixedNow = time.Date(2025, 3, 9, 8, 30, 0, 0, time.UTC)

func newService(t *testing.T, store kv.Store) (*Service, *storage.Repository) {
	t.Helper()
	if store == nil {
		store = kv.NewMemory()
	}
	repo := storage.New(store, log.Discard())
	s := New(repo, log.Discard())
	s.now = func() time.Time { return fixedNow }
	return s, repo
}

func seed(t *testing.T, repo *storage.Repository) {
	t.Helper()
	ctx := context.Background()
	err := repo.SaveTransaction(ctx, core.Transaction{
		ID: "t1", Type: core.Income, Amount: decimal.NewFromInt(5000),
		Category: core.CategoryIncome, Description: "Advance", Date: core.NewDate(2025, 3, 1),
	})
	if err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
	if err := repo.SaveWorker(ctx, core.Worker{ID: "w1", Name: "Rahim", HourlyRate: decimal.NewFromInt(100)}); err != nil {
		t.Fatalf("seed worker: %v", err)
	}
	if err := repo.SaveCurrencySettings(ctx, core.CurrencySettings{DefaultCurrency: "BDT", DisplayCurrency: "USD", SecondaryCurrency: "EUR"}); err != nil {
		t.Fatalf("seed settings: %v", err)
	}
}

func TestCreateRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	src, srcRepo := newService(t, nil)
	seed(t, srcRepo)

	d, err := src.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.Version != FormatVersion || d.AppName != AppName || !d.CreatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected header %+v", d)
	}
	if len(d.Transactions) != 1 || len(d.Workers) != 1 || d.Plugins == nil || d.Invoices == nil {
		t.Fatalf("unexpected contents %+v", d)
	}
	if d.CurrencySettings == nil || d.CurrencySettings.DisplayCurrency != "USD" {
		t.Fatalf("expected stored settings, got %+v", d.CurrencySettings)
	}

	raw, err := ExportJSON(d)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(string(raw), "\n  \"version\": \"1.0\"") {
		t.Fatalf("expected two-space indentation, got %s", raw[:40])
	}

	imported, err := ImportJSON(raw)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	dst, dstRepo := newService(t, nil)
	// Pre-existing data is overwritten, not merged.
	if err := dstRepo.SaveWorker(ctx, core.Worker{ID: "old", Name: "Old", HourlyRate: decimal.Zero}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := dst.Restore(ctx, imported); err != nil {
		t.Fatalf("restore: %v", err)
	}
	ws := dstRepo.ListWorkers(ctx)
	if len(ws) != 1 || ws[0].ID != "w1" {
		t.Fatalf("expected restored workers only, got %+v", ws)
	}
	txs := dstRepo.ListTransactions(ctx)
	if len(txs) != 1 || !txs[0].Amount.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("unexpected transactions %+v", txs)
	}
	if got := dstRepo.GetCurrencySettings(ctx).DisplayCurrency; got != "USD" {
		t.Fatalf("expected USD display currency, got %s", got)
	}
}

func TestRestoreDefaultsOptionalParts(t *testing.T) {
	ctx := context.Background()
	s, repo := newService(t, nil)
	raw := `{"version":"1.0","createdAt":"2025-01-01T00:00:00Z","appName":"x",
		"transactions":[],"laborPayments":[],"workers":[],"plugins":[]}`
	d, err := ImportJSON([]byte(raw))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if err := s.Restore(ctx, d); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := repo.GetCurrencySettings(ctx); got != core.DefaultCurrencySettings() {
		t.Fatalf("expected default settings, got %+v", got)
	}
	v, ok, _ := repo.Store().Get(ctx, storage.KeyInvoices)
	if !ok || v != "[]" {
		t.Fatalf("expected empty invoices array, got %q %v", v, ok)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		raw string
		ok  bool
	}{
		{`{"version":"1","createdAt":"x","appName":"a","transactions":[],"laborPayments":[],"workers":[],"plugins":[]}`, true},
		{`{"version":"1","createdAt":"x","appName":"a","transactions":[],"laborPayments":[],"workers":[]}`, false},
		{`{"version":"1","createdAt":"x","appName":"a","transactions":{},"laborPayments":[],"workers":[],"plugins":[]}`, false},
		{`{"version":"1","createdAt":"x","appName":"a","transactions":null,"laborPayments":[],"workers":[],"plugins":[]}`, false},
		{`[]`, false},
		{`null`, false},
		{`not json`, false},
	}
	for i, c := range cases {
		err := Validate([]byte(c.raw))
		if c.ok && err != nil {
			t.Fatalf("case %d expected valid, got %v", i, err)
		}
		if !c.ok && !errors.Is(err, ErrInvalidBackup) {
			t.Fatalf("case %d expected ErrInvalidBackup, got %v", i, err)
		}
	}
}

func TestImportJSONRejectsBadRecords(t *testing.T) {
	raw := `{"version":"1.0","createdAt":"2025-01-01T00:00:00Z","appName":"x",
		"transactions":[{"amount":"abc"}],"laborPayments":[],"workers":[],"plugins":[]}`
	if _, err := ImportJSON([]byte(raw)); !errors.Is(err, ErrInvalidBackup) {
		t.Fatalf("expected ErrInvalidBackup, got %v", err)
	}
	if err := ValidateData(nil); !errors.Is(err, ErrInvalidBackup) {
		t.Fatalf("expected ErrInvalidBackup for nil bundle, got %v", err)
	}
	s, _ := newService(t, nil)
	if err := s.Restore(context.Background(), &Data{Version: "1"}); !errors.Is(err, ErrInvalidBackup) {
		t.Fatalf("expected restore to reject bundle, got %v", err)
	}
}

type flakyStore struct {
	*kv.Memory
	failKey string
	sets    atomic.Int32
}

func (f *flakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == f.failKey {
		return "", false, errors.New("unavailable")
	}
	return f.Memory.Get(ctx, key)
}

func (f *flakyStore) Set(ctx context.Context, key, value string) error {
	f.sets.Add(1)
	if key == f.failKey {
		return errors.New("unavailable")
	}
	return f.Memory.Set(ctx, key, value)
}

func TestCreateIsAllOrNothing(t *testing.T) {
	fs := &flakyStore{Memory: kv.NewMemory(), failKey: storage.KeyWorkers}
	s, _ := newService(t, fs)
	if d, err := s.Create(context.Background()); err == nil || d != nil {
		t.Fatalf("expected failure, got %v %v", d, err)
	}

	_ = fs.Memory.Set(context.Background(), storage.KeyInvoices, "{broken")
	fs.failKey = ""
	if _, err := s.Create(context.Background()); err == nil {
		t.Fatalf("expected decode failure to fail the backup")
	}
}

func TestRestoreReportsWriteFailure(t *testing.T) {
	fs := &flakyStore{Memory: kv.NewMemory(), failKey: storage.KeyPlugins}
	s, _ := newService(t, fs)
	d := &Data{Version: "1", CreatedAt: fixedNow, AppName: AppName,
		Transactions: []core.Transaction{}, LaborPayments: []core.LaborPayment{},
		Workers: []core.Worker{}, Plugins: []core.Plugin{}}
	if err := s.Restore(context.Background(), d); err == nil {
		t.Fatalf("expected write failure")
	}
}

func TestClearAllAndStats(t *testing.T) {
	ctx := context.Background()
	s, repo := newService(t, nil)
	seed(t, repo)
	_ = repo.Store().Set(ctx, "unrelated", "keep")

	st, err := s.StorageStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.ItemCount != 4 {
		t.Fatalf("expected 4 keys, got %d", st.ItemCount)
	}
	for i := 1; i < len(st.Items); i++ {
		if st.Items[i].Size > st.Items[i-1].Size {
			t.Fatalf("items not sorted by size: %+v", st.Items)
		}
	}
	total := 0
	for _, it := range st.Items {
		total += it.Size
	}
	if total != st.TotalSize {
		t.Fatalf("total %d does not match items %d", st.TotalSize, total)
	}

	if err := s.ClearAll(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	keys, _ := repo.Store().ListKeys(ctx)
	if len(keys) != 1 || keys[0] != "unrelated" {
		t.Fatalf("expected only foreign key to survive, got %v", keys)
	}
}

func TestSummarizeAndFilename(t *testing.T) {
	d := &Data{CreatedAt: fixedNow, AppVersion: "1.0.0", Transactions: make([]core.Transaction, 3), Workers: make([]core.Worker, 2)}
	s := Summarize(d)
	if s.TotalTransactions != 3 || s.TotalWorkers != 2 || s.TotalInvoices != 0 {
		t.Fatalf("unexpected counts %+v", s)
	}
	if s.CreatedDate != "৯/৩/২০২৫" {
		t.Fatalf("unexpected created date %q", s.CreatedDate)
	}
	if got := Filename(fixedNow); got != "js-accounting-bd-backup-2025-03-09.json" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{1234567, "1.18 MB"},
		{5 * 1024 * 1024 * 1024 * 1024, "5120 GB"},
	}
	for i, c := range cases {
		if got := FormatBytes(c.in); got != c.want {
			t.Fatalf("case %d expected %q, got %q", i, c.want, got)
		}
	}
}
