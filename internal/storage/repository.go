// Package storage persists the ledger collections as JSON arrays in a kv.Store.
//
// Every mutation reads the whole collection, changes it in memory and writes
// it back while holding the mutex of that collection's key. There is no
// transaction across keys.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"buildledger/internal/budget"
	"buildledger/internal/core"
	"buildledger/internal/invoice"
	"buildledger/internal/kv"
	"buildledger/internal/log"
	"buildledger/internal/refdata"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrUnknownCurrency = errors.New("unknown currency")
)

type Repository struct {
	store  kv.Store
	logger *log.Logger
	now    func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New builds a repository over store. A nil logger falls back to the default.
func New(store kv.Store, logger *log.Logger) *Repository {
	if logger == nil {
		logger = log.Default()
	}
	return &Repository{
		store:  store,
		logger: logger.WithComponent(log.ComponentStorage),
		now:    time.Now,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Store exposes the underlying key-value store for backup and export.
func (r *Repository) Store() kv.Store {
	return r.store
}

func (r *Repository) lock(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.locks[key]
	if !ok {
		m = &sync.Mutex{}
		r.locks[key] = m
	}
	return m
}

// lockOrder is the order in which callers holding more than one collection
// mutex acquire them: labor payments before transactions, then the rest.
func lockOrder() []string {
	keys := []string{KeyLaborPayments, KeyTransactions}
	for _, k := range AllKeys() {
		if k != KeyLaborPayments && k != KeyTransactions {
			keys = append(keys, k)
		}
	}
	return keys
}

// LockAll acquires every collection mutex in lockOrder and returns the
// matching unlock. Restore uses it to overwrite keys without racing saves.
func (r *Repository) LockAll() (unlock func()) {
	keys := lockOrder()
	locked := make([]*sync.Mutex, 0, len(keys))
	for _, k := range keys {
		m := r.lock(k)
		m.Lock()
		locked = append(locked, m)
	}
	return func() {
		for i := len(locked) - 1; i >= 0; i-- {
			locked[i].Unlock()
		}
	}
}

func transactionID(t core.Transaction) string { return t.ID }
func laborPaymentID(p core.LaborPayment) string { return p.ID }
func workerID(w core.Worker) string { return w.ID }
func pluginID(p core.Plugin) string { return p.ID }
func estimateID(e core.MaterialEstimate) string { return e.ID }
func invoiceID(inv invoice.Invoice) string { return inv.ID }
func budgetID(b budget.Budget) string { return b.ID }

// Transactions

func (r *Repository) ListTransactions(ctx context.Context) []core.Transaction {
	return listCollection[core.Transaction](ctx, r, KeyTransactions)
}

// SaveTransaction upserts t; new transactions go first.
func (r *Repository) SaveTransaction(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}
	if err := saveRecord(ctx, r, KeyTransactions, t, transactionID, prepend); err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}
	r.logger.InfoContext(ctx, "Transaction saved",
		"id", t.ID,
		"type", t.Type,
		"category", t.Category,
		"amount", t.Amount.String(),
		"date", t.Date.String())
	return nil
}

func (r *Repository) DeleteTransaction(ctx context.Context, id string) error {
	if err := deleteRecord(ctx, r, KeyTransactions, id, transactionID); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	r.logger.DebugContext(ctx, "Transaction deleted", "id", id)
	return nil
}

// GetFinancialSummary totals the transactions inside period as of now.
func (r *Repository) GetFinancialSummary(ctx context.Context, period core.PeriodFilter, now time.Time) (core.FinancialSummary, error) {
	if !period.IsValid() {
		return core.FinancialSummary{}, core.ErrInvalidPeriod
	}
	txs := core.FilterByPeriod(r.ListTransactions(ctx), period, now)
	return core.Summarize(txs), nil
}

// Labor payments

func (r *Repository) ListLaborPayments(ctx context.Context) []core.LaborPayment {
	return listCollection[core.LaborPayment](ctx, r, KeyLaborPayments)
}

// SaveLaborPayment upserts p as given; its total is not recomputed. A paid
// payment also upserts its companion expense "labor_<id>".
func (r *Repository) SaveLaborPayment(ctx context.Context, p core.LaborPayment) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("save labor payment: %w", err)
	}

	laborMu, txMu := r.lock(KeyLaborPayments), r.lock(KeyTransactions)
	laborMu.Lock()
	defer laborMu.Unlock()

	if err := saveRecordLocked(ctx, r, KeyLaborPayments, p, laborPaymentID, prepend); err != nil {
		return fmt.Errorf("save labor payment: %w", err)
	}

	if p.IsPaid {
		companion := core.CompanionTransaction(p, r.now())
		txMu.Lock()
		err := saveRecordLocked(ctx, r, KeyTransactions, companion, transactionID, prepend)
		txMu.Unlock()
		if err != nil {
			return fmt.Errorf("save labor companion transaction: %w", err)
		}
	}

	r.logger.InfoContext(ctx, "Labor payment saved",
		"id", p.ID,
		"worker", p.WorkerName,
		"week_start", p.WeekStart.String(),
		"total", p.TotalAmount.String(),
		"paid", p.IsPaid)
	return nil
}

// DeleteLaborPayment removes the payment and its companion transaction.
func (r *Repository) DeleteLaborPayment(ctx context.Context, id string) error {
	laborMu, txMu := r.lock(KeyLaborPayments), r.lock(KeyTransactions)
	laborMu.Lock()
	defer laborMu.Unlock()

	if err := deleteRecordLocked(ctx, r, KeyLaborPayments, id, laborPaymentID); err != nil {
		return fmt.Errorf("delete labor payment: %w", err)
	}

	txMu.Lock()
	err := deleteRecordLocked(ctx, r, KeyTransactions, core.CompanionID(id), transactionID)
	txMu.Unlock()
	if err != nil {
		return fmt.Errorf("delete labor companion transaction: %w", err)
	}

	r.logger.DebugContext(ctx, "Labor payment deleted", "id", id)
	return nil
}

// GetWeekSummary totals the payments of the week containing weekOf.
func (r *Repository) GetWeekSummary(ctx context.Context, weekOf core.Date) core.WeekSummary {
	return core.SummarizeWeek(r.ListLaborPayments(ctx), weekOf)
}

// Workers

func (r *Repository) ListWorkers(ctx context.Context) []core.Worker {
	return listCollection[core.Worker](ctx, r, KeyWorkers)
}

func (r *Repository) GetWorker(ctx context.Context, id string) (core.Worker, error) {
	w, ok := find(r.ListWorkers(ctx), id, workerID)
	if !ok {
		return core.Worker{}, fmt.Errorf("worker %s: %w", id, ErrNotFound)
	}
	return w, nil
}

// SaveWorker upserts w; new workers go last.
func (r *Repository) SaveWorker(ctx context.Context, w core.Worker) error {
	if err := w.Validate(); err != nil {
		return fmt.Errorf("save worker: %w", err)
	}
	if err := saveRecord(ctx, r, KeyWorkers, w, workerID, appendLast); err != nil {
		return fmt.Errorf("save worker: %w", err)
	}
	r.logger.InfoContext(ctx, "Worker saved", "id", w.ID, "name", w.Name)
	return nil
}

func (r *Repository) DeleteWorker(ctx context.Context, id string) error {
	if err := deleteRecord(ctx, r, KeyWorkers, id, workerID); err != nil {
		return fmt.Errorf("delete worker: %w", err)
	}
	return nil
}

// Plugins

// readPlugins returns the stored catalog, or the default one when nothing is stored.
func (r *Repository) readPlugins(ctx context.Context) ([]core.Plugin, error) {
	_, ok, err := r.store.Get(ctx, KeyPlugins)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeyPlugins, err)
	}
	if !ok {
		return core.DefaultPlugins(), nil
	}
	return readCollection[core.Plugin](ctx, r, KeyPlugins)
}

func (r *Repository) ListPlugins(ctx context.Context) []core.Plugin {
	plugins, err := r.readPlugins(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to read plugins", "error", err)
		return core.DefaultPlugins()
	}
	return plugins
}

// SavePlugin upserts p into the catalog; new plugins go last.
func (r *Repository) SavePlugin(ctx context.Context, p core.Plugin) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("save plugin: %w", err)
	}
	mu := r.lock(KeyPlugins)
	mu.Lock()
	defer mu.Unlock()

	plugins, err := r.readPlugins(ctx)
	if err != nil {
		return fmt.Errorf("save plugin: %w", err)
	}
	if err := writeCollection(ctx, r, KeyPlugins, upsert(plugins, p, pluginID, appendLast)); err != nil {
		return fmt.Errorf("save plugin: %w", err)
	}
	return nil
}

// TogglePlugin sets the installed and enabled flags of a catalog plugin.
// A plugin cannot be enabled unless it is installed.
func (r *Repository) TogglePlugin(ctx context.Context, id string, installed, enabled bool) (core.Plugin, error) {
	mu := r.lock(KeyPlugins)
	mu.Lock()
	defer mu.Unlock()

	plugins, err := r.readPlugins(ctx)
	if err != nil {
		return core.Plugin{}, fmt.Errorf("toggle plugin: %w", err)
	}
	i := slices.IndexFunc(plugins, func(p core.Plugin) bool { return p.ID == id })
	if i < 0 {
		return core.Plugin{}, fmt.Errorf("plugin %s: %w", id, ErrNotFound)
	}
	plugins[i].IsInstalled = installed
	plugins[i].IsEnabled = installed && enabled
	if err := writeCollection(ctx, r, KeyPlugins, plugins); err != nil {
		return core.Plugin{}, fmt.Errorf("toggle plugin: %w", err)
	}
	p := plugins[i]
	r.logger.InfoContext(ctx, "Plugin toggled", "id", id, "installed", p.IsInstalled, "enabled", p.IsEnabled)
	return p, nil
}

// Material estimates

func (r *Repository) ListMaterialEstimates(ctx context.Context) []core.MaterialEstimate {
	return listCollection[core.MaterialEstimate](ctx, r, KeyMaterialEstimates)
}

func (r *Repository) SaveMaterialEstimate(ctx context.Context, e core.MaterialEstimate) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("save material estimate: %w", err)
	}
	if err := saveRecord(ctx, r, KeyMaterialEstimates, e, estimateID, prepend); err != nil {
		return fmt.Errorf("save material estimate: %w", err)
	}
	return nil
}

func (r *Repository) DeleteMaterialEstimate(ctx context.Context, id string) error {
	if err := deleteRecord(ctx, r, KeyMaterialEstimates, id, estimateID); err != nil {
		return fmt.Errorf("delete material estimate: %w", err)
	}
	return nil
}

// Invoices

func (r *Repository) ListInvoices(ctx context.Context) []invoice.Invoice {
	return listCollection[invoice.Invoice](ctx, r, KeyInvoices)
}

func (r *Repository) GetInvoice(ctx context.Context, id string) (invoice.Invoice, error) {
	inv, ok := find(r.ListInvoices(ctx), id, invoiceID)
	if !ok {
		return invoice.Invoice{}, fmt.Errorf("invoice %s: %w", id, ErrNotFound)
	}
	return inv, nil
}

func (r *Repository) SaveInvoice(ctx context.Context, inv invoice.Invoice) error {
	if err := inv.Validate(); err != nil {
		return fmt.Errorf("save invoice: %w", err)
	}
	if err := saveRecord(ctx, r, KeyInvoices, inv, invoiceID, prepend); err != nil {
		return fmt.Errorf("save invoice: %w", err)
	}
	r.logger.InfoContext(ctx, "Invoice saved",
		"id", inv.ID,
		"number", inv.InvoiceNumber,
		"status", inv.Status,
		"total", inv.TotalAmount.String())
	return nil
}

func (r *Repository) DeleteInvoice(ctx context.Context, id string) error {
	if err := deleteRecord(ctx, r, KeyInvoices, id, invoiceID); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// Budgets

func (r *Repository) ListBudgets(ctx context.Context) []budget.Budget {
	return listCollection[budget.Budget](ctx, r, KeyBudgets)
}

func (r *Repository) GetBudget(ctx context.Context, id string) (budget.Budget, error) {
	b, ok := find(r.ListBudgets(ctx), id, budgetID)
	if !ok {
		return budget.Budget{}, fmt.Errorf("budget %s: %w", id, ErrNotFound)
	}
	return b, nil
}

func (r *Repository) SaveBudget(ctx context.Context, b budget.Budget) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("save budget: %w", err)
	}
	if err := saveRecord(ctx, r, KeyBudgets, b, budgetID, prepend); err != nil {
		return fmt.Errorf("save budget: %w", err)
	}
	r.logger.InfoContext(ctx, "Budget saved", "id", b.ID, "name", b.Name, "status", b.Status)
	return nil
}

func (r *Repository) DeleteBudget(ctx context.Context, id string) error {
	if err := deleteRecord(ctx, r, KeyBudgets, id, budgetID); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}

// Currency settings

// GetCurrencySettings returns the stored settings, or the defaults when none
// are stored or they cannot be read.
func (r *Repository) GetCurrencySettings(ctx context.Context) core.CurrencySettings {
	raw, ok, err := r.store.Get(ctx, KeyCurrencySettings)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to read currency settings", "error", err)
		return core.DefaultCurrencySettings()
	}
	if !ok {
		return core.DefaultCurrencySettings()
	}
	s := core.DefaultCurrencySettings()
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		r.logger.ErrorContext(ctx, "Failed to decode currency settings", "error", err)
		return core.DefaultCurrencySettings()
	}
	return s
}

// SaveCurrencySettings rejects currency codes the reference table does not know.
func (r *Repository) SaveCurrencySettings(ctx context.Context, s core.CurrencySettings) error {
	for _, code := range []string{s.DefaultCurrency, s.DisplayCurrency, s.SecondaryCurrency} {
		if !refdata.IsKnownCurrency(code) {
			return fmt.Errorf("save currency settings: %w: %q", ErrUnknownCurrency, code)
		}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode currency settings: %w", err)
	}
	mu := r.lock(KeyCurrencySettings)
	mu.Lock()
	defer mu.Unlock()
	if err := r.store.Set(ctx, KeyCurrencySettings, string(b)); err != nil {
		return fmt.Errorf("save currency settings: %w", err)
	}
	return nil
}
