// Package backup snapshots every stored collection into one JSON bundle and
// restores such a bundle by overwriting the stored keys.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"buildledger/internal/budget"
	"buildledger/internal/core"
	"buildledger/internal/invoice"
	"buildledger/internal/kv"
	"buildledger/internal/log"
	"buildledger/internal/storage"
)

const (
	FormatVersion = "1.0"
	AppName       = "J&S Accounting BD"
	AppVersion    = "1.0.0"
)

var ErrInvalidBackup = errors.New("invalid backup")

type DeviceInfo struct {
	Platform     string `json:"platform,omitempty"`
	Version      string `json:"version,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Model        string `json:"model,omitempty"`
}

// Data is a full snapshot. Invoices, budgets, material estimates and the
// currency settings are optional when importing.
type Data struct {
	Version    string    `json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
	AppName    string    `json:"appName"`
	AppVersion string    `json:"appVersion"`

	Transactions      []core.Transaction      `json:"transactions"`
	LaborPayments     []core.LaborPayment     `json:"laborPayments"`
	Workers           []core.Worker           `json:"workers"`
	Plugins           []core.Plugin           `json:"plugins"`
	Invoices          []invoice.Invoice       `json:"invoices"`
	Budgets           []budget.Budget         `json:"budgets,omitempty"`
	MaterialEstimates []core.MaterialEstimate `json:"materialEstimates,omitempty"`

	CurrencySettings *core.CurrencySettings `json:"currencySettings,omitempty"`
	DeviceInfo       *DeviceInfo            `json:"deviceInfo,omitempty"`
}

// Service reads and writes bundles through the repository's store.
type Service struct {
	repo   *storage.Repository
	store  kv.Store
	logger *log.Logger
	now    func() time.Time
}

func New(repo *storage.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		repo:   repo,
		store:  repo.Store(),
		logger: logger.WithComponent(log.ComponentBackup),
		now:    time.Now,
	}
}

func readKey[T any](ctx context.Context, store kv.Store, key string, dst *[]T) error {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	*dst = []T{}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	if *dst == nil {
		*dst = []T{}
	}
	return nil
}

// Create reads every collection concurrently. Any failed read fails the
// whole snapshot.
func (s *Service) Create(ctx context.Context) (*Data, error) {
	d := &Data{
		Version:    FormatVersion,
		CreatedAt:  s.now().UTC(),
		AppName:    AppName,
		AppVersion: AppVersion,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return readKey(gctx, s.store, storage.KeyTransactions, &d.Transactions) })
	g.Go(func() error { return readKey(gctx, s.store, storage.KeyLaborPayments, &d.LaborPayments) })
	g.Go(func() error { return readKey(gctx, s.store, storage.KeyWorkers, &d.Workers) })
	g.Go(func() error { return readKey(gctx, s.store, storage.KeyPlugins, &d.Plugins) })
	g.Go(func() error { return readKey(gctx, s.store, storage.KeyInvoices, &d.Invoices) })
	g.Go(func() error { return readKey(gctx, s.store, storage.KeyBudgets, &d.Budgets) })
	g.Go(func() error { return readKey(gctx, s.store, storage.KeyMaterialEstimates, &d.MaterialEstimates) })
	g.Go(func() error {
		settings := core.DefaultCurrencySettings()
		raw, ok, err := s.store.Get(gctx, storage.KeyCurrencySettings)
		if err != nil {
			return fmt.Errorf("read %s: %w", storage.KeyCurrencySettings, err)
		}
		if ok {
			if err := json.Unmarshal([]byte(raw), &settings); err != nil {
				return fmt.Errorf("decode %s: %w", storage.KeyCurrencySettings, err)
			}
		}
		d.CurrencySettings = &settings
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "Backup failed", log.FieldError, err)
		return nil, fmt.Errorf("create backup: %w", err)
	}

	s.logger.InfoContext(ctx, "Backup created",
		"transactions", len(d.Transactions),
		"labor_payments", len(d.LaborPayments),
		"workers", len(d.Workers),
		"invoices", len(d.Invoices),
		"budgets", len(d.Budgets))
	return d, nil
}

// Restore validates d and overwrites every collection key with its contents.
// It is not a merge: records absent from d are gone afterwards.
func (s *Service) Restore(ctx context.Context, d *Data) error {
	if err := ValidateData(d); err != nil {
		return err
	}

	settings := core.DefaultCurrencySettings()
	if d.CurrencySettings != nil {
		settings = *d.CurrencySettings
	}

	values := make(map[string]any, 8)
	values[storage.KeyTransactions] = d.Transactions
	values[storage.KeyLaborPayments] = d.LaborPayments
	values[storage.KeyWorkers] = d.Workers
	values[storage.KeyPlugins] = d.Plugins
	values[storage.KeyInvoices] = orEmpty(d.Invoices)
	values[storage.KeyBudgets] = orEmpty(d.Budgets)
	values[storage.KeyMaterialEstimates] = orEmpty(d.MaterialEstimates)
	values[storage.KeyCurrencySettings] = settings

	encoded := make(map[string]string, len(values))
	for k, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", k, err)
		}
		encoded[k] = string(b)
	}

	unlock := s.repo.LockAll()
	defer unlock()

	g, gctx := errgroup.WithContext(ctx)
	for k, v := range encoded {
		g.Go(func() error {
			if err := s.store.Set(gctx, k, v); err != nil {
				return fmt.Errorf("write %s: %w", k, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "Restore failed", log.FieldError, err)
		return fmt.Errorf("restore backup: %w", err)
	}

	s.logger.InfoContext(ctx, "Backup restored",
		"created_at", d.CreatedAt,
		"transactions", len(d.Transactions),
		"labor_payments", len(d.LaborPayments))
	return nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ClearAll deletes every application key.
func (s *Service) ClearAll(ctx context.Context) error {
	unlock := s.repo.LockAll()
	defer unlock()
	if err := s.store.DeleteMany(ctx, storage.AllKeys()); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	s.logger.WarnContext(ctx, "All data cleared", "keys", len(storage.AllKeys()))
	return nil
}
