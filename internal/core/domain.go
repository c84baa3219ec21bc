package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Stored transaction categories. The richer reference categories live in refdata.
const (
	CategoryMaterials TransactionCategory = "materials"
	CategoryLabor     TransactionCategory = "labor"
	CategoryEquipment TransactionCategory = "equipment"
	CategoryOther     TransactionCategory = "other"
	CategoryIncome    TransactionCategory = "income"
)

type (
	TransactionType     string
	TransactionCategory string

	Transaction struct {
		ID          string              `json:"id"`
		Type        TransactionType     `json:"type"`
		Amount      decimal.Decimal     `json:"amount"`
		Category    TransactionCategory `json:"category"`
		Description string              `json:"description"`
		Date        Date                `json:"date"`
		CreatedAt   time.Time           `json:"createdAt"`
	}

	Worker struct {
		ID         string          `json:"id"`
		Name       string          `json:"name"`
		HourlyRate decimal.Decimal `json:"hourlyRate"`
		CreatedAt  time.Time       `json:"createdAt"`
	}

	LaborPayment struct {
		ID            string          `json:"id"`
		WorkerID      string          `json:"workerId"`
		WorkerName    string          `json:"workerName"`
		DaysWorked    int             `json:"daysWorked"`
		RegularHours  decimal.Decimal `json:"regularHours"`
		OvertimeHours decimal.Decimal `json:"overtimeHours"`
		HourlyRate    decimal.Decimal `json:"hourlyRate"`
		OvertimeRate  decimal.Decimal `json:"overtimeRate"`
		TotalAmount   decimal.Decimal `json:"totalAmount"`
		WeekStart     Date            `json:"weekStart"`
		IsPaid        bool            `json:"isPaid"`
		Notes         string          `json:"notes"`
		CreatedAt     time.Time       `json:"createdAt"`
	}

	Plugin struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Version     string `json:"version"`
		Icon        string `json:"icon"`
		IsInstalled bool   `json:"isInstalled"`
		IsEnabled   bool   `json:"isEnabled"`
		Author      string `json:"author"`
	}

	CurrencySettings struct {
		DefaultCurrency    string `json:"defaultCurrency"`
		DisplayCurrency    string `json:"displayCurrency"`
		ShowBothCurrencies bool   `json:"showBothCurrencies"`
		SecondaryCurrency  string `json:"secondaryCurrency"`
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrInvalidCategory    = errors.New("invalid transaction category")
	ErrEmptyDescription   = errors.New("empty description")
	ErrEmptyName          = errors.New("empty name")
	ErrEmptyID            = errors.New("empty id")
	ErrInvalidHours       = errors.New("invalid hours")
	ErrInvalidRate        = errors.New("invalid rate")
	ErrInvalidArea        = errors.New("invalid area")
	ErrInvalidFloors      = errors.New("invalid floors")
	ErrWeekStartNotMonday = errors.New("week start must be a monday")
)

// DefaultCurrencySettings is used whenever no settings have been stored.
func DefaultCurrencySettings() CurrencySettings {
	return CurrencySettings{
		DefaultCurrency:    "BDT",
		DisplayCurrency:    "BDT",
		ShowBothCurrencies: false,
		SecondaryCurrency:  "USD",
	}
}

func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

func (c TransactionCategory) IsValid() bool {
	switch c {
	case CategoryMaterials, CategoryLabor, CategoryEquipment, CategoryOther, CategoryIncome:
		return true
	}
	return false
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	if !t.Type.IsValid() {
		return ErrInvalidType
	}
	if !t.Category.IsValid() {
		return ErrInvalidCategory
	}
	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if len(t.Description) > 500 {
		return errors.New("description too long (max 500 characters)")
	}
	return nil
}

func (w Worker) Validate() error {
	if strings.TrimSpace(w.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(w.Name) == "" {
		return ErrEmptyName
	}
	if w.HourlyRate.IsNegative() {
		return ErrInvalidRate
	}
	return nil
}

// Validate checks field ranges only. TotalAmount is the caller's responsibility,
// see NewLaborPayment.
func (p LaborPayment) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(p.WorkerName) == "" {
		return ErrEmptyName
	}
	if p.DaysWorked < 0 || p.DaysWorked > 7 {
		return errors.New("days worked must be between 0 and 7")
	}
	if p.RegularHours.IsNegative() || p.OvertimeHours.IsNegative() {
		return ErrInvalidHours
	}
	if p.HourlyRate.IsNegative() || p.OvertimeRate.IsNegative() {
		return ErrInvalidRate
	}
	if err := p.WeekStart.Validate(); err != nil {
		return err
	}
	if p.WeekStart.Weekday() != time.Monday {
		return ErrWeekStartNotMonday
	}
	return nil
}

// TotalHours is regular plus overtime hours.
func (p LaborPayment) TotalHours() decimal.Decimal {
	return p.RegularHours.Add(p.OvertimeHours)
}

func (p Plugin) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
