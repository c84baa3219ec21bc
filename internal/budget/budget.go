// Package budget plans construction budgets and compares estimates against
// actual spending. Totals are recomputed after every item change.
package budget

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"buildledger/internal/core"
	"buildledger/internal/refdata"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var (
	ErrTemplateNotFound = errors.New("budget template not found")
	ErrItemNotFound     = errors.New("budget item not found")
	ErrInvalidStatus    = errors.New("invalid budget status")
)

var now = time.Now

type (
	Item struct {
		ID              string          `json:"id"`
		CategoryID      string          `json:"categoryId"`
		SubcategoryID   string          `json:"subcategoryId,omitempty"`
		Description     string          `json:"description"`
		EstimatedAmount decimal.Decimal `json:"estimatedAmount"`
		ActualAmount    decimal.Decimal `json:"actualAmount"`
		Notes           string          `json:"notes,omitempty"`
	}

	// ItemInput is a new line; its actual amount starts at zero.
	ItemInput struct {
		CategoryID      string          `json:"categoryId"`
		SubcategoryID   string          `json:"subcategoryId,omitempty"`
		Description     string          `json:"description"`
		EstimatedAmount decimal.Decimal `json:"estimatedAmount"`
		Notes           string          `json:"notes,omitempty"`
	}

	Budget struct {
		ID              string          `json:"id"`
		Name            string          `json:"name"`
		NameBn          string          `json:"nameBn,omitempty"`
		Description     string          `json:"description,omitempty"`
		ProjectName     string          `json:"projectName"`
		ProjectAddress  string          `json:"projectAddress,omitempty"`
		StartDate       *core.Date      `json:"startDate,omitempty"`
		EndDate         *core.Date      `json:"endDate,omitempty"`
		Items           []Item          `json:"items"`
		TotalEstimated  decimal.Decimal `json:"totalEstimated"`
		TotalActual     decimal.Decimal `json:"totalActual"`
		Variance        decimal.Decimal `json:"variance"`
		VariancePercent decimal.Decimal `json:"variancePercent"`
		Status          Status          `json:"status"`
		Currency        string          `json:"currency"`
		CreatedAt       time.Time       `json:"createdAt"`
		UpdatedAt       time.Time       `json:"updatedAt"`
	}

	Options struct {
		NameBn         string
		Description    string
		ProjectAddress string
		StartDate      *core.Date
		EndDate        *core.Date
		Currency       string
	}
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// New creates an empty draft budget.
func New(name, projectName string, opts Options) Budget {
	t := now().UTC()
	b := Budget{
		ID:              core.NewID(),
		Name:            name,
		NameBn:          opts.NameBn,
		Description:     opts.Description,
		ProjectName:     projectName,
		ProjectAddress:  opts.ProjectAddress,
		StartDate:       opts.StartDate,
		EndDate:         opts.EndDate,
		Items:           []Item{},
		TotalEstimated:  decimal.Zero,
		TotalActual:     decimal.Zero,
		Variance:        decimal.Zero,
		VariancePercent: decimal.Zero,
		Status:          StatusDraft,
		Currency:        refdata.DefaultCurrencyCode,
		CreatedAt:       t,
		UpdatedAt:       t,
	}
	if opts.Currency != "" {
		b.Currency = opts.Currency
	}
	return b
}

// FromTemplate builds the budget by adding each template line in turn.
func FromTemplate(templateID, projectName string, opts Options) (Budget, error) {
	tpl, ok := TemplateByID(templateID)
	if !ok {
		return Budget{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}
	opts.NameBn = tpl.NameBn
	opts.Description = tpl.Description
	b := New(tpl.Name, projectName, opts)
	for _, in := range tpl.Items {
		b = AddItem(b, in)
	}
	return b, nil
}

func AddItem(b Budget, in ItemInput) Budget {
	items := make([]Item, 0, len(b.Items)+1)
	items = append(items, b.Items...)
	b.Items = append(items, Item{
		ID:              core.NewID(),
		CategoryID:      in.CategoryID,
		SubcategoryID:   in.SubcategoryID,
		Description:     in.Description,
		EstimatedAmount: in.EstimatedAmount,
		ActualAmount:    decimal.Zero,
		Notes:           in.Notes,
	})
	return Recalculate(b)
}

// UpdateItemActual records what was actually spent on one item. Unknown ids
// leave the items unchanged.
func UpdateItemActual(b Budget, itemID string, actual decimal.Decimal) Budget {
	items := make([]Item, len(b.Items))
	copy(items, b.Items)
	for i := range items {
		if items[i].ID == itemID {
			items[i].ActualAmount = actual
		}
	}
	b.Items = items
	return Recalculate(b)
}

func RemoveItem(b Budget, itemID string) Budget {
	items := make([]Item, 0, len(b.Items))
	for _, it := range b.Items {
		if it.ID != itemID {
			items = append(items, it)
		}
	}
	b.Items = items
	return Recalculate(b)
}

// Recalculate resums the items. VariancePercent is zero when nothing is estimated.
func Recalculate(b Budget) Budget {
	est, act := decimal.Zero, decimal.Zero
	for _, it := range b.Items {
		est = est.Add(it.EstimatedAmount)
		act = act.Add(it.ActualAmount)
	}
	b.TotalEstimated = est
	b.TotalActual = act
	b.Variance = act.Sub(est)
	b.VariancePercent = decimal.Zero
	if est.IsPositive() {
		b.VariancePercent = b.Variance.Div(est).Mul(decimal.NewFromInt(100))
	}
	b.UpdatedAt = now().UTC()
	return b
}

// HasItem reports whether itemID belongs to b.
func (b Budget) HasItem(itemID string) bool {
	for _, it := range b.Items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return core.ErrEmptyID
	}
	if strings.TrimSpace(b.Name) == "" {
		return core.ErrEmptyName
	}
	if !b.Status.IsValid() {
		return ErrInvalidStatus
	}
	for _, it := range b.Items {
		if it.EstimatedAmount.IsNegative() || it.ActualAmount.IsNegative() {
			return core.ErrInvalidAmount
		}
	}
	return nil
}
