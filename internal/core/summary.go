package core

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodFilter selects the window a financial summary covers.
type PeriodFilter string

const (
	PeriodWeek  PeriodFilter = "week"
	PeriodMonth PeriodFilter = "month"
	PeriodYear  PeriodFilter = "year"
)

var ErrInvalidPeriod = errors.New("invalid period")

func (p PeriodFilter) IsValid() bool {
	return p == PeriodWeek || p == PeriodMonth || p == PeriodYear
}

// Start returns the first day of the period containing now: the Monday of
// the week, the first of the month or January 1st.
func (p PeriodFilter) Start(now time.Time) Date {
	today := DateOf(now)
	switch p {
	case PeriodWeek:
		return WeekStart(today)
	case PeriodYear:
		return NewDate(today.Year(), 1, 1)
	default:
		return NewDate(today.Year(), int(today.Month()), 1)
	}
}

// CategoryAmount represents an amount aggregated by category.
type CategoryAmount struct {
	Category TransactionCategory `json:"category"`
	Amount   decimal.Decimal     `json:"amount"`
}

// FinancialSummary totals a set of transactions.
type FinancialSummary struct {
	TotalIncome   decimal.Decimal  `json:"totalIncome"`
	TotalExpenses decimal.Decimal  `json:"totalExpenses"`
	NetProfit     decimal.Decimal  `json:"netProfit"`
	Count         int              `json:"count"`
	ByCategory    []CategoryAmount `json:"byCategory"`
}

// FilterByPeriod keeps the transactions dated from the period start up to and
// including today.
func FilterByPeriod(txs []Transaction, p PeriodFilter, now time.Time) []Transaction {
	start := p.Start(now)
	end := DateOf(now)
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Date.Before(start) || end.Before(t.Date) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Summarize totals income and expenses. ByCategory covers expenses only and is
// sorted by amount, largest first.
func Summarize(txs []Transaction) FinancialSummary {
	s := FinancialSummary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Count:         len(txs),
	}
	byCat := map[TransactionCategory]decimal.Decimal{}
	for _, t := range txs {
		switch t.Type {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case Expense:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
			byCat[t.Category] = byCat[t.Category].Add(t.Amount)
		}
	}
	s.NetProfit = s.TotalIncome.Sub(s.TotalExpenses)
	s.ByCategory = make([]CategoryAmount, 0, len(byCat))
	for c, a := range byCat {
		s.ByCategory = append(s.ByCategory, CategoryAmount{Category: c, Amount: a})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		if cmp := s.ByCategory[i].Amount.Cmp(s.ByCategory[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return s.ByCategory[i].Category < s.ByCategory[j].Category
	})
	return s
}

// WeekSummary aggregates the labor payments of one week.
type WeekSummary struct {
	WeekStart    Date            `json:"weekStart"`
	Range        string          `json:"range"`
	Payments     int             `json:"payments"`
	TotalPayroll decimal.Decimal `json:"totalPayroll"`
	Paid         decimal.Decimal `json:"paid"`
	Unpaid       decimal.Decimal `json:"unpaid"`
}

// SummarizeWeek totals the payments whose week starts on the Monday of weekOf.
func SummarizeWeek(payments []LaborPayment, weekOf Date) WeekSummary {
	start := WeekStart(weekOf)
	s := WeekSummary{
		WeekStart:    start,
		Range:        FormatWeekRange(start),
		TotalPayroll: decimal.Zero,
		Paid:         decimal.Zero,
		Unpaid:       decimal.Zero,
	}
	for _, p := range payments {
		if !p.WeekStart.Equal(start.Time) {
			continue
		}
		s.Payments++
		s.TotalPayroll = s.TotalPayroll.Add(p.TotalAmount)
		if p.IsPaid {
			s.Paid = s.Paid.Add(p.TotalAmount)
		} else {
			s.Unpaid = s.Unpaid.Add(p.TotalAmount)
		}
	}
	return s
}
