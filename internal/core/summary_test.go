package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func tx(id string, typ TransactionType, cat TransactionCategory, amount int64, d Date) Transaction {
	return Transaction{ID: id, Type: typ, Category: cat, Amount: decimal.NewFromInt(amount), Date: d}
}

func TestSummarize(t *testing.T) {
	txs := []Transaction{
		tx("1", Income, CategoryIncome, 100000, NewDate(2025, 1, 2)),
		tx("2", Expense, CategoryMaterials, 30000, NewDate(2025, 1, 3)),
		tx("3", Expense, CategoryLabor, 45000, NewDate(2025, 1, 4)),
		tx("4", Expense, CategoryMaterials, 20000, NewDate(2025, 1, 5)),
	}
	s := Summarize(txs)
	if !s.TotalIncome.Equal(decimal.NewFromInt(100000)) || !s.TotalExpenses.Equal(decimal.NewFromInt(95000)) {
		t.Fatalf("unexpected totals %s/%s", s.TotalIncome, s.TotalExpenses)
	}
	if !s.NetProfit.Equal(decimal.NewFromInt(5000)) || s.Count != 4 {
		t.Fatalf("unexpected net %s count %d", s.NetProfit, s.Count)
	}
	if len(s.ByCategory) != 2 || s.ByCategory[0].Category != CategoryMaterials {
		t.Fatalf("unexpected categories %+v", s.ByCategory)
	}
}

func TestFilterByPeriod(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC) // Wednesday
	txs := []Transaction{
		tx("a", Expense, CategoryOther, 1, NewDate(2025, 3, 10)),  // this week
		tx("b", Expense, CategoryOther, 1, NewDate(2025, 3, 2)),   // this month
		tx("c", Expense, CategoryOther, 1, NewDate(2025, 1, 15)),  // this year
		tx("d", Expense, CategoryOther, 1, NewDate(2024, 12, 31)), // last year
		tx("e", Expense, CategoryOther, 1, NewDate(2025, 3, 20)),  // future
	}
	cases := []struct {
		p    PeriodFilter
		want int
	}{
		{PeriodWeek, 1},
		{PeriodMonth, 2},
		{PeriodYear, 3},
	}
	for _, tc := range cases {
		if got := FilterByPeriod(txs, tc.p, now); len(got) != tc.want {
			t.Fatalf("%s expected %d, got %d", tc.p, tc.want, len(got))
		}
	}
}

func TestSummarizeWeek(t *testing.T) {
	monday := NewDate(2025, 1, 6)
	payments := []LaborPayment{
		{ID: "1", WeekStart: monday, TotalAmount: decimal.NewFromInt(5000), IsPaid: true},
		{ID: "2", WeekStart: monday, TotalAmount: decimal.NewFromInt(3000)},
		{ID: "3", WeekStart: NewDate(2024, 12, 30), TotalAmount: decimal.NewFromInt(9999)},
	}
	s := SummarizeWeek(payments, NewDate(2025, 1, 8))
	if s.Payments != 2 || !s.TotalPayroll.Equal(decimal.NewFromInt(8000)) {
		t.Fatalf("unexpected summary %+v", s)
	}
	if !s.Paid.Equal(decimal.NewFromInt(5000)) || !s.Unpaid.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("unexpected paid/unpaid %s/%s", s.Paid, s.Unpaid)
	}
	if s.Range != "6 Jan - 12 Jan" {
		t.Fatalf("unexpected range %q", s.Range)
	}
}
