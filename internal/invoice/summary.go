package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"buildledger/internal/refdata"
)

type Summary struct {
	TotalInvoiced    decimal.Decimal `json:"totalInvoiced"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	TotalOverdue     decimal.Decimal `json:"totalOverdue"`
	InvoiceCount     int             `json:"invoiceCount"`
	PaidCount        int             `json:"paidCount"`
	OverdueCount     int             `json:"overdueCount"`
}

// Summarize aggregates invoices. An invoice counts as overdue when its due
// date is before now and it still has a balance, whatever its status says.
func Summarize(invoices []Invoice, now time.Time) Summary {
	s := Summary{
		TotalInvoiced:    decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalOutstanding: decimal.Zero,
		TotalOverdue:     decimal.Zero,
	}
	for _, inv := range invoices {
		s.TotalInvoiced = s.TotalInvoiced.Add(inv.TotalAmount)
		s.TotalPaid = s.TotalPaid.Add(inv.AmountPaid)
		s.TotalOutstanding = s.TotalOutstanding.Add(inv.BalanceDue)
		s.InvoiceCount++
		if inv.Status == StatusPaid {
			s.PaidCount++
		}
		if inv.DueDate != nil && inv.DueDate.Time.Before(now) && inv.BalanceDue.IsPositive() {
			s.TotalOverdue = s.TotalOverdue.Add(inv.BalanceDue)
			s.OverdueCount++
		}
	}
	return s
}

// Formatted carries display strings in the invoice currency.
type Formatted struct {
	Subtotal   string `json:"formattedSubtotal"`
	Discount   string `json:"formattedDiscount"`
	VAT        string `json:"formattedVAT"`
	Total      string `json:"formattedTotal"`
	Balance    string `json:"formattedBalance"`
	AmountPaid string `json:"formattedAmountPaid"`
}

func Format(inv Invoice) Formatted {
	f := func(d decimal.Decimal) string { return refdata.FormatCurrency(d, inv.Currency) }
	return Formatted{
		Subtotal:   f(inv.Subtotal),
		Discount:   f(inv.DiscountAmount),
		VAT:        f(inv.VATAmount),
		Total:      f(inv.TotalAmount),
		Balance:    f(inv.BalanceDue),
		AmountPaid: f(inv.AmountPaid),
	}
}
