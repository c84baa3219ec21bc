// Package export renders ledger data as CSV, Excel-compatible HTML and
// native .xlsx workbooks.
package export

import (
	"strings"

	"buildledger/internal/backup"
	"buildledger/internal/core"
	"buildledger/internal/invoice"
)

// quote wraps a free-text field in double quotes, doubling inner quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

type csvBuilder struct {
	strings.Builder
}

func (b *csvBuilder) row(fields ...string) {
	b.WriteString(strings.Join(fields, ","))
	b.WriteByte('\n')
}

func TransactionsCSV(txs []core.Transaction) string {
	var b csvBuilder
	b.row("Date", "Type", "Category", "Description", "Amount")
	for _, t := range txs {
		b.row(t.Date.DMY(), string(t.Type), string(t.Category), quote(t.Description), t.Amount.String())
	}
	return b.String()
}

// LaborPaymentsCSV reports regular plus overtime hours in the Hours column.
func LaborPaymentsCSV(payments []core.LaborPayment) string {
	var b csvBuilder
	b.row("Week Start", "Worker Name", "Hours", "Rate", "Total", "Paid")
	for _, p := range payments {
		b.row(p.WeekStart.DMY(), quote(p.WorkerName), p.TotalHours().String(),
			p.HourlyRate.String(), p.TotalAmount.String(), yesNo(p.IsPaid))
	}
	return b.String()
}

func WorkersCSV(workers []core.Worker) string {
	var b csvBuilder
	b.row("Name", "Hourly Rate", "Created Date")
	for _, w := range workers {
		created := ""
		if !w.CreatedAt.IsZero() {
			created = core.DateOf(w.CreatedAt).DMY()
		}
		b.row(quote(w.Name), w.HourlyRate.String(), created)
	}
	return b.String()
}

func InvoicesCSV(invoices []invoice.Invoice) string {
	var b csvBuilder
	b.row("Invoice Number", "Date", "Due Date", "Buyer", "Total", "Amount Paid", "Balance", "Status")
	for _, inv := range invoices {
		due := ""
		if inv.DueDate != nil {
			due = inv.DueDate.DMY()
		}
		b.row(inv.InvoiceNumber, inv.Date.DMY(), due, quote(inv.Buyer.Name),
			inv.TotalAmount.String(), inv.AmountPaid.String(), inv.BalanceDue.String(), string(inv.Status))
	}
	return b.String()
}

// CSVBundle holds one CSV document per collection.
type CSVBundle struct {
	Transactions  string `json:"transactions"`
	LaborPayments string `json:"laborPayments"`
	Workers       string `json:"workers"`
	Invoices      string `json:"invoices"`
}

func All(d *backup.Data) CSVBundle {
	return CSVBundle{
		Transactions:  TransactionsCSV(d.Transactions),
		LaborPayments: LaborPaymentsCSV(d.LaborPayments),
		Workers:       WorkersCSV(d.Workers),
		Invoices:      InvoicesCSV(d.Invoices),
	}
}
