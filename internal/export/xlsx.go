package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"buildledger/internal/backup"
	"buildledger/internal/core"
)

// Sheet names, in workbook order.
const (
	SheetTransactions = "Transactions"
	SheetLabor        = "Labor"
	SheetWorkers      = "Workers"
	SheetInvoices     = "Invoices"
	SheetSummary      = "Summary"
)

func num(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

type sheet struct {
	name    string
	headers []string
	rows    [][]any
}

func workbookSheets(d *backup.Data) []sheet {
	txs := sheet{name: SheetTransactions, headers: []string{"Date", "Type", "Category", "Description", "Amount (BDT)"}}
	for _, t := range d.Transactions {
		txs.rows = append(txs.rows, []any{t.Date.DMY(), string(t.Type), string(t.Category), t.Description, num(t.Amount)})
	}

	labor := sheet{name: SheetLabor, headers: []string{"Week Start", "Worker Name", "Days", "Regular Hours", "Overtime Hours", "Rate", "Total", "Paid"}}
	for _, p := range d.LaborPayments {
		labor.rows = append(labor.rows, []any{p.WeekStart.DMY(), p.WorkerName, p.DaysWorked,
			num(p.RegularHours), num(p.OvertimeHours), num(p.HourlyRate), num(p.TotalAmount), yesNo(p.IsPaid)})
	}

	workers := sheet{name: SheetWorkers, headers: []string{"Name", "Hourly Rate", "Created Date"}}
	for _, w := range d.Workers {
		workers.rows = append(workers.rows, []any{w.Name, num(w.HourlyRate), core.DateOf(w.CreatedAt).DMY()})
	}

	invoices := sheet{name: SheetInvoices, headers: []string{"Invoice Number", "Date", "Due Date", "Buyer", "Total", "Amount Paid", "Balance", "Status"}}
	for _, inv := range d.Invoices {
		due := ""
		if inv.DueDate != nil {
			due = inv.DueDate.DMY()
		}
		invoices.rows = append(invoices.rows, []any{inv.InvoiceNumber, inv.Date.DMY(), due, inv.Buyer.Name,
			num(inv.TotalAmount), num(inv.AmountPaid), num(inv.BalanceDue), string(inv.Status)})
	}

	s := core.Summarize(d.Transactions)
	summary := sheet{name: SheetSummary, headers: []string{"Description", "Amount (BDT)"}, rows: [][]any{
		{"Total Income", num(s.TotalIncome)},
		{"Total Expenses", num(s.TotalExpenses)},
		{"Net Profit/Loss", num(s.NetProfit)},
	}}
	for _, c := range s.ByCategory {
		summary.rows = append(summary.rows, []any{"Expenses: " + string(c.Category), num(c.Amount)})
	}

	return []sheet{txs, labor, workers, invoices, summary}
}

// Workbook writes d as an .xlsx file with one sheet per collection and a
// summary sheet.
func Workbook(d *backup.Data, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"006A4E"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, sh := range workbookSheets(d) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", sh.name, err)
		}

		headers := make([]any, len(sh.headers))
		for j, h := range sh.headers {
			headers[j] = h
		}
		if err := f.SetSheetRow(sh.name, "A1", &headers); err != nil {
			return fmt.Errorf("write %s header: %w", sh.name, err)
		}
		last, err := excelize.CoordinatesToCellName(len(sh.headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sh.name, "A1", last, header); err != nil {
			return fmt.Errorf("style %s header: %w", sh.name, err)
		}

		for r, row := range sh.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
				return fmt.Errorf("write %s row %d: %w", sh.name, r+1, err)
			}
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
