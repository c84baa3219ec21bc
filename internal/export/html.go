package export

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"
	"time"

	"buildledger/internal/backup"
	"buildledger/internal/core"
	appweb "buildledger/web"
)

const ReportTitle = "J&S Accounting BD - Complete Report"

var (
	templatesOnce sync.Once
	templates     *template.Template
	templatesErr  error
)

func loadTemplates() (*template.Template, error) {
	templatesOnce.Do(func() {
		templates, templatesErr = template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	})
	return templates, templatesErr
}

// TableData is one titled table.
type TableData struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func render(name string, data any) (string, error) {
	t, err := loadTemplates()
	if err != nil {
		return "", fmt.Errorf("parse templates: %w", err)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Table renders a single table as an HTML document that spreadsheet
// applications open directly. Cell text is HTML-escaped.
func Table(title string, headers []string, rows [][]string) (string, error) {
	return render("table.html", TableData{Title: title, Headers: headers, Rows: rows})
}

func transactionTable(txs []core.Transaction) TableData {
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []string{t.Date.DMY(), string(t.Type), string(t.Category), t.Description, t.Amount.String()})
	}
	return TableData{
		Title:   "Transactions",
		Headers: []string{"Date", "Type", "Category", "Description", "Amount (BDT)"},
		Rows:    rows,
	}
}

func Transactions(txs []core.Transaction) (string, error) {
	t := transactionTable(txs)
	return Table(t.Title, t.Headers, t.Rows)
}

// FinancialSummary renders income, expenses and net result of txs. period
// only labels the title.
func FinancialSummary(txs []core.Transaction, period string) (string, error) {
	s := core.Summarize(txs)
	return Table("Financial Summary - "+period,
		[]string{"Description", "Amount (BDT)"},
		[][]string{
			{"Total Income", s.TotalIncome.String()},
			{"Total Expenses", s.TotalExpenses.String()},
			{"Net Profit/Loss", s.NetProfit.String()},
		})
}

type reportData struct {
	Title              string
	Generated          string
	AppVersion         string
	TotalTransactions  int
	TotalLaborPayments int
	TotalWorkers       int
	TotalInvoices      int
	Transactions       TableData
	Workers            TableData
}

// CompleteReport renders the counts, the transactions and the workers of d.
func CompleteReport(d *backup.Data, now time.Time) (string, error) {
	workers := make([][]string, 0, len(d.Workers))
	for _, w := range d.Workers {
		workers = append(workers, []string{w.Name, w.HourlyRate.String()})
	}
	return render("report.html", reportData{
		Title:              ReportTitle,
		Generated:          now.Format("02/01/2006, 15:04:05"),
		AppVersion:         d.AppVersion,
		TotalTransactions:  len(d.Transactions),
		TotalLaborPayments: len(d.LaborPayments),
		TotalWorkers:       len(d.Workers),
		TotalInvoices:      len(d.Invoices),
		Transactions:       transactionTable(d.Transactions),
		Workers: TableData{
			Headers: []string{"Name", "Hourly Rate (BDT)"},
			Rows:    workers,
		},
	})
}
