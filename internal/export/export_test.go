package export

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"buildledger/internal/backup"
	"buildledger/internal/core"
	"buildledger/internal/invoice"
)

var fixedNow = time.Date(2025, 2, 3, 14, 5, 0, 0, time.UTC)

func sampleData() *backup.Data {
	due := core.NewDate(2025, 3, 5)
	return &backup.Data{
		Version:    backup.FormatVersion,
		CreatedAt:  fixedNow,
		AppName:    backup.AppName,
		AppVersion: backup.AppVersion,
		Transactions: []core.Transaction{
			{ID: "t1", Type: core.Expense, Amount: decimal.RequireFromString("1250.50"), Category: core.CategoryMaterials,
				Description: `Cement "Shah" 50kg, <bulk>`, Date: core.NewDate(2025, 1, 6)},
			{ID: "t2", Type: core.Income, Amount: decimal.NewFromInt(10000), Category: core.CategoryIncome,
				Description: "Advance", Date: core.NewDate(2025, 1, 7)},
		},
		LaborPayments: []core.LaborPayment{
			{ID: "p1", WorkerName: "Rahim", DaysWorked: 5, RegularHours: decimal.NewFromInt(40), OvertimeHours: decimal.NewFromInt(4),
				HourlyRate: decimal.NewFromInt(100), OvertimeRate: decimal.NewFromInt(150), TotalAmount: decimal.NewFromInt(4600),
				WeekStart: core.NewDate(2025, 1, 6), IsPaid: true},
		},
		Workers: []core.Worker{
			{ID: "w1", Name: "Rahim", HourlyRate: decimal.NewFromInt(100), CreatedAt: fixedNow},
		},
		Invoices: []invoice.Invoice{
			{ID: "i1", InvoiceNumber: "INV-2502-0042", Date: core.NewDate(2025, 2, 3), DueDate: &due,
				Buyer: invoice.Buyer{Name: "Dhaka Builders"}, TotalAmount: decimal.NewFromInt(11500),
				AmountPaid: decimal.NewFromInt(5000), BalanceDue: decimal.NewFromInt(6500), Status: invoice.StatusSent},
			{ID: "i2", InvoiceNumber: "INV-2502-0043", Date: core.NewDate(2025, 2, 3),
				Buyer: invoice.Buyer{Name: "Cash"}, TotalAmount: decimal.NewFromInt(100), Status: invoice.StatusDraft},
		},
	}
}

func TestTransactionsCSV(t *testing.T) {
	got := TransactionsCSV(sampleData().Transactions)
	want := "Date,Type,Category,Description,Amount\n" +
		`06/01/2025,expense,materials,"Cement ""Shah"" 50kg, <bulk>",1250.5` + "\n" +
		`07/01/2025,income,income,"Advance",10000` + "\n"
	if got != want {
		t.Fatalf("unexpected csv:\n%s\nwant:\n%s", got, want)
	}
}

func TestOtherCSVs(t *testing.T) {
	d := sampleData()
	b := All(d)

	if want := "Week Start,Worker Name,Hours,Rate,Total,Paid\n06/01/2025,\"Rahim\",44,100,4600,Yes\n"; b.LaborPayments != want {
		t.Fatalf("unexpected labor csv %q", b.LaborPayments)
	}
	if want := "Name,Hourly Rate,Created Date\n\"Rahim\",100,03/02/2025\n"; b.Workers != want {
		t.Fatalf("unexpected workers csv %q", b.Workers)
	}
	lines := strings.Split(strings.TrimSpace(b.Invoices), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(lines))
	}
	if lines[1] != `INV-2502-0042,03/02/2025,05/03/2025,"Dhaka Builders",11500,5000,6500,sent` {
		t.Fatalf("unexpected invoice row %q", lines[1])
	}
	if lines[2] != `INV-2502-0043,03/02/2025,,"Cash",100,0,0,draft` {
		t.Fatalf("missing due date should be empty, got %q", lines[2])
	}
	if !strings.HasPrefix(b.Transactions, "Date,Type") {
		t.Fatalf("bundle must include transactions")
	}
}

func TestTableEscapesUserText(t *testing.T) {
	html, err := Transactions(sampleData().Transactions)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<bulk>") {
		t.Fatalf("user text must be escaped")
	}
	if !strings.Contains(html, "&lt;bulk&gt;") {
		t.Fatalf("expected escaped description in %s", html)
	}
	if !strings.Contains(html, "<th>Amount (BDT)</th>") || !strings.Contains(html, "#006A4E") {
		t.Fatalf("missing header or style")
	}
}

func TestFinancialSummary(t *testing.T) {
	html, err := FinancialSummary(sampleData().Transactions, "January")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Financial Summary - January", "<td>Total Income</td><td>10000</td>", "<td>Net Profit/Loss</td><td>8749.5</td>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in %s", want, html)
		}
	}
}

func TestCompleteReport(t *testing.T) {
	html, err := CompleteReport(sampleData(), fixedNow)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"J&amp;S Accounting BD - Complete Report",
		"Generated: 03/02/2025, 14:05:00",
		"Total Invoices: 2",
		"<td>Rahim</td><td>100</td>",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in report", want)
		}
	}
}

func TestWorkbook(t *testing.T) {
	var buf bytes.Buffer
	if err := Workbook(sampleData(), &buf); err != nil {
		t.Fatalf("workbook: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	want := []string{SheetTransactions, SheetLabor, SheetWorkers, SheetInvoices, SheetSummary}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected sheets %v, got %v", want, got)
	}
	rows, err := f.GetRows(SheetTransactions)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 || rows[1][3] != `Cement "Shah" 50kg, <bulk>` || rows[1][4] != "1250.5" {
		t.Fatalf("unexpected transaction rows %v", rows)
	}
	summary, _ := f.GetRows(SheetSummary)
	if summary[3][0] != "Net Profit/Loss" || summary[3][1] != "8749.5" {
		t.Fatalf("unexpected summary rows %v", summary)
	}
}
