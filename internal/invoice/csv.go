package invoice

import (
	"strings"

	"github.com/shopspring/decimal"

	"buildledger/internal/refdata"
)

// ExportCSV renders one invoice as a sectioned CSV document. Amounts carry the
// currency symbol; missing optional fields print N/A.
func ExportCSV(inv Invoice) string {
	sym := refdata.CurrencyByCode(inv.Currency).Symbol
	money := func(d decimal.Decimal) string { return sym + d.String() }
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	due := "N/A"
	if inv.DueDate != nil && !inv.DueDate.IsZero() {
		due = inv.DueDate.String()
	}

	var b strings.Builder
	b.WriteString("Invoice Details\n")
	b.WriteString("Invoice Number," + inv.InvoiceNumber + "\n")
	b.WriteString("Date," + inv.Date.String() + "\n")
	b.WriteString("Due Date," + due + "\n")
	b.WriteString("Status," + string(inv.Status) + "\n\n")

	b.WriteString("Seller Information\n")
	b.WriteString("Name," + inv.Seller.Name + "\n")
	b.WriteString("Address," + inv.Seller.Address + "\n")
	b.WriteString("Phone," + orNA(inv.Seller.Phone) + "\n")
	b.WriteString("BIN," + orNA(inv.Seller.BIN) + "\n\n")

	b.WriteString("Buyer Information\n")
	b.WriteString("Name," + inv.Buyer.Name + "\n")
	b.WriteString("Address," + inv.Buyer.Address + "\n")
	b.WriteString("Phone," + orNA(inv.Buyer.Phone) + "\n\n")

	b.WriteString("Items\n")
	b.WriteString("Description,Quantity,Unit,Unit Price,Total\n")
	for _, it := range inv.Items {
		b.WriteString(`"` + strings.ReplaceAll(it.Description, `"`, `""`) + `",`)
		b.WriteString(it.Quantity.String() + "," + it.Unit + ",")
		b.WriteString(money(it.UnitPrice) + "," + money(it.TotalPrice) + "\n")
	}

	b.WriteString("\nSummary\n")
	b.WriteString("Subtotal," + money(inv.Subtotal) + "\n")
	b.WriteString("Discount (" + inv.DiscountPercent.String() + "%)," + money(inv.DiscountAmount) + "\n")
	b.WriteString("VAT (" + inv.VATRate.String() + "%)," + money(inv.VATAmount) + "\n")
	b.WriteString("Total," + money(inv.TotalAmount) + "\n")
	b.WriteString("Amount Paid," + money(inv.AmountPaid) + "\n")
	b.WriteString("Balance Due," + money(inv.BalanceDue) + "\n")
	return b.String()
}
