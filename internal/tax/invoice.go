package tax

import (
	"github.com/shopspring/decimal"
)

type InvoiceLine struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// Invoice holds the computed part of an NBR tax invoice (Mushak).
type Invoice struct {
	Items         []InvoiceLine   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	VATAmount     decimal.Decimal `json:"vatAmount"`
	VATRate       decimal.Decimal `json:"vatRate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AmountInWords string          `json:"amountInWords"`
}

// GenerateInvoice fills each line's total and applies VAT on the subtotal.
func GenerateInvoice(items []InvoiceLine, vatRate decimal.Decimal) Invoice {
	inv := Invoice{Items: make([]InvoiceLine, 0, len(items)), Subtotal: decimal.Zero, VATRate: vatRate}
	for _, it := range items {
		it.TotalPrice = it.Quantity.Mul(it.UnitPrice)
		inv.Subtotal = inv.Subtotal.Add(it.TotalPrice)
		inv.Items = append(inv.Items, it)
	}
	inv.VATAmount = VAT(inv.Subtotal, vatRate)
	inv.TotalAmount = inv.Subtotal.Add(inv.VATAmount)
	inv.AmountInWords = AmountInWords(inv.TotalAmount)
	return inv
}

// AmountInWords renders the amount for the "in words" line of an invoice.
func AmountInWords(amount decimal.Decimal) string {
	return "টাকা " + amount.String() + " মাত্র"
}
