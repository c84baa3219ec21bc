// Package invoice builds construction invoices and keeps their totals
// consistent: subtotal, discount, VAT, total and balance are always derived
// from the items.
package invoice

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"buildledger/internal/core"
	"buildledger/internal/refdata"
	"buildledger/internal/tax"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

var (
	ErrInvalidStatus    = errors.New("invalid invoice status")
	ErrTemplateNotFound = errors.New("invoice template not found")
	ErrItemNotFound     = errors.New("invoice item not found")
	ErrNoItems          = errors.New("invoice has no items")
)

// now is replaced in tests.
var now = time.Now

type (
	Seller struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone,omitempty"`
		Email   string `json:"email,omitempty"`
		BIN     string `json:"bin,omitempty"`
		Logo    string `json:"logo,omitempty"`
	}

	Buyer struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone,omitempty"`
		Email   string `json:"email,omitempty"`
		BIN     string `json:"bin,omitempty"`
	}

	Project struct {
		Name        string `json:"name"`
		Address     string `json:"address,omitempty"`
		Description string `json:"description,omitempty"`
	}

	// ItemInput is an item before it gets an id and a total.
	ItemInput struct {
		Description   string          `json:"description"`
		DescriptionBn string          `json:"descriptionBn,omitempty"`
		Quantity      decimal.Decimal `json:"quantity"`
		Unit          string          `json:"unit"`
		UnitBn        string          `json:"unitBn,omitempty"`
		UnitPrice     decimal.Decimal `json:"unitPrice"`
	}

	Item struct {
		ID            string          `json:"id"`
		Description   string          `json:"description"`
		DescriptionBn string          `json:"descriptionBn,omitempty"`
		Quantity      decimal.Decimal `json:"quantity"`
		Unit          string          `json:"unit"`
		UnitBn        string          `json:"unitBn,omitempty"`
		UnitPrice     decimal.Decimal `json:"unitPrice"`
		TotalPrice    decimal.Decimal `json:"totalPrice"`
	}

	Invoice struct {
		ID              string          `json:"id"`
		InvoiceNumber   string          `json:"invoiceNumber"`
		Date            core.Date       `json:"date"`
		DueDate         *core.Date      `json:"dueDate,omitempty"`
		Seller          Seller          `json:"seller"`
		Buyer           Buyer           `json:"buyer"`
		Project         *Project        `json:"project,omitempty"`
		Items           []Item          `json:"items"`
		Subtotal        decimal.Decimal `json:"subtotal"`
		DiscountAmount  decimal.Decimal `json:"discountAmount"`
		DiscountPercent decimal.Decimal `json:"discountPercent"`
		VATAmount       decimal.Decimal `json:"vatAmount"`
		VATRate         decimal.Decimal `json:"vatRate"`
		TotalAmount     decimal.Decimal `json:"totalAmount"`
		AmountPaid      decimal.Decimal `json:"amountPaid"`
		BalanceDue      decimal.Decimal `json:"balanceDue"`
		Currency        string          `json:"currency"`
		Status          Status          `json:"status"`
		Notes           string          `json:"notes,omitempty"`
		Terms           string          `json:"terms,omitempty"`
		CreatedAt       time.Time       `json:"createdAt"`
		UpdatedAt       time.Time       `json:"updatedAt"`
	}

	// Options override creation defaults. Nil rates mean the default.
	Options struct {
		Project         *Project
		Currency        string
		VATRate         *decimal.Decimal
		DiscountPercent *decimal.Decimal
		Notes           string
		Terms           string
		DueDate         *core.Date
	}
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// ParseStatus validates a user-supplied status.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

func newItem(in ItemInput) Item {
	return Item{
		ID:            core.NewID(),
		Description:   in.Description,
		DescriptionBn: in.DescriptionBn,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		UnitBn:        in.UnitBn,
		UnitPrice:     in.UnitPrice,
		TotalPrice:    in.Quantity.Mul(in.UnitPrice),
	}
}

// New creates a draft invoice dated today. Currency defaults to BDT, VAT to
// the standard rate, discount to zero and terms to DefaultTerms.
func New(seller Seller, buyer Buyer, items []ItemInput, opts Options) Invoice {
	t := now().UTC()
	inv := Invoice{
		ID:              core.NewID(),
		InvoiceNumber:   GenerateNumber(t),
		Date:            core.DateOf(t),
		DueDate:         opts.DueDate,
		Seller:          seller,
		Buyer:           buyer,
		Project:         opts.Project,
		Items:           make([]Item, 0, len(items)),
		DiscountPercent: decimal.Zero,
		VATRate:         refdata.VATStandard,
		AmountPaid:      decimal.Zero,
		Currency:        refdata.DefaultCurrencyCode,
		Status:          StatusDraft,
		Notes:           opts.Notes,
		Terms:           opts.Terms,
		CreatedAt:       t,
	}
	if opts.Currency != "" {
		inv.Currency = opts.Currency
	}
	if opts.VATRate != nil {
		inv.VATRate = *opts.VATRate
	}
	if opts.DiscountPercent != nil {
		inv.DiscountPercent = *opts.DiscountPercent
	}
	if inv.Terms == "" {
		inv.Terms = DefaultTerms()
	}
	for _, in := range items {
		inv.Items = append(inv.Items, newItem(in))
	}
	inv = Recalculate(inv)
	inv.UpdatedAt = t
	return inv
}

// FromTemplate creates an invoice with the template's items and VAT rate.
func FromTemplate(templateID string, seller Seller, buyer Buyer, opts Options) (Invoice, error) {
	tpl, ok := TemplateByID(templateID)
	if !ok {
		return Invoice{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}
	rate := tpl.DefaultVATRate
	opts.VATRate = &rate
	opts.Notes = tpl.Notes
	return New(seller, buyer, tpl.Items, opts), nil
}

// UpdateStatus sets the status. When amountPaid is given the balance is
// recomputed and floored at zero, and the status follows the payment: a zero
// balance means paid, a partial payment means sent.
func UpdateStatus(inv Invoice, status Status, amountPaid *decimal.Decimal) (Invoice, error) {
	if !status.IsValid() {
		return inv, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if amountPaid != nil && amountPaid.IsNegative() {
		return inv, core.ErrInvalidAmount
	}
	inv.Status = status
	inv.UpdatedAt = now().UTC()
	if amountPaid == nil {
		return inv, nil
	}
	inv.AmountPaid = *amountPaid
	inv.BalanceDue = decimal.Max(decimal.Zero, inv.TotalAmount.Sub(inv.AmountPaid))
	switch {
	case inv.BalanceDue.IsZero():
		inv.Status = StatusPaid
	case inv.BalanceDue.LessThan(inv.TotalAmount):
		inv.Status = StatusSent
	}
	return inv, nil
}

// AddItem appends an item and recalculates.
func AddItem(inv Invoice, in ItemInput) Invoice {
	items := make([]Item, 0, len(inv.Items)+1)
	items = append(items, inv.Items...)
	inv.Items = append(items, newItem(in))
	return Recalculate(inv)
}

// RemoveItem drops the item with itemID and recalculates. Unknown ids leave
// the items untouched.
func RemoveItem(inv Invoice, itemID string) Invoice {
	items := make([]Item, 0, len(inv.Items))
	for _, it := range inv.Items {
		if it.ID != itemID {
			items = append(items, it)
		}
	}
	inv.Items = items
	return Recalculate(inv)
}

// Recalculate derives every total from the items. The balance is not floored.
func Recalculate(inv Invoice) Invoice {
	subtotal := decimal.Zero
	for _, it := range inv.Items {
		subtotal = subtotal.Add(it.TotalPrice)
	}
	inv.Subtotal = subtotal
	inv.DiscountAmount = core.Percent(subtotal, inv.DiscountPercent)
	afterDiscount := subtotal.Sub(inv.DiscountAmount)
	inv.VATAmount = tax.VAT(afterDiscount, inv.VATRate)
	inv.TotalAmount = afterDiscount.Add(inv.VATAmount)
	inv.BalanceDue = inv.TotalAmount.Sub(inv.AmountPaid)
	inv.UpdatedAt = now().UTC()
	return inv
}

// GenerateNumber returns INV-YYMM-NNNN with a random suffix. Numbers are not
// checked for uniqueness.
func GenerateNumber(t time.Time) string {
	return fmt.Sprintf("INV-%02d%02d-%04d", t.Year()%100, int(t.Month()), rand.IntN(10000))
}

func DefaultTerms() string {
	return "Payment Terms: Net 30 days from invoice date.\n" +
		"Late payments subject to 2% monthly service charge.\n" +
		"All prices are in Bangladeshi Taka (BDT) and include VAT where applicable."
}

func DefaultTermsBn() string {
	return "পেমেন্ট শর্তাবলী: চালান তারিখ থেকে ৩০ দিনের মধ্যে পরিশোধ করতে হবে।\n" +
		"বিলম্বিত পেমেন্টের জন্য প্রতি মাসে ২% সার্ভিস চার্জ প্রযোজ্য।\n" +
		"সমস্ত মূল্য বাংলাদেশী টাকায় (৳) এবং প্রযোজ্য ভ্যাট সহ।"
}

// Validate checks the fields a user must fill before an invoice is stored.
func (inv Invoice) Validate() error {
	if strings.TrimSpace(inv.ID) == "" {
		return core.ErrEmptyID
	}
	if strings.TrimSpace(inv.Seller.Name) == "" || strings.TrimSpace(inv.Buyer.Name) == "" {
		return core.ErrEmptyName
	}
	if len(inv.Items) == 0 {
		return ErrNoItems
	}
	if !inv.Status.IsValid() {
		return ErrInvalidStatus
	}
	for _, it := range inv.Items {
		if it.Quantity.IsNegative() || it.UnitPrice.IsNegative() {
			return core.ErrInvalidAmount
		}
	}
	return nil
}
