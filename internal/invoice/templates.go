package invoice

import (
	"slices"

	"github.com/shopspring/decimal"

	"buildledger/internal/refdata"
)

type Template struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	NameBn         string          `json:"nameBn"`
	Description    string          `json:"description"`
	Items          []ItemInput     `json:"items"`
	DefaultVATRate decimal.Decimal `json:"defaultVatRate"`
	Notes          string          `json:"notes,omitempty"`
}

func line(description string, quantity int64, unit string, unitPrice int64) ItemInput {
	return ItemInput{
		Description: description,
		Quantity:    decimal.NewFromInt(quantity),
		Unit:        unit,
		UnitPrice:   decimal.NewFromInt(unitPrice),
	}
}

var templates = []Template{
	{
		ID:             "construction-full",
		Name:           "Full Construction",
		NameBn:         "সম্পূর্ণ নির্মাণ",
		Description:    "Complete construction project invoice",
		DefaultVATRate: refdata.VATStandard,
		Items: []ItemInput{
			line("Cement (100 bags)", 100, "bags", 520),
			line("Steel Rods (1000 kg)", 1000, "kg", 95),
			line("Bricks (5000 pcs)", 5000, "pcs", 12),
			line("Masonry Labor", 1, "job", 50000),
		},
	},
	{
		ID:             "renovation",
		Name:           "Renovation",
		NameBn:         "পুনর্নির্মাণ",
		Description:    "Renovation project invoice",
		DefaultVATRate: refdata.VATStandard,
		Items: []ItemInput{
			line("Tile Work", 500, "sqft", 85),
			line("Painting Work", 1000, "sqft", 18),
			line("Electrical Work", 1, "job", 15000),
			line("Plumbing Work", 1, "job", 12000),
		},
	},
	{
		ID:             "consulting",
		Name:           "Consulting Services",
		NameBn:         "পরামর্শ সেবা",
		Description:    "Professional consulting services",
		DefaultVATRate: refdata.VATStandard,
		Items: []ItemInput{
			line("Architectural Design", 1, "project", 50000),
			line("Structural Engineering", 1, "project", 40000),
			line("Site Supervision (per month)", 3, "months", 30000),
		},
	},
	{
		ID:          "labor-only",
		Name:        "Labor Only",
		NameBn:      "শুধু শ্রমিক",
		Description: "Labor charges only",
		// labor is usually VAT exempt
		DefaultVATRate: decimal.Zero,
		Items: []ItemInput{
			line("Master Mason", 30, "days", 1200),
			line("Helper", 30, "days", 700),
			line("Carpenter", 15, "days", 1100),
		},
	},
}

func Templates() []Template { return slices.Clone(templates) }

func TemplateByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
