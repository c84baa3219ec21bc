package refdata

import (
	"slices"

	"github.com/shopspring/decimal"
)

// VAT rates in percent.
var (
	VATStandard = decimal.NewFromInt(15)
	VATReduced  = decimal.NewFromInt(5)
	VATZero     = decimal.Zero
)

type (
	// VATCategory has an invalid Rate when goods are exempt.
	VATCategory struct {
		ID          string              `json:"id"`
		Name        string              `json:"name"`
		NameBn      string              `json:"nameBn"`
		Rate        decimal.NullDecimal `json:"rate"`
		Description string              `json:"description"`
	}

	// TaxSlab is one income-tax bracket. Max is invalid for the open top slab.
	TaxSlab struct {
		Min         decimal.Decimal     `json:"min"`
		Max         decimal.NullDecimal `json:"max"`
		Rate        decimal.Decimal     `json:"rate"`
		Description string              `json:"description"`
	}

	CorporateTaxRates struct {
		PublicLimited  decimal.Decimal `json:"publicLimited"`
		PrivateLimited decimal.Decimal `json:"privateLimited"`
		BankInsurance  decimal.Decimal `json:"bankInsurance"`
		Cigarette      decimal.Decimal `json:"cigarette"`
		MobileOperator decimal.Decimal `json:"mobileOperator"`
	}

	AITRates struct {
		CommercialImport decimal.Decimal `json:"commercialImport"`
		IndustrialImport decimal.Decimal `json:"industrialImport"`
	}

	UtilityAdvanceTax struct {
		Residential decimal.Decimal `json:"residential"`
		Commercial  decimal.Decimal `json:"commercial"`
		Industrial  decimal.Decimal `json:"industrial"`
	}

	AdvanceTaxRates struct {
		Electricity UtilityAdvanceTax `json:"electricity"`
		Gas         UtilityAdvanceTax `json:"gas"`
	}

	NBRContact struct {
		Website     string `json:"website"`
		VATHelpline string `json:"vatHelpline"`
		TaxHelpline string `json:"taxHelpline"`
		Email       string `json:"email"`
	}
)

// Investment rebate parameters.
var (
	RebateRate          = decimal.NewFromInt(15)
	RebateMaxInvestment = decimal.NewFromInt(10_000_000)
	RebateMaxAmount     = decimal.NewFromInt(1_000_000)
)

var vatCategories = []VATCategory{
	{ID: "standard", Name: "Standard Rate", NameBn: "সাধারণ হার", Rate: decimal.NewNullDecimal(VATStandard), Description: "Most goods and services"},
	{ID: "reduced", Name: "Reduced Rate", NameBn: "হ্রাসকৃত হার", Rate: decimal.NewNullDecimal(VATReduced), Description: "Essential goods"},
	{ID: "zero", Name: "Zero Rated", NameBn: "শূন্য হার", Rate: decimal.NewNullDecimal(VATZero), Description: "Exports, medicines"},
	{ID: "exempt", Name: "VAT Exempt", NameBn: "ভ্যাট মুক্ত", Description: "Basic food, education"},
}

var materialVATRates = map[string]decimal.Decimal{
	"cement":     VATStandard,
	"steel":      VATStandard,
	"tiles":      VATStandard,
	"paint":      VATStandard,
	"electrical": VATStandard,
	"plumbing":   VATStandard,
	"glass":      VATStandard,
	"aluminum":   VATStandard,
	"bricks":     VATReduced,
	"sand":       VATReduced,
	"wood":       VATZero,
}

// Individual income tax, FY 2024-25.
var incomeTaxSlabs = []TaxSlab{
	{Min: decimal.Zero, Max: bounded(350_000), Rate: decimal.Zero, Description: "Tax Free"},
	{Min: decimal.NewFromInt(350_001), Max: bounded(450_000), Rate: decimal.NewFromInt(5), Description: "Next 1,00,000"},
	{Min: decimal.NewFromInt(450_001), Max: bounded(750_000), Rate: decimal.NewFromInt(10), Description: "Next 3,00,000"},
	{Min: decimal.NewFromInt(750_001), Max: bounded(1_150_000), Rate: decimal.NewFromInt(15), Description: "Next 4,00,000"},
	{Min: decimal.NewFromInt(1_150_001), Max: bounded(1_550_000), Rate: decimal.NewFromInt(20), Description: "Next 4,00,000"},
	{Min: decimal.NewFromInt(1_550_001), Rate: decimal.NewFromInt(25), Description: "Above 15,50,000"},
}

func bounded(n int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(n))
}

var CorporateTax = CorporateTaxRates{
	PublicLimited:  decimal.NewFromInt(25),
	PrivateLimited: decimal.RequireFromString("27.5"),
	BankInsurance:  decimal.NewFromInt(40),
	Cigarette:      decimal.NewFromInt(45),
	MobileOperator: decimal.NewFromInt(45),
}

var AIT = AITRates{
	CommercialImport: decimal.NewFromInt(5),
	IndustrialImport: decimal.NewFromInt(3),
}

var AdvanceTax = AdvanceTaxRates{
	Electricity: UtilityAdvanceTax{Residential: decimal.Zero, Commercial: decimal.RequireFromString("2.5"), Industrial: decimal.RequireFromString("2.5")},
	Gas:         UtilityAdvanceTax{Residential: decimal.Zero, Commercial: decimal.RequireFromString("2.5"), Industrial: decimal.RequireFromString("2.5")},
}

var NBR = NBRContact{
	Website:     "https://www.nbr.gov.bd",
	VATHelpline: "16409",
	TaxHelpline: "16408",
	Email:       "info@nbr.gov.bd",
}

func VATCategories() []VATCategory { return slices.Clone(vatCategories) }

// IncomeTaxSlabs returns the slabs ordered from lowest to highest.
func IncomeTaxSlabs() []TaxSlab { return slices.Clone(incomeTaxSlabs) }

// MaterialVATRate looks up the VAT class of a material category id.
func MaterialVATRate(material string) (decimal.Decimal, bool) {
	r, ok := materialVATRates[material]
	return r, ok
}
