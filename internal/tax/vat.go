// Package tax implements Bangladesh VAT and individual income-tax arithmetic.
// All functions are pure; rates are percentages.
package tax

import (
	"github.com/shopspring/decimal"

	"buildledger/internal/refdata"
)

var hundred = decimal.NewFromInt(100)

// VAT returns amount*rate/100.
func VAT(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(hundred)
}

// PriceWithVAT returns amount plus its VAT.
func PriceWithVAT(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Add(VAT(amount, rate))
}

// PriceWithoutVAT removes VAT from a VAT-inclusive amount.
func PriceWithoutVAT(amountWithVAT, rate decimal.Decimal) decimal.Decimal {
	return amountWithVAT.Div(decimal.NewFromInt(1).Add(rate.Div(hundred)))
}

// ExtractVATFromInclusive splits a VAT-inclusive amount into base and VAT.
func ExtractVATFromInclusive(amountWithVAT, rate decimal.Decimal) (base, vat decimal.Decimal) {
	base = PriceWithoutVAT(amountWithVAT, rate)
	return base, amountWithVAT.Sub(base)
}

// MaterialVATRate returns the VAT class of a material category, or the
// standard rate when the material is not classified.
func MaterialVATRate(material string) decimal.Decimal {
	if r, ok := refdata.MaterialVATRate(material); ok {
		return r
	}
	return refdata.VATStandard
}
