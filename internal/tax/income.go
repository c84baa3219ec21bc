package tax

import (
	"github.com/shopspring/decimal"

	"buildledger/internal/refdata"
)

// SlabTax is the part of an income that fell into one slab.
type SlabTax struct {
	Slab          refdata.TaxSlab `json:"slab"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	Tax           decimal.Decimal `json:"tax"`
}

type IncomeTaxResult struct {
	Breakdown     []SlabTax       `json:"taxBreakdown"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
}

type Rebate struct {
	EligibleAmount decimal.Decimal `json:"eligibleAmount"`
	RebateAmount   decimal.Decimal `json:"rebateAmount"`
}

type Summary struct {
	GrossIncome      decimal.Decimal `json:"grossIncome"`
	Deductions       decimal.Decimal `json:"deductions"`
	TaxableIncome    decimal.Decimal `json:"taxableIncome"`
	TaxBeforeRebate  decimal.Decimal `json:"taxBeforeRebate"`
	InvestmentRebate decimal.Decimal `json:"investmentRebate"`
	FinalTax         decimal.Decimal `json:"finalTax"`
	MonthlyTax       decimal.Decimal `json:"monthlyTax"`
}

// IncomeTax walks the slabs in order. A slab covers the range from the
// previous slab's max to its own max, so brackets are contiguous; the open top
// slab takes whatever is left. Zero-rate slabs still consume their width and
// appear in the breakdown.
func IncomeTax(annualIncome decimal.Decimal) IncomeTaxResult {
	res := IncomeTaxResult{Breakdown: []SlabTax{}, TotalTax: decimal.Zero, EffectiveRate: decimal.Zero}
	if !annualIncome.IsPositive() {
		return res
	}

	remaining := annualIncome
	lower := decimal.Zero
	for _, slab := range refdata.IncomeTaxSlabs() {
		if !remaining.IsPositive() {
			break
		}
		width := remaining
		if slab.Max.Valid {
			width = slab.Max.Decimal.Sub(lower)
			lower = slab.Max.Decimal
		}
		taxable := decimal.Min(remaining, width)
		if taxable.IsPositive() {
			t := VAT(taxable, slab.Rate)
			res.Breakdown = append(res.Breakdown, SlabTax{Slab: slab, TaxableAmount: taxable, Tax: t})
			res.TotalTax = res.TotalTax.Add(t)
		}
		remaining = remaining.Sub(taxable)
	}

	res.EffectiveRate = res.TotalTax.Div(annualIncome).Mul(hundred)
	return res
}

// InvestmentRebate caps the eligible investment and the rebate itself.
// Negative amounts count as zero.
func InvestmentRebate(investment decimal.Decimal) Rebate {
	if investment.IsNegative() {
		investment = decimal.Zero
	}
	eligible := decimal.Min(investment, refdata.RebateMaxInvestment)
	rebate := decimal.Min(VAT(eligible, refdata.RebateRate), refdata.RebateMaxAmount)
	return Rebate{EligibleAmount: eligible, RebateAmount: rebate}
}

// Calculate produces the yearly summary: tax on income after deductions,
// less the investment rebate, never below zero.
func Calculate(grossIncome, deductions, investment decimal.Decimal) Summary {
	taxable := decimal.Max(decimal.Zero, grossIncome.Sub(deductions))
	before := IncomeTax(taxable).TotalTax
	rebate := InvestmentRebate(investment).RebateAmount
	final := decimal.Max(decimal.Zero, before.Sub(rebate))
	return Summary{
		GrossIncome:      grossIncome,
		Deductions:       deductions,
		TaxableIncome:    taxable,
		TaxBeforeRebate:  before,
		InvestmentRebate: rebate,
		FinalTax:         final,
		MonthlyTax:       final.Div(decimal.NewFromInt(12)),
	}
}
