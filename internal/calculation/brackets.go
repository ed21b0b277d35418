package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxsim/tax-estimator/internal/domain"
)

// BracketTaxCalculator computes federal income tax by walking the progressive
// bracket table for a filing status.
type BracketTaxCalculator struct {
	tables *Tables
}

// NewBracketTaxCalculator creates a new progressive bracket calculator.
func NewBracketTaxCalculator(tables *Tables) *BracketTaxCalculator {
	return &BracketTaxCalculator{tables: tables}
}

var one = decimal.NewFromInt(1)

// Calculate subtracts the deduction amount from gross income, floors the
// taxable income at zero, and accumulates min(remaining, bracket width) at
// each bracket's rate in ascending order. The top bracket absorbs whatever
// remains. The result is rounded half-up to the cent and is never negative.
func (bc *BracketTaxCalculator) Calculate(income decimal.Decimal, status domain.FilingStatus, deductions decimal.Decimal) decimal.Decimal {
	taxableIncome := income.Sub(deductions)
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Zero
	remaining := taxableIncome
	for _, bracket := range bc.tables.BracketsFor(status) {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		amount := remaining
		if !bracket.Unbounded() {
			width := bracket.Upper.Sub(bracket.Lower).Add(one)
			amount = decimal.Min(remaining, width)
		}
		tax = tax.Add(amount.Mul(bracket.Rate))
		remaining = remaining.Sub(amount)
	}

	return tax.Round(2)
}
