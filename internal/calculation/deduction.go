package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxsim/tax-estimator/internal/domain"
)

// DeductionCalculator resolves the standard deduction for a filing status.
type DeductionCalculator struct {
	tables *Tables
}

// NewDeductionCalculator creates a new standard deduction calculator.
func NewDeductionCalculator(tables *Tables) *DeductionCalculator {
	return &DeductionCalculator{tables: tables}
}

// StandardDeduction returns the deduction for the filing status plus the
// senior supplement when the filer is at or past the senior age. It always
// returns a value; an unknown status resolves through the single row.
func (dc *DeductionCalculator) StandardDeduction(status domain.FilingStatus, age int) decimal.Decimal {
	base, ok := dc.tables.StandardDeductions[status]
	if !ok {
		base = dc.tables.StandardDeductions[domain.FilingSingle]
	}

	if age >= dc.tables.SeniorAge {
		if status == domain.FilingMarried {
			base = base.Add(dc.tables.SeniorSupplementMarried)
		} else {
			base = base.Add(dc.tables.SeniorSupplementOther)
		}
	}

	return base
}
