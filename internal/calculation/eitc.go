package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxsim/tax-estimator/internal/domain"
)

// EITCCalculator looks up the earned income tax credit. No phase-out curve is
// modeled: each child-count row has a hard income ceiling per filing status
// and a flat credit below it.
type EITCCalculator struct {
	tables *Tables
}

// NewEITCCalculator creates a new earned income credit calculator.
func NewEITCCalculator(tables *Tables) *EITCCalculator {
	return &EITCCalculator{tables: tables}
}

// Calculate returns the credit for the filer's total gross income and
// dependent count. Counts are clamped to [0, MaxEITCChildren]; income
// strictly above the applicable ceiling earns zero.
func (ec *EITCCalculator) Calculate(totalGrossIncome decimal.Decimal, status domain.FilingStatus, dependents int) decimal.Decimal {
	children := dependents
	if children < 0 {
		children = 0
	}
	if children > MaxEITCChildren {
		children = MaxEITCChildren
	}

	for _, row := range ec.tables.EITC {
		if row.Children != children {
			continue
		}
		ceiling := row.SingleCeiling
		if status == domain.FilingMarried {
			ceiling = row.MarriedCeiling
		}
		if totalGrossIncome.GreaterThan(ceiling) {
			return decimal.Zero
		}
		return row.Credit
	}

	return decimal.Zero
}
