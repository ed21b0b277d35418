package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taxsim/tax-estimator/internal/domain"
)

// TestBracketTaxCalculation tests the progressive bracket walk against
// hand-computed amounts.
func TestBracketTaxCalculation(t *testing.T) {
	calculator := NewBracketTaxCalculator(DefaultTables())

	tests := []struct {
		name       string
		income     decimal.Decimal
		status     domain.FilingStatus
		deductions decimal.Decimal
		expected   decimal.Decimal
	}{
		{
			name:       "Income below deduction owes nothing",
			income:     decimal.NewFromInt(12000),
			status:     domain.FilingSingle,
			deductions: decimal.NewFromInt(13850),
			expected:   decimal.Zero,
		},
		{
			name:       "Income equal to deduction owes nothing",
			income:     decimal.NewFromInt(13850),
			status:     domain.FilingSingle,
			deductions: decimal.NewFromInt(13850),
			expected:   decimal.Zero,
		},
		{
			name:       "Single 50k with standard deduction",
			income:     decimal.NewFromInt(50000),
			status:     domain.FilingSingle,
			deductions: decimal.NewFromInt(13850),
			// 36150 taxable: 11000*0.10 + 25150*0.12 = 1100 + 3018
			expected: decimal.NewFromInt(4118),
		},
		{
			name:       "Single taxable income exactly fills two brackets",
			income:     decimal.NewFromInt(44725),
			status:     domain.FilingSingle,
			deductions: decimal.Zero,
			// 11000*0.10 + 33725*0.12 = 1100 + 4047
			expected: decimal.NewFromInt(5147),
		},
		{
			name:       "Single one dollar into the 22% bracket",
			income:     decimal.NewFromInt(44726),
			status:     domain.FilingSingle,
			deductions: decimal.Zero,
			expected:   decimal.NewFromFloat(5147.22),
		},
		{
			name:       "Married 30k with standard deduction",
			income:     decimal.NewFromInt(30000),
			status:     domain.FilingMarried,
			deductions: decimal.NewFromInt(27700),
			expected:   decimal.NewFromInt(230), // 2300 * 0.10
		},
		{
			name:       "Single income in the top bracket",
			income:     decimal.NewFromInt(700000),
			status:     domain.FilingSingle,
			deductions: decimal.Zero,
			// 1100 + 4047 + 11143 + 20814 + 15728 + 121406.25 + 121875*0.37
			expected: decimal.NewFromInt(219332),
		},
		{
			name:       "Fractional taxable income rounds half up",
			income:     decimal.NewFromFloat(10000.55),
			status:     domain.FilingSingle,
			deductions: decimal.Zero,
			expected:   decimal.NewFromFloat(1000.06), // 1000.055 rounded
		},
		{
			name:       "Married separately uses the single table",
			income:     decimal.NewFromInt(50000),
			status:     domain.FilingMarriedSeparate,
			deductions: decimal.NewFromInt(13850),
			expected:   decimal.NewFromInt(4118),
		},
		{
			name:       "Head of household uses the single table",
			income:     decimal.NewFromInt(50000),
			status:     domain.FilingHeadOfHousehold,
			deductions: decimal.NewFromInt(13850),
			expected:   decimal.NewFromInt(4118),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := calculator.Calculate(tc.income, tc.status, tc.deductions)
			assert.True(t, tc.expected.Equal(got),
				"expected %s, got %s", tc.expected, got)
		})
	}
}

// TestBracketTaxMonotonic verifies that more income never produces less tax.
func TestBracketTaxMonotonic(t *testing.T) {
	calculator := NewBracketTaxCalculator(DefaultTables())

	previous := decimal.Zero
	for income := int64(0); income <= 650000; income += 12500 {
		tax := calculator.Calculate(decimal.NewFromInt(income), domain.FilingSingle, decimal.Zero)
		assert.True(t, tax.GreaterThanOrEqual(previous),
			"tax decreased at income %d: %s < %s", income, tax, previous)
		previous = tax
	}
}

// TestBracketBoundaryContinuity verifies there is no jump at any bracket
// boundary: one extra taxable dollar costs at most the top marginal rate.
func TestBracketBoundaryContinuity(t *testing.T) {
	tables := DefaultTables()
	calculator := NewBracketTaxCalculator(tables)
	maxStep := decimal.NewFromFloat(0.37)

	for _, status := range []domain.FilingStatus{domain.FilingSingle, domain.FilingMarried} {
		for _, bracket := range tables.BracketsFor(status) {
			if bracket.Lower.IsZero() {
				continue
			}
			below := calculator.Calculate(bracket.Lower.Sub(one), status, decimal.Zero)
			at := calculator.Calculate(bracket.Lower, status, decimal.Zero)
			step := at.Sub(below)
			assert.True(t, step.GreaterThanOrEqual(decimal.Zero) && step.LessThanOrEqual(maxStep),
				"%s boundary at %s stepped by %s", status, bracket.Lower, step)
		}
	}
}
