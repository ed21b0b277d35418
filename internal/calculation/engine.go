package calculation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxsim/tax-estimator/internal/domain"
	"github.com/taxsim/tax-estimator/internal/errors"
)

// Engine is the tax estimation engine: a stateless composition of the
// deduction, bracket, and EITC calculators plus the reconciliation step.
// A single Engine is safe for concurrent use; the tables it reads are never
// mutated after construction.
type Engine struct {
	tables    *Tables
	deduction *DeductionCalculator
	bracket   *BracketTaxCalculator
	eitc      *EITCCalculator
	logger    Logger
}

// NewEngine creates an engine over the given tables. A nil tables argument
// selects the built-in defaults.
func NewEngine(tables *Tables) *Engine {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Engine{
		tables:    tables,
		deduction: NewDeductionCalculator(tables),
		bracket:   NewBracketTaxCalculator(tables),
		eitc:      NewEITCCalculator(tables),
		logger:    NopLogger{},
	}
}

// SetLogger replaces the engine's logger. The default is a no-op.
func (e *Engine) SetLogger(logger Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// Tables exposes the engine's read-only tables.
func (e *Engine) Tables() *Tables {
	return e.tables
}

// Estimate runs the full reconciliation for one request and returns an
// immutable TaxResult. filingStatus and income are mandatory; every other
// field silently defaults when absent or unparseable. An unexpected failure
// mid-calculation surfaces as a computation error with the state discarded.
func (e *Engine) Estimate(req domain.EstimateRequest) (result *domain.TaxResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorf("tax calculation panicked: %v", r)
			result = nil
			err = errors.Computation("error calculating taxes", fmt.Errorf("%v", r))
		}
	}()

	var missing []string
	if strings.TrimSpace(req.FilingStatus) == "" {
		missing = append(missing, "filingStatus")
	}
	if strings.TrimSpace(req.Income) == "" {
		missing = append(missing, "income")
	}
	if len(missing) > 0 {
		return nil, errors.Validation("missing required fields: " + strings.Join(missing, ", "))
	}

	status := domain.ParseFilingStatus(req.FilingStatus)
	age := parseCount(req.Age)
	dependents := parseCount(req.Dependents)

	income := domain.IncomeProfile{
		Primary:        parseAmount(req.Income),
		W2:             parseAmount(req.W2Income),
		SelfEmployment: parseAmount(req.SelfEmploymentIncome),
		Interest:       parseAmount(req.InterestIncome),
		Dividends:      parseAmount(req.DividendIncome),
		CapitalGains:   parseAmount(req.CapitalGains),
		Other:          parseAmount(req.OtherIncome),
	}
	totalGrossIncome := income.TotalGross()

	standardDeduction := e.deduction.StandardDeduction(status, age)
	itemizedDeductions := parseAmount(req.ItemizedDeductions)

	deductionType := domain.DeductionStandard
	deductionAmount := standardDeduction
	if strings.TrimSpace(req.UseStandardDeduction) == "false" {
		// Itemizing never reduces the deduction below the standard amount:
		// the larger of the two always wins. Preserved reference behavior.
		deductionType = domain.DeductionItemized
		deductionAmount = decimal.Max(itemizedDeductions, standardDeduction)
	}

	federalTax := e.bracket.Calculate(totalGrossIncome, status, deductionAmount)
	taxableIncome := decimal.Max(totalGrossIncome.Sub(deductionAmount), decimal.Zero)
	earnedIncomeCredit := e.eitc.Calculate(totalGrossIncome, status, dependents)
	selfEmploymentTax := income.SelfEmployment.Mul(e.tables.SelfEmploymentRate).Round(2)

	totalTaxLiability := decimal.Max(
		federalTax.Add(selfEmploymentTax).Sub(earnedIncomeCredit),
		decimal.Zero,
	).Round(2)
	estimatedWithholding := income.W2.Mul(e.tables.WithholdingRate).Round(2)

	refundOrOwed := estimatedWithholding.Sub(totalTaxLiability).Round(2)
	refundType := domain.RefundTypeRefund
	if refundOrOwed.IsNegative() {
		refundType = domain.RefundTypeOwed
	}

	e.logger.Debugf("estimate: status=%s gross=%s taxable=%s federal=%s liability=%s %s=%s",
		status, totalGrossIncome, taxableIncome, federalTax, totalTaxLiability, refundType, refundOrOwed.Abs())

	return &domain.TaxResult{
		FilingStatus:         status,
		Age:                  age,
		Dependents:           dependents,
		Income:               income,
		TotalGrossIncome:     totalGrossIncome,
		StandardDeduction:    standardDeduction,
		ItemizedDeductions:   itemizedDeductions,
		DeductionType:        deductionType,
		DeductionAmount:      deductionAmount,
		TaxableIncome:        taxableIncome,
		FederalTax:           federalTax,
		SelfEmploymentTax:    selfEmploymentTax,
		EarnedIncomeCredit:   earnedIncomeCredit,
		TotalTaxLiability:    totalTaxLiability,
		EstimatedWithholding: estimatedWithholding,
		RefundOrOwed:         refundOrOwed,
		RefundType:           refundType,
	}, nil
}

// parseAmount coerces a form field to a non-negative monetary amount.
// Absent, unparseable, or negative input is treated as zero.
func parseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// parseCount coerces a form field to a non-negative integer, defaulting to
// zero on absent or unparseable input.
func parseCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
