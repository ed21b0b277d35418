// Package output assembles the presentation view of a tax estimate and
// renders it for the CLI and the HTTP API.
package output

import (
	"time"

	"github.com/taxsim/tax-estimator/internal/domain"
)

// Disclaimer is the fixed disclaimer attached to every report.
const Disclaimer = "This is an estimate for informational purposes only and should not be considered " +
	"professional tax advice. Consult a qualified tax professional for your specific situation."

// TaxpayerInfo echoes the filer details the estimate was computed for.
type TaxpayerInfo struct {
	FilingStatus string `json:"filingStatus"`
	Age          int    `json:"age"`
	Dependents   int    `json:"dependents"`
}

// IncomeBreakdown lists each income source as a fixed two-decimal string.
type IncomeBreakdown struct {
	PrimaryIncome        string `json:"primaryIncome"`
	W2Income             string `json:"w2Income"`
	SelfEmploymentIncome string `json:"selfEmploymentIncome"`
	InterestIncome       string `json:"interestIncome"`
	DividendIncome       string `json:"dividendIncome"`
	CapitalGains         string `json:"capitalGains"`
	OtherIncome          string `json:"otherIncome"`
}

// IncomeSection groups total gross income with its breakdown.
type IncomeSection struct {
	TotalGrossIncome string          `json:"totalGrossIncome"`
	Breakdown        IncomeBreakdown `json:"breakdown"`
}

// DeductionSection reports the deduction election and amounts.
type DeductionSection struct {
	Type               string `json:"type"`
	StandardDeduction  string `json:"standardDeduction"`
	ItemizedDeductions string `json:"itemizedDeductions"`
	DeductionAmount    string `json:"deductionAmount"`
}

// TaxCalculationSection reports the computed tax components.
type TaxCalculationSection struct {
	TaxableIncome        string `json:"taxableIncome"`
	FederalTax           string `json:"federalTax"`
	SelfEmploymentTax    string `json:"selfEmploymentTax"`
	EarnedIncomeCredit   string `json:"earnedIncomeCredit"`
	TotalTaxLiability    string `json:"totalTaxLiability"`
	EstimatedWithholding string `json:"estimatedWithholding"`
}

// RefundOrOwedSection carries the reconciliation outcome. Amount is the
// unsigned magnitude; Type carries the sign.
type RefundOrOwedSection struct {
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

// Report is the full response structure: nested groups, pass-through
// document descriptors, the calculation timestamp, and the disclaimer.
type Report struct {
	TaxpayerInfo      TaxpayerInfo                `json:"taxpayerInfo"`
	Income            IncomeSection               `json:"income"`
	Deductions        DeductionSection            `json:"deductions"`
	TaxCalculation    TaxCalculationSection       `json:"taxCalculation"`
	RefundOrOwed      RefundOrOwedSection         `json:"refundOrOwed"`
	UploadedDocuments []domain.DocumentDescriptor `json:"uploadedDocuments"`
	CalculationDate   time.Time                   `json:"calculationDate"`
	TaxYear           int                         `json:"taxYear"`
	Disclaimer        string                      `json:"disclaimer"`
}

// NewReport builds the presentation view of a result. Apart from the
// calculation timestamp, identical results produce byte-identical reports.
func NewReport(result *domain.TaxResult, taxYear int, calculatedAt time.Time) *Report {
	documents := result.Documents
	if documents == nil {
		documents = []domain.DocumentDescriptor{}
	}

	return &Report{
		TaxpayerInfo: TaxpayerInfo{
			FilingStatus: string(result.FilingStatus),
			Age:          result.Age,
			Dependents:   result.Dependents,
		},
		Income: IncomeSection{
			TotalGrossIncome: result.TotalGrossIncome.StringFixed(2),
			Breakdown: IncomeBreakdown{
				PrimaryIncome:        result.Income.Primary.StringFixed(2),
				W2Income:             result.Income.W2.StringFixed(2),
				SelfEmploymentIncome: result.Income.SelfEmployment.StringFixed(2),
				InterestIncome:       result.Income.Interest.StringFixed(2),
				DividendIncome:       result.Income.Dividends.StringFixed(2),
				CapitalGains:         result.Income.CapitalGains.StringFixed(2),
				OtherIncome:          result.Income.Other.StringFixed(2),
			},
		},
		Deductions: DeductionSection{
			Type:               string(result.DeductionType),
			StandardDeduction:  result.StandardDeduction.StringFixed(2),
			ItemizedDeductions: result.ItemizedDeductions.StringFixed(2),
			DeductionAmount:    result.DeductionAmount.StringFixed(2),
		},
		TaxCalculation: TaxCalculationSection{
			TaxableIncome:        result.TaxableIncome.StringFixed(2),
			FederalTax:           result.FederalTax.StringFixed(2),
			SelfEmploymentTax:    result.SelfEmploymentTax.StringFixed(2),
			EarnedIncomeCredit:   result.EarnedIncomeCredit.StringFixed(2),
			TotalTaxLiability:    result.TotalTaxLiability.StringFixed(2),
			EstimatedWithholding: result.EstimatedWithholding.StringFixed(2),
		},
		RefundOrOwed: RefundOrOwedSection{
			Type:   string(result.RefundType),
			Amount: result.RefundOrOwed.Abs().StringFixed(2),
		},
		UploadedDocuments: documents,
		CalculationDate:   calculatedAt,
		TaxYear:           taxYear,
		Disclaimer:        Disclaimer,
	}
}
