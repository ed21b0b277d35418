package output

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxsim/tax-estimator/internal/domain"
)

func sampleResult() *domain.TaxResult {
	return &domain.TaxResult{
		FilingStatus: domain.FilingSingle,
		Age:          30,
		Dependents:   0,
		Income: domain.IncomeProfile{
			Primary: decimal.NewFromInt(50000),
		},
		TotalGrossIncome:     decimal.NewFromInt(50000),
		StandardDeduction:    decimal.NewFromInt(13850),
		ItemizedDeductions:   decimal.Zero,
		DeductionType:        domain.DeductionStandard,
		DeductionAmount:      decimal.NewFromInt(13850),
		TaxableIncome:        decimal.NewFromInt(36150),
		FederalTax:           decimal.NewFromInt(4118),
		SelfEmploymentTax:    decimal.Zero,
		EarnedIncomeCredit:   decimal.Zero,
		TotalTaxLiability:    decimal.NewFromInt(4118),
		EstimatedWithholding: decimal.Zero,
		RefundOrOwed:         decimal.NewFromInt(-4118),
		RefundType:           domain.RefundTypeOwed,
	}
}

func TestNewReport(t *testing.T) {
	calculatedAt := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)
	report := NewReport(sampleResult(), 2024, calculatedAt)

	assert.Equal(t, "single", report.TaxpayerInfo.FilingStatus)
	assert.Equal(t, 30, report.TaxpayerInfo.Age)
	assert.Equal(t, "50000.00", report.Income.TotalGrossIncome)
	assert.Equal(t, "50000.00", report.Income.Breakdown.PrimaryIncome)
	assert.Equal(t, "0.00", report.Income.Breakdown.W2Income)
	assert.Equal(t, "standard", report.Deductions.Type)
	assert.Equal(t, "13850.00", report.Deductions.DeductionAmount)
	assert.Equal(t, "36150.00", report.TaxCalculation.TaxableIncome)
	assert.Equal(t, "4118.00", report.TaxCalculation.FederalTax)
	assert.Equal(t, "4118.00", report.TaxCalculation.TotalTaxLiability)

	// The owed amount is reported as an unsigned magnitude plus a type tag.
	assert.Equal(t, "owed", report.RefundOrOwed.Type)
	assert.Equal(t, "4118.00", report.RefundOrOwed.Amount)

	assert.Equal(t, calculatedAt, report.CalculationDate)
	assert.Equal(t, 2024, report.TaxYear)
	assert.Equal(t, Disclaimer, report.Disclaimer)

	// No documents serializes as an empty array, never null.
	require.NotNil(t, report.UploadedDocuments)
	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"uploadedDocuments":[]`)
}

func TestNewReportRefund(t *testing.T) {
	result := sampleResult()
	result.RefundOrOwed = decimal.NewFromInt(6000)
	result.RefundType = domain.RefundTypeRefund
	result.Documents = []domain.DocumentDescriptor{
		{Filename: "w2.pdf", Mimetype: "application/pdf", Size: 1024},
	}

	report := NewReport(result, 2024, time.Now().UTC())

	assert.Equal(t, "refund", report.RefundOrOwed.Type)
	assert.Equal(t, "6000.00", report.RefundOrOwed.Amount)
	require.Len(t, report.UploadedDocuments, 1)
	assert.Equal(t, "w2.pdf", report.UploadedDocuments[0].Filename)
}

func TestNewReportDeterministic(t *testing.T) {
	calculatedAt := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)

	first, err := json.Marshal(NewReport(sampleResult(), 2024, calculatedAt))
	require.NoError(t, err)
	second, err := json.Marshal(NewReport(sampleResult(), 2024, calculatedAt))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
