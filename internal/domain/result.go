package domain

import "github.com/shopspring/decimal"

// DeductionType records which deduction election produced DeductionAmount.
type DeductionType string

const (
	DeductionStandard DeductionType = "standard"
	DeductionItemized DeductionType = "itemized"
)

// RefundType tags the sign of the refund-or-owed reconciliation.
type RefundType string

const (
	RefundTypeRefund RefundType = "refund"
	RefundTypeOwed   RefundType = "owed"
)

// DocumentDescriptor is the opaque metadata the upload subsystem produces for
// each accepted attachment. The engine passes it through untouched.
type DocumentDescriptor struct {
	Filename string `json:"filename"`
	Mimetype string `json:"mimetype"`
	Size     int64  `json:"size"`
}

// TaxResult is the immutable record produced by one engine invocation. It is
// request-scoped: created fresh per estimate, never mutated, never persisted.
type TaxResult struct {
	FilingStatus FilingStatus
	Age          int
	Dependents   int

	Income           IncomeProfile
	TotalGrossIncome decimal.Decimal

	StandardDeduction  decimal.Decimal
	ItemizedDeductions decimal.Decimal
	DeductionType      DeductionType
	DeductionAmount    decimal.Decimal

	TaxableIncome        decimal.Decimal
	FederalTax           decimal.Decimal
	SelfEmploymentTax    decimal.Decimal
	EarnedIncomeCredit   decimal.Decimal
	TotalTaxLiability    decimal.Decimal
	EstimatedWithholding decimal.Decimal

	// RefundOrOwed is signed: positive or zero means a refund, negative means
	// the filer owes the difference.
	RefundOrOwed decimal.Decimal
	RefundType   RefundType

	Documents []DocumentDescriptor
}
