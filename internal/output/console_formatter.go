package output

import (
	"fmt"
	"strings"
)

// ConsoleFormatter renders a report as a human-readable breakdown.
type ConsoleFormatter struct{}

// Format renders the report for terminal output.
func (f *ConsoleFormatter) Format(report *Report) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "FEDERAL TAX ESTIMATE (%d)\n", report.TaxYear)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 40))

	fmt.Fprintf(&b, "Filing status:       %s\n", report.TaxpayerInfo.FilingStatus)
	fmt.Fprintf(&b, "Age:                 %d\n", report.TaxpayerInfo.Age)
	fmt.Fprintf(&b, "Dependents:          %d\n\n", report.TaxpayerInfo.Dependents)

	fmt.Fprintf(&b, "Income\n")
	fmt.Fprintf(&b, "  Primary:           %s\n", formatDollars(report.Income.Breakdown.PrimaryIncome))
	writeNonZero(&b, "  W-2 wages:         %s\n", report.Income.Breakdown.W2Income)
	writeNonZero(&b, "  Self-employment:   %s\n", report.Income.Breakdown.SelfEmploymentIncome)
	writeNonZero(&b, "  Interest:          %s\n", report.Income.Breakdown.InterestIncome)
	writeNonZero(&b, "  Dividends:         %s\n", report.Income.Breakdown.DividendIncome)
	writeNonZero(&b, "  Capital gains:     %s\n", report.Income.Breakdown.CapitalGains)
	writeNonZero(&b, "  Other:             %s\n", report.Income.Breakdown.OtherIncome)
	fmt.Fprintf(&b, "  Total gross:       %s\n\n", formatDollars(report.Income.TotalGrossIncome))

	fmt.Fprintf(&b, "Deductions (%s)\n", report.Deductions.Type)
	fmt.Fprintf(&b, "  Standard:          %s\n", formatDollars(report.Deductions.StandardDeduction))
	writeNonZero(&b, "  Itemized:          %s\n", report.Deductions.ItemizedDeductions)
	fmt.Fprintf(&b, "  Applied:           %s\n\n", formatDollars(report.Deductions.DeductionAmount))

	fmt.Fprintf(&b, "Tax calculation\n")
	fmt.Fprintf(&b, "  Taxable income:    %s\n", formatDollars(report.TaxCalculation.TaxableIncome))
	fmt.Fprintf(&b, "  Federal tax:       %s\n", formatDollars(report.TaxCalculation.FederalTax))
	writeNonZero(&b, "  SE tax:            %s\n", report.TaxCalculation.SelfEmploymentTax)
	writeNonZero(&b, "  EITC:              %s\n", report.TaxCalculation.EarnedIncomeCredit)
	fmt.Fprintf(&b, "  Total liability:   %s\n", formatDollars(report.TaxCalculation.TotalTaxLiability))
	fmt.Fprintf(&b, "  Est. withholding:  %s\n\n", formatDollars(report.TaxCalculation.EstimatedWithholding))

	label := "ESTIMATED REFUND"
	if report.RefundOrOwed.Type == "owed" {
		label = "ESTIMATED AMOUNT OWED"
	}
	fmt.Fprintf(&b, "%s: %s\n", label, formatDollars(report.RefundOrOwed.Amount))

	if len(report.UploadedDocuments) > 0 {
		fmt.Fprintf(&b, "\nAttached documents\n")
		for _, doc := range report.UploadedDocuments {
			fmt.Fprintf(&b, "  %s (%s, %d bytes)\n", doc.Filename, doc.Mimetype, doc.Size)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", report.Disclaimer)

	return b.String(), nil
}

// writeNonZero prints a line only when the amount is not "0.00"; zero-valued
// optional sources would otherwise drown the breakdown.
func writeNonZero(b *strings.Builder, format, amount string) {
	if amount == "0.00" {
		return
	}
	fmt.Fprintf(b, format, formatDollars(amount))
}
