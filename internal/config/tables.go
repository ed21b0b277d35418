package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/taxsim/tax-estimator/internal/calculation"
	"github.com/taxsim/tax-estimator/internal/domain"
)

// tablesFile is the YAML shape of a tax-table override file. Every section is
// optional; omitted sections keep the built-in defaults.
type tablesFile struct {
	TaxYear            int                        `yaml:"taxYear"`
	StandardDeductions map[string]decimal.Decimal `yaml:"standardDeductions"`
	SeniorSupplement   struct {
		Age     int             `yaml:"age"`
		Married decimal.Decimal `yaml:"married"`
		Other   decimal.Decimal `yaml:"other"`
	} `yaml:"seniorSupplement"`
	Brackets struct {
		Single  []calculation.Bracket `yaml:"single"`
		Married []calculation.Bracket `yaml:"married"`
	} `yaml:"brackets"`
	EITC  []calculation.EITCRow `yaml:"eitc"`
	Rates struct {
		SelfEmployment decimal.Decimal `yaml:"selfEmployment"`
		Withholding    decimal.Decimal `yaml:"withholding"`
	} `yaml:"rates"`
}

// LoadTables reads a YAML override file and merges it over the default
// tables. The merged result is validated before it is returned; the caller
// treats it as read-only from then on.
func LoadTables(filename string) (*calculation.Tables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file %s: %w", filename, err)
	}

	var file tablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tables YAML: %w", err)
	}

	tables := calculation.DefaultTables()
	if file.TaxYear != 0 {
		tables.Year = file.TaxYear
	}
	for status, amount := range file.StandardDeductions {
		tables.StandardDeductions[domain.ParseFilingStatus(status)] = amount
	}
	if file.SeniorSupplement.Age != 0 {
		tables.SeniorAge = file.SeniorSupplement.Age
	}
	if !file.SeniorSupplement.Married.IsZero() {
		tables.SeniorSupplementMarried = file.SeniorSupplement.Married
	}
	if !file.SeniorSupplement.Other.IsZero() {
		tables.SeniorSupplementOther = file.SeniorSupplement.Other
	}
	if len(file.Brackets.Single) > 0 {
		tables.BracketsSingle = file.Brackets.Single
	}
	if len(file.Brackets.Married) > 0 {
		tables.BracketsMarried = file.Brackets.Married
	}
	if len(file.EITC) > 0 {
		tables.EITC = file.EITC
	}
	if !file.Rates.SelfEmployment.IsZero() {
		tables.SelfEmploymentRate = file.Rates.SelfEmployment
	}
	if !file.Rates.Withholding.IsZero() {
		tables.WithholdingRate = file.Rates.Withholding
	}

	if err := ValidateTables(tables); err != nil {
		return nil, fmt.Errorf("tables validation failed: %w", err)
	}
	return tables, nil
}

// ValidateTables checks that the bracket tables are ordered, contiguous, and
// end in an unbounded top bracket, and that rates are sane fractions.
func ValidateTables(tables *calculation.Tables) error {
	if err := validateBrackets("single", tables.BracketsSingle); err != nil {
		return err
	}
	if err := validateBrackets("married", tables.BracketsMarried); err != nil {
		return err
	}
	if tables.SelfEmploymentRate.IsNegative() || tables.SelfEmploymentRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("self-employment rate must be between 0 and 1")
	}
	if tables.WithholdingRate.IsNegative() || tables.WithholdingRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("withholding rate must be between 0 and 1")
	}
	for _, row := range tables.EITC {
		if row.Credit.IsNegative() {
			return fmt.Errorf("eitc credit for %d children cannot be negative", row.Children)
		}
	}
	return nil
}

func validateBrackets(name string, brackets []calculation.Bracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%s bracket table is empty", name)
	}
	if !brackets[0].Lower.IsZero() {
		return fmt.Errorf("%s bracket table must start at 0", name)
	}
	one := decimal.NewFromInt(1)
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("%s bracket %d rate must be between 0 and 1", name, i)
		}
		last := i == len(brackets)-1
		if last {
			if !b.Unbounded() {
				return fmt.Errorf("%s bracket table must end in an unbounded bracket", name)
			}
			continue
		}
		if b.Upper.LessThanOrEqual(b.Lower) {
			return fmt.Errorf("%s bracket %d upper bound must exceed its lower bound", name, i)
		}
		if !brackets[i+1].Lower.Equal(b.Upper.Add(one)) {
			return fmt.Errorf("%s brackets %d and %d are not contiguous", name, i, i+1)
		}
	}
	return nil
}
