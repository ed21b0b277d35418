package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxsim/tax-estimator/internal/domain"
)

// TaxYear is the tax year the default tables model.
const TaxYear = 2024

// BracketFallbackStatus is the filing status whose bracket table is used for
// any status without a dedicated table. marriedSeparate and headOfHousehold
// are taxed on the single table. Known simplification; owned by whoever owns
// tax-table accuracy.
const BracketFallbackStatus = domain.FilingSingle

// Bracket is one contiguous income range taxed at a single marginal rate.
// Bounds are inclusive integers stored so that the next bracket's Lower is
// this bracket's Upper plus one; the taxable width is Upper - Lower + 1. A
// zero-valued Upper marks the top bracket, which is unbounded.
type Bracket struct {
	Lower decimal.Decimal `yaml:"lower"`
	Upper decimal.Decimal `yaml:"upper"`
	Rate  decimal.Decimal `yaml:"rate"`
}

// Unbounded reports whether this is the top bracket.
func (b Bracket) Unbounded() bool {
	return b.Upper.IsZero() && !b.Lower.IsZero()
}

// EITCRow is one row of the earned income credit table, keyed by qualifying
// child count. The credit is a step function: income at or below the
// applicable ceiling earns the full credit, anything above earns zero.
type EITCRow struct {
	Children       int             `yaml:"children"`
	SingleCeiling  decimal.Decimal `yaml:"singleCeiling"`
	MarriedCeiling decimal.Decimal `yaml:"marriedCeiling"`
	Credit         decimal.Decimal `yaml:"credit"`
}

// Tables holds every rate table the engine consults. Built once at startup
// and treated as read-only afterwards, so concurrent estimates need no
// locking.
type Tables struct {
	Year int

	StandardDeductions      map[domain.FilingStatus]decimal.Decimal
	SeniorAge               int
	SeniorSupplementMarried decimal.Decimal
	SeniorSupplementOther   decimal.Decimal

	BracketsSingle  []Bracket
	BracketsMarried []Bracket

	EITC []EITCRow

	SelfEmploymentRate decimal.Decimal
	WithholdingRate    decimal.Decimal
}

// BracketsFor returns the bracket table for a filing status, applying the
// fallback policy for statuses without their own table.
func (t *Tables) BracketsFor(status domain.FilingStatus) []Bracket {
	switch status {
	case domain.FilingMarried:
		return t.BracketsMarried
	case domain.FilingSingle:
		return t.BracketsSingle
	default:
		return t.BracketsFor(BracketFallbackStatus)
	}
}

// MaxEITCChildren is the child count the EITC table tops out at; larger
// dependent counts are clamped to it.
const MaxEITCChildren = 3

// DefaultTables returns the built-in reference tables for TaxYear.
func DefaultTables() *Tables {
	return &Tables{
		Year: TaxYear,
		StandardDeductions: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:          decimal.NewFromInt(13850),
			domain.FilingMarried:         decimal.NewFromInt(27700),
			domain.FilingMarriedSeparate: decimal.NewFromInt(13850),
			domain.FilingHeadOfHousehold: decimal.NewFromInt(20800),
		},
		SeniorAge:               65,
		SeniorSupplementMarried: decimal.NewFromInt(1500),
		SeniorSupplementOther:   decimal.NewFromInt(1850),
		BracketsSingle: []Bracket{
			{decimal.NewFromInt(0), decimal.NewFromInt(10999), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(11000), decimal.NewFromInt(44724), decimal.NewFromFloat(0.12)},
			{decimal.NewFromInt(44725), decimal.NewFromInt(95374), decimal.NewFromFloat(0.22)},
			{decimal.NewFromInt(95375), decimal.NewFromInt(182099), decimal.NewFromFloat(0.24)},
			{decimal.NewFromInt(182100), decimal.NewFromInt(231249), decimal.NewFromFloat(0.32)},
			{decimal.NewFromInt(231250), decimal.NewFromInt(578124), decimal.NewFromFloat(0.35)},
			{decimal.NewFromInt(578125), decimal.Zero, decimal.NewFromFloat(0.37)},
		},
		BracketsMarried: []Bracket{
			{decimal.NewFromInt(0), decimal.NewFromInt(21999), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(22000), decimal.NewFromInt(89449), decimal.NewFromFloat(0.12)},
			{decimal.NewFromInt(89450), decimal.NewFromInt(190749), decimal.NewFromFloat(0.22)},
			{decimal.NewFromInt(190750), decimal.NewFromInt(364199), decimal.NewFromFloat(0.24)},
			{decimal.NewFromInt(364200), decimal.NewFromInt(462499), decimal.NewFromFloat(0.32)},
			{decimal.NewFromInt(462500), decimal.NewFromInt(693749), decimal.NewFromFloat(0.35)},
			{decimal.NewFromInt(693750), decimal.Zero, decimal.NewFromFloat(0.37)},
		},
		EITC: []EITCRow{
			{0, decimal.NewFromInt(17640), decimal.NewFromInt(23260), decimal.NewFromInt(600)},
			{1, decimal.NewFromInt(46560), decimal.NewFromInt(52918), decimal.NewFromInt(3995)},
			{2, decimal.NewFromInt(51567), decimal.NewFromInt(58250), decimal.NewFromInt(6604)},
			{3, decimal.NewFromInt(55529), decimal.NewFromInt(62044), decimal.NewFromInt(7430)},
		},
		SelfEmploymentRate: decimal.NewFromFloat(0.1413),
		WithholdingRate:    decimal.NewFromFloat(0.20),
	}
}
