package domain

import "github.com/shopspring/decimal"

// IncomeProfile holds the filer's primary income plus the named additional
// sources. All amounts are non-negative; unparseable form fields are coerced
// to zero before this struct is built.
type IncomeProfile struct {
	Primary        decimal.Decimal
	W2             decimal.Decimal
	SelfEmployment decimal.Decimal
	Interest       decimal.Decimal
	Dividends      decimal.Decimal
	CapitalGains   decimal.Decimal
	Other          decimal.Decimal
}

// TotalGross returns the sum of the primary income and every additional
// source. It is derived, never stored.
func (p IncomeProfile) TotalGross() decimal.Decimal {
	return p.Primary.
		Add(p.W2).
		Add(p.SelfEmployment).
		Add(p.Interest).
		Add(p.Dividends).
		Add(p.CapitalGains).
		Add(p.Other)
}
