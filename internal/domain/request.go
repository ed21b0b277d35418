package domain

// EstimateRequest carries the raw string fields exactly as they arrive from
// the web form or a filer profile file. All numeric parsing and defaulting is
// deferred to the calculation engine so that every caller gets the same
// coercion behavior.
type EstimateRequest struct {
	FilingStatus         string `json:"filingStatus" yaml:"filingStatus"`
	Income               string `json:"income" yaml:"income"`
	Age                  string `json:"age" yaml:"age"`
	Dependents           string `json:"dependents" yaml:"dependents"`
	ItemizedDeductions   string `json:"itemizedDeductions" yaml:"itemizedDeductions"`
	UseStandardDeduction string `json:"useStandardDeduction" yaml:"useStandardDeduction"`
	W2Income             string `json:"w2Income" yaml:"w2Income"`
	SelfEmploymentIncome string `json:"selfEmploymentIncome" yaml:"selfEmploymentIncome"`
	InterestIncome       string `json:"interestIncome" yaml:"interestIncome"`
	DividendIncome       string `json:"dividendIncome" yaml:"dividendIncome"`
	CapitalGains         string `json:"capitalGains" yaml:"capitalGains"`
	OtherIncome          string `json:"otherIncome" yaml:"otherIncome"`
}
