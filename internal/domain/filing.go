package domain

import "strings"

// FilingStatus identifies the filer's federal filing status.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarried         FilingStatus = "married"
	FilingMarriedSeparate FilingStatus = "marriedSeparate"
	FilingHeadOfHousehold FilingStatus = "headOfHousehold"
)

// ParseFilingStatus maps raw form input to a FilingStatus. Anything
// unrecognized falls back to single rather than failing the request.
func ParseFilingStatus(raw string) FilingStatus {
	switch FilingStatus(strings.TrimSpace(raw)) {
	case FilingMarried:
		return FilingMarried
	case FilingMarriedSeparate:
		return FilingMarriedSeparate
	case FilingHeadOfHousehold:
		return FilingHeadOfHousehold
	default:
		return FilingSingle
	}
}
