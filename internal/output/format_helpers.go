package output

import "strings"

// formatDollars renders a fixed two-decimal amount string as currency with
// thousands separators, e.g. "4118.00" -> "$4,118.00".
func formatDollars(amount string) string {
	intPart := amount
	fracPart := ""
	if i := strings.IndexByte(amount, '.'); i >= 0 {
		intPart, fracPart = amount[:i], amount[i:]
	}

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return "$" + grouped.String() + fracPart
}
