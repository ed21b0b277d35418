package output

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDollars(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0.00", "$0.00"},
		{"4118.00", "$4,118.00"},
		{"50000.00", "$50,000.00"},
		{"1234567.89", "$1,234,567.89"},
		{"999.99", "$999.99"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, formatDollars(tc.amount))
	}
}

func TestNewFormatterSelection(t *testing.T) {
	console, err := NewFormatter("console")
	require.NoError(t, err)
	assert.IsType(t, &ConsoleFormatter{}, console)

	byDefault, err := NewFormatter("")
	require.NoError(t, err)
	assert.IsType(t, &ConsoleFormatter{}, byDefault)

	jsonFormatter, err := NewFormatter("json")
	require.NoError(t, err)
	assert.IsType(t, &JSONFormatter{}, jsonFormatter)

	_, err = NewFormatter("xml")
	assert.Error(t, err)
}

func TestConsoleFormat(t *testing.T) {
	report := NewReport(sampleResult(), 2024, time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC))

	rendered, err := (&ConsoleFormatter{}).Format(report)
	require.NoError(t, err)

	assert.Contains(t, rendered, "FEDERAL TAX ESTIMATE (2024)")
	assert.Contains(t, rendered, "Filing status:       single")
	assert.Contains(t, rendered, "Total gross:       $50,000.00")
	assert.Contains(t, rendered, "Federal tax:       $4,118.00")
	assert.Contains(t, rendered, "ESTIMATED AMOUNT OWED: $4,118.00")
	assert.Contains(t, rendered, Disclaimer)

	// Zero-valued optional income sources are suppressed.
	assert.NotContains(t, rendered, "W-2 wages")
	assert.NotContains(t, rendered, "SE tax")
}

func TestJSONFormat(t *testing.T) {
	report := NewReport(sampleResult(), 2024, time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC))

	rendered, err := (&JSONFormatter{}).Format(report)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))
	assert.Equal(t, "4118.00", decoded.TaxCalculation.FederalTax)
	assert.Equal(t, "owed", decoded.RefundOrOwed.Type)
}
