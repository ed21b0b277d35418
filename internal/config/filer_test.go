package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFilerFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFilerProfile(t *testing.T) {
	parser := NewInputParser()

	path := writeFilerFile(t, `
filingStatus: single
income: "50000"
age: 30
dependents: "0"
w2Income: "50000"
`)

	req, err := parser.LoadFilerProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "single", req.FilingStatus)
	assert.Equal(t, "50000", req.Income)
	assert.Equal(t, "30", req.Age)
	assert.Equal(t, "50000", req.W2Income)
	// Fields absent from the profile stay empty; the engine defaults them.
	assert.Empty(t, req.ItemizedDeductions)
}

func TestLoadFilerProfileMissingRequired(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		content string
		message string
	}{
		{"No income", "filingStatus: single\n", "income is required"},
		{"No filing status", "income: \"50000\"\n", "filingStatus is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFilerFile(t, tc.content)
			_, err := parser.LoadFilerProfile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestLoadFilerProfileBadFile(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFilerProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	path := writeFilerFile(t, "filingStatus: [unclosed\n")
	_, err = parser.LoadFilerProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}
