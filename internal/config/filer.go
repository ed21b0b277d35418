package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taxsim/tax-estimator/internal/domain"
)

// InputParser handles parsing of filer profile files for one-shot estimates.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFilerProfile loads an estimate request from a YAML file. Field values
// stay raw strings; the engine applies the same defaulting it uses for web
// form input, so the parser only checks the two mandatory fields.
func (ip *InputParser) LoadFilerProfile(filename string) (*domain.EstimateRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var req domain.EstimateRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if req.FilingStatus == "" {
		return nil, fmt.Errorf("filingStatus is required")
	}
	if req.Income == "" {
		return nil, fmt.Errorf("income is required")
	}

	return &req, nil
}
