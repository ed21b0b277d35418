package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taxsim/tax-estimator/internal/calculation"
	"github.com/taxsim/tax-estimator/internal/config"
	"github.com/taxsim/tax-estimator/internal/output"
)

var (
	inputFile    string
	outputFormat string
)

// estimateCmd runs a one-shot estimate from a filer profile file.
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate taxes for a filer profile",
	Long: `Compute a tax estimate from a YAML filer profile and print the
breakdown.

The profile uses the same fields as the web form, for example:

  filingStatus: single
  income: "50000"
  age: "30"
  dependents: "0"

Examples:
  taxestimator estimate --input filer.yaml
  taxestimator estimate --input filer.yaml --format json`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "filer profile YAML file (required)")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "output format (console, json)")
	_ = estimateCmd.MarkFlagRequired("input")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	tables, err := loadTables()
	if err != nil {
		return err
	}

	parser := config.NewInputParser()
	req, err := parser.LoadFilerProfile(inputFile)
	if err != nil {
		return err
	}

	engine := calculation.NewEngine(tables)
	result, err := engine.Estimate(*req)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(outputFormat)
	if err != nil {
		return err
	}

	report := output.NewReport(result, tables.Year, time.Now().UTC())
	rendered, err := formatter.Format(report)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
