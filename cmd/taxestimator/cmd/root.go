// Package cmd provides the CLI commands for the tax estimator.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taxsim/tax-estimator/internal/calculation"
	"github.com/taxsim/tax-estimator/internal/config"
)

var tablesFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "taxestimator",
	Short: "Estimate federal income tax liability",
	Long: `taxestimator computes an estimated federal income tax liability and
refund or owed amount from income, filing status, age, and dependents.

It is an estimation tool, not a filing engine: brackets, the standard
deduction, and a simplified EITC are modeled; state taxes and phase-outs
are not.

Examples:
  taxestimator estimate --input filer.yaml
  taxestimator estimate --input filer.yaml --format json
  taxestimator serve`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the CLI
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablesFile, "tables", "", "YAML file overriding the built-in tax tables")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadTables resolves the tax tables for the current invocation.
func loadTables() (*calculation.Tables, error) {
	if tablesFile == "" {
		return calculation.DefaultTables(), nil
	}
	return config.LoadTables(tablesFile)
}
