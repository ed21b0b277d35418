// Package main is the entry point for the tax estimator CLI and server.
package main

import (
	"os"

	"github.com/taxsim/tax-estimator/cmd/taxestimator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
