// Package main provides the CLI for the space mission analyzer.
package main

import (
	"os"

	"github.com/leapstack-labs/spacemissions/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
