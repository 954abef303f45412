// Package main is the entry point for the unccalc measurement uncertainty calculator.
package main

import (
	"os"

	"github.com/leapstack-labs/unccalc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
