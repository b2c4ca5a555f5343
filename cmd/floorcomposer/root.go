package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "floorcomposer",
	Short: "Construction profile geometry generator",
	Long: `floorcomposer - composite floor profile generator

Generates 2D construction profiles for composite floor design: steel
deck corrugations from a manufacturer catalog, concrete-capped composite
sections, and layered floor build-ups.

Profiles are modeled as curves of line and arc segments in meters and
can be written to SVG drawings, web-ready JSON records, DXF, PDF profile
sheets, QR label sheets, and XLSX measurement tables.`,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
