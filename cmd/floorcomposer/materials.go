package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/floorcomposer/floorcomposer/internal/material"
)

var materialsCategory string

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the material registry",
	Run: func(cmd *cobra.Command, args []string) {
		materials := material.List()
		if materialsCategory != "" {
			materials = material.ByCategory(materialsCategory)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCATEGORY\tDENSITY (kg/m3)\tDESCRIPTION")
		for _, m := range materials {
			fmt.Fprintf(w, "%s\t%s\t%.0f\t%s\n", m.Name, m.Category, m.Density, m.Description)
		}
		w.Flush()
	},
}

func init() {
	materialsCmd.Flags().StringVar(&materialsCategory, "category", "", "Filter by category (structural, thermal, finish, waterproofing, cladding)")
	rootCmd.AddCommand(materialsCmd)
}
