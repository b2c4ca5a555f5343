package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/floorcomposer/floorcomposer/internal/catalog"
	"github.com/floorcomposer/floorcomposer/internal/project"
)

var catalogImportPath string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List deck profiles, or import more from CSV/XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		profilesPath, err := project.DefaultProfilesPath()
		if err != nil {
			return err
		}

		if catalogImportPath != "" {
			if err := importProfiles(profilesPath); err != nil {
				return err
			}
		}

		cat, err := project.LoadCatalog(profilesPath)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "REFERENCE\tMANUFACTURER\tWIDTH (mm)\tWAVE (mm)\tBOTTOM (mm)\tTOP (mm)\tHEIGHT (mm)")
		for _, p := range cat.List() {
			fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%.0f\t%.1f\t%.0f\n",
				p.Reference, p.Manufacturer,
				p.ProfileWidth*1000, p.WaveWidth*1000, p.BottomWidth*1000, p.TopWidth*1000, p.Height*1000)
		}
		return w.Flush()
	},
}

// importProfiles reads deck profiles from a CSV or XLSX file and merges
// them into the persisted user profile list.
func importProfiles(profilesPath string) error {
	var result catalog.ImportResult
	switch strings.ToLower(filepath.Ext(catalogImportPath)) {
	case ".xlsx", ".xls":
		result = catalog.ImportExcel(catalogImportPath)
	default:
		result = catalog.ImportCSV(catalogImportPath)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
	for _, importErr := range result.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", importErr)
	}
	if len(result.Profiles) == 0 {
		return fmt.Errorf("no profiles imported from %s", catalogImportPath)
	}

	existing, err := project.LoadProfiles(profilesPath)
	if err != nil {
		return err
	}
	merged := append(existing, result.Profiles...)
	if err := project.SaveProfiles(profilesPath, merged); err != nil {
		return err
	}

	fmt.Printf("Imported %d profiles from %s\n", len(result.Profiles), catalogImportPath)
	return nil
}

func init() {
	catalogCmd.Flags().StringVar(&catalogImportPath, "import", "", "Import deck profiles from a CSV or XLSX file")
	rootCmd.AddCommand(catalogCmd)
}
