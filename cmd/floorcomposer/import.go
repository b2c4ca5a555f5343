package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
	"github.com/floorcomposer/floorcomposer/internal/importer"
	"github.com/floorcomposer/floorcomposer/internal/render"
	"github.com/floorcomposer/floorcomposer/internal/webexport"
)

var (
	importSVGPath  string
	importJSONPath string
)

var importCmd = &cobra.Command{
	Use:   "import <drawing.dxf>",
	Short: "Import curves from a DXF drawing",
	Long: `Read LINE, ARC, LWPOLYLINE, and CIRCLE entities from a DXF file,
assemble them into curves, and re-render them as SVG or JSON.

Loose lines and arcs are chained into curves by endpoint proximity; arc
geometry is kept exact rather than tessellated.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	result := importer.ImportDXF(args[0])
	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("import failed: %s", strings.Join(result.Errors, "; "))
	}

	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	array := geometry.NewCurveArray(name)
	for _, c := range result.Curves {
		array.Append(c)
	}

	total, err := array.TotalLength()
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d curves, total length %.3f\n", len(array.Curves), total)

	if importSVGPath != "" {
		f, err := os.Create(importSVGPath)
		if err != nil {
			return err
		}
		if err := render.NewDocument(webexport.DefaultCanvasWidth, webexport.DefaultCanvasHeight).WriteCurveArray(f, array); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", importSVGPath)
	}

	if importJSONPath != "" {
		record, err := webexport.CurveArray(array, webexport.DefaultCanvasWidth, webexport.DefaultCanvasHeight)
		if err != nil {
			return err
		}
		if err := webexport.WriteJSON(importJSONPath, record); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", importJSONPath)
	}
	return nil
}

func init() {
	importCmd.Flags().StringVar(&importSVGPath, "svg", "", "Write an SVG drawing of the imported curves")
	importCmd.Flags().StringVar(&importJSONPath, "json", "", "Write a web-ready JSON record of the imported curves")
	rootCmd.AddCommand(importCmd)
}
