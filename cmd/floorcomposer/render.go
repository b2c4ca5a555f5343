package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/floorcomposer/floorcomposer/internal/export"
	"github.com/floorcomposer/floorcomposer/internal/geometry"
	"github.com/floorcomposer/floorcomposer/internal/material"
	"github.com/floorcomposer/floorcomposer/internal/project"
	"github.com/floorcomposer/floorcomposer/internal/render"
	"github.com/floorcomposer/floorcomposer/internal/webexport"
)

var (
	renderProfile    string
	renderDepth      float64
	renderName       string
	renderSVGPath    string
	renderJSONPath   string
	renderDXFPath    string
	renderPDFPath    string
	renderXLSXPath   string
	renderLabelsPath string
	renderShowPoints bool
	renderWidth      int
	renderHeight     int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Generate a deck profile and write it to output files",
	Long: `Generate a steel deck profile from the catalog and write it to any
of the supported output formats.

With --depth 0 the result is the bare corrugation as an open curve. A
positive --depth adds the concrete-filled composite section capped at
that depth above the rib bottom.

Examples:
  # Bare corrugation as SVG
  floorcomposer render --profile "cofraplus 60+" --svg deck.svg

  # Composite section with a 120mm slab, all formats
  floorcomposer render --profile "cofrastra 40" --depth 0.12 \
    --svg floor.svg --json floor.json --dxf floor.dxf --pdf floor.pdf`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	configPath, err := project.DefaultConfigPath()
	if err != nil {
		return err
	}
	cfg, err := project.LoadAppConfig(configPath)
	if err != nil {
		return err
	}
	applyConfigDefaults(cfg)

	outputs := outputPaths()
	if len(outputs) == 0 {
		return fmt.Errorf("no output files requested; pass at least one of --svg, --json, --dxf, --pdf, --xlsx, --labels")
	}

	profilesPath, err := project.DefaultProfilesPath()
	if err != nil {
		return err
	}
	cat, err := project.LoadCatalog(profilesPath)
	if err != nil {
		return err
	}
	deckProfile, err := cat.Get(renderProfile)
	if err != nil {
		return err
	}

	array, err := buildProfileArray(deckProfile.WaveParams())
	if err != nil {
		return err
	}

	if err := writeOutputs(array); err != nil {
		return err
	}

	for _, path := range outputs {
		cfg.AddRecentFile(path)
		fmt.Printf("Wrote %s\n", path)
	}
	if err := project.SaveAppConfig(configPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot save config: %v\n", err)
	}
	return nil
}

// applyConfigDefaults fills unset flags from the app config.
func applyConfigDefaults(cfg project.AppConfig) {
	if renderProfile == "" {
		renderProfile = cfg.DefaultProfile
	}
	if renderWidth == 0 {
		renderWidth = cfg.CanvasWidth
	}
	if renderHeight == 0 {
		renderHeight = cfg.CanvasHeight
	}
}

// buildProfileArray assembles the curves for the requested section: the
// bare deck corrugation, plus the concrete-capped composite outline when
// a depth is given.
func buildProfileArray(params geometry.WaveParams) (*geometry.CurveArray, error) {
	name := renderName
	if name == "" {
		name = renderProfile
	}
	array := geometry.NewCurveArray(name)

	deck, err := geometry.NewWaveProfile(params, renderProfile+" deck")
	if err != nil {
		return nil, err
	}
	steel := material.Get("metal_sheet")
	deck.Material = &steel
	array.Append(deck)

	if renderDepth > 0 {
		slab, err := geometry.NewClosedWaveProfile(params, renderDepth, "Concrete Slab")
		if err != nil {
			return nil, err
		}
		concrete := material.Get("concrete")
		slab.Material = &concrete
		array.Append(slab)
	}

	return array, nil
}

func writeOutputs(array *geometry.CurveArray) error {
	if renderSVGPath != "" {
		f, err := os.Create(renderSVGPath)
		if err != nil {
			return err
		}
		doc := render.NewDocument(renderWidth, renderHeight)
		doc.ShowPoints = renderShowPoints
		if err := doc.WriteCurveArray(f, array); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if renderJSONPath != "" {
		record, err := webexport.CurveArray(array, renderWidth, renderHeight)
		if err != nil {
			return err
		}
		if err := webexport.WriteJSON(renderJSONPath, record); err != nil {
			return err
		}
	}

	if renderDXFPath != "" {
		if err := export.ExportDXF(renderDXFPath, array); err != nil {
			return err
		}
	}
	if renderPDFPath != "" {
		if err := export.ExportPDF(renderPDFPath, array); err != nil {
			return err
		}
	}
	if renderXLSXPath != "" {
		if err := export.ExportXLSX(renderXLSXPath, array); err != nil {
			return err
		}
	}
	if renderLabelsPath != "" {
		if err := export.ExportLabels(renderLabelsPath, array); err != nil {
			return err
		}
	}
	return nil
}

func outputPaths() []string {
	var paths []string
	for _, p := range []string{renderSVGPath, renderJSONPath, renderDXFPath, renderPDFPath, renderXLSXPath, renderLabelsPath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func init() {
	renderCmd.Flags().StringVarP(&renderProfile, "profile", "p", "", "Deck profile reference (default from config)")
	renderCmd.Flags().Float64VarP(&renderDepth, "depth", "d", 0, "Concrete depth above the rib bottom in meters (0 = bare deck)")
	renderCmd.Flags().StringVar(&renderName, "name", "", "Name for the generated profile set")
	renderCmd.Flags().StringVar(&renderSVGPath, "svg", "", "Write an SVG drawing to this path")
	renderCmd.Flags().StringVar(&renderJSONPath, "json", "", "Write a web-ready JSON record to this path")
	renderCmd.Flags().StringVar(&renderDXFPath, "dxf", "", "Write a DXF drawing to this path")
	renderCmd.Flags().StringVar(&renderPDFPath, "pdf", "", "Write PDF profile sheets to this path")
	renderCmd.Flags().StringVar(&renderXLSXPath, "xlsx", "", "Write an XLSX measurement table to this path")
	renderCmd.Flags().StringVar(&renderLabelsPath, "labels", "", "Write a QR label sheet PDF to this path")
	renderCmd.Flags().BoolVar(&renderShowPoints, "show-points", false, "Mark segment endpoints in the SVG output")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Canvas width in pixels (default from config)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Canvas height in pixels (default from config)")
	rootCmd.AddCommand(renderCmd)
}
