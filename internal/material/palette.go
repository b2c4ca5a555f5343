package material

// PaletteEntry defines the visual styling of a material for rendered output.
type PaletteEntry struct {
	Fill        string `json:"fill"`
	Stroke      string `json:"stroke"`
	Pattern     string `json:"pattern"`
	Description string `json:"description"`
}

// Palette returns the default visual palette keyed by material name.
func Palette() map[string]PaletteEntry {
	return map[string]PaletteEntry{
		"concrete":     {Fill: "#6b7280", Stroke: "#374151", Pattern: "solid", Description: "Reinforced concrete"},
		"steel":        {Fill: "#ef4444", Stroke: "#dc2626", Pattern: "diagonal", Description: "Structural steel"},
		"insulation":   {Fill: "#fbbf24", Stroke: "#f59e0b", Pattern: "dots", Description: "Thermal insulation"},
		"screed":       {Fill: "#8b5cf6", Stroke: "#7c3aed", Pattern: "solid", Description: "Floor screed"},
		"finish_floor": {Fill: "#10b981", Stroke: "#059669", Pattern: "solid", Description: "Floor finish"},
		"timber":       {Fill: "#d97706", Stroke: "#b45309", Pattern: "wood_grain", Description: "Structural timber"},
		"masonry":      {Fill: "#dc2626", Stroke: "#b91c1c", Pattern: "brick", Description: "Brick masonry"},
		"membrane":     {Fill: "#1f2937", Stroke: "#111827", Pattern: "solid", Description: "Waterproof membrane"},
		"metal_sheet":  {Fill: "#6366f1", Stroke: "#4f46e5", Pattern: "corrugated", Description: "Metal sheeting"},
	}
}
