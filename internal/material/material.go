// Package material holds the building-material registry used to annotate
// curves and style rendered profiles. Unknown material names resolve to a
// default rather than failing.
package material

import (
	"sort"
	"strings"
)

// Material describes a building material used in floor compositions.
type Material struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Density     float64 `json:"density"` // kg/m³
	Description string  `json:"description"`
}

// Standard building materials.
var (
	Concrete    = Material{Name: "concrete", Category: "structural", Density: 2400, Description: "Reinforced concrete"}
	Steel       = Material{Name: "steel", Category: "structural", Density: 7850, Description: "Structural steel"}
	Insulation  = Material{Name: "insulation", Category: "thermal", Density: 30, Description: "Thermal insulation"}
	Screed      = Material{Name: "screed", Category: "finish", Density: 2000, Description: "Floor screed"}
	FinishFloor = Material{Name: "finish_floor", Category: "finish", Density: 800, Description: "Floor finish material"}
	Timber      = Material{Name: "timber", Category: "structural", Density: 600, Description: "Structural timber"}
	Masonry     = Material{Name: "masonry", Category: "structural", Density: 1800, Description: "Brick or block masonry"}
	Membrane    = Material{Name: "membrane", Category: "waterproofing", Density: 50, Description: "Waterproof membrane"}
	MetalSheet  = Material{Name: "metal_sheet", Category: "cladding", Density: 7850, Description: "Corrugated metal sheeting"}
)

var registry = map[string]Material{
	"concrete":     Concrete,
	"steel":        Steel,
	"insulation":   Insulation,
	"screed":       Screed,
	"finish_floor": FinishFloor,
	"timber":       Timber,
	"masonry":      Masonry,
	"membrane":     Membrane,
	"metal_sheet":  MetalSheet,
}

// Get returns the material with the given name, or Concrete when the name
// is unknown. Lookup is case-insensitive on the registered lowercase names.
func Get(name string) Material {
	if m, ok := registry[strings.ToLower(name)]; ok {
		return m
	}
	return Concrete
}

// List returns all registered materials sorted by name.
func List() []Material {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	materials := make([]Material, len(names))
	for i, name := range names {
		materials[i] = registry[name]
	}
	return materials
}

// ByCategory returns all registered materials in the given category,
// sorted by name.
func ByCategory(category string) []Material {
	var out []Material
	for _, m := range List() {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}
