// Package catalog holds the steel-deck profile catalog: built-in
// manufacturer products plus profiles imported from spreadsheet files.
// Unlike materials, deck profiles carry dimensional parameters that
// cannot be defaulted, so unknown references are errors.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
)

// DeckProfile describes a trapezoidal steel-deck product. All dimensions
// are in meters.
type DeckProfile struct {
	Reference    string  `json:"reference"`
	Manufacturer string  `json:"manufacturer"`
	ProfileWidth float64 `json:"profile_width_m"` // covering width of one sheet
	WaveWidth    float64 `json:"wave_width_m"`    // period of one corrugation
	BottomWidth  float64 `json:"bottom_width_m"`  // flat width at the rib bottom
	TopWidth     float64 `json:"top_width_m"`     // flat width at the rib top
	Height       float64 `json:"height_m"`        // rib height
}

// WaveParams converts the product dimensions into wave generator
// parameters.
func (p DeckProfile) WaveParams() geometry.WaveParams {
	return geometry.WaveParams{
		TotalWidth:  p.ProfileWidth,
		WaveWidth:   p.WaveWidth,
		BottomWidth: p.BottomWidth,
		TopWidth:    p.TopWidth,
		Height:      p.Height,
	}
}

// Arcelor trapezoidal decking range.
var builtin = []DeckProfile{
	{Reference: "cofrastra 40", Manufacturer: "Arcelor", ProfileWidth: 0.750, WaveWidth: 0.150, BottomWidth: 0.124, TopWidth: 0.0465, Height: 0.040},
	{Reference: "cofraplus 60+", Manufacturer: "Arcelor", ProfileWidth: 1.035, WaveWidth: 0.207, BottomWidth: 0.062, TopWidth: 0.106, Height: 0.058},
	{Reference: "cofraplus 80", Manufacturer: "Arcelor", ProfileWidth: 0.810, WaveWidth: 0.270, BottomWidth: 0.086, TopWidth: 0.118, Height: 0.080},
}

// Catalog is a lookup table of deck profiles keyed by normalized
// reference.
type Catalog struct {
	profiles map[string]DeckProfile
}

// New returns a catalog preloaded with the built-in products.
func New() *Catalog {
	c := &Catalog{profiles: make(map[string]DeckProfile, len(builtin))}
	for _, p := range builtin {
		c.Add(p)
	}
	return c
}

// Add registers a profile, replacing any existing profile with the same
// normalized reference.
func (c *Catalog) Add(p DeckProfile) {
	c.profiles[normalizeReference(p.Reference)] = p
}

// Get looks up a profile by reference. Matching ignores case and the
// separators commonly found in product names, so "Cofraplus_60+" and
// "cofraplus 60+" resolve to the same product.
func (c *Catalog) Get(reference string) (DeckProfile, error) {
	p, ok := c.profiles[normalizeReference(reference)]
	if !ok {
		return DeckProfile{}, fmt.Errorf("unknown deck profile %q", reference)
	}
	return p, nil
}

// List returns all profiles sorted by reference.
func (c *Catalog) List() []DeckProfile {
	out := make([]DeckProfile, 0, len(c.profiles))
	for _, p := range c.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Reference < out[j].Reference })
	return out
}

// normalizeReference lowercases and strips spaces, underscores, and
// hyphens from a product reference.
func normalizeReference(reference string) string {
	s := strings.ToLower(strings.TrimSpace(reference))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, s)
}
