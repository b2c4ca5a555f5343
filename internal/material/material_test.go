package material

import "testing"

func TestGetKnownMaterial(t *testing.T) {
	m := Get("steel")
	if m.Name != "steel" || m.Density != 7850 {
		t.Errorf("unexpected material: %+v", m)
	}
	if Get("STEEL") != m {
		t.Error("lookup should be case-insensitive")
	}
}

func TestGetUnknownFallsBackToConcrete(t *testing.T) {
	m := Get("kryptonite")
	if m.Name != "concrete" {
		t.Errorf("expected concrete fallback, got %s", m.Name)
	}
}

func TestListSortedAndComplete(t *testing.T) {
	materials := List()
	if len(materials) != 9 {
		t.Fatalf("expected 9 materials, got %d", len(materials))
	}
	for i := 1; i < len(materials); i++ {
		if materials[i-1].Name >= materials[i].Name {
			t.Errorf("list not sorted at %d: %s >= %s", i, materials[i-1].Name, materials[i].Name)
		}
	}
}

func TestByCategory(t *testing.T) {
	structural := ByCategory("structural")
	if len(structural) != 4 {
		t.Fatalf("expected 4 structural materials, got %d", len(structural))
	}
	for _, m := range structural {
		if m.Category != "structural" {
			t.Errorf("%s has category %s", m.Name, m.Category)
		}
	}
}

func TestPaletteCoversRegistry(t *testing.T) {
	palette := Palette()
	for _, m := range List() {
		if _, ok := palette[m.Name]; !ok {
			t.Errorf("no palette entry for %s", m.Name)
		}
	}
}
