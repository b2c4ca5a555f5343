package geometry

import (
	"errors"
	"testing"
)

// Dimensions of a typical trapezoidal steel decking profile: five whole
// waves with no remainder.
var deckParams = WaveParams{
	TotalWidth:  875,
	WaveWidth:   175,
	BottomWidth: 65,
	TopWidth:    50,
	Height:      44,
}

func TestNewWaveProfileWholeWaves(t *testing.T) {
	c, err := NewWaveProfile(deckParams, "")
	if err != nil {
		t.Fatal(err)
	}
	if c.Type != Open {
		t.Error("wave profile should be open")
	}
	if c.Name != "Wave Profile" {
		t.Errorf("expected default name, got %q", c.Name)
	}

	points := c.Points()
	// First point plus four points per wave for five waves.
	if len(points) != 1+4*5 {
		t.Fatalf("expected 21 points, got %d", len(points))
	}
	if points[0] != Pt(-25, 44) {
		t.Errorf("expected first point (-25, 44), got %v", points[0])
	}

	l, err := c.Length()
	if err != nil {
		t.Fatal(err)
	}
	if l <= 0 {
		t.Errorf("expected positive length, got %g", l)
	}
}

func TestNewWaveProfileMeterWidthsDivideCleanly(t *testing.T) {
	// Deck product dimensions in meters. The quotient rounds to a whole
	// number of waves while a naive modulo leaves a residue, which used to
	// append a spurious partial period ending at the baseline.
	cases := []struct {
		name   string
		params WaveParams
		waves  int
	}{
		{"five waves, residue near wave width", WaveParams{TotalWidth: 1.035, WaveWidth: 0.207, BottomWidth: 0.062, TopWidth: 0.106, Height: 0.058}, 5},
		{"five waves, residue near zero", WaveParams{TotalWidth: 0.750, WaveWidth: 0.150, BottomWidth: 0.124, TopWidth: 0.0465, Height: 0.040}, 5},
		{"three waves, exact", WaveParams{TotalWidth: 0.810, WaveWidth: 0.270, BottomWidth: 0.086, TopWidth: 0.118, Height: 0.080}, 3},
	}
	for _, tc := range cases {
		c, err := NewWaveProfile(tc.params, "deck")
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		points := c.Points()
		if len(points) != 1+4*tc.waves {
			t.Errorf("%s: expected %d points, got %d", tc.name, 1+4*tc.waves, len(points))
		}
		if last := points[len(points)-1]; last.Y != tc.params.Height {
			t.Errorf("%s: corrugation should end at crest height %g, got y=%g", tc.name, tc.params.Height, last.Y)
		}
	}
}

func TestNewWaveProfileAlternatesHeights(t *testing.T) {
	c, err := NewWaveProfile(deckParams, "deck")
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range c.Points() {
		if p.Y != 0 && p.Y != deckParams.Height {
			t.Errorf("point %d: y=%g is neither baseline nor crest", i, p.Y)
		}
	}
}

func TestNewWaveProfileRemainderPartialSlope(t *testing.T) {
	params := deckParams
	params.TotalWidth = 900 // remainder 25, less than the top width

	c, err := NewWaveProfile(params, "partial")
	if err != nil {
		t.Fatal(err)
	}
	points := c.Points()
	last := points[len(points)-1]
	if last.Y <= 0 || last.Y >= params.Height {
		t.Errorf("partial slope point should sit between baseline and crest, got y=%g", last.Y)
	}
}

func TestNewWaveProfileRemainderConsumesTopFlat(t *testing.T) {
	params := deckParams
	params.TotalWidth = 875 + 60 // remainder 60 >= top width 50

	c, err := NewWaveProfile(params, "partial")
	if err != nil {
		t.Fatal(err)
	}
	points := c.Points()
	// Whole waves, plus the partial top flat, plus the partial slope point.
	if len(points) != 21+2 {
		t.Fatalf("expected 23 points, got %d", len(points))
	}
	if points[21].Y != params.Height {
		t.Errorf("partial top flat should stay at crest, got y=%g", points[21].Y)
	}
}

func TestNewWaveProfileNoWholeWave(t *testing.T) {
	params := deckParams
	params.TotalWidth = 100 // narrower than one wave cycle

	_, err := NewWaveProfile(params, "")
	var insufficientErr *InsufficientPointsError
	if !errors.As(err, &insufficientErr) {
		t.Fatalf("expected InsufficientPointsError, got %v", err)
	}
}

func TestWaveParamsCheck(t *testing.T) {
	params := deckParams
	params.Height = 0
	if _, err := NewWaveProfile(params, ""); err == nil {
		t.Error("expected error for non-positive height")
	}
	params = deckParams
	params.WaveWidth = -1
	if _, err := NewClosedWaveProfile(params, 0, ""); err == nil {
		t.Error("expected error for negative wave width")
	}
}

func TestNewClosedWaveProfileCapped(t *testing.T) {
	c, err := NewClosedWaveProfile(deckParams, 150, "")
	if err != nil {
		t.Fatal(err)
	}
	if c.Type != Closed {
		t.Error("expected closed curve")
	}
	if c.Name != "Closed Wave Profile" {
		t.Errorf("expected default name, got %q", c.Name)
	}

	points := c.Points()
	maxY := points[0].Y
	for _, p := range points {
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if maxY != 150 {
		t.Errorf("cap should sit at depth 150, max y is %g", maxY)
	}

	// The cap spans the corrugation's horizontal extent.
	if points[0] != Pt(-25, 150) {
		t.Errorf("expected cap to start at (-25, 150), got %v", points[0])
	}
}

func TestNewClosedWaveProfileUncapped(t *testing.T) {
	// Depth not above the wave height squares the profile off at y=0.
	for _, depth := range []float64{0, 44} {
		c, err := NewClosedWaveProfile(deckParams, depth, "squared")
		if err != nil {
			t.Fatalf("depth %g: %v", depth, err)
		}
		if c.Type != Closed {
			t.Errorf("depth %g: expected closed curve", depth)
		}

		points := c.Points()
		last := points[len(points)-1]
		if last.Y != 0 {
			t.Errorf("depth %g: expected final baseline point, got %v", depth, last)
		}
	}
}

func TestNewClosedWaveProfileValidates(t *testing.T) {
	c, err := NewClosedWaveProfile(deckParams, 150, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(c, DefaultTolerance); err != nil {
		t.Errorf("closed wave profile failed validation: %v", err)
	}
}
