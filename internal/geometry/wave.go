package geometry

import (
	"fmt"
	"math"
)

// WaveParams holds the dimensions of a periodic trapezoidal corrugation,
// all in model units (meters for catalog profiles).
type WaveParams struct {
	TotalWidth  float64 // total width of the profile
	WaveWidth   float64 // width of one complete wave cycle (rib spacing)
	BottomWidth float64 // width of the flat bottom section (rib width)
	TopWidth    float64 // width of the flat top section
	Height      float64 // height of the wave
}

// SideSlopeWidth is the horizontal width of each sloped section.
func (p WaveParams) SideSlopeWidth() float64 {
	return (p.WaveWidth - p.BottomWidth) / 2
}

// TopOffset is the horizontal offset centering the top section.
func (p WaveParams) TopOffset() float64 {
	return (p.BottomWidth - p.TopWidth) / 2
}

// Check reports the first non-positive dimension, if any.
func (p WaveParams) Check() error {
	for _, d := range []struct {
		name  string
		value float64
	}{
		{"total width", p.TotalWidth},
		{"wave width", p.WaveWidth},
		{"bottom width", p.BottomWidth},
		{"top width", p.TopWidth},
		{"height", p.Height},
	} {
		if d.value <= 0 {
			return fmt.Errorf("wave profile %s must be positive, got %g", d.name, d.value)
		}
	}
	return nil
}

// wavePoints generates the corrugation point sequence. The cursor starts at
// (-topWidth/2, height); each whole wave emits top flat, descending slope,
// bottom flat, and ascending slope steps. A trailing partial period is
// emitted when the total width does not divide evenly by the wave width.
func wavePoints(p WaveParams) []Point {
	sideSlopeWidth := p.SideSlopeWidth()
	topOffset := p.TopOffset()

	numWaves := int(math.Floor(p.TotalWidth / p.WaveWidth))
	remainder := p.TotalWidth - float64(numWaves)*p.WaveWidth
	// Rounding can leave the derived remainder a hair outside [0, WaveWidth);
	// snap whole-wave boundaries so catalog widths divide cleanly instead of
	// emitting a spurious partial period.
	tol := 1e-9 * p.WaveWidth
	if remainder >= p.WaveWidth-tol {
		numWaves++
		remainder = 0
	} else if remainder <= tol {
		remainder = 0
	}

	currentX := -p.TopWidth / 2

	var points []Point
	for wave := 0; wave < numWaves; wave++ {
		if wave == 0 {
			points = append(points, Pt(currentX, p.Height))
		}

		// Top flat section
		currentX += p.TopWidth
		points = append(points, Pt(currentX, p.Height))

		// Right descending slope
		currentX += sideSlopeWidth - topOffset
		points = append(points, Pt(currentX, 0))

		// Bottom flat section
		currentX += p.BottomWidth
		points = append(points, Pt(currentX, 0))

		// Left ascending slope (start of next wave)
		currentX += sideSlopeWidth - topOffset
		points = append(points, Pt(currentX, p.Height))
	}

	if remainder > 0 && numWaves > 0 {
		remaining := remainder
		if remaining >= p.TopWidth {
			currentX += p.TopWidth
			points = append(points, Pt(currentX, p.Height))
			remaining -= p.TopWidth
		}

		if remaining > 0 {
			// Partial slope down
			slopeProgress := math.Min(remaining/(sideSlopeWidth-topOffset), 1.0)
			points = append(points, Pt(currentX+remaining, p.Height*(1-slopeProgress)))
		}
	}
	return points
}

// NewWaveProfile builds an open polyline approximating a trapezoidal
// corrugation, like corrugated metal decking. When the wave width exceeds
// the total width no whole wave fits and the point set is empty; this
// surfaces as an InsufficientPointsError from the polyline factory.
func NewWaveProfile(p WaveParams, name string) (Curve, error) {
	if name == "" {
		name = "Wave Profile"
	}
	if err := p.Check(); err != nil {
		return Curve{}, err
	}
	return NewPolyline(wavePoints(p), false, name)
}

// NewClosedWaveProfile builds a closed composite profile around the
// corrugation. With depth greater than the wave height the profile is
// capped by a flat slab region at y=depth (concrete poured above the
// decking); otherwise the corrugation is squared off against the baseline
// y=0. An empty corrugation yields an empty closed curve without error.
func NewClosedWaveProfile(p WaveParams, depth float64, name string) (Curve, error) {
	if name == "" {
		name = "Closed Wave Profile"
	}
	if err := p.Check(); err != nil {
		return Curve{}, err
	}

	corrugated := wavePoints(p)
	if len(corrugated) == 0 {
		return NewCurve(nil, Closed, name)
	}

	first := corrugated[0]
	last := corrugated[len(corrugated)-1]

	var points []Point
	if depth > p.Height {
		// Flat slab cap above the corrugation, then down the right edge
		// and back along the corrugation right to left.
		points = append(points, Pt(first.X, depth), Pt(last.X, depth), Pt(last.X, last.Y))
		for i := len(corrugated) - 1; i >= 0; i-- {
			points = append(points, corrugated[i])
		}
	} else {
		// Square the corrugation off against the baseline before closing.
		points = append(points, corrugated...)
		if last.Y != 0 {
			points = append(points, Pt(last.X, 0))
		}
		if first.Y != 0 {
			points = append(points, Pt(first.X, 0))
		}
	}

	return NewPolyline(points, true, name)
}
