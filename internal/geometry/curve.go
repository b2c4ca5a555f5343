package geometry

import (
	"encoding/json"
	"fmt"

	"github.com/floorcomposer/floorcomposer/internal/material"
)

// DefaultTolerance is the maximum positional gap treated as "touching"
// for continuity and closure checks, in model units.
const DefaultTolerance = 1e-6

// CurveType tags a curve as open or closed.
type CurveType int

const (
	Open CurveType = iota
	Closed
)

func (t CurveType) String() string {
	if t == Closed {
		return "closed"
	}
	return "open"
}

// MarshalJSON encodes the curve type as its string form.
func (t CurveType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Curve is an ordered sequence of connected segments tagged open or closed.
// A curve is validated exactly once, at construction, and is immutable
// afterwards.
type Curve struct {
	Elements []Segment
	Type     CurveType
	Name     string
	Material *material.Material
}

// NewCurve builds a curve from segments and validates continuity and
// closure with DefaultTolerance. No partially valid curve is ever returned.
func NewCurve(elements []Segment, typ CurveType, name string) (Curve, error) {
	c := Curve{
		Elements: append([]Segment(nil), elements...),
		Type:     typ,
		Name:     name,
	}
	if err := Validate(c, DefaultTolerance); err != nil {
		return Curve{}, err
	}
	return c, nil
}

// NewMaterialCurve builds a validated curve annotated with a material
// resolved from the registry.
func NewMaterialCurve(elements []Segment, typ CurveType, name, materialName string) (Curve, error) {
	c, err := NewCurve(elements, typ, name)
	if err != nil {
		return Curve{}, err
	}
	m := material.Get(materialName)
	c.Material = &m
	return c, nil
}

// Validate checks curve continuity and, for closed curves, closure.
// Curves with zero or one element are vacuously valid.
func Validate(c Curve, tolerance float64) error {
	for i := 0; i < len(c.Elements)-1; i++ {
		_, end := c.Elements[i].Endpoints()
		start, _ := c.Elements[i+1].Endpoints()
		if gap := Distance(end, start); gap > tolerance {
			return &DiscontinuityError{Index: i, Gap: gap}
		}
	}

	if c.Type == Closed && len(c.Elements) > 0 {
		firstStart, _ := c.Elements[0].Endpoints()
		_, lastEnd := c.Elements[len(c.Elements)-1].Endpoints()
		if gap := Distance(firstStart, lastEnd); gap > tolerance {
			return &ClosureError{Gap: gap}
		}
	}
	return nil
}

// Length returns the total curve length as the sum of its element lengths.
func (c Curve) Length() (float64, error) {
	var total float64
	for _, el := range c.Elements {
		l, err := SegmentLength(el)
		if err != nil {
			return 0, err
		}
		total += l
	}
	return total, nil
}

// Points reconstructs the ordered point sequence of a polyline curve:
// the first segment contributes both endpoints, subsequent segments only
// their end point.
func (c Curve) Points() []Point {
	var points []Point
	for _, el := range c.Elements {
		start, end := el.Endpoints()
		if len(points) == 0 {
			points = append(points, start)
		}
		points = append(points, end)
	}
	return points
}

// CurveArray is an ordered, named collection of curves. Appending is the
// only permitted mutation; member curves are never modified in place.
type CurveArray struct {
	Curves []Curve
	Name   string
}

// NewCurveArray builds a curve array over the given curves.
func NewCurveArray(name string, curves ...Curve) *CurveArray {
	return &CurveArray{Curves: append([]Curve(nil), curves...), Name: name}
}

// Append adds a curve to the array.
func (a *CurveArray) Append(c Curve) {
	a.Curves = append(a.Curves, c)
}

// TotalLength sums the lengths of all member curves.
func (a *CurveArray) TotalLength() (float64, error) {
	var total float64
	for i, c := range a.Curves {
		l, err := c.Length()
		if err != nil {
			return 0, fmt.Errorf("curve %d: %w", i, err)
		}
		total += l
	}
	return total, nil
}

// OpenCurves returns the member curves tagged Open.
func (a *CurveArray) OpenCurves() []Curve {
	return a.filter(Open)
}

// ClosedCurves returns the member curves tagged Closed.
func (a *CurveArray) ClosedCurves() []Curve {
	return a.filter(Closed)
}

func (a *CurveArray) filter(typ CurveType) []Curve {
	var out []Curve
	for _, c := range a.Curves {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}
