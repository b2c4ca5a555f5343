package geometry

import "fmt"

// NewRectangle builds a closed rectangular curve with its lower-left
// corner at origin.
func NewRectangle(width, height float64, origin Point, name string) (Curve, error) {
	return NewCurve(rectangleElements(width, height, origin), Closed, name)
}

func rectangleElements(width, height float64, origin Point) []Segment {
	p1 := origin
	p2 := Pt(origin.X+width, origin.Y)
	p3 := Pt(origin.X+width, origin.Y+height)
	p4 := Pt(origin.X, origin.Y+height)

	return []Segment{
		Line{Start: p1, End: p2},
		Line{Start: p2, End: p3},
		Line{Start: p3, End: p4},
		Line{Start: p4, End: p1},
	}
}

// NewTrapezoid builds a closed trapezoidal curve with the top width
// centered over the bottom width.
func NewTrapezoid(bottomWidth, topWidth, height float64, origin Point, name string) (Curve, error) {
	offset := (bottomWidth - topWidth) / 2

	p1 := origin
	p2 := Pt(origin.X+bottomWidth, origin.Y)
	p3 := Pt(origin.X+bottomWidth-offset, origin.Y+height)
	p4 := Pt(origin.X+offset, origin.Y+height)

	elements := []Segment{
		Line{Start: p1, End: p2},
		Line{Start: p2, End: p3},
		Line{Start: p3, End: p4},
		Line{Start: p4, End: p1},
	}
	return NewCurve(elements, Closed, name)
}

// NewPolyline builds a curve of consecutive line segments through the
// given points. With closed set, a closing segment from the last point
// back to the first is appended and the curve is tagged Closed.
// Fewer than two points yield an InsufficientPointsError.
func NewPolyline(points []Point, closed bool, name string) (Curve, error) {
	if len(points) < 2 {
		return Curve{}, &InsufficientPointsError{Count: len(points)}
	}

	elements := make([]Segment, 0, len(points))
	for i := 0; i < len(points)-1; i++ {
		elements = append(elements, Line{Start: points[i], End: points[i+1]})
	}

	typ := Open
	if closed {
		elements = append(elements, Line{Start: points[len(points)-1], End: points[0]})
		typ = Closed
	}
	return NewCurve(elements, typ, name)
}

// NewLineCurve builds an open curve consisting of a single line segment.
func NewLineCurve(start, end Point, name string) (Curve, error) {
	return NewCurve([]Segment{Line{Start: start, End: end}}, Open, name)
}

// Layer is one material layer of a floor composition.
type Layer struct {
	Material  string
	Thickness float64
}

// NewFloorLayers stacks material layers into a curve array of rectangles,
// bottom to top, each named and annotated with its material.
func NewFloorLayers(layers []Layer, width float64) (*CurveArray, error) {
	array := NewCurveArray("Floor Profile")
	currentY := 0.0

	for i, layer := range layers {
		elements := rectangleElements(width, layer.Thickness, Pt(0, currentY))
		rect, err := NewMaterialCurve(elements, Closed, layer.Material, layer.Material)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, layer.Material, err)
		}
		array.Append(rect)
		currentY += layer.Thickness
	}
	return array, nil
}

// TrapezoidSpec describes one trapezoid of a profile array.
type TrapezoidSpec struct {
	BottomWidth float64
	TopWidth    float64
	Height      float64
}

// NewTrapezoidArray lays out trapezoids left to right with the given
// horizontal spacing between them.
func NewTrapezoidArray(specs []TrapezoidSpec, spacing float64) (*CurveArray, error) {
	array := NewCurveArray("Trapezoidal Profile Array")
	currentX := 0.0

	for i, spec := range specs {
		name := fmt.Sprintf("Trapezoid_%d", i+1)
		trap, err := NewTrapezoid(spec.BottomWidth, spec.TopWidth, spec.Height, Pt(currentX, 0), name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		array.Append(trap)
		currentX += spec.BottomWidth + spacing
	}
	return array, nil
}
