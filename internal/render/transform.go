package render

import (
	"math"

	"github.com/floorcomposer/floorcomposer/internal/geometry"
)

// padding added around the data extent before fitting it to the canvas.
const boundsPadding = 0.10

// Transform is an affine map from model space (meters, Y-up) to canvas
// space (pixels, Y-down). It is derived once per bounding box and reused
// for every curve the box covers, so curves sharing bounds render on a
// consistent scale. Scale converts model lengths (arc radii) to canvas
// lengths.
type Transform struct {
	Scale   float64
	offsetX float64
	offsetY float64
}

// NewTransform fits the given bounds into a canvas of the given pixel
// size, leaving margin pixels on every side, preserving aspect ratio and
// centering the content.
func NewTransform(b Bounds, canvasWidth, canvasHeight, margin int) Transform {
	viewWidth := float64(canvasWidth - 2*margin)
	viewHeight := float64(canvasHeight - 2*margin)

	dataWidth := b.Width()
	dataHeight := b.Height()
	if dataWidth == 0 {
		dataWidth = 1
	}
	if dataHeight == 0 {
		dataHeight = 1
	}
	dataWidth *= 1 + boundsPadding
	dataHeight *= 1 + boundsPadding

	scale := math.Min(viewWidth/dataWidth, viewHeight/dataHeight)

	center := b.Center()
	return Transform{
		Scale:   scale,
		offsetX: float64(canvasWidth)/2 - center.X*scale,
		offsetY: float64(canvasHeight)/2 + center.Y*scale,
	}
}

// Apply maps a model-space point to canvas coordinates. The Y axis is
// inverted: the model is Y-up, the canvas Y-down.
func (t Transform) Apply(p geometry.Point) (x, y float64) {
	return p.X*t.Scale + t.offsetX, -p.Y*t.Scale + t.offsetY
}
