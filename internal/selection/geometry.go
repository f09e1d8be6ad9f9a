package selection

import (
	"fmt"
	"math"
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// Geometry holds the fixed transform between canvas clicks and
// original image pixels. It is computed once per loaded image.
type Geometry struct {
	Image   Size
	Canvas  Size
	Crop    Size // selection box, image pixels
	Resized Size // displayed image, canvas pixels

	Scale   float64 // canvas px per image px, uniform
	XFactor float64 // image px per canvas px
	YFactor float64

	DrawW float64 // selection box, canvas pixels
	DrawH float64
}

// NewGeometry fits image into canvas preserving aspect ratio.
func NewGeometry(image, canvas, crop Size) (*Geometry, error) {
	if image.Width <= 0 || image.Height <= 0 {
		return nil, fmt.Errorf("selection: invalid image size %dx%d", image.Width, image.Height)
	}
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return nil, fmt.Errorf("selection: invalid canvas size %dx%d", canvas.Width, canvas.Height)
	}
	if crop.Width <= 0 || crop.Height <= 0 {
		return nil, fmt.Errorf("selection: invalid crop size %dx%d", crop.Width, crop.Height)
	}
	if crop.Width > image.Width || crop.Height > image.Height {
		return nil, fmt.Errorf("selection: crop %dx%d larger than image %dx%d",
			crop.Width, crop.Height, image.Width, image.Height)
	}

	g := &Geometry{Image: image, Canvas: canvas, Crop: crop}

	g.Scale = math.Min(
		float64(canvas.Width)/float64(image.Width),
		float64(canvas.Height)/float64(image.Height),
	)
	g.Resized = Size{
		Width:  int(math.Floor(float64(image.Width) * g.Scale)),
		Height: int(math.Floor(float64(image.Height) * g.Scale)),
	}
	if g.Resized.Width == 0 || g.Resized.Height == 0 {
		return nil, fmt.Errorf("selection: image %dx%d vanishes on canvas %dx%d",
			image.Width, image.Height, canvas.Width, canvas.Height)
	}

	g.XFactor = float64(image.Width) / float64(g.Resized.Width)
	g.YFactor = float64(image.Height) / float64(g.Resized.Height)
	g.DrawW = float64(crop.Width) / g.XFactor
	g.DrawH = float64(crop.Height) / g.YFactor

	return g, nil
}

// ClampBox centres the selection box on a click and pushes it back
// inside the displayed image. Returns the top-left corner in canvas pixels.
func (g *Geometry) ClampBox(clickX, clickY float64) (x0, y0 float64) {
	x0 = clamp(clickX-g.DrawW/2, g.DrawW, float64(g.Resized.Width))
	y0 = clamp(clickY-g.DrawH/2, g.DrawH, float64(g.Resized.Height))
	return x0, y0
}

func clamp(lo, size, limit float64) float64 {
	if lo < 0 {
		lo = 0
	}
	if lo+size > limit {
		lo = limit - size
	}
	return lo
}

// RegisterClick converts a canvas click into the top-left image pixel
// of the selection box around it.
func (g *Geometry) RegisterClick(clickX, clickY float64) (Coordinate, error) {
	x0, y0 := g.ClampBox(clickX, clickY)

	// float rounding can leave a full-width box a hair below zero
	px := math.Floor(math.Max(0, x0/g.Scale))
	py := math.Floor(math.Max(0, y0/g.Scale))

	return NewCoordinate(int64(px), int64(py))
}
