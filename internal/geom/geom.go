// Package geom holds the value types shared by the layout resolver and the drag controller.
package geom

import "math"

// IconWidth and IconHeight are the unscaled size of the display representation.
// At scale 8 the representation covers exactly one native 480x272 frame.
const (
	IconWidth  = 60
	IconHeight = 34
)

// Viewport is the pixel area available for laying out the display.
type Viewport struct {
	W int
	H int
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.W > 0 && v.H > 0
}

// Center returns the viewport center.
func (v Viewport) Center() (float64, float64) {
	return float64(v.W) / 2, float64(v.H) / 2
}

// Ratio returns width divided by height.
func (v Viewport) Ratio() float64 {
	return float64(v.W) / float64(v.H)
}

// Rect describes a rectangle using top-left origin and size.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Normalize returns a rectangle with non-negative width/height.
func Normalize(r Rect) Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Contains reports whether a point is inside the rectangle (edges inclusive).
// Rectangles with negative sizes are normalized first.
func Contains(r Rect, x, y float64) bool {
	r = Normalize(r)
	if r.W == 0 || r.H == 0 {
		return false
	}
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// CenteredRect returns a w x h rectangle centered on (cx, cy).
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// DisplayRect is the on-screen representation of the video surface.
// It is a value: the With* methods return an updated copy.
type DisplayRect struct {
	CX      float64
	CY      float64
	Scale   float64
	Angle   float64
	Visible bool
}

// WithCenter returns r moved to (cx, cy).
func (r DisplayRect) WithCenter(cx, cy float64) DisplayRect {
	r.CX = cx
	r.CY = cy
	return r
}

// WithScale returns r with a new scale.
func (r DisplayRect) WithScale(scale float64) DisplayRect {
	r.Scale = scale
	return r
}

// WithAngle returns r rotated to angle degrees.
func (r DisplayRect) WithAngle(angle float64) DisplayRect {
	r.Angle = angle
	return r
}

// WithVisible returns r with the visibility flag set.
func (r DisplayRect) WithVisible(visible bool) DisplayRect {
	r.Visible = visible
	return r
}

// Rotated reports whether the representation is drawn on its side.
func (r DisplayRect) Rotated() bool {
	a := math.Mod(math.Abs(r.Angle), 180)
	return a == 90
}

// Bounds returns the pixel bounds of the representation.
func (r DisplayRect) Bounds() Rect {
	w := IconWidth * r.Scale
	h := IconHeight * r.Scale
	if r.Rotated() {
		w, h = h, w
	}
	return CenteredRect(r.CX, r.CY, w, h)
}
