package screen

import "github.com/frudas24/displaylayout/internal/geom"

// Representation is the draggable stand-in for the video surface.
// The screen owns it for its whole lifetime; drag sessions only borrow it.
type Representation struct {
	r geom.DisplayRect
}

// Rect returns the current geometry.
func (p *Representation) Rect() geom.DisplayRect {
	return p.r
}

// SetCenter moves the representation to (cx, cy).
func (p *Representation) SetCenter(cx, cy float64) {
	p.r = p.r.WithCenter(cx, cy)
}

// Bounds returns the pixel bounds.
func (p *Representation) Bounds() geom.Rect {
	return p.r.Bounds()
}

// Scale returns the representation scale.
func (p *Representation) Scale() float64 {
	return p.r.Scale
}

// SetScale sets the representation scale.
func (p *Representation) SetScale(s float64) {
	p.r = p.r.WithScale(s)
}

// SetAngle sets the drawing angle in degrees.
func (p *Representation) SetAngle(a float64) {
	p.r = p.r.WithAngle(a)
}

// SetVisible toggles visibility.
func (p *Representation) SetVisible(v bool) {
	p.r = p.r.WithVisible(v)
}
