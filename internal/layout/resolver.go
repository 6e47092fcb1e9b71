// Package layout resolves where and how large the display is drawn for each zoom policy.
package layout

import (
	"github.com/frudas24/displaylayout/internal/geom"
	"github.com/frudas24/displaylayout/internal/i18n"
	"github.com/frudas24/displaylayout/internal/settings"
)

const (
	// NativeWidth and NativeHeight are the source resolution used as scale 1.0.
	NativeWidth  = 480.0
	NativeHeight = 272.0
	// RefRatio is the native aspect ratio as used for viewport classification.
	RefRatio = 1.764706
	// IconMagnification converts a zoom level into representation scale.
	IconMagnification = 8.0

	MinScale     = 1.0
	MaxScale     = 100.0
	MinZoomLevel = 1.0
	MaxZoomLevel = 10.0
)

// Choice is a localizable label for an interaction sub-mode.
type Choice struct {
	Category string
	Key      string
}

// Guides are the drag boundaries drawn on screen. Manual moves stay inside them.
type Guides struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Layout is everything the screen needs to build its views.
type Layout struct {
	// Settings after auto-scale write-back.
	Settings           settings.Settings
	Representation     geom.DisplayRect
	Frame              geom.Rect
	HasFrame           bool
	Rotated            bool
	RotationSelectable bool
	Interactive        bool
	Choices            []Choice
	Guides             Guides
}

// Resolver computes layouts for one viewport.
type Resolver struct {
	vp geom.Viewport
}

// NewResolver returns a resolver bound to vp. vp must be valid.
func NewResolver(vp geom.Viewport) Resolver {
	return Resolver{vp: vp}
}

// Resolve derives the layout for s.
func (r Resolver) Resolve(s settings.Settings) Layout {
	rotated := s.Rotated()
	out := Layout{
		Rotated:            rotated,
		RotationSelectable: s.RotationSelectable(),
		Guides:             GuidesFor(r.vp),
	}

	visible := true
	switch s.ZoomType {
	case settings.ZoomAutoScale:
		s.ZoomLevel = ResolveAutoScale(r.vp, rotated)
		s.OffsetX = 0.5
		s.OffsetY = 0.5
		out.Choices = []Choice{{Category: i18n.Graphics, Key: "Auto Scaling"}}
	case settings.ZoomManual:
		out.Interactive = true
		out.Choices = []Choice{
			{Category: i18n.Dialog, Key: "Move"},
			{Category: i18n.Dialog, Key: "Resize"},
		}
	default:
		visible = false
		out.Frame = ResolveStretchGeometry(r.vp, s.ZoomType == settings.ZoomPartialStretch, rotated)
		out.HasFrame = true
		out.Choices = []Choice{{Category: i18n.Graphics, Key: "Stretching"}}
	}

	rep := geom.DisplayRect{
		CX:    s.OffsetX * float64(r.vp.W),
		CY:    s.OffsetY * float64(r.vp.H),
		Scale: ResolveManualInitial(s.ZoomLevel),
	}.WithVisible(visible)
	if rotated {
		rep = rep.WithAngle(90)
	}

	out.Settings = s
	out.Representation = rep
	return out
}

// ResolveAutoScale returns the zoom level at which the native frame fills the viewport.
func ResolveAutoScale(vp geom.Viewport, rotated bool) float64 {
	w := float64(vp.W)
	h := float64(vp.H)
	if rotated {
		return ClampScale(h / NativeWidth)
	}
	// Viewports narrower than native are width bound; everything else height bound.
	if vp.Ratio() < RefRatio {
		return ClampScale(w / NativeWidth)
	}
	return ClampScale(h / NativeHeight)
}

// ResolveZoomTypeChange returns the zoom level applied when leaving manual mode.
func ResolveZoomTypeChange(vp geom.Viewport) float64 {
	return ClampScale(float64(vp.W) / NativeWidth)
}

// ResolveStretchGeometry returns the frame drawn for the stretch policies.
func ResolveStretchGeometry(vp geom.Viewport, partial, rotated bool) geom.Rect {
	cx, cy := vp.Center()
	width := float64(vp.W)
	height := float64(vp.H)
	if !partial {
		return geom.CenteredRect(cx, cy, width, height)
	}

	origRatio := NativeWidth / NativeHeight
	if rotated {
		origRatio = NativeHeight / NativeWidth
	}
	frameRatio := width / height
	if origRatio > frameRatio {
		height = width / origRatio
		if !rotated {
			height = (NativeHeight + height) / 2
		}
	} else {
		width = height * origRatio
		if rotated {
			// Blends against height, not width. Kept as shipped.
			width = (NativeHeight + height) / 2
		}
	}
	return geom.CenteredRect(cx, cy, width, height)
}

// ResolveManualInitial converts a persisted zoom level into representation scale.
func ResolveManualInitial(zoomLevel float64) float64 {
	return ClampScale(zoomLevel * IconMagnification)
}

// GuidesFor returns the inner-half boundaries of vp.
func GuidesFor(vp geom.Viewport) Guides {
	w := float64(vp.W)
	h := float64(vp.H)
	return Guides{Left: w / 4, Right: w - w/4, Top: h / 4, Bottom: h - h/4}
}

// ClampScale bounds s to [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	return clamp(s, MinScale, MaxScale)
}

// ClampZoomLevel bounds z to the manual zoom slider range.
func ClampZoomLevel(z float64) float64 {
	return clamp(z, MinZoomLevel, MaxZoomLevel)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
