// Package settings holds the persisted display settings and their file store.
package settings

import "math"

const minZoomLevel = 1.0

// ZoomType selects how the display is laid out inside the viewport.
type ZoomType int

const (
	// ZoomStretch fills the whole viewport.
	ZoomStretch ZoomType = iota
	// ZoomPartialStretch keeps most of the aspect ratio and leaves a partial letterbox.
	ZoomPartialStretch
	// ZoomAutoScale picks the largest clean multiple of the native resolution.
	ZoomAutoScale
	// ZoomManual lets the user drag and resize the display.
	ZoomManual
)

// String returns the display name used as the lookup key for localized labels.
func (z ZoomType) String() string {
	switch z {
	case ZoomStretch:
		return "Stretching"
	case ZoomPartialStretch:
		return "Partial Stretch"
	case ZoomAutoScale:
		return "Auto Scaling"
	case ZoomManual:
		return "Manual Scaling"
	default:
		return "Unknown"
	}
}

// Valid reports whether z is one of the known zoom types.
func (z ZoomType) Valid() bool {
	return z >= ZoomStretch && z <= ZoomManual
}

// Rotation is the internal screen rotation lock.
type Rotation int

const (
	RotationLandscape         Rotation = iota // 0°
	RotationLandscapeReversed                 // 180°
	RotationPortrait                          // 90°
	RotationPortraitReversed                  // 270°
)

// String returns the display name used as the lookup key for localized labels.
func (r Rotation) String() string {
	switch r {
	case RotationLandscape:
		return "Landscape"
	case RotationLandscapeReversed:
		return "Landscape Reversed"
	case RotationPortrait:
		return "Portrait"
	case RotationPortraitReversed:
		return "Portrait Reversed"
	default:
		return "Unknown"
	}
}

// Valid reports whether r is one of the known rotations.
func (r Rotation) Valid() bool {
	return r >= RotationLandscape && r <= RotationPortraitReversed
}

// Vertical reports whether the rotation puts the display on its side.
func (r Rotation) Vertical() bool {
	return r == RotationPortrait || r == RotationPortraitReversed
}

// RenderingMode selects buffered or direct rendering.
type RenderingMode int

const (
	// RenderingBuffered renders into an intermediate framebuffer.
	RenderingBuffered RenderingMode = iota
	// RenderingNonBuffered renders straight to the backbuffer; rotation is unavailable.
	RenderingNonBuffered
)

// Settings is the persisted display layout.
type Settings struct {
	OffsetX       float64       `json:"offsetX" yaml:"offsetX"`
	OffsetY       float64       `json:"offsetY" yaml:"offsetY"`
	ZoomLevel     float64       `json:"zoomLevel" yaml:"zoomLevel"`
	ZoomType      ZoomType      `json:"zoomType" yaml:"zoomType"`
	Rotation      Rotation      `json:"rotation" yaml:"rotation"`
	RenderingMode RenderingMode `json:"renderingMode" yaml:"renderingMode"`
}

// Defaults returns the settings used when nothing has been persisted yet.
func Defaults() Settings {
	return Settings{
		OffsetX:       0.5,
		OffsetY:       0.5,
		ZoomLevel:     1.0,
		ZoomType:      ZoomAutoScale,
		Rotation:      RotationLandscape,
		RenderingMode: RenderingBuffered,
	}
}

// Rotated reports whether the display is presented on its side.
// Rotation only applies with buffered rendering.
func (s Settings) Rotated() bool {
	return s.RotationSelectable() && s.Rotation.Vertical()
}

// RotationSelectable reports whether the rotation choice is enabled.
func (s Settings) RotationSelectable() bool {
	return s.RenderingMode != RenderingNonBuffered
}

// Sanitize replaces out-of-range enum values with defaults, clamps the
// offsets to [0,1] and raises the zoom level to at least 1.
func Sanitize(s Settings) Settings {
	def := Defaults()
	s.OffsetX = clampUnit(s.OffsetX, def.OffsetX)
	s.OffsetY = clampUnit(s.OffsetY, def.OffsetY)
	if math.IsNaN(s.ZoomLevel) {
		s.ZoomLevel = def.ZoomLevel
	}
	if s.ZoomLevel < minZoomLevel {
		s.ZoomLevel = minZoomLevel
	}
	if !s.ZoomType.Valid() {
		s.ZoomType = def.ZoomType
	}
	if !s.Rotation.Valid() {
		s.Rotation = def.Rotation
	}
	if s.RenderingMode != RenderingBuffered && s.RenderingMode != RenderingNonBuffered {
		s.RenderingMode = def.RenderingMode
	}
	return s
}

// clampUnit bounds v to [0,1]; NaN becomes def.
func clampUnit(v, def float64) float64 {
	switch {
	case math.IsNaN(v):
		return def
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
