// Package drag turns a pointer stream into moves and resizes of the display representation.
package drag

import (
	"github.com/frudas24/displaylayout/internal/geom"
	"github.com/frudas24/displaylayout/internal/layout"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resizeStep = 0.5

// State is the controller's position in the gesture state machine.
type State int

const (
	StateIdle State = iota
	StatePicked
	StateMoving
	StateResizing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePicked:
		return "picked"
	case StateMoving:
		return "moving"
	case StateResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Active reports whether a drag session exists.
func (s State) Active() bool {
	return s != StateIdle
}

// SubMode is the interaction selected by the user. SubModeNone is used
// whenever the zoom policy is not manual.
type SubMode int

const (
	SubModeNone SubMode = iota
	SubModeMove
	SubModeResize
)

// String returns the sub-mode name as used on the wire.
func (m SubMode) String() string {
	switch m {
	case SubModeMove:
		return "move"
	case SubModeResize:
		return "resize"
	default:
		return "none"
	}
}

// ParseSubMode converts a wire name into a SubMode.
func ParseSubMode(s string) (SubMode, bool) {
	switch s {
	case "move":
		return SubModeMove, true
	case "resize":
		return SubModeResize, true
	case "none", "":
		return SubModeNone, true
	default:
		return SubModeNone, false
	}
}

// Kind identifies a pointer event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
)

// PointerEvent is a single pointer sample in viewport pixels.
type PointerEvent struct {
	Kind    Kind
	X       int
	Y       int
	SubMode SubMode
}

// Target is the draggable representation. The controller never owns it.
type Target interface {
	Rect() geom.DisplayRect
	Bounds() geom.Rect
	SetCenter(cx, cy float64)
	SetScale(scale float64)
}

// SettingsWriter receives the values committed by a gesture.
type SettingsWriter interface {
	SetOffset(x, y float64)
	SetZoomLevel(level float64)
}

// Controller tracks one drag session at a time.
type Controller struct {
	vp         geom.Viewport
	out        SettingsWriter
	hitTest    bool
	state      State
	picked     Target
	startX     float64
	startY     float64
	startScale float64
	offTX      float64
	offTY      float64
	log        zerolog.Logger
}

// Option customizes a Controller.
type Option func(*Controller)

// WithHitTest requires pointer-down events to land on the representation bounds.
func WithHitTest(enabled bool) Option {
	return func(c *Controller) {
		c.hitTest = enabled
	}
}

// NewController returns an idle controller for vp writing through out.
func NewController(vp geom.Viewport, out SettingsWriter, opts ...Option) *Controller {
	c := &Controller{
		vp:  vp,
		out: out,
		log: log.With().Str("module", "drag").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// SetViewport updates the viewport after the screen is re-entered.
func (c *Controller) SetViewport(vp geom.Viewport) {
	c.vp = vp
}

// Reset discards the current session without committing anything.
func (c *Controller) Reset() {
	if c.state.Active() {
		c.log.Debug().Str("state", c.state.String()).Msg("session discarded")
	}
	c.state = StateIdle
	c.picked = nil
}

// Handle dispatches ev and reports whether anything changed.
func (c *Controller) Handle(ev PointerEvent, target Target) bool {
	switch ev.Kind {
	case Down:
		return c.HandleDown(ev, target)
	case Move:
		return c.HandleMove(ev)
	case Up:
		return c.HandleUp(ev)
	default:
		return false
	}
}

// HandleDown starts a session on target.
func (c *Controller) HandleDown(ev PointerEvent, target Target) bool {
	if c.state.Active() || target == nil || ev.SubMode == SubModeNone {
		return false
	}
	if c.hitTest && !geom.Contains(target.Bounds(), float64(ev.X), float64(ev.Y)) {
		return false
	}
	r := target.Rect()
	c.picked = target
	c.state = StatePicked
	c.startX = r.CX
	c.startY = r.CY
	c.offTX = float64(ev.X) - r.CX
	c.offTY = float64(ev.Y) - r.CY
	c.startScale = r.Scale
	c.log.Debug().Float64("x", r.CX).Float64("y", r.CY).Float64("scale", r.Scale).Msg("picked")
	return true
}

// HandleMove applies a move or resize step to the picked target.
func (c *Controller) HandleMove(ev PointerEvent) bool {
	if !c.state.Active() {
		return false
	}
	touchX := float64(ev.X) - c.offTX
	touchY := float64(ev.Y) - c.offTY

	switch ev.SubMode {
	case SubModeMove:
		c.state = StateMoving
		return c.move(touchX, touchY)
	case SubModeResize:
		c.state = StateResizing
		return c.resize(touchY)
	default:
		return false
	}
}

// HandleUp ends the session and commits the position as viewport fractions.
func (c *Controller) HandleUp(ev PointerEvent) bool {
	if !c.state.Active() {
		return false
	}
	target := c.picked
	c.state = StateIdle
	c.picked = nil
	if ev.SubMode == SubModeNone {
		c.log.Debug().Msg("session ended outside manual mode")
		return false
	}

	r := target.Rect()
	target.SetScale(layout.ClampScale(r.Scale))
	offX := r.CX / float64(c.vp.W)
	offY := r.CY / float64(c.vp.H)
	c.out.SetOffset(offX, offY)
	c.log.Debug().Float64("offsetX", offX).Float64("offsetY", offY).Msg("committed")
	return true
}

// move tracks the pointer on each axis that stays inside the inner half of the viewport.
func (c *Controller) move(touchX, touchY float64) bool {
	r := c.picked.Rect()
	minX := float64(c.vp.W) / 4
	maxX := float64(c.vp.W) - minX
	minY := float64(c.vp.H) / 4
	maxY := float64(c.vp.H) - minY

	newX, newY := r.CX, r.CY
	// x and y are independent: a blocked axis freezes, the other keeps tracking.
	if touchX > minX && touchX < maxX {
		newX = touchX
	}
	if touchY > minY && touchY < maxY {
		newY = touchY
	}
	if newX == r.CX && newY == r.CY {
		return false
	}
	c.picked.SetCenter(newX, newY)
	return true
}

// resize scales with vertical travel; up grows. Horizontal travel is ignored.
func (c *Controller) resize(touchY float64) bool {
	diffY := -(touchY - c.startY)

	scale := layout.ClampScale(c.startScale + diffY*resizeStep)
	prev := c.picked.Rect().Scale
	c.picked.SetScale(scale)
	c.out.SetZoomLevel(scale / layout.IconMagnification)
	return scale != prev
}
