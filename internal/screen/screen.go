// Package screen hosts the display layout editor: it owns the representation,
// rebuilds geometry from persisted settings and routes pointer input.
package screen

import (
	"fmt"

	"github.com/frudas24/displaylayout/internal/drag"
	"github.com/frudas24/displaylayout/internal/geom"
	"github.com/frudas24/displaylayout/internal/i18n"
	"github.com/frudas24/displaylayout/internal/layout"
	"github.com/frudas24/displaylayout/internal/settings"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Screen is one instance of the display layout editor.
type Screen struct {
	store    settings.Store
	tr       i18n.Translator
	vp       geom.Viewport
	resolver layout.Resolver
	ctrl     *drag.Controller
	rep      *Representation
	layout   layout.Layout
	subMode  drag.SubMode
	log      zerolog.Logger
}

// Option customizes a Screen.
type Option func(*options)

type options struct {
	hitTest bool
}

// WithHitTest makes pointer-down events pick the representation only when they land on it.
func WithHitTest(enabled bool) Option {
	return func(o *options) {
		o.hitTest = enabled
	}
}

// New builds a screen for vp and derives its geometry from store.
func New(store settings.Store, tr i18n.Translator, vp geom.Viewport, opts ...Option) (*Screen, error) {
	if store == nil {
		return nil, fmt.Errorf("settings store is required")
	}
	if !vp.Valid() {
		return nil, fmt.Errorf("invalid viewport %dx%d", vp.W, vp.H)
	}
	if tr == nil {
		tr = i18n.Catalog{}
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Screen{
		store:    store,
		tr:       tr,
		vp:       vp,
		resolver: layout.NewResolver(vp),
		ctrl:     drag.NewController(vp, store, drag.WithHitTest(o.hitTest)),
		rep:      &Representation{},
		log:      log.With().Str("module", "screen").Logger(),
	}
	s.CreateViews()
	return s, nil
}

// CreateViews re-derives the layout from the current settings and viewport.
// An active drag session keeps running against the same representation.
func (s *Screen) CreateViews() {
	cur := s.store.Settings()
	l := s.resolver.Resolve(cur)

	if l.Settings.ZoomLevel != cur.ZoomLevel {
		s.store.SetZoomLevel(l.Settings.ZoomLevel)
	}
	if l.Settings.OffsetX != cur.OffsetX || l.Settings.OffsetY != cur.OffsetY {
		s.store.SetOffset(l.Settings.OffsetX, l.Settings.OffsetY)
	}

	s.layout = l
	rep := l.Representation
	s.rep.SetCenter(rep.CX, rep.CY)
	s.rep.SetScale(rep.Scale)
	s.rep.SetAngle(rep.Angle)
	s.rep.SetVisible(rep.Visible)
	if l.Interactive {
		s.subMode = drag.SubModeMove
	} else {
		s.subMode = drag.SubModeNone
	}
	s.log.Debug().
		Str("zoomType", l.Settings.ZoomType.String()).
		Bool("rotated", l.Rotated).
		Float64("scale", l.Representation.Scale).
		Msg("views created")
}

// Touch feeds one pointer event to the drag controller.
func (s *Screen) Touch(kind drag.Kind, x, y int) bool {
	ev := drag.PointerEvent{Kind: kind, X: x, Y: y, SubMode: s.subMode}
	return s.ctrl.Handle(ev, s.rep)
}

// SetSubMode selects move or resize. Only meaningful in manual mode.
func (s *Screen) SetSubMode(m drag.SubMode) bool {
	if !s.layout.Interactive || m == drag.SubModeNone {
		return false
	}
	s.subMode = m
	return true
}

// SubMode returns the active interaction sub-mode.
func (s *Screen) SubMode() drag.SubMode {
	return s.subMode
}

// OnCenter recenters the display.
func (s *Screen) OnCenter() {
	s.store.SetOffset(0.5, 0.5)
	s.CreateViews()
}

// OnZoomTypeChange switches the layout policy. Leaving manual mode resets
// zoom and position.
func (s *Screen) OnZoomTypeChange(t settings.ZoomType) bool {
	if !t.Valid() {
		return false
	}
	s.store.SetZoomType(t)
	if t != settings.ZoomManual {
		s.store.SetZoomLevel(layout.ResolveZoomTypeChange(s.vp))
		s.store.SetOffset(0.5, 0.5)
	}
	s.CreateViews()
	return true
}

// OnRotationChange updates the rotation lock when rotation is selectable.
func (s *Screen) OnRotationChange(r settings.Rotation) bool {
	if !r.Valid() || !s.layout.RotationSelectable {
		return false
	}
	s.store.SetRotation(r)
	s.CreateViews()
	return true
}

// OnRenderingModeChange updates the rendering mode, which gates rotation.
func (s *Screen) OnRenderingModeChange(m settings.RenderingMode) bool {
	if m != settings.RenderingBuffered && m != settings.RenderingNonBuffered {
		return false
	}
	s.store.SetRenderingMode(m)
	s.CreateViews()
	return true
}

// OnZoomLevelChange applies the manual zoom slider.
func (s *Screen) OnZoomLevelChange(level float64) bool {
	if !s.layout.Interactive {
		return false
	}
	s.store.SetZoomLevel(layout.ClampZoomLevel(level))
	s.CreateViews()
	return true
}

// DialogFinished rebuilds views after a child dialog closes.
func (s *Screen) DialogFinished() {
	s.CreateViews()
}

// OnFinish persists the settings when the screen is dismissed.
func (s *Screen) OnFinish() error {
	if err := s.store.Save(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.log.Info().Msg("settings saved")
	return nil
}

// SetViewport re-enters the screen with a new viewport. Any drag in progress is dropped.
func (s *Screen) SetViewport(vp geom.Viewport) error {
	if !vp.Valid() {
		return fmt.Errorf("invalid viewport %dx%d", vp.W, vp.H)
	}
	s.ctrl.Reset()
	s.vp = vp
	s.resolver = layout.NewResolver(vp)
	s.ctrl.SetViewport(vp)
	s.CreateViews()
	return nil
}

// Representation returns the draggable representation.
func (s *Screen) Representation() *Representation {
	return s.rep
}

// DragState returns the controller state.
func (s *Screen) DragState() drag.State {
	return s.ctrl.State()
}

// CancelDrag drops any drag in progress, as when the pointer stream disappears.
func (s *Screen) CancelDrag() {
	s.ctrl.Reset()
}

// Settings returns the persisted settings as currently held by the store.
func (s *Screen) Settings() settings.Settings {
	return s.store.Settings()
}
