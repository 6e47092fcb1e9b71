package screen

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/frudas24/displaylayout/internal/drag"
	"github.com/frudas24/displaylayout/internal/geom"
	"github.com/frudas24/displaylayout/internal/i18n"
	"github.com/frudas24/displaylayout/internal/settings"
	"github.com/frudas24/displaylayout/internal/testutil"
)

func manualSettings() settings.Settings {
	s := settings.Defaults()
	s.ZoomType = settings.ZoomManual
	s.ZoomLevel = 2
	s.OffsetX = 0.25
	s.OffsetY = 0.75
	return s
}

func newTestScreen(t *testing.T, s settings.Settings, vp geom.Viewport) (*Screen, *testutil.FakeStore) {
	t.Helper()
	store := testutil.NewFakeStore(s)
	scr, err := New(store, nil, vp)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return scr, store
}

// TestNew_ManualPlacesRepresentation verifies construction derives geometry from settings.
func TestNew_ManualPlacesRepresentation(t *testing.T) {
	scr, store := newTestScreen(t, manualSettings(), geom.Viewport{W: 1000, H: 800})
	r := scr.Representation().Rect()
	if r.CX != 250 || r.CY != 600 || r.Scale != 16 || !r.Visible {
		t.Fatalf("unexpected representation: %+v", r)
	}
	if scr.SubMode() != drag.SubModeMove {
		t.Fatalf("expected move sub-mode, got %v", scr.SubMode())
	}
	if len(store.Calls) != 0 {
		t.Fatalf("manual construction must not write settings: %#v", store.Calls)
	}
}

// TestNew_RejectsBadInput verifies construction preconditions.
func TestNew_RejectsBadInput(t *testing.T) {
	if _, err := New(nil, nil, geom.Viewport{W: 10, H: 10}); err == nil {
		t.Fatalf("expected error for nil store")
	}
	store := testutil.NewFakeStore(settings.Defaults())
	if _, err := New(store, nil, geom.Viewport{W: 10, H: 0}); err == nil {
		t.Fatalf("expected error for empty viewport")
	}
}

// TestNew_AutoScaleWritesBack verifies auto scaling persists the derived zoom and centers.
func TestNew_AutoScaleWritesBack(t *testing.T) {
	s := settings.Defaults()
	s.OffsetX = 0.2
	scr, store := newTestScreen(t, s, geom.Viewport{W: 1920, H: 1080})
	if math.Abs(store.S.ZoomLevel-1080.0/272.0) > 1e-9 {
		t.Fatalf("unexpected zoom level %v", store.S.ZoomLevel)
	}
	if store.S.OffsetX != 0.5 || store.S.OffsetY != 0.5 {
		t.Fatalf("expected centered offsets, got %+v", store.S)
	}
	if scr.SubMode() != drag.SubModeNone {
		t.Fatalf("auto scaling must not be interactive")
	}
}

// TestTouch_ResizeScenario verifies 20px of upward travel in resize mode.
func TestTouch_ResizeScenario(t *testing.T) {
	s := manualSettings()
	s.ZoomLevel = 1
	scr, store := newTestScreen(t, s, geom.Viewport{W: 1000, H: 800})
	if !scr.SetSubMode(drag.SubModeResize) {
		t.Fatalf("expected resize to be selectable")
	}

	scr.Touch(drag.Down, 250, 600)
	scr.Touch(drag.Move, 250, 580)
	if got := scr.Representation().Scale(); got != 18 {
		t.Fatalf("expected scale 18, got %v", got)
	}
	if store.S.ZoomLevel != 2.25 {
		t.Fatalf("expected zoom 2.25, got %v", store.S.ZoomLevel)
	}
	if scr.DragState() != drag.StateResizing {
		t.Fatalf("expected resizing, got %v", scr.DragState())
	}
	scr.Touch(drag.Up, 250, 580)
	if scr.DragState() != drag.StateIdle {
		t.Fatalf("expected idle after release")
	}
}

// TestTouch_MoveCommitsOnRelease verifies moved positions persist as fractions.
func TestTouch_MoveCommitsOnRelease(t *testing.T) {
	s := manualSettings()
	s.OffsetX = 0.5
	s.OffsetY = 0.5
	scr, store := newTestScreen(t, s, geom.Viewport{W: 1000, H: 800})

	scr.Touch(drag.Down, 500, 400)
	scr.Touch(drag.Move, 600, 300)
	if store.Count("SetOffset") != 0 {
		t.Fatalf("offsets must only be written on release")
	}
	scr.Touch(drag.Up, 600, 300)
	if store.S.OffsetX != 0.6 || store.S.OffsetY != 0.375 {
		t.Fatalf("unexpected offsets: %+v", store.S)
	}
}

// TestOnCenter_Idempotent verifies centering resets offsets and is stable when repeated.
func TestOnCenter_Idempotent(t *testing.T) {
	scr, store := newTestScreen(t, manualSettings(), geom.Viewport{W: 1000, H: 800})
	scr.Touch(drag.Down, 250, 600)
	scr.Touch(drag.Move, 300, 500)
	scr.Touch(drag.Up, 300, 500)

	for i := 0; i < 3; i++ {
		scr.OnCenter()
		r := scr.Representation().Rect()
		if store.S.OffsetX != 0.5 || store.S.OffsetY != 0.5 || r.CX != 500 || r.CY != 400 {
			t.Fatalf("pass %d: expected centered, got settings=%+v rect=%+v", i, store.S, r)
		}
	}
}

// TestStretch_PointerEventsAreInert verifies switching to stretch stops all pointer effects.
func TestStretch_PointerEventsAreInert(t *testing.T) {
	scr, store := newTestScreen(t, manualSettings(), geom.Viewport{W: 1000, H: 800})
	if !scr.OnZoomTypeChange(settings.ZoomStretch) {
		t.Fatalf("expected zoom type change")
	}
	before := scr.Representation().Rect()
	store.Reset()

	scr.Touch(drag.Down, 500, 400)
	scr.Touch(drag.Move, 600, 300)
	scr.Touch(drag.Up, 600, 300)
	if scr.Representation().Rect() != before {
		t.Fatalf("geometry changed in stretch mode")
	}
	if len(store.Calls) != 0 {
		t.Fatalf("expected no writes, got %#v", store.Calls)
	}
	if scr.View().Frame == nil || before.Visible {
		t.Fatalf("stretch mode shows a frame and hides the representation")
	}
}

// TestOnZoomTypeChange_ResetsZoomFromWidth verifies leaving manual mode resets zoom and offsets.
func TestOnZoomTypeChange_ResetsZoomFromWidth(t *testing.T) {
	scr, store := newTestScreen(t, manualSettings(), geom.Viewport{W: 960, H: 800})
	scr.OnZoomTypeChange(settings.ZoomPartialStretch)
	if store.S.ZoomLevel != 2 || store.S.OffsetX != 0.5 || store.S.ZoomType != settings.ZoomPartialStretch {
		t.Fatalf("unexpected settings: %+v", store.S)
	}
	if scr.OnZoomTypeChange(settings.ZoomType(42)) {
		t.Fatalf("unknown zoom type must be rejected")
	}
}

// TestOnZoomLevelChange_ClampsSlider verifies the manual slider stays within [1,10].
func TestOnZoomLevelChange_ClampsSlider(t *testing.T) {
	scr, store := newTestScreen(t, manualSettings(), geom.Viewport{W: 1000, H: 800})
	scr.OnZoomLevelChange(25)
	if store.S.ZoomLevel != 10 || scr.Representation().Scale() != 80 {
		t.Fatalf("expected clamp to 10, got zoom=%v scale=%v", store.S.ZoomLevel, scr.Representation().Scale())
	}
	scr.OnZoomLevelChange(0.2)
	if store.S.ZoomLevel != 1 {
		t.Fatalf("expected clamp to 1, got %v", store.S.ZoomLevel)
	}
}

// TestOnRotationChange_GatedByRenderingMode verifies rotation only applies with buffered rendering.
func TestOnRotationChange_GatedByRenderingMode(t *testing.T) {
	scr, store := newTestScreen(t, manualSettings(), geom.Viewport{W: 1000, H: 800})
	if !scr.OnRotationChange(settings.RotationPortrait) {
		t.Fatalf("expected rotation change")
	}
	if scr.Representation().Rect().Angle != 90 {
		t.Fatalf("expected 90 degree representation")
	}

	scr.OnRenderingModeChange(settings.RenderingNonBuffered)
	if scr.Representation().Rect().Angle != 0 {
		t.Fatalf("non-buffered rendering must drop rotation")
	}
	if scr.OnRotationChange(settings.RotationLandscape) {
		t.Fatalf("rotation must not be selectable without buffering")
	}
	if store.S.Rotation != settings.RotationPortrait {
		t.Fatalf("rotation must be unchanged, got %v", store.S.Rotation)
	}
}

// TestSetViewport_DropsSession verifies re-entry discards a drag in progress.
func TestSetViewport_DropsSession(t *testing.T) {
	scr, store := newTestScreen(t, manualSettings(), geom.Viewport{W: 1000, H: 800})
	scr.Touch(drag.Down, 250, 600)
	if err := scr.SetViewport(geom.Viewport{W: 2000, H: 1600}); err != nil {
		t.Fatalf("SetViewport failed: %v", err)
	}
	if scr.DragState() != drag.StateIdle {
		t.Fatalf("expected idle after re-entry")
	}
	r := scr.Representation().Rect()
	if r.CX != 500 || r.CY != 1200 {
		t.Fatalf("expected geometry re-derived for new viewport, got %+v", r)
	}
	scr.Touch(drag.Up, 250, 600)
	if store.Count("SetOffset") != 0 {
		t.Fatalf("dropped session must not commit")
	}
	if err := scr.SetViewport(geom.Viewport{}); err == nil {
		t.Fatalf("expected error for empty viewport")
	}
}

// TestCreateViews_KeepsActiveSession verifies recomputing geometry leaves the drag running.
func TestCreateViews_KeepsActiveSession(t *testing.T) {
	scr, _ := newTestScreen(t, manualSettings(), geom.Viewport{W: 1000, H: 800})
	scr.Touch(drag.Down, 250, 600)
	scr.DialogFinished()
	if scr.DragState() != drag.StatePicked {
		t.Fatalf("expected session to survive, got %v", scr.DragState())
	}
}

// TestOnFinish_Saves verifies dismissal saves and wraps failures.
func TestOnFinish_Saves(t *testing.T) {
	scr, store := newTestScreen(t, manualSettings(), geom.Viewport{W: 1000, H: 800})
	if err := scr.OnFinish(); err != nil {
		t.Fatalf("OnFinish failed: %v", err)
	}
	if store.Saves != 1 {
		t.Fatalf("expected one save, got %d", store.Saves)
	}
	boom := errors.New("disk full")
	store.Err = boom
	if err := scr.OnFinish(); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

// TestView_LocalizesLabels verifies captions go through the translator.
func TestView_LocalizesLabels(t *testing.T) {
	store := testutil.NewFakeStore(manualSettings())
	cat := i18n.Catalog{
		i18n.Dialog:   {"Move": "Mover", "Resize": "Redimensionar", "Center": "Centrar"},
		i18n.Graphics: {"Manual Scaling": "Escalado manual"},
	}
	scr, err := New(store, cat, geom.Viewport{W: 1000, H: 800})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	v := scr.View()
	if len(v.Labels.Modes) != 2 || v.Labels.Modes[0] != "Mover" || v.Labels.Modes[1] != "Redimensionar" {
		t.Fatalf("unexpected modes: %+v", v.Labels.Modes)
	}
	if v.Labels.Center != "Centrar" || v.Labels.ZoomType != "Escalado manual" || v.Labels.Back != "Back" {
		t.Fatalf("unexpected labels: %+v", v.Labels)
	}
	if v.SubMode != "move" || v.DragState != "idle" || !v.Interactive {
		t.Fatalf("unexpected view: %+v", v)
	}
}

// TestCreateViews_UpdatesRepresentationInPlace verifies rebuilds rotate and hide the same widget.
func TestCreateViews_UpdatesRepresentationInPlace(t *testing.T) {
	scr, _ := newTestScreen(t, manualSettings(), geom.Viewport{W: 1000, H: 800})
	rep := scr.Representation()

	if !scr.OnRotationChange(settings.RotationPortrait) {
		t.Fatalf("expected rotation change")
	}
	if rep != scr.Representation() || rep.Rect().Angle != 90 {
		t.Fatalf("expected rotated representation, got %+v", rep.Rect())
	}
	if b := rep.Bounds(); b.W != geom.IconHeight*16 || b.H != geom.IconWidth*16 {
		t.Fatalf("expected swapped bounds, got %+v", b)
	}

	scr.OnZoomTypeChange(settings.ZoomStretch)
	if rep.Rect().Visible {
		t.Fatalf("expected hidden representation in stretch mode")
	}
}

// TestTouch_RecoversFromOutOfRangeStoredOffset verifies a clamped stored offset can be dragged back.
func TestTouch_RecoversFromOutOfRangeStoredOffset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.yaml")
	data := "offsetX: 3\noffsetY: -2\nzoomLevel: -4\nzoomType: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	store, err := settings.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	scr, err := New(store, nil, geom.Viewport{W: 1000, H: 800})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if r := scr.Representation().Rect(); r.CX != 1000 || r.CY != 0 || r.Scale != 8 {
		t.Fatalf("expected representation on the viewport edge, got %+v", r)
	}

	scr.Touch(drag.Down, 500, 400)
	scr.Touch(drag.Move, 200, 400)
	scr.Touch(drag.Up, 200, 400)
	if got := store.Settings().OffsetX; got != 0.7 {
		t.Fatalf("expected offsetX 0.7 after drag, got %v", got)
	}
}
