package screen

import (
	"github.com/frudas24/displaylayout/internal/i18n"
	"github.com/frudas24/displaylayout/internal/settings"
)

// RectView is a rectangle as sent to clients.
type RectView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// RepresentationView describes the draggable representation.
type RepresentationView struct {
	CX      float64  `json:"cx"`
	CY      float64  `json:"cy"`
	Scale   float64  `json:"scale"`
	Angle   float64  `json:"angle"`
	Visible bool     `json:"visible"`
	Bounds  RectView `json:"bounds"`
}

// GuidesView holds the drag boundary lines.
type GuidesView struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Labels are the localized captions of the screen controls.
type Labels struct {
	Back     string   `json:"back"`
	Options  string   `json:"options"`
	Rotation string   `json:"rotation"`
	Center   string   `json:"center,omitempty"`
	Zoom     string   `json:"zoom,omitempty"`
	ZoomUnit string   `json:"zoomUnit,omitempty"`
	Modes    []string `json:"modes"`
	ZoomType string   `json:"zoomType"`
	Rotate   string   `json:"rotate"`
}

// View is a read-only snapshot of the screen.
type View struct {
	Width              int                `json:"width"`
	Height             int                `json:"height"`
	Settings           settings.Settings  `json:"settings"`
	Rotated            bool               `json:"rotated"`
	RotationSelectable bool               `json:"rotationSelectable"`
	Interactive        bool               `json:"interactive"`
	SubMode            string             `json:"subMode"`
	DragState          string             `json:"dragState"`
	Representation     RepresentationView `json:"representation"`
	Frame              *RectView          `json:"frame,omitempty"`
	Guides             GuidesView         `json:"guides"`
	Labels             Labels             `json:"labels"`
}

// View returns a snapshot of the current screen state.
func (s *Screen) View() View {
	l := s.layout
	r := s.rep.Rect()
	b := s.rep.Bounds()
	st := s.store.Settings()

	v := View{
		Width:              s.vp.W,
		Height:             s.vp.H,
		Settings:           st,
		Rotated:            l.Rotated,
		RotationSelectable: l.RotationSelectable,
		Interactive:        l.Interactive,
		SubMode:            s.subMode.String(),
		DragState:          s.ctrl.State().String(),
		Representation: RepresentationView{
			CX:      r.CX,
			CY:      r.CY,
			Scale:   s.rep.Scale(),
			Angle:   r.Angle,
			Visible: r.Visible,
			Bounds:  RectView{X: b.X, Y: b.Y, W: b.W, H: b.H},
		},
		Guides: GuidesView{
			Left:   l.Guides.Left,
			Right:  l.Guides.Right,
			Top:    l.Guides.Top,
			Bottom: l.Guides.Bottom,
		},
		Labels: s.labels(st),
	}
	if l.HasFrame {
		v.Frame = &RectView{X: l.Frame.X, Y: l.Frame.Y, W: l.Frame.W, H: l.Frame.H}
	}
	return v
}

// labels localizes every caption shown for the current layout.
func (s *Screen) labels(st settings.Settings) Labels {
	out := Labels{
		Back:     s.tr.T(i18n.Dialog, "Back"),
		Options:  s.tr.T(i18n.Dialog, "Options"),
		Rotation: s.tr.T(i18n.Graphics, "Rotation"),
		ZoomType: s.tr.T(i18n.Graphics, st.ZoomType.String()),
		Rotate:   s.tr.T(i18n.Controls, st.Rotation.String()),
	}
	if s.layout.Interactive {
		out.Center = s.tr.T(i18n.Dialog, "Center")
		out.Zoom = s.tr.T(i18n.Dialog, "Zoom")
		out.ZoomUnit = s.tr.T(i18n.Dialog, "* native res")
	}
	for _, c := range s.layout.Choices {
		out.Modes = append(out.Modes, s.tr.T(c.Category, c.Key))
	}
	return out
}
