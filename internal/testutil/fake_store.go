package testutil

import "github.com/frudas24/displaylayout/internal/settings"

// Call records a single settings write.
type Call struct {
	Name string
	X    float64
	Y    float64
	Int  int
}

// FakeStore implements settings.Store in memory and records writes for tests.
type FakeStore struct {
	S     settings.Settings
	Calls []Call
	Saves int
	Err   error
}

// Ensure FakeStore implements the interface.
var _ settings.Store = (*FakeStore)(nil)

// NewFakeStore returns a FakeStore seeded with s.
func NewFakeStore(s settings.Settings) *FakeStore {
	return &FakeStore{S: s}
}

// Settings returns the current settings.
func (f *FakeStore) Settings() settings.Settings {
	return f.S
}

// SetOffset records an offset write.
func (f *FakeStore) SetOffset(x, y float64) {
	f.S.OffsetX = x
	f.S.OffsetY = y
	f.Calls = append(f.Calls, Call{Name: "SetOffset", X: x, Y: y})
}

// SetZoomLevel records a zoom level write.
func (f *FakeStore) SetZoomLevel(level float64) {
	f.S.ZoomLevel = level
	f.Calls = append(f.Calls, Call{Name: "SetZoomLevel", X: level})
}

// SetZoomType records a zoom type write.
func (f *FakeStore) SetZoomType(t settings.ZoomType) {
	f.S.ZoomType = t
	f.Calls = append(f.Calls, Call{Name: "SetZoomType", Int: int(t)})
}

// SetRotation records a rotation write.
func (f *FakeStore) SetRotation(r settings.Rotation) {
	f.S.Rotation = r
	f.Calls = append(f.Calls, Call{Name: "SetRotation", Int: int(r)})
}

// SetRenderingMode records a rendering mode write.
func (f *FakeStore) SetRenderingMode(m settings.RenderingMode) {
	f.S.RenderingMode = m
	f.Calls = append(f.Calls, Call{Name: "SetRenderingMode", Int: int(m)})
}

// Save counts saves and returns Err.
func (f *FakeStore) Save() error {
	f.Saves++
	return f.Err
}

// Reset clears recorded calls.
func (f *FakeStore) Reset() {
	f.Calls = nil
}

// Count returns how many calls named name were recorded.
func (f *FakeStore) Count(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}
