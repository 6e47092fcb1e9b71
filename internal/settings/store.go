package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store is the config-store collaborator: named field access plus an explicit Save.
type Store interface {
	Settings() Settings
	SetOffset(x, y float64)
	SetZoomLevel(level float64)
	SetZoomType(t ZoomType)
	SetRotation(r Rotation)
	SetRenderingMode(m RenderingMode)
	Save() error
}

// FileStore keeps settings in memory and persists them as YAML.
type FileStore struct {
	mu   sync.RWMutex
	path string
	s    Settings
}

// Ensure FileStore implements the interface.
var _ Store = (*FileStore)(nil)

// Load reads settings from disk. Missing files return defaults.
// An empty path gives a store that is never written.
func Load(path string) (*FileStore, error) {
	st := &FileStore{path: path, s: Defaults()}
	if path == "" {
		return st, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return st, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	st.s = Sanitize(s)
	return st, nil
}

// Path returns the file backing the store, or "" for memory stores.
func (f *FileStore) Path() string {
	return f.path
}

// Settings returns a copy of the current settings.
func (f *FileStore) Settings() Settings {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.s
}

// SetOffset stores the fractional display position.
func (f *FileStore) SetOffset(x, y float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.s.OffsetX = x
	f.s.OffsetY = y
}

// SetZoomLevel stores the manual zoom level.
func (f *FileStore) SetZoomLevel(level float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.s.ZoomLevel = level
}

// SetZoomType stores the layout policy.
func (f *FileStore) SetZoomType(t ZoomType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.s.ZoomType = t
}

// SetRotation stores the rotation lock.
func (f *FileStore) SetRotation(r Rotation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.s.Rotation = r
}

// SetRenderingMode stores the rendering mode.
func (f *FileStore) SetRenderingMode(m RenderingMode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.s.RenderingMode = m
}

// Save writes settings to disk, creating parent directories as needed.
func (f *FileStore) Save() error {
	if f.path == "" {
		return nil
	}
	f.mu.RLock()
	data, err := yaml.Marshal(f.s)
	f.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}
