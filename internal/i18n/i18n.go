// Package i18n provides localized string lookup for screen labels.
package i18n

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Categories used by the display layout screen.
const (
	Dialog   = "Dialog"
	Graphics = "Graphics"
	Controls = "Controls"
)

// Translator looks up the localized text for key within category.
type Translator interface {
	T(category, key string) string
}

// Catalog is a Translator backed by category -> key -> text maps.
// Missing entries fall back to the key itself.
type Catalog map[string]map[string]string

// T returns the localized text for key, or key when none is known.
func (c Catalog) T(category, key string) string {
	if entries, ok := c[category]; ok {
		if v, ok := entries[key]; ok && v != "" {
			return v
		}
	}
	return key
}

// LoadCatalog reads a YAML catalog. An empty path or a missing file yields an empty catalog.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return Catalog{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Catalog{}, nil
		}
		return nil, err
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if c == nil {
		c = Catalog{}
	}
	return c, nil
}
