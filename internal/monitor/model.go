// Package monitor enumerates displays so the editor can size its viewport.
package monitor

import (
	"fmt"

	"github.com/frudas24/displaylayout/internal/geom"
)

// Monitor describes a display and its bounds.
type Monitor struct {
	Index int `json:"index"`
	X     int `json:"x"`
	Y     int `json:"y"`
	W     int `json:"w"`
	H     int `json:"h"`
	// WorkW and WorkH exclude taskbars and docked toolbars; zero when unknown.
	WorkW   int  `json:"workW"`
	WorkH   int  `json:"workH"`
	Primary bool `json:"primary"`
}

// Viewport returns the usable monitor area as a layout viewport.
func (m Monitor) Viewport() geom.Viewport {
	if m.WorkW > 0 && m.WorkH > 0 {
		return geom.Viewport{W: m.WorkW, H: m.WorkH}
	}
	return geom.Viewport{W: m.W, H: m.H}
}

// GetMonitorByIndex returns the monitor matching the 1-based index.
func GetMonitorByIndex(list []Monitor, idx int) (Monitor, bool) {
	for _, m := range list {
		if m.Index == idx {
			return m, true
		}
	}
	return Monitor{}, false
}

// Primary returns the primary monitor, or the first one when none is flagged.
func Primary(list []Monitor) (Monitor, bool) {
	for _, m := range list {
		if m.Primary {
			return m, true
		}
	}
	if len(list) > 0 {
		return list[0], true
	}
	return Monitor{}, false
}

// Select returns the monitor with the 1-based index, or the primary one when index is 0.
func Select(list []Monitor, index int) (Monitor, bool) {
	if index > 0 {
		return GetMonitorByIndex(list, index)
	}
	return Primary(list)
}

// ViewportFor lists monitors and returns the usable size of the selected one.
func ViewportFor(index int) (geom.Viewport, error) {
	list, err := ListMonitors()
	if err != nil {
		return geom.Viewport{}, err
	}
	m, ok := Select(list, index)
	if !ok {
		return geom.Viewport{}, fmt.Errorf("monitor %d not found", index)
	}
	return m.Viewport(), nil
}
