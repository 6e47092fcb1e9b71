//go:build !windows

// Package monitor enumerates displays so the editor can size its viewport.
package monitor

import "fmt"

// ListMonitors returns an error on non-Windows platforms; callers fall back to configured sizes.
func ListMonitors() ([]Monitor, error) {
	return nil, fmt.Errorf("monitor enumeration is only supported on Windows")
}
