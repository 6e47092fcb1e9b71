//go:build windows

// Package monitor enumerates displays so the editor can size its viewport.
package monitor

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// ListMonitors returns the attached displays with their full and work-area sizes.
func ListMonitors() ([]Monitor, error) {
	var list []Monitor
	callback := syscall.NewCallback(func(h win.HMONITOR, _ win.HDC, _ *win.RECT, _ uintptr) uintptr {
		if m, ok := describe(h, len(list)+1); ok {
			list = append(list, m)
		}
		return 1
	})

	if !win.EnumDisplayMonitors(0, nil, callback, 0) {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", syscall.GetLastError())
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	return list, nil
}

// describe converts a monitor handle into a Monitor.
func describe(h win.HMONITOR, index int) (Monitor, bool) {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(h, &info) {
		return Monitor{}, false
	}
	full := info.RcMonitor
	work := info.RcWork
	return Monitor{
		Index:   index,
		X:       int(full.Left),
		Y:       int(full.Top),
		W:       int(full.Right - full.Left),
		H:       int(full.Bottom - full.Top),
		WorkW:   int(work.Right - work.Left),
		WorkH:   int(work.Bottom - work.Top),
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	}, true
}
