// Package app wires the settings store, the editor screen and the HTTP surface together.
package app

import (
	"errors"
	"sync"

	"github.com/frudas24/displaylayout/internal/config"
	"github.com/frudas24/displaylayout/internal/control"
	"github.com/frudas24/displaylayout/internal/monitor"
	"github.com/frudas24/displaylayout/internal/screen"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MonitorLister enumerates the attached displays.
type MonitorLister func() ([]monitor.Monitor, error)

// App coordinates the HTTP API and the control websocket.
type App struct {
	mu       sync.Mutex
	cfg      config.Config
	control  *control.Server
	listMons MonitorLister
	monitors []monitor.Monitor
	log      zerolog.Logger
}

// New creates a new application around scr.
func New(cfg config.Config, scr *screen.Screen, list MonitorLister) (*App, error) {
	if scr == nil {
		return nil, errors.New("screen is required")
	}
	if list == nil {
		list = monitor.ListMonitors
	}
	return &App{
		cfg:      cfg,
		control:  control.NewServer(scr),
		listMons: list,
		log:      log.With().Str("module", "app").Logger(),
	}, nil
}

// Start caches the monitor list. A failed enumeration is logged, not fatal.
func (a *App) Start() error {
	monitors, err := a.listMons()
	if err != nil {
		a.log.Warn().Err(err).Msg("monitor enumeration failed")
		return nil
	}
	a.mu.Lock()
	a.monitors = monitors
	a.mu.Unlock()
	a.log.Info().Int("count", len(monitors)).Str("listen", a.cfg.ListenAddr).Msg("monitors loaded")
	return nil
}

// Stop persists the editor settings.
func (a *App) Stop() error {
	return a.control.Finish()
}

// ListMonitors returns the cached monitor list.
func (a *App) ListMonitors() []monitor.Monitor {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]monitor.Monitor, len(a.monitors))
	copy(out, a.monitors)
	return out
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}
