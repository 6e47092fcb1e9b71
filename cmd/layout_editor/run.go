package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/frudas24/displaylayout/internal/app"
	"github.com/frudas24/displaylayout/internal/config"
	"github.com/frudas24/displaylayout/internal/geom"
	"github.com/frudas24/displaylayout/internal/i18n"
	"github.com/frudas24/displaylayout/internal/monitor"
	"github.com/frudas24/displaylayout/internal/screen"
	"github.com/frudas24/displaylayout/internal/settings"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logStartup(cfg)

	store, err := settings.Load(cfg.SettingsPath)
	if err != nil {
		return err
	}
	log.Info().Str("path", store.Path()).Str("zoomType", store.Settings().ZoomType.String()).Msg("settings loaded")
	catalog, err := i18n.LoadCatalog(cfg.StringsPath)
	if err != nil {
		return err
	}

	scr, err := screen.New(store, catalog, resolveViewport(cfg), screen.WithHitTest(cfg.HitTest))
	if err != nil {
		return err
	}

	appInstance, err := app.New(cfg, scr, monitor.ListMonitors)
	if err != nil {
		return err
	}
	if err := appInstance.Start(); err != nil {
		return err
	}
	defer func() {
		if err := appInstance.Stop(); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, "")
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// resolveViewport picks the configured size, then the selected monitor, then the fallback.
func resolveViewport(cfg config.Config) geom.Viewport {
	if cfg.ViewportConfigured() {
		return geom.Viewport{W: cfg.ViewportWidth, H: cfg.ViewportHeight}
	}
	vp, err := monitor.ViewportFor(cfg.MonitorIndex)
	if err == nil && vp.Valid() {
		log.Info().Int("monitor", cfg.MonitorIndex).Int("w", vp.W).Int("h", vp.H).Msg("viewport from monitor")
		return vp
	}
	if err != nil {
		log.Warn().Err(err).Msg("monitor query failed, using fallback viewport")
	}
	return geom.Viewport{W: cfg.FallbackWidth, H: cfg.FallbackHeight}
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Info().Msg("display layout editor starting")
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Info().Str("path", envPath).Msg("env check: ok")
	} else {
		log.Info().Str("path", envPath).Msg("env check: missing")
	}
	log.Info().Bool("hitTest", cfg.HitTest).Msg("input")
	logListenStatus(cfg.ListenAddr)
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Info().Str("addr", addr).Msg("listen")
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Info().Str("url", "http://"+net.JoinHostPort(host, port)).Msg("local url")
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
