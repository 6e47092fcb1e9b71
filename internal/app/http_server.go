package app

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/frudas24/displaylayout/internal/web"
)

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	if staticDir == "" {
		staticDir = filepath.Join("internal", "web", "static")
	}

	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/settings", a.handleSettings)
	mux.HandleFunc("/api/monitors", a.handleMonitors)
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)

	mux.Handle("/", a.staticFileServer(staticDir))
}

// handleState returns the current screen view.
func (a *App) handleState(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	writeJSON(w, a.control.View())
}

// handleSettings returns the persisted display settings.
func (a *App) handleSettings(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	writeJSON(w, a.control.Settings())
}

// handleMonitors returns the list of monitors.
func (a *App) handleMonitors(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	writeJSON(w, a.ListMonitors())
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// staticFileServer returns a handler for static assets, preferring disk then embed.
func (a *App) staticFileServer(staticDir string) http.Handler {
	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		return http.FileServer(http.Dir(staticDir))
	}

	embedded, err := web.StaticFS()
	if err != nil {
		a.log.Warn().Err(err).Msg("static assets unavailable")
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
