package control

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/frudas24/displaylayout/internal/drag"
	"github.com/frudas24/displaylayout/internal/geom"
	"github.com/frudas24/displaylayout/internal/screen"
	"github.com/frudas24/displaylayout/internal/settings"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// errIgnored marks a message that was understood but had no effect.
var errIgnored = errors.New("ignored")

// Server handles the websocket control stream for one screen.
// All screen access goes through mu so HTTP readers see consistent snapshots.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	screen   *screen.Screen
	conn     *websocket.Conn
	log      zerolog.Logger
}

// NewServer creates a control websocket server for scr.
func NewServer(scr *screen.Screen) *Server {
	return &Server{
		screen: scr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log: log.With().Str("module", "control").Logger(),
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug().Err(err).Msg("upgrade failed")
		return
	}
	if err := s.acceptConn(conn); err != nil {
		s.log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("connection rejected")
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)
	s.log.Info().Str("remote", r.RemoteAddr).Msg("control connected")

	if err := conn.WriteJSON(s.layoutReply()); err != nil {
		return
	}
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if err := conn.WriteJSON(s.Dispatch(msg)); err != nil {
			return
		}
	}
}

// Dispatch applies one message to the screen and returns the reply to send.
func (s *Server) Dispatch(msg Message) Reply {
	s.mu.Lock()
	err := s.handleMessage(msg)
	s.mu.Unlock()

	if err != nil && !errors.Is(err, errIgnored) {
		s.log.Warn().Err(err).Str("t", msg.T).Msg("message failed")
		return Reply{T: ReplyError, Error: err.Error()}
	}
	return s.layoutReply()
}

// View returns a snapshot of the screen.
func (s *Server) View() screen.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.View()
}

// Settings returns the persisted settings.
func (s *Server) Settings() settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Settings()
}

// Finish saves the settings, as when the screen is dismissed.
func (s *Server) Finish() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.OnFinish()
}

// layoutReply builds a layout reply from the current screen state.
func (s *Server) layoutReply() Reply {
	v := s.View()
	return Reply{T: ReplyLayout, View: &v}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection and drops any drag it left open.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
		s.screen.CancelDrag()
	}
	s.mu.Unlock()
	_ = conn.Close()
	s.log.Info().Msg("control disconnected")
}

// handleMessage dispatches a single control message. Callers hold mu.
func (s *Server) handleMessage(msg Message) error {
	switch msg.T {
	case MsgDown:
		return applied(s.screen.Touch(drag.Down, msg.X, msg.Y))
	case MsgMove:
		return applied(s.screen.Touch(drag.Move, msg.X, msg.Y))
	case MsgUp:
		return applied(s.screen.Touch(drag.Up, msg.X, msg.Y))
	case MsgViewport:
		return s.screen.SetViewport(geom.Viewport{W: msg.W, H: msg.H})
	case MsgSubMode:
		m, ok := drag.ParseSubMode(msg.Mode)
		if !ok {
			return fmt.Errorf("unknown sub-mode %q", msg.Mode)
		}
		return applied(s.screen.SetSubMode(m))
	case MsgZoomType:
		if msg.Idx == nil {
			return fmt.Errorf("zoomType requires idx")
		}
		t := settings.ZoomType(*msg.Idx)
		if !t.Valid() {
			return fmt.Errorf("unknown zoom type %d", *msg.Idx)
		}
		return applied(s.screen.OnZoomTypeChange(t))
	case MsgRotation:
		if msg.Idx == nil {
			return fmt.Errorf("rotation requires idx")
		}
		r := settings.Rotation(*msg.Idx)
		if !r.Valid() {
			return fmt.Errorf("unknown rotation %d", *msg.Idx)
		}
		return applied(s.screen.OnRotationChange(r))
	case MsgRendering:
		if msg.Idx == nil {
			return fmt.Errorf("rendering requires idx")
		}
		if !s.screen.OnRenderingModeChange(settings.RenderingMode(*msg.Idx)) {
			return fmt.Errorf("unknown rendering mode %d", *msg.Idx)
		}
		return nil
	case MsgZoomLevel:
		if msg.Value == nil {
			return fmt.Errorf("zoomLevel requires value")
		}
		return applied(s.screen.OnZoomLevelChange(*msg.Value))
	case MsgCenter:
		s.screen.OnCenter()
		return nil
	case MsgDialogFinished:
		s.screen.DialogFinished()
		return nil
	case MsgFinish:
		return s.screen.OnFinish()
	default:
		return errIgnored
	}
}

// applied maps a handler's changed flag to an error value.
func applied(changed bool) error {
	if !changed {
		return errIgnored
	}
	return nil
}
