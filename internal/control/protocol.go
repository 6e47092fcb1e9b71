// Package control carries the pointer stream and screen commands over a websocket.
package control

import "github.com/frudas24/displaylayout/internal/screen"

// Message is a control websocket payload sent by the client.
type Message struct {
	T     string   `json:"t"`
	X     int      `json:"x,omitempty"`
	Y     int      `json:"y,omitempty"`
	W     int      `json:"w,omitempty"`
	H     int      `json:"h,omitempty"`
	Mode  string   `json:"mode,omitempty"`
	Idx   *int     `json:"idx,omitempty"`
	Value *float64 `json:"value,omitempty"`
}

// Reply is sent back after every handled message.
type Reply struct {
	T     string       `json:"t"`
	View  *screen.View `json:"view,omitempty"`
	Error string       `json:"error,omitempty"`
}

// Message types understood by the server.
const (
	MsgDown           = "down"
	MsgMove           = "move"
	MsgUp             = "up"
	MsgViewport       = "viewport"
	MsgSubMode        = "subMode"
	MsgZoomType       = "zoomType"
	MsgRotation       = "rotation"
	MsgRendering      = "rendering"
	MsgZoomLevel      = "zoomLevel"
	MsgCenter         = "center"
	MsgDialogFinished = "dialogFinished"
	MsgFinish         = "finish"

	ReplyLayout = "layout"
	ReplyError  = "error"
)
