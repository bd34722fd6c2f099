package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/helix90/list-handler/internal/auth"
	"github.com/helix90/list-handler/internal/notify"
)

const pingInterval = 30 * time.Second

// WSController streams list-change events to the authenticated owner over
// a websocket connection.
type WSController struct {
	hub      *notify.Hub
	upgrader websocket.Upgrader
}

// NewWSController creates a new WSController.
func NewWSController(hub *notify.Hub) *WSController {
	return &WSController{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Subscribe upgrades the connection and forwards the principal's events
// until the client disconnects. Authentication and the path-user check
// have already run in middleware; the token arrives as a query parameter
// since browsers cannot set headers on websocket requests.
func (wc *WSController) Subscribe(c *gin.Context) {
	principal := auth.Principal(c)

	conn, err := wc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	events, cancel := wc.hub.Subscribe(principal.ID)
	defer cancel()

	done := make(chan struct{})
	go func() {
		// Drain client frames; an error means the connection closed.
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
