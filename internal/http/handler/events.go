package handler

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"docgrid/internal/http/middleware"
	"docgrid/internal/notify"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

// UpgradeGate rejects plain HTTP requests on WebSocket-only routes.
func UpgradeGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// CatalogEvents streams the caller's catalog announcements over a WebSocket.
// Each message is one event, JSON-encoded; the client renders them as toasts.
func CatalogEvents(hub *notify.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		defer conn.Close()

		sid, _ := conn.Locals(middleware.SessionLocalKey).(string)
		if sid == "" {
			return
		}

		sub := hub.Subscribe(sid)
		defer sub.Close()

		// Reads are only used to notice the peer going away.
		gone := make(chan struct{})
		go func() {
			defer close(gone)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ping := time.NewTicker(wsPingInterval)
		defer ping.Stop()

		for {
			select {
			case ev, ok := <-sub.C():
				if !ok {
					return
				}
				conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				if err := conn.WriteJSON(ev); err != nil {
					return
				}
			case <-ping.C:
				conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-gone:
				return
			}
		}
	})
}
