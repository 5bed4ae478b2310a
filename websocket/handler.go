package websocket

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// LiveFeedHandler upgrades the connection and streams completion events
// for the requested game until the client goes away. The feed is public
// and read-only; no authentication is needed.
func LiveFeedHandler(c echo.Context) error {
	gameID := c.QueryParam("game")
	if gameID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "game is required")
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Println("WebSocket upgrade failed:", err)
		return err
	}

	sub := &subscriber{GameID: gameID, Conn: ws}
	register(sub)
	go listenSubscriber(sub)

	return nil
}

// listenSubscriber drains inbound frames so pings and close messages are
// handled; the feed itself is one-way.
func listenSubscriber(sub *subscriber) {
	defer func() {
		unregister(sub)
		sub.Conn.Close()
	}()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
