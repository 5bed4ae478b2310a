package websocket

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// subscriber is one live-feed connection watching a single game.
type subscriber struct {
	GameID string
	Conn   *websocket.Conn
	ConnMu sync.Mutex
}

var (
	subscribers   = make(map[string]map[*subscriber]bool)
	subscribersMu sync.RWMutex
)

func register(sub *subscriber) {
	subscribersMu.Lock()
	defer subscribersMu.Unlock()

	if subscribers[sub.GameID] == nil {
		subscribers[sub.GameID] = make(map[*subscriber]bool)
	}
	subscribers[sub.GameID][sub] = true
}

func unregister(sub *subscriber) {
	subscribersMu.Lock()
	defer subscribersMu.Unlock()

	delete(subscribers[sub.GameID], sub)
	if len(subscribers[sub.GameID]) == 0 {
		delete(subscribers, sub.GameID)
	}
}

type OutgoingMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// BroadcastToGame sends msg to every connection watching gameID.
func BroadcastToGame(gameID string, msg OutgoingMessage) {
	subscribersMu.RLock()
	subs := make([]*subscriber, 0, len(subscribers[gameID]))
	for sub := range subscribers[gameID] {
		subs = append(subs, sub)
	}
	subscribersMu.RUnlock()

	for _, sub := range subs {
		sub.ConnMu.Lock()
		if err := sub.Conn.WriteJSON(msg); err != nil {
			log.Println("Error sending msg to subscriber of", gameID, ":", err)
		}
		sub.ConnMu.Unlock()
	}
}
