package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// DashboardEvent is pushed to every connected dashboard whenever something
// an operator cares about happens (a payment lands, an expense is recorded).
type DashboardEvent struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan DashboardEvent)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Dashboard connected: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Dashboard disconnected: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			var dead []uuid.UUID
			for userID, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error pushing event to dashboard %s: %v", userID, err)
					conn.Close()
					dead = append(dead, userID)
				}
			}
			clientsMu.RUnlock()

			if len(dead) > 0 {
				clientsMu.Lock()
				for _, userID := range dead {
					delete(clients, userID)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// Notify publishes an event without blocking the caller when the hub is
// saturated or not yet running.
func Notify(eventType string, payload interface{}) {
	event := DashboardEvent{Type: eventType, OccurredAt: time.Now(), Payload: payload}
	select {
	case Broadcast <- event:
	default:
		log.Printf("⚠️ Dropped dashboard event %q, hub not draining", eventType)
	}
}
