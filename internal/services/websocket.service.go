package services

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"hwpanel/internal/models"
)

// WebSocketMessage is the envelope pushed to connected clients.
type WebSocketMessage struct {
	Type      string           `json:"type"` // "snapshot", "pong", "error"
	Timestamp time.Time        `json:"timestamp"`
	Snapshot  *models.Snapshot `json:"snapshot,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// ClientConnection is one connected WebSocket client.
type ClientConnection struct {
	ID   string
	Conn *websocket.Conn
	Send chan WebSocketMessage
}

// WebSocketHub fans each published snapshot out to every connected client.
type WebSocketHub struct {
	clients    map[string]*ClientConnection
	broadcast  chan WebSocketMessage
	register   chan *ClientConnection
	unregister chan string
	mu         sync.RWMutex
	done       chan struct{}
}

var wsHub *WebSocketHub

// InitWebSocketHub initializes the hub and starts its event loop.
func InitWebSocketHub() *WebSocketHub {
	wsHub = &WebSocketHub{
		clients:    make(map[string]*ClientConnection),
		broadcast:  make(chan WebSocketMessage, 256),
		register:   make(chan *ClientConnection),
		unregister: make(chan string),
		done:       make(chan struct{}),
	}

	go wsHub.run()

	return wsHub
}

func (h *WebSocketHub) run() {
	for {
		select {
		case <-h.done:
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client connected: %s (total: %d)", client.ID, total)

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, exists := h.clients[clientID]; exists {
				delete(h.clients, clientID)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client disconnected: %s (total: %d)", clientID, total)

		case msg := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.Send <- msg:
				default:
					// Client's send channel is full, skip this message
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Publish pushes a freshly collected snapshot to all clients.
func (h *WebSocketHub) Publish(s models.Snapshot) {
	msg := WebSocketMessage{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  &s,
	}
	select {
	case h.broadcast <- msg:
	default:
		// Channel full, drop this update; the next one supersedes it
	}
}

// Register adds a new client to the hub.
func (h *WebSocketHub) Register(client *ClientConnection) {
	h.register <- client
}

// Unregister removes a client from the hub.
func (h *WebSocketHub) Unregister(clientID string) {
	h.unregister <- clientID
}

// GetWebSocketHub returns the hub, nil before InitWebSocketHub.
func GetWebSocketHub() *WebSocketHub {
	return wsHub
}

// StopWebSocketHub stops the hub's event loop.
func StopWebSocketHub() {
	if wsHub != nil {
		close(wsHub.done)
	}
}
