package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"hwpanel/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler returns the /ws handler. It upgrades a connection and
// streams each new snapshot to the client. The token travels in a query
// parameter because browser WebSocket clients cannot set headers; when
// requireAuth is off the check is skipped, matching the REST surface.
func WebSocketHandler(requireAuth bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		handleWebSocket(c, requireAuth)
	}
}

func handleWebSocket(c *gin.Context, requireAuth bool) {
	hostName := "local"
	if requireAuth {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, err := services.ValidateToken(token)
		if err != nil {
			log.Printf("[WS] Rejected connection from %s: %v", c.ClientIP(), err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		hostName = claims.HostName
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	clientID := fmt.Sprintf("%s-%s-%d", c.ClientIP(), hostName, time.Now().UnixNano())
	client := &services.ClientConnection{
		ID:   clientID,
		Conn: ws,
		Send: make(chan services.WebSocketMessage, 256),
	}

	hub := services.GetWebSocketHub()
	hub.Register(client)

	go readPump(client, hub)
	go writePump(client)
}

// readPump drains client messages; the feed is one-directional, so inbound
// traffic only keeps the connection alive.
func readPump(client *services.ClientConnection, hub *services.WebSocketHub) {
	defer func() {
		hub.Unregister(client.ID)
		client.Conn.Close()
	}()

	client.Conn.SetPongHandler(func(string) error { return nil })

	for {
		var msg services.WebSocketMessage
		if err := client.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] Read error: %v", err)
			}
			return
		}

		if msg.Type == "ping" {
			select {
			case client.Send <- services.WebSocketMessage{Type: "pong", Timestamp: time.Now()}:
			default:
			}
		}
	}
}

// writePump pushes queued messages to the client.
func writePump(client *services.ClientConnection) {
	defer client.Conn.Close()

	for msg := range client.Send {
		if err := client.Conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
