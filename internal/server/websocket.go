package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"juicetycoon/internal/game"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// WSMessage is the frame pushed to websocket clients: a session event
// plus the snapshot taken after it was applied, or a bare snapshot on
// connect.
type WSMessage struct {
	Type     string        `json:"type"`
	Event    *game.Event   `json:"event,omitempty"`
	Snapshot game.Snapshot `json:"snapshot"`
}

// WSClient maintains one WebSocket connection with the presentation
// layer
type WSClient struct {
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// Hub tracks connected websocket clients for broadcast
type Hub struct {
	mu      sync.Mutex
	clients map[*WSClient]bool
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{clients: make(map[*WSClient]bool)}
}

func (h *Hub) register(client *WSClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
}

func (h *Hub) unregister(client *WSClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[client] {
		delete(h.clients, client)
		close(client.send)
	}
}

// Broadcast queues a frame for every connected client. Slow clients
// drop frames instead of stalling the game.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Println("WebSocket buffer full, dropping message")
		}
	}
}

// broadcastEvent is the session sink pushing events to all clients.
func (s *Server) broadcastEvent(event game.Event) {
	msg := WSMessage{
		Type:     "event",
		Event:    &event,
		Snapshot: s.session.Snapshot(),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}
	s.hub.Broadcast(data)
}

// handleWebSocket handles WebSocket connections
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	client := &WSClient{
		conn: conn,
		send: make(chan []byte, 256),
		hub:  s.hub,
	}
	s.hub.register(client)

	// Seed the client with the current state before any events arrive.
	if data, err := json.Marshal(WSMessage{Type: "snapshot", Snapshot: s.session.Snapshot()}); err == nil {
		client.send <- data
	}

	// Start the read and write pumps
	go client.writePump()
	go client.readPump()
}

// readPump drains the connection so close frames and pongs are
// processed; clients never send game input over the socket.
func (c *WSClient) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump pumps frames from the hub to the WebSocket connection
func (c *WSClient) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// The channel was closed
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
