package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/crewdeck-dev/crewdeck/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// wsClient serializes writes to one connection. gorilla/websocket permits a
// single concurrent writer, and broadcasts, pings and the welcome frame all
// arrive from different goroutines.
type wsClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsClient) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.conn.WriteJSON(v)
}

func (c *wsClient) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// Hub tracks connected dashboard sockets. Mutating handlers call
// BroadcastRefresh so open dashboards re-fetch their stats.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*wsClient
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*wsClient)}
}

func (h *Hub) register(conn *websocket.Conn) *wsClient {
	client := &wsClient{conn: conn}

	h.mu.Lock()
	h.clients[conn] = client
	h.mu.Unlock()

	return client
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// BroadcastRefresh tells every connected dashboard that data changed. The
// frame carries no payload; clients re-fetch over the REST API.
func (h *Hub) BroadcastRefresh() {
	h.mu.RLock()
	clients := make([]*wsClient, 0, len(h.clients))
	for _, client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		err := client.writeJSON(map[string]string{
			"type":    "refresh",
			"message": "Dashboard data updated",
		})

		if err != nil {
			log.Printf("Failed to broadcast refresh to client: %v", err)
			h.unregister(client.conn)
			client.conn.Close()
		}
	}
}

// Socket upgrades the request and keeps the connection alive with ping/pong
// deadlines until the client goes away.
func (h *DashboardHandler) Socket(c *gin.Context) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("Failed to set initial read deadline: %v", err)
		conn.Close()
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	client := h.hub.register(conn)

	defer func() {
		h.hub.unregister(conn)
		conn.Close()
		log.Println("Dashboard WebSocket connection closed")
	}()

	err = client.writeJSON(map[string]string{
		"type":    "connected",
		"message": "WebSocket connection established",
	})

	if err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := client.ping(); err != nil {
					return
				}
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			break
		}

		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}
