package controllers

import (
	"net/http"
	"sync"

	"mememage-web/utils"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

var Upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Conn struct {
	conn  *websocket.Conn
	mutex sync.Mutex
}

func (c *Conn) write(msg string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, []byte(msg))
}

func (c *Conn) close() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.conn.Close()
}

// Hub fans rendered fragments out to the open sockets of one client.
type Hub struct {
	l *log.Logger

	mutex   sync.Mutex
	clients map[string]map[*Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		l:       utils.NewLogger("hub"),
		clients: make(map[string]map[*Conn]bool),
	}
}

func (h *Hub) Register(clientID string, ws *websocket.Conn) *Conn {
	c := &Conn{conn: ws}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	conns, ok := h.clients[clientID]
	if !ok {
		conns = make(map[*Conn]bool)
		h.clients[clientID] = conns
	}
	conns[c] = true
	return c
}

func (h *Hub) Unregister(clientID string, c *Conn) {
	h.mutex.Lock()
	conns := h.clients[clientID]
	delete(conns, c)
	if len(conns) == 0 {
		delete(h.clients, clientID)
	}
	h.mutex.Unlock()

	c.close()
}

// Serve blocks reading from the socket until it fails, then unregisters it.
// Incoming messages are ignored.
func (h *Hub) Serve(clientID string, ws *websocket.Conn) {
	c := h.Register(clientID, ws)
	defer h.Unregister(clientID, c)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

// Publish writes msg to every socket of clientID. Sockets that fail are
// dropped.
func (h *Hub) Publish(clientID, msg string) {
	h.mutex.Lock()
	conns := make([]*Conn, 0, len(h.clients[clientID]))
	for c := range h.clients[clientID] {
		conns = append(conns, c)
	}
	h.mutex.Unlock()

	for _, c := range conns {
		if err := c.write(msg); err != nil {
			h.l.Debug("dropping socket", "client", shortID(clientID), "err", err)
			h.Unregister(clientID, c)
		}
	}
}

func (h *Hub) Connections(clientID string) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients[clientID])
}

// Close closes every socket.
func (h *Hub) Close() {
	h.mutex.Lock()
	all := h.clients
	h.clients = make(map[string]map[*Conn]bool)
	h.mutex.Unlock()

	for _, conns := range all {
		for c := range conns {
			c.close()
		}
	}
}
