// Package feed pushes live report events to connected gallery viewers.
// file: feed/connection.go
package feed

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"street-scan/logger"
)

// WSConn is an interface for the WebSocket connection.
type WSConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	ReadMessage() (int, []byte, error)
	Close() error
	RemoteAddr() net.Addr
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetPongHandler(h func(string) error)
}

// Connection represents a single WebSocket connection for one client.
type Connection struct {
	conn WSConn
	send chan []byte
}

var (
	connectionsMu sync.Mutex
	connections   = make(map[*Connection]bool)
)

// Configuration constants.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 2048
)

// Upgrader upgrades HTTP requests to WebSocket connections.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all connections for now. Adjust for production if needed.
		return true
	},
}

// ServeWs upgrades the HTTP request to a WebSocket connection and starts the
// read and write pumps.
func ServeWs(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error.Printf("[ServeWs] upgrade failed: %v", err)
		return
	}

	c := &Connection{conn: ws, send: make(chan []byte, 64)}
	register(c)

	go c.writePump()
	go c.readPump()
}

func register(c *Connection) {
	connectionsMu.Lock()
	connections[c] = true
	count := len(connections)
	connectionsMu.Unlock()

	logger.Info.Printf("[register] feed client connected (%d active)", count)
	PublishFeedConnections(count)
}

func unregister(c *Connection) {
	connectionsMu.Lock()
	if _, ok := connections[c]; ok {
		delete(connections, c)
		close(c.send)
	}
	count := len(connections)
	connectionsMu.Unlock()

	logger.Info.Printf("[unregister] feed client disconnected (%d active)", count)
	PublishFeedConnections(count)
}

// readPump discards inbound frames; the feed is one-way. It exists to notice
// closed connections and answer pings.
func (c *Connection) readPump() {
	defer func() {
		unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			logger.Debug.Printf("[readPump] closing %v: %v", c.conn.RemoteAddr(), err)
			return
		}
	}
}

// writePump forwards queued events to the client and keeps the connection
// alive with pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Warn.Printf("[writePump] write failed for %v: %v", c.conn.RemoteAddr(), err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
