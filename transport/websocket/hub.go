package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 << 10
	sendBuffer     = 32
)

// client is one websocket connection. Only writePump writes to conn.
type client struct {
	id     string
	conn   *websocket.Conn
	logger *slog.Logger

	send chan []byte
	done chan struct{}
	once sync.Once
}

func newClient(id string, conn *websocket.Conn, logger *slog.Logger) *client {
	return &client{
		id:     id,
		conn:   conn,
		logger: logger,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
}

// enqueue hands data to the write pump without blocking. It reports false when the
// client is closed or too far behind.
func (that *client) enqueue(data []byte) bool {
	select {
	case <-that.done:
		return false
	default:
	}

	select {
	case that.send <- data:
		return true
	default:
		return false
	}
}

func (that *client) close() {
	that.once.Do(func() {
		close(that.done)
	})
}

func (that *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case <-that.done:
			_ = that.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return

		case data := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				that.logger.Debug("failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// hub tracks connected clients and the sessions each of them follows.
type hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	sessions map[int64]map[*client]struct{}
}

func newHub() *hub {
	return &hub{
		clients:  make(map[*client]struct{}),
		sessions: make(map[int64]map[*client]struct{}),
	}
}

func (that *hub) register(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[c] = struct{}{}
}

func (that *hub) unregister(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.clients, c)
	for id, followers := range that.sessions {
		delete(followers, c)
		if len(followers) == 0 {
			delete(that.sessions, id)
		}
	}

	c.close()
}

func (that *hub) subscribe(id int64, c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[c]; !ok {
		return
	}

	if that.sessions[id] == nil {
		that.sessions[id] = make(map[*client]struct{})
	}
	that.sessions[id][c] = struct{}{}
}

func (that *hub) drop(id int64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.sessions, id)
}

func (that *hub) followers(id int64) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.sessions[id])
}

// broadcast sends data to every follower of a session except the sender.
// Followers that cannot keep up are disconnected.
func (that *hub) broadcast(id int64, sender *client, data []byte) {
	var slow []*client

	that.mu.RLock()
	for c := range that.sessions[id] {
		if c == sender {
			continue
		}

		if !c.enqueue(data) {
			slow = append(slow, c)
		}
	}
	that.mu.RUnlock()

	for _, c := range slow {
		c.logger.Warn("client is too slow, disconnecting")
		that.unregister(c)
	}
}

func (that *hub) closeAll() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for c := range that.clients {
		c.close()
	}
}
