package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/pthm-cable/foodchain/game"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// client is one connected observer. Writes are serialized per connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// command is a message from a browser.
type command struct {
	Type string `json:"type"` // step, play, pause, toggle, speed
	N    int    `json:"n"`
	Fast bool   `json:"fast"`
}

// hub fans the reports of one player out to every connected client.
type hub struct {
	player *game.Player

	mu      sync.Mutex
	clients map[*client]struct{}
	last    game.DayReport
	hasLast bool
}

func newHub(p *game.Player) *hub {
	return &hub{player: p, clients: make(map[*client]struct{})}
}

// broadcast forwards every report to all clients until ctx ends.
func (h *hub) broadcast(ctx context.Context) {
	for {
		var report game.DayReport
		select {
		case <-ctx.Done():
			return
		case report = <-h.player.Reports():
		}

		h.mu.Lock()
		h.last, h.hasLast = report, true
		list := make([]*client, 0, len(h.clients))
		for c := range h.clients {
			list = append(list, c)
		}
		h.mu.Unlock()

		for _, c := range list {
			if err := c.send(report); err != nil {
				slog.Warn("client send failed", "error", err)
				h.drop(c)
			}
		}
	}
}

func (h *hub) drop(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.conn.Close()
}

// apply turns a browser command into a player command.
func (h *hub) apply(cmd command) error {
	switch cmd.Type {
	case "step":
		n := cmd.N
		if n <= 0 {
			n = 1
		}
		h.player.Step(n)
	case "play":
		h.player.Play()
	case "pause":
		h.player.Pause()
	case "toggle":
		h.player.Toggle()
	case "speed":
		h.player.SetSpeed(cmd.Fast)
	default:
		return fmt.Errorf("unknown command %q", cmd.Type)
	}
	return nil
}

// ServeHTTP upgrades the connection, sends the latest report and then reads
// commands until the client goes away.
func (h *hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	c := &client{conn: conn}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	last, hasLast := h.last, h.hasLast
	h.mu.Unlock()
	slog.Info("client connected", "remote", r.RemoteAddr)

	if hasLast {
		if err := c.send(last); err != nil {
			h.drop(c)
			return
		}
	}

	for {
		var cmd command
		if err := conn.ReadJSON(&cmd); err != nil {
			break
		}
		if err := h.apply(cmd); err != nil {
			slog.Debug("ignoring command", "error", err)
			_ = c.send(map[string]string{"error": err.Error()})
		}
	}

	h.drop(c)
	slog.Info("client disconnected", "remote", r.RemoteAddr)
}
