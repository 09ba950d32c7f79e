package ws

import (
	"context"
	"log"
	"sync"
)

type envelope struct {
	sessionID string
	message   []byte
}

// Hub fans messages out to the sockets of one session. Every open tab of a
// browser shares the session cookie and so the same key.
type Hub struct {
	sessions   map[string]map[*Client]bool
	publish    chan envelope
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		publish:    make(chan envelope, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves the hub until ctx is done, then closes every client. Once Run
// has returned, Register and Unregister are no-ops.
func (h *Hub) Run(ctx context.Context) {
	defer h.stopOnce.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for sid, clients := range h.sessions {
				for c := range clients {
					close(c.send)
				}
				delete(h.sessions, sid)
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			clients, ok := h.sessions[client.sessionID]
			if !ok {
				clients = make(map[*Client]bool)
				h.sessions[client.sessionID] = clients
			}
			clients[client] = true
			total := len(clients)
			h.mutex.Unlock()
			h.logf("WS connected | session=%s session_clients=%d", client.sessionID, total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.remove(client)

		case env := <-h.publish:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.sessions[env.sessionID]))
			for c := range h.sessions[env.sessionID] {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- env.message:
				default:
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	clients := h.sessions[client.sessionID]
	if _, ok := clients[client]; ok {
		delete(clients, client)
		close(client.send)
		if len(clients) == 0 {
			delete(h.sessions, client.sessionID)
		}
	}
	total := len(clients)
	h.mutex.Unlock()
	h.logf("WS disconnected | session=%s session_clients=%d", client.sessionID, total)
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	select {
	case <-h.done:
	case h.register <- client:
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case <-h.done:
	case h.unregister <- client:
	}
}

// Publish queues message for every socket of sessionID. It never blocks; a
// full queue drops the message.
func (h *Hub) Publish(sessionID string, message []byte) {
	if h == nil || sessionID == "" {
		return
	}
	select {
	case <-h.done:
	case h.publish <- envelope{sessionID: sessionID, message: message}:
	default:
		h.logf("WS publish dropped | session=%s reason=buffer_full", sessionID)
	}
}

func (h *Hub) ClientCount(sessionID string) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.sessions[sessionID])
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
