package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans practice events out to each user's open connections
type Hub struct {
	conns map[string]map[*Connection]struct{} // userID -> connections (one per tab)
	mu    sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *userMessage
	quit       chan struct{}
	stopOnce   sync.Once

	logger *zap.Logger
}

// Connection represents a WebSocket connection
type Connection struct {
	UserID string
	Send   chan []byte
}

type userMessage struct {
	userID string
	data   []byte
}

// NewHub creates a new WebSocket hub and starts its loop
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *userMessage, 256),
		quit:       make(chan struct{}),
		logger:     logger.Named("ws"),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.UserID] == nil {
				h.conns[conn.UserID] = make(map[*Connection]struct{})
			}
			h.conns[conn.UserID][conn] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug("client connected", zap.String("userId", conn.UserID))

		case conn := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.conns[conn.UserID]; ok {
				if _, ok := set[conn]; ok {
					delete(set, conn)
					close(conn.Send)
					if len(set) == 0 {
						delete(h.conns, conn.UserID)
					}
				}
			}
			h.mu.Unlock()
			h.logger.Debug("client disconnected", zap.String("userId", conn.UserID))

		case msg := <-h.broadcast:
			h.mu.RLock()
			for conn := range h.conns[msg.userID] {
				select {
				case conn.Send <- msg.data:
				default:
					// slow client; drop rather than block the hub
				}
			}
			h.mu.RUnlock()

		case <-h.quit:
			h.mu.Lock()
			for _, set := range h.conns {
				for conn := range set {
					close(conn.Send)
				}
			}
			h.conns = make(map[string]map[*Connection]struct{})
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.quit:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.quit:
	}
}

// SendToUser queues a message for every connection of userID (implements service.Broadcaster)
func (h *Hub) SendToUser(userID string, msgType string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to encode ws payload", zap.String("type", msgType), zap.Error(err))
		return
	}
	data, _ := json.Marshal(&Message{Type: msgType, Payload: body})

	select {
	case h.broadcast <- &userMessage{userID: userID, data: data}:
	case <-h.quit:
	default:
		h.logger.Warn("ws broadcast queue full, dropping message", zap.String("type", msgType))
	}
}

// Connected reports how many connections userID has open
func (h *Hub) Connected(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}

// Stop closes every connection and ends the hub loop
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}
