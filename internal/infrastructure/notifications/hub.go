package notifications

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	hubChannel   = "notifications:push"
	writeTimeout = 5 * time.Second
)

// pushEnvelope is the message shape carried over the redis channel so every
// instance can deliver to the sockets it holds.
type pushEnvelope struct {
	UserID  uint            `json:"user_id"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans notifications out to live websocket connections, bridged over
// redis pub/sub so an instance can push to a socket held by another one.
type Hub struct {
	mu     sync.RWMutex
	conns  map[uint]map[*websocket.Conn]struct{}
	rdb    *redis.Client
	logger *zap.Logger
}

// NewHub creates a hub. Call Run to start consuming the redis channel.
func NewHub(rdb *redis.Client, logger *zap.Logger) *Hub {
	return &Hub{
		conns:  make(map[uint]map[*websocket.Conn]struct{}),
		rdb:    rdb,
		logger: logger,
	}
}

// Run consumes the redis channel until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	sub := h.rdb.Subscribe(ctx, hubChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env pushEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				h.logger.Warn("dropping malformed hub message", zap.Error(err))
				continue
			}
			h.deliverLocal(env.UserID, env.Payload)
		}
	}
}

// Publish sends a payload to every connection the user holds, on any
// instance subscribed to the hub channel.
func (h *Hub) Publish(ctx context.Context, userID uint, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	data, err := json.Marshal(pushEnvelope{UserID: userID, Payload: raw})
	if err != nil {
		return err
	}
	return h.rdb.Publish(ctx, hubChannel, data).Err()
}

// Add registers a connection for the user.
func (h *Hub) Add(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]struct{})
	}
	h.conns[userID][conn] = struct{}{}
}

// Remove unregisters and closes a connection.
func (h *Hub) Remove(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	if set, ok := h.conns[userID]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.conns, userID)
		}
	}
	h.mu.Unlock()
	conn.Close()
}

// deliverLocal writes to every local socket for the user. Broken or slow
// connections are dropped rather than blocking delivery to the rest.
func (h *Hub) deliverLocal(userID uint, data []byte) {
	h.mu.RLock()
	targets := make([]*websocket.Conn, 0, len(h.conns[userID]))
	for conn := range h.conns[userID] {
		targets = append(targets, conn)
	}
	h.mu.RUnlock()

	for _, conn := range targets {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("dropping dead websocket connection",
				zap.Uint("user_id", userID), zap.Error(err))
			h.Remove(userID, conn)
		}
	}
}
