package ws

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	subscriberBuffer = 10
	writeTimeout     = 5 * time.Second
)

type subscriber struct {
	userID    uuid.UUID
	msgs      chan []byte
	closeSlow func()
}

// Hub is the live-connection registry: user identity -> open connections,
// grouped by channel name. It is a volatile fanout layer; events for users
// without a connection are dropped. Durability is the notification store's
// job.
type Hub struct {
	logger *zap.Logger

	mu       sync.Mutex
	channels map[string]map[*subscriber]struct{}
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:   logger,
		channels: make(map[string]map[*subscriber]struct{}),
	}
}

// Publish delivers msg to every live connection of userID on channel.
// Best effort: a subscriber whose buffer is full is treated as dead and
// closed.
func (h *Hub) Publish(channel string, userID uuid.UUID, msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.channels[channel] {
		if s.userID != userID {
			continue
		}
		select {
		case s.msgs <- msg:
		default:
			go s.closeSlow()
		}
	}
}

func (h *Hub) addSubscriber(channel string, s *subscriber) {
	h.mu.Lock()
	if h.channels[channel] == nil {
		h.channels[channel] = make(map[*subscriber]struct{})
	}
	h.channels[channel][s] = struct{}{}
	h.mu.Unlock()
}

// deleteSubscriber is idempotent; every disconnect path funnels here once.
func (h *Hub) deleteSubscriber(channel string, s *subscriber) {
	h.mu.Lock()
	delete(h.channels[channel], s)
	h.mu.Unlock()
}

// ConnectionCount reports live connections for one user on a channel.
func (h *Hub) ConnectionCount(channel string, userID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for s := range h.channels[channel] {
		if s.userID == userID {
			n++
		}
	}
	return n
}

// Subscribe upgrades the request and pumps events to the peer until it
// disconnects, a send fails, or the server shuts down. The subscriber is
// registered before the upgrade so a racing Publish cannot slip between
// accept and registration.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, userID uuid.UUID, channel string) error {
	var (
		mu     sync.Mutex
		conn   *websocket.Conn
		closed bool
	)
	s := &subscriber{
		userID: userID,
		msgs:   make(chan []byte, subscriberBuffer),
		closeSlow: func() {
			mu.Lock()
			defer mu.Unlock()
			closed = true
			if conn != nil {
				conn.Close(websocket.StatusPolicyViolation, "connection too slow to keep up with events")
			}
		},
	}
	h.addSubscriber(channel, s)
	defer h.deleteSubscriber(channel, s)

	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		return err
	}
	mu.Lock()
	if closed {
		mu.Unlock()
		return net.ErrClosed
	}
	conn = c
	mu.Unlock()
	defer c.CloseNow()

	ctx := c.CloseRead(r.Context())
	h.logger.Info("ws subscriber connected",
		zap.String("channel", channel),
		zap.String("user_id", userID.String()),
	)

	for {
		select {
		case msg := <-s.msgs:
			if err := writeWithTimeout(ctx, c, msg); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func writeWithTimeout(ctx context.Context, c *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	return c.Write(ctx, websocket.MessageText, msg)
}
