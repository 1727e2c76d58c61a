package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

// MessageSender persists an inbound chat message and pushes it to the
// counterparty. Implemented by the messaging service.
type MessageSender interface {
	Send(ctx context.Context, conversationID, authorID uuid.UUID, content string) (*domain.Message, error)
}

// Options tunes connection behaviour. Zero values fall back to defaults.
type Options struct {
	SendBuffer       int
	WriteTimeout     time.Duration
	PongTimeout      time.Duration
	PingInterval     time.Duration
	ReadLimit        int64
	MaxMessageLength int
}

func (o Options) withDefaults() Options {
	if o.SendBuffer <= 0 {
		o.SendBuffer = 64
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = 10 * time.Second
	}
	if o.PongTimeout <= 0 {
		o.PongTimeout = 60 * time.Second
	}
	if o.PingInterval <= 0 || o.PingInterval >= o.PongTimeout {
		o.PingInterval = o.PongTimeout * 9 / 10
	}
	if o.ReadLimit <= 0 {
		o.ReadLimit = 64 * 1024
	}
	if o.MaxMessageLength <= 0 {
		o.MaxMessageLength = 2000
	}
	return o
}

// Hub owns the connection registry and fans events out to live connections.
// Push never returns an error: an offline or slow recipient is not the
// caller's problem.
type Hub struct {
	store  ConnStore
	logger *slog.Logger
	opts   Options

	mu      sync.RWMutex
	clients map[string]*Client

	sender MessageSender
}

// NewHub creates a hub over the given connection store.
func NewHub(store ConnStore, logger *slog.Logger, opts Options) *Hub {
	return &Hub{
		store:   store,
		logger:  logger.With("component", "realtime_hub"),
		opts:    opts.withDefaults(),
		clients: make(map[string]*Client),
	}
}

// BindSender wires the messaging service in after construction; the service
// itself pushes through this hub, so the two cannot be built in one step.
func (h *Hub) BindSender(s MessageSender) {
	h.sender = s
}

// Attach registers a client's connection and makes it reachable via Push.
func (h *Hub) Attach(c *Client) {
	h.store.Register(c.userID, c.id)

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()

	h.logger.Debug("connection attached", "user_id", c.userID, "conn_id", c.id)
}

// Detach removes a client's connection. Safe to call more than once.
func (h *Hub) Detach(c *Client) {
	h.store.Deregister(c.id)

	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()

	h.logger.Debug("connection detached", "user_id", c.userID, "conn_id", c.id)
}

// Push delivers an event to every live connection of the user. Slow
// connections drop the event instead of blocking the sender.
func (h *Hub) Push(userID uuid.UUID, ev Event) {
	connIDs := h.store.ConnectionsFor(userID)
	if len(connIDs) == 0 {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, connID := range connIDs {
		c, ok := h.clients[connID]
		if !ok {
			continue
		}
		if !c.enqueue(ev) {
			h.logger.Warn("send buffer full, event dropped",
				"user_id", userID, "conn_id", connID, "event", ev.Type)
		}
	}
}

// Online reports whether the user has at least one live connection.
func (h *Hub) Online(userID uuid.UUID) bool {
	return len(h.store.ConnectionsFor(userID)) > 0
}
