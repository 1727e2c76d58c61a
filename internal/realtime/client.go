package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

// Client is one websocket connection of one authenticated user.
type Client struct {
	id     string
	userID uuid.UUID
	hub    *Hub
	conn   *websocket.Conn
	send   chan Event
	logger *slog.Logger
}

// NewClient wraps an upgraded connection. The caller is expected to
// hub.Attach the client and then run both pumps.
func NewClient(hub *Hub, conn *websocket.Conn, userID uuid.UUID) *Client {
	id := uuid.NewString()
	return &Client{
		id:     id,
		userID: userID,
		hub:    hub,
		conn:   conn,
		send:   make(chan Event, hub.opts.SendBuffer),
		logger: hub.logger.With("user_id", userID, "conn_id", id),
	}
}

// UserID returns the authenticated owner of this connection.
func (c *Client) UserID() uuid.UUID {
	return c.userID
}

// enqueue offers an event to the write pump without blocking.
func (c *Client) enqueue(ev Event) bool {
	select {
	case c.send <- ev:
		return true
	default:
		return false
	}
}

// ReadPump consumes inbound frames until the connection dies. It must run on
// the handler goroutine; it detaches the client on exit.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Detach(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.hub.opts.ReadLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.hub.opts.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.hub.opts.PongTimeout))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket read failed", "error", err)
			}
			return
		}

		c.handleFrame(raw)
	}
}

// handleFrame decodes one tagged inbound event. A bad frame earns an error
// event on this connection only; the hub and other connections are unaffected.
func (c *Client) handleFrame(raw []byte) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.enqueue(ErrorEvent("malformed event"))
		return
	}

	switch env.Type {
	case EventRegister:
		c.handleRegister(env.Data)
	case EventSendMessage:
		c.handleSendMessage(env.Data)
	default:
		c.enqueue(ErrorEvent("unknown event type: " + env.Type))
	}
}

func (c *Client) handleRegister(data json.RawMessage) {
	var p RegisterPayload
	if err := json.Unmarshal(data, &p); err != nil {
		c.enqueue(ErrorEvent("malformed register payload"))
		return
	}
	if p.UserID != c.userID {
		// The connection already carries its authenticated identity; a
		// register for someone else is refused, not adopted.
		c.enqueue(ErrorEvent("register user mismatch"))
		return
	}

	c.hub.store.Register(c.userID, c.id)
}

func (c *Client) handleSendMessage(data json.RawMessage) {
	var p SendMessagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		c.enqueue(ErrorEvent("malformed send_message payload"))
		return
	}
	if p.ConversationID == uuid.Nil {
		c.enqueue(ErrorEvent("conversationId is required"))
		return
	}
	if p.Text == "" || utf8.RuneCountInString(p.Text) > c.hub.opts.MaxMessageLength {
		c.enqueue(ErrorEvent("text is empty or too long"))
		return
	}
	if c.hub.sender == nil {
		c.enqueue(ErrorEvent("messaging unavailable"))
		return
	}

	msg, err := c.hub.sender.Send(context.Background(), p.ConversationID, c.userID, p.Text)
	if err != nil {
		c.logger.Warn("send over socket failed", "conversation_id", p.ConversationID, "error", err)
		c.enqueue(ErrorEvent(sendErrorMessage(err)))
		return
	}

	// Echo the stored message back so every tab of the author renders it.
	c.hub.Push(c.userID, ReceiveMessageEvent(*msg))
}

// sendErrorMessage keeps socket errors terse and free of internals.
func sendErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "conversation not found"
	case errors.Is(err, domain.ErrForbidden):
		return "not a participant of this conversation"
	case errors.Is(err, domain.ErrValidation):
		return "invalid message"
	default:
		return "could not send message"
	}
}

// WritePump serializes outbound frames and keeps the connection alive with
// pings. Runs on its own goroutine.
func (c *Client) WritePump() {
	ticker := time.NewTicker(c.hub.opts.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case ev := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.opts.WriteTimeout))
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.opts.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
