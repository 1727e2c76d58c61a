package realtime

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

// Event types carried over the socket. Inbound frames use the same tagged
// envelope as outbound ones.
const (
	// inbound
	EventRegister    = "register"
	EventSendMessage = "send_message"

	// outbound
	EventReceiveMessage = "receive_message"
	EventNewMessage     = "new_message"
	EventError          = "error"
)

// Event is the tagged envelope for outbound socket frames.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// envelope is the inbound counterpart: payload stays raw until the type is known.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// RegisterPayload re-affirms which user a connection belongs to.
type RegisterPayload struct {
	UserID uuid.UUID `json:"userId"`
}

// SendMessagePayload is a chat message submitted over the socket.
type SendMessagePayload struct {
	ConversationID uuid.UUID `json:"conversationId"`
	Text           string    `json:"text"`
}

// MessagePayload is the wire shape of a stored message.
type MessagePayload struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	AuthorID       uuid.UUID `json:"authorId"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewMessagePayload converts a domain message to its wire shape.
func NewMessagePayload(m domain.Message) MessagePayload {
	return MessagePayload{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		AuthorID:       m.AuthorID,
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ConversationPayload is the wire shape of a viewer-relative conversation
// summary, used for pushed list refreshes.
type ConversationPayload struct {
	ID            uuid.UUID       `json:"id"`
	ItemID        uuid.UUID       `json:"itemId"`
	ItemName      string          `json:"itemName"`
	ItemThumbnail string          `json:"itemThumbnail,omitempty"`
	DisplayName   string          `json:"displayName"`
	IsMine        bool            `json:"isMine"`
	LastMessageAt *time.Time      `json:"lastMessageAt,omitempty"`
	LastMessage   *MessagePayload `json:"lastMessage,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewConversationPayload converts a projected conversation to its wire shape.
func NewConversationPayload(v domain.ConversationView) ConversationPayload {
	p := ConversationPayload{
		ID:            v.ID,
		ItemID:        v.ItemID,
		ItemName:      v.ItemName,
		ItemThumbnail: v.ItemThumbnail,
		DisplayName:   v.DisplayName,
		IsMine:        v.IsMine,
		LastMessageAt: v.LastMessageAt,
		CreatedAt:     v.CreatedAt,
	}
	if v.LastMessage != nil {
		mp := NewMessagePayload(*v.LastMessage)
		p.LastMessage = &mp
	}
	return p
}

// NewConversationListPayload converts a projected list.
func NewConversationListPayload(views []domain.ConversationView) []ConversationPayload {
	out := make([]ConversationPayload, 0, len(views))
	for _, v := range views {
		out = append(out, NewConversationPayload(v))
	}
	return out
}

// ReceiveMessageEvent wraps a freshly stored message for the counterparty.
func ReceiveMessageEvent(m domain.Message) Event {
	return Event{Type: EventReceiveMessage, Data: NewMessagePayload(m)}
}

// NewMessageEvent carries the recipient's refreshed conversation list.
func NewMessageEvent(views []domain.ConversationView) Event {
	return Event{Type: EventNewMessage, Data: NewConversationListPayload(views)}
}

// ErrorEvent reports a per-connection protocol failure without closing it.
func ErrorEvent(msg string) Event {
	return Event{Type: EventError, Data: map[string]string{"message": msg}}
}
