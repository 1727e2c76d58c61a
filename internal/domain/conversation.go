package domain

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a thread between the reporter of an item (host) and a
// counterparty who initiated contact about it (sender). The triple
// (ItemID, HostID, SenderID) is unique: there is at most one conversation
// per item per pair, enforced by a database constraint.
type Conversation struct {
	ID            uuid.UUID
	ItemID        uuid.UUID
	HostID        uuid.UUID
	SenderID      uuid.UUID
	LastMessageAt *time.Time
	CreatedAt     time.Time
}

// HasParticipant reports whether the given user is the host or the sender.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.HostID == userID || c.SenderID == userID
}

// Counterparty returns the other participant relative to userID.
// The second result is false when userID is not a participant at all.
func (c *Conversation) Counterparty(userID uuid.UUID) (uuid.UUID, bool) {
	switch userID {
	case c.HostID:
		return c.SenderID, true
	case c.SenderID:
		return c.HostID, true
	}
	return uuid.Nil, false
}

// Message is a single chat message within a conversation. Messages are
// append-ordered by CreatedAt; only the author may edit or delete one.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	AuthorID       uuid.UUID
	Content        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ConversationWithMeta bundles a conversation with the joined item and
// participant fields a list needs, so the read side is a single query.
type ConversationWithMeta struct {
	Conversation
	ItemName      string
	ItemThumbnail string
	HostName      string
	SenderName    string
	LastMessage   *Message
}

// ConversationView is the caller-relative projection of a conversation used
// for list and detail rendering. DisplayName is the other party's name and
// IsMine is true when the viewer is the item's host, so the same stored row
// projects differently for each participant.
type ConversationView struct {
	Conversation
	DisplayName   string
	IsMine        bool
	ItemName      string
	ItemThumbnail string
	LastMessage   *Message
	Messages      []Message
}

// ProjectConversation builds the viewer-relative projection. hostName and
// senderName are the display names of the two participants; thumbnail is the
// item's first attachment URL, empty when the item has none.
func ProjectConversation(c Conversation, itemName, thumbnail, hostName, senderName string, viewerID uuid.UUID) ConversationView {
	view := ConversationView{
		Conversation:  c,
		ItemName:      itemName,
		ItemThumbnail: thumbnail,
	}

	if viewerID == c.HostID {
		view.IsMine = true
		view.DisplayName = senderName
	} else {
		view.DisplayName = hostName
	}

	return view
}
