package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/pkg/ctxutil"
)

// conversationService defines the conversation operations needed by ChatHandler.
type conversationService interface {
	FindOrCreate(ctx context.Context, itemID, hostID uuid.UUID) (*domain.ConversationView, error)
	GetByID(ctx context.Context, conversationID uuid.UUID) (*domain.ConversationView, error)
	ListForUser(ctx context.Context) ([]domain.ConversationView, error)
}

// messagingService defines the messaging operations needed by ChatHandler.
type messagingService interface {
	Send(ctx context.Context, conversationID, authorID uuid.UUID, content string) (*domain.Message, error)
	Edit(ctx context.Context, messageID uuid.UUID, content string) (*domain.Message, error)
	Delete(ctx context.Context, messageID uuid.UUID) error
}

// ChatHandler serves conversation and message REST endpoints.
type ChatHandler struct {
	conversations conversationService
	messaging     messagingService
	log           *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(conversations conversationService, messaging messagingService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		conversations: conversations,
		messaging:     messaging,
		log:           logger.With("handler", "chat"),
	}
}

type findOrCreateRequest struct {
	ItemID uuid.UUID `json:"itemId"`
	HostID uuid.UUID `json:"hostId"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

type editMessageRequest struct {
	Content string `json:"content"`
}

type messageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	AuthorID       string    `json:"authorId"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type conversationResponse struct {
	ID            string            `json:"id"`
	ItemID        string            `json:"itemId"`
	DisplayName   string            `json:"displayName"`
	IsMine        bool              `json:"isMine"`
	ItemName      string            `json:"itemName"`
	ItemThumbnail string            `json:"itemThumbnail,omitempty"`
	LastMessageAt *time.Time        `json:"lastMessageAt,omitempty"`
	LastMessage   *messageResponse  `json:"lastMessage,omitempty"`
	Messages      []messageResponse `json:"messages,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// FindOrCreate handles POST /api/chat/conversation.
func (h *ChatHandler) FindOrCreate(w http.ResponseWriter, r *http.Request) {
	var req findOrCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.conversations.FindOrCreate(r.Context(), req.ItemID, req.HostID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toConversationResponse(view))
}

// Get handles GET /api/chat/conversation/{id}.
func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return
	}

	view, err := h.conversations.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toConversationResponse(view))
}

// List handles GET /api/chat/conversations.
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.conversations.ListForUser(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]conversationResponse, 0, len(views))
	for i := range views {
		out = append(out, toConversationResponse(&views[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// SendMessage handles POST /api/chat/conversation/{id}/messages.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	conversationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid conversation id")
		return
	}

	authorID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.messaging.Send(r.Context(), conversationID, authorID, req.Content)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(msg))
}

// EditMessage handles PATCH /api/chat/messages/{id}.
func (h *ChatHandler) EditMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	var req editMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.messaging.Edit(r.Context(), messageID, req.Content)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageResponse(msg))
}

// DeleteMessage handles DELETE /api/chat/messages/{id}.
func (h *ChatHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	if err := h.messaging.Delete(r.Context(), messageID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:             m.ID.String(),
		ConversationID: m.ConversationID.String(),
		AuthorID:       m.AuthorID.String(),
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toConversationResponse(v *domain.ConversationView) conversationResponse {
	resp := conversationResponse{
		ID:            v.ID.String(),
		ItemID:        v.ItemID.String(),
		DisplayName:   v.DisplayName,
		IsMine:        v.IsMine,
		ItemName:      v.ItemName,
		ItemThumbnail: v.ItemThumbnail,
		LastMessageAt: v.LastMessageAt,
		CreatedAt:     v.CreatedAt,
	}
	if v.LastMessage != nil {
		m := toMessageResponse(v.LastMessage)
		resp.LastMessage = &m
	}
	if len(v.Messages) > 0 {
		resp.Messages = make([]messageResponse, 0, len(v.Messages))
		for i := range v.Messages {
			resp.Messages = append(resp.Messages, toMessageResponse(&v.Messages[i]))
		}
	}
	return resp
}
