package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/internal/realtime"
)

// wsTokenValidator validates the websocket auth token.
type wsTokenValidator interface {
	ValidateToken(token string) (uuid.UUID, domain.UserRole, error)
}

// WSHandler upgrades chat websocket connections and hands them to the hub.
type WSHandler struct {
	hub       *realtime.Hub
	validator wsTokenValidator
	upgrader  websocket.Upgrader
	log       *slog.Logger
}

// NewWSHandler creates a WSHandler.
func NewWSHandler(hub *realtime.Hub, validator wsTokenValidator, logger *slog.Logger) *WSHandler {
	return &WSHandler{
		hub:       hub,
		validator: validator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Cross-origin browser clients are expected; auth is the token.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: logger.With("handler", "ws"),
	}
}

// Serve handles GET /ws/chat?token=... Browser WebSocket clients cannot set
// an Authorization header, so the access token rides in the query string.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, http.StatusUnauthorized, "missing token")
		return
	}

	userID, _, err := h.validator.ValidateToken(token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		h.log.WarnContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := realtime.NewClient(h.hub, conn, userID)
	h.hub.Attach(client)

	go client.WritePump()
	go client.ReadPump()
}
