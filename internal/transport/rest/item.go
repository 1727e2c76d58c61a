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
	"github.com/Michael3682/track-n-find-sub000/internal/service/item"
)

// itemService defines the minimal interface needed by ItemHandler.
type itemService interface {
	Report(ctx context.Context, input item.ReportInput) (*domain.Item, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, input item.ListInput) ([]domain.Item, error)
	Archive(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	Restore(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

// ItemHandler serves item REST endpoints.
type ItemHandler struct {
	svc itemService
	log *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc itemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: logger.With("handler", "item")}
}

type reportItemRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	OccurredAt  time.Time `json:"occurredAt"`
	Location    string    `json:"location"`
	Attachments []string  `json:"attachments"`
	Type        string    `json:"type"`
}

type itemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	OccurredAt  time.Time `json:"occurredAt"`
	Location    string    `json:"location"`
	Attachments []string  `json:"attachments"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
	ReporterID  string    `json:"reporterId"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Report handles POST /api/items.
func (h *ItemHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req reportItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Report(r.Context(), item.ReportInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		OccurredAt:  req.OccurredAt,
		Location:    req.Location,
		Attachments: req.Attachments,
		Type:        domain.ItemType(req.Type),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(created))
}

// Get handles GET /api/items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	it, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// List handles GET /api/items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var input item.ListInput
	if v := q.Get("type"); v != "" {
		t := domain.ItemType(v)
		input.Type = &t
	}
	if v := q.Get("status"); v != "" {
		s := domain.ItemStatus(v)
		input.Status = &s
	}
	if v := q.Get("category"); v != "" {
		input.Category = &v
	}
	input.Mine = q.Get("mine") == "true"
	input.IncludeArchived = q.Get("includeArchived") == "true"

	items, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]itemResponse, 0, len(items))
	for i := range items {
		out = append(out, toItemResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Archive handles PATCH /api/items/{id}/archive.
func (h *ItemHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, h.svc.Archive)
}

// Restore handles PATCH /api/items/{id}/restore.
func (h *ItemHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, h.svc.Restore)
}

func (h *ItemHandler) setActive(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Item, error)) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	it, err := op(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.svc.HardDelete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:          it.ID.String(),
		Name:        it.Name,
		Description: it.Description,
		Category:    it.Category,
		OccurredAt:  it.OccurredAt,
		Location:    it.Location,
		Attachments: it.Attachments,
		Status:      it.Status.String(),
		Type:        it.Type.String(),
		ReporterID:  it.ReporterID.String(),
		IsActive:    it.IsActive,
		CreatedAt:   it.CreatedAt,
	}
}
