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
	"github.com/Michael3682/track-n-find-sub000/internal/service/report"
)

// reportService defines the claim and turnover operations needed by ReportHandler.
type reportService interface {
	ReportClaim(ctx context.Context, input report.ClaimInput) (*domain.Claim, error)
	ReportReturn(ctx context.Context, input report.ClaimInput) (*domain.Claim, error)
	RequestTurnover(ctx context.Context, input report.TurnoverInput) (*domain.TurnoverRequest, error)
	ConfirmTurnover(ctx context.Context, itemID uuid.UUID) (*domain.TurnoverRequest, error)
	RejectTurnover(ctx context.Context, itemID uuid.UUID) (*domain.TurnoverRequest, error)
	LatestClaim(ctx context.Context, itemID uuid.UUID) (*domain.Claim, error)
	LatestTurnover(ctx context.Context, itemID uuid.UUID) (*domain.TurnoverRequest, error)
}

// ReportHandler serves claim, return and turnover REST endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type claimRequest struct {
	ItemID         uuid.UUID `json:"itemId"`
	ConversationID uuid.UUID `json:"conversationId"`
	YearAndSection string    `json:"yearAndSection"`
	StudentID      string    `json:"studentId"`
	ContactNumber  string    `json:"contactNumber"`
	ProofURL       string    `json:"proofUrl"`
}

type turnoverRequest struct {
	ItemID   uuid.UUID `json:"itemId"`
	ProofURL string    `json:"proofUrl"`
}

type claimResponse struct {
	ID             string    `json:"id"`
	ItemID         string    `json:"itemId"`
	Kind           string    `json:"kind"`
	ClaimerID      string    `json:"claimerId"`
	ClaimerName    string    `json:"claimerName"`
	ConversationID string    `json:"conversationId"`
	CreatedAt      time.Time `json:"createdAt"`
}

type turnoverResponse struct {
	ID        string     `json:"id"`
	ItemID    string     `json:"itemId"`
	FinderID  string     `json:"finderId"`
	ProofURL  string     `json:"proofUrl"`
	Status    string     `json:"status"`
	DecidedBy *string    `json:"decidedBy,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	DecidedAt *time.Time `json:"decidedAt,omitempty"`
}

// Claim handles POST /api/report/claim.
func (h *ReportHandler) Claim(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.svc.ReportClaim)
}

// Return handles POST /api/report/return.
func (h *ReportHandler) Return(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.svc.ReportReturn)
}

func (h *ReportHandler) resolve(w http.ResponseWriter, r *http.Request, op func(context.Context, report.ClaimInput) (*domain.Claim, error)) {
	var req claimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claim, err := op(r.Context(), report.ClaimInput{
		ItemID:         req.ItemID,
		ConversationID: req.ConversationID,
		Credentials: domain.ClaimCredentials{
			YearAndSection: req.YearAndSection,
			StudentID:      req.StudentID,
			ContactNumber:  req.ContactNumber,
			ProofURL:       req.ProofURL,
		},
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toClaimResponse(claim))
}

// RequestTurnover handles POST /api/report/turnover.
func (h *ReportHandler) RequestTurnover(w http.ResponseWriter, r *http.Request) {
	var req turnoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tr, err := h.svc.RequestTurnover(r.Context(), report.TurnoverInput{
		ItemID:   req.ItemID,
		ProofURL: req.ProofURL,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTurnoverResponse(tr))
}

// ConfirmTurnover handles PATCH /api/report/turnover/{itemId}/confirm.
func (h *ReportHandler) ConfirmTurnover(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.ConfirmTurnover)
}

// RejectTurnover handles PATCH /api/report/turnover/{itemId}/reject.
func (h *ReportHandler) RejectTurnover(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.RejectTurnover)
}

func (h *ReportHandler) decide(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.TurnoverRequest, error)) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	tr, err := op(r.Context(), itemID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTurnoverResponse(tr))
}

// LatestClaim handles GET /api/report/claim/{itemId}.
func (h *ReportHandler) LatestClaim(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	claim, err := h.svc.LatestClaim(r.Context(), itemID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toClaimResponse(claim))
}

// LatestTurnover handles GET /api/report/turnover/{itemId}.
func (h *ReportHandler) LatestTurnover(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	tr, err := h.svc.LatestTurnover(r.Context(), itemID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTurnoverResponse(tr))
}

func toClaimResponse(c *domain.Claim) claimResponse {
	return claimResponse{
		ID:             c.ID.String(),
		ItemID:         c.ItemID.String(),
		Kind:           c.Kind.String(),
		ClaimerID:      c.ClaimerID.String(),
		ClaimerName:    c.ClaimerName,
		ConversationID: c.ConversationID.String(),
		CreatedAt:      c.CreatedAt,
	}
}

func toTurnoverResponse(tr *domain.TurnoverRequest) turnoverResponse {
	resp := turnoverResponse{
		ID:        tr.ID.String(),
		ItemID:    tr.ItemID.String(),
		FinderID:  tr.FinderID.String(),
		ProofURL:  tr.ProofURL,
		Status:    tr.Status.String(),
		CreatedAt: tr.CreatedAt,
		DecidedAt: tr.DecidedAt,
	}
	if tr.DecidedBy != nil {
		s := tr.DecidedBy.String()
		resp.DecidedBy = &s
	}
	return resp
}
