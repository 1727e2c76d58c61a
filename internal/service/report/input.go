package report

import (
	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

// ClaimInput holds parameters for ReportClaim and ReportReturn.
type ClaimInput struct {
	ItemID         uuid.UUID
	ConversationID uuid.UUID
	Credentials    domain.ClaimCredentials
}

// Validate validates the claim input.
func (i ClaimInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "itemId", Message: "required"})
	}
	if i.ConversationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "conversationId", Message: "required"})
	}
	if i.Credentials.StudentID == "" {
		errs = append(errs, domain.FieldError{Field: "studentId", Message: "required"})
	}
	if i.Credentials.ContactNumber == "" {
		errs = append(errs, domain.FieldError{Field: "contactNumber", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TurnoverInput holds parameters for RequestTurnover.
type TurnoverInput struct {
	ItemID   uuid.UUID
	ProofURL string
}

// Validate validates the turnover input.
func (i TurnoverInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "itemId", Message: "required"})
	}
	if i.ProofURL == "" {
		errs = append(errs, domain.FieldError{Field: "proofUrl", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
