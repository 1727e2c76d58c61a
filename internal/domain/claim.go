package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClaimCredentials are the identifying details a claimant submits alongside
// proof of ownership or possession.
type ClaimCredentials struct {
	YearAndSection string
	StudentID      string
	ContactNumber  string
	ProofURL       string
}

// Claim records an ownership claim on a found item (Kind CLAIM) or a return
// offer for a lost item (Kind RETURN). Claims are append-only per item; an
// item may accumulate several attempts and the latest one is surfaced.
type Claim struct {
	ID             uuid.UUID
	ItemID         uuid.UUID
	Kind           ClaimKind
	ClaimerID      uuid.UUID
	ClaimerName    string
	Credentials    ClaimCredentials
	ReporterID     uuid.UUID
	ConversationID uuid.UUID
	CreatedAt      time.Time
}

// TurnoverRequest records a finder's intent to hand a found item over to a
// moderating authority. At most one PENDING request exists per item.
type TurnoverRequest struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	FinderID  uuid.UUID
	ProofURL  string
	Status    TurnoverStatus
	DecidedBy *uuid.UUID
	CreatedAt time.Time
	DecidedAt *time.Time
}
