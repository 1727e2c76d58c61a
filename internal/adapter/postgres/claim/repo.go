// Package claim implements persistence for claims and turnover requests.
package claim

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Michael3682/track-n-find-sub000/internal/adapter/postgres"
	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

// Repo provides claim and turnover persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new claim repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const claimColumns = `id, item_id, kind, claimer_id, claimer_name,
	year_and_section, student_id, contact_number, proof_url,
	reporter_id, conversation_id, created_at`

const createClaimSQL = `
INSERT INTO claims (id, item_id, kind, claimer_id, claimer_name,
                    year_and_section, student_id, contact_number, proof_url,
                    reporter_id, conversation_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + claimColumns

const latestClaimByItemSQL = `
SELECT ` + claimColumns + ` FROM claims
WHERE item_id = $1
ORDER BY created_at DESC
LIMIT 1`

const turnoverColumns = `id, item_id, finder_id, proof_url, status, decided_by, created_at, decided_at`

const createTurnoverSQL = `
INSERT INTO turnover_requests (id, item_id, finder_id, proof_url, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + turnoverColumns

const latestTurnoverByItemSQL = `
SELECT ` + turnoverColumns + ` FROM turnover_requests
WHERE item_id = $1
ORDER BY created_at DESC
LIMIT 1`

// decideTurnoverSQL only decides rows still pending, so two moderators
// deciding at once cannot both win.
const decideTurnoverSQL = `
UPDATE turnover_requests
SET status = $2, decided_by = $3, decided_at = now()
WHERE id = $1 AND status = 'PENDING'
RETURNING ` + turnoverColumns

// CreateClaim records a claim or return intent for an item.
func (r *Repo) CreateClaim(ctx context.Context, c *domain.Claim) (*domain.Claim, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanClaim(q.QueryRow(ctx, createClaimSQL,
		c.ID, c.ItemID, string(c.Kind), c.ClaimerID, c.ClaimerName,
		c.Credentials.YearAndSection, c.Credentials.StudentID, c.Credentials.ContactNumber, c.Credentials.ProofURL,
		c.ReporterID, c.ConversationID, c.CreatedAt,
	))
	if err != nil {
		return nil, mapError(err, "claim", c.ID)
	}

	return created, nil
}

// LatestClaimByItem returns the most recent claim recorded for an item.
func (r *Repo) LatestClaimByItem(ctx context.Context, itemID uuid.UUID) (*domain.Claim, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanClaim(q.QueryRow(ctx, latestClaimByItemSQL, itemID))
	if err != nil {
		return nil, mapError(err, "claim", itemID)
	}

	return c, nil
}

// CreateTurnover records a pending handoff request. Returns
// domain.ErrAlreadyExists when the item already has a pending request.
func (r *Repo) CreateTurnover(ctx context.Context, tr *domain.TurnoverRequest) (*domain.TurnoverRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanTurnover(q.QueryRow(ctx, createTurnoverSQL,
		tr.ID, tr.ItemID, tr.FinderID, tr.ProofURL, string(tr.Status), tr.CreatedAt,
	))
	if err != nil {
		return nil, mapError(err, "turnover request", tr.ID)
	}

	return created, nil
}

// LatestTurnoverByItem returns the most recent turnover request for an item.
func (r *Repo) LatestTurnoverByItem(ctx context.Context, itemID uuid.UUID) (*domain.TurnoverRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tr, err := scanTurnover(q.QueryRow(ctx, latestTurnoverByItemSQL, itemID))
	if err != nil {
		return nil, mapError(err, "turnover request", itemID)
	}

	return tr, nil
}

// DecideTurnover moves a pending request to CONFIRMED or REJECTED.
// Returns domain.ErrConflict when the request is missing or already decided;
// callers re-read to find out which.
func (r *Repo) DecideTurnover(ctx context.Context, id uuid.UUID, status domain.TurnoverStatus, decidedBy uuid.UUID) (*domain.TurnoverRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tr, err := scanTurnover(q.QueryRow(ctx, decideTurnoverSQL, id, string(status), decidedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("turnover request %s: %w", id, domain.ErrConflict)
		}
		return nil, mapError(err, "turnover request", id)
	}

	return tr, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanClaim(row pgx.Row) (*domain.Claim, error) {
	var (
		c    domain.Claim
		kind string
	)

	err := row.Scan(&c.ID, &c.ItemID, &kind, &c.ClaimerID, &c.ClaimerName,
		&c.Credentials.YearAndSection, &c.Credentials.StudentID, &c.Credentials.ContactNumber, &c.Credentials.ProofURL,
		&c.ReporterID, &c.ConversationID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	c.Kind = domain.ClaimKind(kind)

	return &c, nil
}

func scanTurnover(row pgx.Row) (*domain.TurnoverRequest, error) {
	var (
		tr        domain.TurnoverRequest
		status    string
		decidedBy pgtype.UUID
		decidedAt pgtype.Timestamptz
	)

	err := row.Scan(&tr.ID, &tr.ItemID, &tr.FinderID, &tr.ProofURL, &status, &decidedBy, &tr.CreatedAt, &decidedAt)
	if err != nil {
		return nil, err
	}

	tr.Status = domain.TurnoverStatus(status)
	if decidedBy.Valid {
		id := uuid.UUID(decidedBy.Bytes)
		tr.DecidedBy = &id
	}
	if decidedAt.Valid {
		ts := decidedAt.Time
		tr.DecidedAt = &ts
	}

	return &tr, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
