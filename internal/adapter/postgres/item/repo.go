// Package item implements the Item repository using PostgreSQL.
package item

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Michael3682/track-n-find-sub000/internal/adapter/postgres"
	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumns = `id, name, description, category, occurred_at, location, attachments,
	status, type, reporter_id, is_active, created_at, updated_at`

const getByIDSQL = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

const createSQL = `
INSERT INTO items (id, name, description, category, occurred_at, location, attachments,
                   status, type, reporter_id, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING ` + itemColumns

// casStatusSQL only flips rows currently in the expected status, so concurrent
// claimers race on the WHERE clause instead of overwriting each other.
const casStatusSQL = `
UPDATE items SET status = $3, updated_at = now()
WHERE id = $1 AND status = $2`

const setActiveSQL = `
UPDATE items SET is_active = $2, updated_at = now()
WHERE id = $1
RETURNING ` + itemColumns

const hardDeleteSQL = `DELETE FROM items WHERE id = $1`

const purgeArchivedSQL = `
DELETE FROM items WHERE is_active = false AND updated_at < $1`

// Create inserts a new item and returns the persisted row.
func (r *Repo) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanItem(q.QueryRow(ctx, createSQL,
		it.ID, it.Name, it.Description, it.Category, it.OccurredAt, it.Location, it.Attachments,
		string(it.Status), string(it.Type), it.ReporterID, it.IsActive, it.CreatedAt, it.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err, "item", it.ID)
	}

	return created, nil
}

// GetByID returns an item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	it, err := scanItem(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "item", id)
	}

	return it, nil
}

// List returns items matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("id", "name", "description", "category", "occurred_at", "location", "attachments",
			"status", "type", "reporter_id", "is_active", "created_at", "updated_at").
		From("items").
		OrderBy("created_at DESC")

	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"type": string(*filter.Type)})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.Category != nil {
		builder = builder.Where(sq.Eq{"category": *filter.Category})
	}
	if filter.ReporterID != nil {
		builder = builder.Where(sq.Eq{"reporter_id": *filter.ReporterID})
	}
	if filter.OnlyActive {
		builder = builder.Where(sq.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("list items: %w", err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

// CASStatus flips the item status from one value to another.
// Returns false (and no error) when the item was not in the expected status,
// which is how concurrent claim races lose.
func (r *Repo) CASStatus(ctx context.Context, id uuid.UUID, from, to domain.ItemStatus) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, casStatusSQL, id, string(from), string(to))
	if err != nil {
		return false, mapError(err, "item", id)
	}

	return tag.RowsAffected() > 0, nil
}

// SetActive archives (false) or restores (true) an item.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	it, err := scanItem(q.QueryRow(ctx, setActiveSQL, id, active))
	if err != nil {
		return nil, mapError(err, "item", id)
	}

	return it, nil
}

// HardDelete removes an item and cascades into its conversations and claims.
func (r *Repo) HardDelete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, hardDeleteSQL, id)
	if err != nil {
		return mapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// PurgeArchived removes items archived before the threshold, cascading into
// their conversations, claims and turnover requests. Used by the cleanup job.
func (r *Repo) PurgeArchived(ctx context.Context, olderThan time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, purgeArchivedSQL, olderThan)
	if err != nil {
		return 0, fmt.Errorf("purge archived items: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		it     domain.Item
		status string
		typ    string
	)

	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Category, &it.OccurredAt, &it.Location,
		&it.Attachments, &status, &typ, &it.ReporterID, &it.IsActive, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}

	it.Status = domain.ItemStatus(status)
	it.Type = domain.ItemType(typ)

	return &it, nil
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
