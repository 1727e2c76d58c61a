// Package message implements the Message repository using PostgreSQL.
package message

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Michael3682/track-n-find-sub000/internal/adapter/postgres"
	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const messageColumns = `id, conversation_id, author_id, content, created_at, updated_at`

const createSQL = `
INSERT INTO messages (id, conversation_id, author_id, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + messageColumns

const getByIDSQL = `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

const listByConversationSQL = `
SELECT ` + messageColumns + ` FROM messages
WHERE conversation_id = $1
ORDER BY created_at ASC
LIMIT $2`

const updateContentSQL = `
UPDATE messages SET content = $2, updated_at = now()
WHERE id = $1
RETURNING ` + messageColumns

const deleteSQL = `DELETE FROM messages WHERE id = $1`

// Create inserts a new message and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanMessage(q.QueryRow(ctx, createSQL,
		m.ID, m.ConversationID, m.AuthorID, m.Content, m.CreatedAt, m.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err, "message", m.ID)
	}

	return created, nil
}

// GetByID returns a message by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMessage(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "message", id)
	}

	return m, nil
}

// ListByConversation returns messages in chronological order, oldest first.
// limit <= 0 is treated as unlimited.
func (r *Repo) ListByConversation(ctx context.Context, conversationID uuid.UUID, limit int) ([]domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	rows, err := q.Query(ctx, listByConversationSQL, conversationID, limitArg)
	if err != nil {
		return nil, fmt.Errorf("list messages for conversation %s: %w", conversationID, err)
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("list messages for conversation %s: %w", conversationID, err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages for conversation %s: %w", conversationID, err)
	}

	return out, nil
}

// UpdateContent replaces the message body and bumps updated_at.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMessage(q.QueryRow(ctx, updateContentSQL, id, content))
	if err != nil {
		return nil, mapError(err, "message", id)
	}

	return m, nil
}

// Delete removes a message. Returns domain.ErrNotFound when absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return mapError(err, "message", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message

	err := row.Scan(&m.ID, &m.ConversationID, &m.AuthorID, &m.Content, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &m, nil
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
