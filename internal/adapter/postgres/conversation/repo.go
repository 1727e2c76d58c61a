// Package conversation implements the Conversation repository using PostgreSQL.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Michael3682/track-n-find-sub000/internal/adapter/postgres"
	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

// Repo provides conversation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new conversation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const convColumns = `id, item_id, host_id, sender_id, last_message_at, created_at`

const createSQL = `
INSERT INTO conversations (id, item_id, host_id, sender_id, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + convColumns

const getByIDSQL = `SELECT ` + convColumns + ` FROM conversations WHERE id = $1`

const getByTripleSQL = `
SELECT ` + convColumns + ` FROM conversations
WHERE item_id = $1 AND host_id = $2 AND sender_id = $3`

// listForUserSQL joins item and participant metadata plus the newest message
// in one round trip. Threads with traffic sort first, untouched ones last.
const listForUserSQL = `
SELECT c.id, c.item_id, c.host_id, c.sender_id, c.last_message_at, c.created_at,
       i.name, i.attachments[1],
       h.name, s.name,
       m.id, m.author_id, m.content, m.created_at, m.updated_at
FROM conversations c
JOIN items i ON i.id = c.item_id
JOIN users h ON h.id = c.host_id
JOIN users s ON s.id = c.sender_id
LEFT JOIN LATERAL (
    SELECT id, author_id, content, created_at, updated_at
    FROM messages
    WHERE conversation_id = c.id
    ORDER BY created_at DESC
    LIMIT 1
) m ON true
WHERE c.host_id = $1 OR c.sender_id = $1
ORDER BY c.last_message_at DESC NULLS LAST, c.created_at DESC`

const updateLastMessageAtSQL = `
UPDATE conversations SET last_message_at = $2 WHERE id = $1`

// Create inserts a new conversation. Returns domain.ErrAlreadyExists when a
// conversation for the same (item, host, sender) triple already exists, in
// which case the caller is expected to re-read the existing row.
func (r *Repo) Create(ctx context.Context, c *domain.Conversation) (*domain.Conversation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanConversation(q.QueryRow(ctx, createSQL,
		c.ID, c.ItemID, c.HostID, c.SenderID, c.CreatedAt,
	))
	if err != nil {
		return nil, mapError(err, "conversation", c.ID)
	}

	return created, nil
}

// GetByID returns a conversation by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanConversation(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "conversation", id)
	}

	return c, nil
}

// GetByTriple returns the conversation for an exact (item, host, sender) triple.
func (r *Repo) GetByTriple(ctx context.Context, itemID, hostID, senderID uuid.UUID) (*domain.Conversation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanConversation(q.QueryRow(ctx, getByTripleSQL, itemID, hostID, senderID))
	if err != nil {
		return nil, mapError(err, "conversation", itemID)
	}

	return c, nil
}

// ListForUser returns every conversation the user participates in, with item
// and participant metadata and the latest message, most recently active first.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.ConversationWithMeta, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listForUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations for user %s: %w", userID, err)
	}
	defer rows.Close()

	var out []domain.ConversationWithMeta
	for rows.Next() {
		var (
			cm            domain.ConversationWithMeta
			lastMessageAt pgtype.Timestamptz
			thumbnail     pgtype.Text

			msgID        pgtype.UUID
			msgAuthorID  pgtype.UUID
			msgContent   pgtype.Text
			msgCreatedAt pgtype.Timestamptz
			msgUpdatedAt pgtype.Timestamptz
		)

		err := rows.Scan(
			&cm.ID, &cm.ItemID, &cm.HostID, &cm.SenderID, &lastMessageAt, &cm.CreatedAt,
			&cm.ItemName, &thumbnail,
			&cm.HostName, &cm.SenderName,
			&msgID, &msgAuthorID, &msgContent, &msgCreatedAt, &msgUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list conversations for user %s: %w", userID, err)
		}

		if lastMessageAt.Valid {
			ts := lastMessageAt.Time
			cm.LastMessageAt = &ts
		}
		if thumbnail.Valid {
			cm.ItemThumbnail = thumbnail.String
		}
		if msgID.Valid {
			cm.LastMessage = &domain.Message{
				ID:             uuid.UUID(msgID.Bytes),
				ConversationID: cm.ID,
				AuthorID:       uuid.UUID(msgAuthorID.Bytes),
				Content:        msgContent.String,
				CreatedAt:      msgCreatedAt.Time,
				UpdatedAt:      msgUpdatedAt.Time,
			}
		}

		out = append(out, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list conversations for user %s: %w", userID, err)
	}

	return out, nil
}

// UpdateLastMessageAt bumps the conversation's activity timestamp.
func (r *Repo) UpdateLastMessageAt(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateLastMessageAtSQL, id, at)
	if err != nil {
		return mapError(err, "conversation", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("conversation %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanConversation(row pgx.Row) (*domain.Conversation, error) {
	var (
		c             domain.Conversation
		lastMessageAt pgtype.Timestamptz
	)

	err := row.Scan(&c.ID, &c.ItemID, &c.HostID, &c.SenderID, &lastMessageAt, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	if lastMessageAt.Valid {
		ts := lastMessageAt.Time
		c.LastMessageAt = &ts
	}

	return &c, nil
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
