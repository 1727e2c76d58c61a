package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with role USER and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUserWithRole(t, pool, domain.UserRoleUser)
}

// SeedModerator creates a user with role MODERATOR.
func SeedModerator(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUserWithRole(t, pool, domain.UserRoleModerator)
}

func seedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	email := "testuser-" + suffix + "@example.com"
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Test User " + suffix,
		Email:        &email,
		Role:         role,
		PasswordHash: "x",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Name, user.Email, string(user.Role), user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedItem creates an active UNCLAIMED item reported by the given user.
func SeedItem(t *testing.T, pool *pgxpool.Pool, reporterID uuid.UUID, itemType domain.ItemType) domain.Item {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.Item{
		ID:          uuid.New(),
		Name:        "Test Item " + suffix,
		Description: "seeded item",
		Category:    "electronics",
		OccurredAt:  now,
		Location:    "library",
		Attachments: []string{"https://cdn.example.com/" + suffix + ".jpg"},
		Status:      domain.ItemStatusUnclaimed,
		Type:        itemType,
		ReporterID:  reporterID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO items (id, name, description, category, occurred_at, location, attachments,
		                    status, type, reporter_id, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		item.ID, item.Name, item.Description, item.Category, item.OccurredAt, item.Location,
		item.Attachments, string(item.Status), string(item.Type), item.ReporterID, item.IsActive,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert item: %v", err)
	}

	return item
}

// SeedConversation creates a conversation for the given triple.
func SeedConversation(t *testing.T, pool *pgxpool.Pool, itemID, hostID, senderID uuid.UUID) domain.Conversation {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	conv := domain.Conversation{
		ID:        uuid.New(),
		ItemID:    itemID,
		HostID:    hostID,
		SenderID:  senderID,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO conversations (id, item_id, host_id, sender_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		conv.ID, conv.ItemID, conv.HostID, conv.SenderID, conv.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedConversation insert: %v", err)
	}

	return conv
}

// SeedMessage creates a message and bumps the conversation's last_message_at.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, conversationID, authorID uuid.UUID, content string) domain.Message {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	msg := domain.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		AuthorID:       authorID,
		Content:        content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO messages (id, conversation_id, author_id, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		msg.ID, msg.ConversationID, msg.AuthorID, msg.Content, msg.CreatedAt, msg.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage insert: %v", err)
	}

	_, err = pool.Exec(ctx,
		`UPDATE conversations SET last_message_at = $2 WHERE id = $1`,
		msg.ConversationID, msg.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage bump conversation: %v", err)
	}

	return msg
}
