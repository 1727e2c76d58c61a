package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a lost or found item report. ReporterID is the user who filed it
// (the "host" of any conversation about the item).
type Item struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    string
	OccurredAt  time.Time
	Location    string
	Attachments []string
	Status      ItemStatus
	Type        ItemType
	ReporterID  uuid.UUID
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemFilter narrows item listings. Nil fields match everything.
type ItemFilter struct {
	Type       *ItemType
	Status     *ItemStatus
	Category   *string
	ReporterID *uuid.UUID
	OnlyActive bool
}
