package item

import (
	"time"
	"unicode/utf8"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 4000
	maxAttachments       = 10
)

// ReportInput holds parameters for Report.
type ReportInput struct {
	Name        string
	Description string
	Category    string
	OccurredAt  time.Time
	Location    string
	Attachments []string
	Type        domain.ItemType
}

// Validate validates the report input.
func (i ReportInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if utf8.RuneCountInString(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be LOST or FOUND"})
	}
	if i.OccurredAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "occurredAt", Message: "required"})
	}
	if len(i.Attachments) > maxAttachments {
		errs = append(errs, domain.FieldError{Field: "attachments", Message: "too many"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput narrows item listings. Archived items are included only for
// moderators or when the caller filters by their own reports.
type ListInput struct {
	Type            *domain.ItemType
	Status          *domain.ItemStatus
	Category        *string
	Mine            bool
	IncludeArchived bool
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be LOST or FOUND"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be UNCLAIMED or CLAIMED"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
