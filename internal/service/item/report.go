package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Michael3682/track-n-find-sub000/internal/domain"
	"github.com/Michael3682/track-n-find-sub000/pkg/ctxutil"
)

// Report files a new lost or found item report. New items start UNCLAIMED
// and active.
func (s *Service) Report(ctx context.Context, input ReportInput) (*domain.Item, error) {
	reporterID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.items.Create(ctx, &domain.Item{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		OccurredAt:  input.OccurredAt,
		Location:    input.Location,
		Attachments: input.Attachments,
		Status:      domain.ItemStatusUnclaimed,
		Type:        input.Type,
		ReporterID:  reporterID,
		IsActive:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("item.Report: %w", err)
	}

	s.log.InfoContext(ctx, "item reported",
		slog.String("item_id", created.ID.String()),
		slog.String("type", created.Type.String()),
		slog.String("reporter_id", reporterID.String()))

	return created, nil
}
