package readinglist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

// UpdateEntry applies a partial update to an entry. Absent fields keep
// their stored values; an empty patch still bumps UpdatedAt.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.EntryUpdateParams{
		Title:  input.Title,
		Author: input.Author,
		Notes:  input.Notes,
	}
	if input.Status != nil {
		status := domain.ReadingStatus(*input.Status)
		params.Status = &status
	}

	entry, err := s.entries.Update(ctx, input.EntryID, params)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry updated",
		slog.String("entry_id", entry.ID.String()),
		slog.String("status", entry.Status.String()),
	)

	return entry, nil
}
