package readinglist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

// CreateEntry adds a new entry to the reading list. Status defaults to
// "to_read" when the client omits it.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.StatusToRead
	if input.Status != nil {
		status = domain.ReadingStatus(*input.Status)
	}

	entry, err := s.entries.Create(ctx, &domain.Entry{
		Title:  input.Title,
		Author: input.Author,
		Status: status,
		Notes:  input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("entry_id", entry.ID.String()),
		slog.String("title", entry.Title),
		slog.String("status", entry.Status.String()),
	)

	return entry, nil
}
