package readinglist

import (
	"context"
	"fmt"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

// ListEntries returns entries matching the optional filters, ordered by
// creation time. Filters combine with AND.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.EntryFilter{Author: input.Author}
	if input.Status != nil {
		status := domain.ReadingStatus(*input.Status)
		filter.Status = &status
	}

	if filter.IsZero() {
		entries, err := s.entries.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list entries: %w", err)
		}
		return entries, nil
	}

	entries, err := s.entries.ListByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list entries by filter: %w", err)
	}
	return entries, nil
}
