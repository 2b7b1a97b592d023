package readinglist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// DeleteEntry removes an entry from the reading list.
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if err := s.entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("entry_id", id.String()),
	)

	return nil
}
