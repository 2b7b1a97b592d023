package readinglist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

// GetEntry returns a single entry by ID.
func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}
