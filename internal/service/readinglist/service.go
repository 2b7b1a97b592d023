// Package readinglist implements the reading-list use cases over a
// pluggable entry store. Handlers validate nothing themselves; every
// request body passes through this package's input types first.
package readinglist

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

type entryStore interface {
	Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	List(ctx context.Context) ([]*domain.Entry, error)
	ListByFilter(ctx context.Context, f domain.EntryFilter) ([]*domain.Entry, error)
	Update(ctx context.Context, id uuid.UUID, params domain.EntryUpdateParams) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service provides reading-list entry operations.
type Service struct {
	entries entryStore
	log     *slog.Logger
}

// NewService creates a new reading-list service.
func NewService(log *slog.Logger, entries entryStore) *Service {
	return &Service{
		entries: entries,
		log:     log.With("service", "readinglist"),
	}
}
