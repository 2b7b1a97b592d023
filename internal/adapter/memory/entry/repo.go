// Package entry implements the entry store in process memory. It is the
// default backend: a mutex-guarded map that clones records on the way in
// and out, so callers never share memory with the store.
package entry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

// Repo provides entry persistence backed by an in-memory map.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]domain.Entry
}

// New creates an empty in-memory entry repository.
func New() *Repo {
	return &Repo{
		byID: make(map[uuid.UUID]domain.Entry),
	}
}

// Create inserts a new entry, assigning its ID and timestamps, and returns
// the persisted copy.
func (r *Repo) Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	_ = ctx
	now := time.Now().UTC()

	stored := cloneEntry(*entry)
	stored.ID = uuid.New()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[stored.ID]; ok {
		return nil, fmt.Errorf("entry %s: %w", stored.ID, domain.ErrAlreadyExists)
	}
	r.byID[stored.ID] = stored

	out := cloneEntry(stored)
	return &out, nil
}

// GetByID returns the entry with the given ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}

	out := cloneEntry(stored)
	return &out, nil
}

// List returns all entries ordered by creation time.
func (r *Repo) List(ctx context.Context) ([]*domain.Entry, error) {
	return r.ListByFilter(ctx, domain.EntryFilter{})
}

// ListByFilter returns entries matching the filter, ordered by creation
// time. A zero filter matches everything; the author filter is a
// case-insensitive substring match.
func (r *Repo) ListByFilter(ctx context.Context, f domain.EntryFilter) ([]*domain.Entry, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Entry, 0)
	for _, stored := range r.byID {
		if f.Status != nil && stored.Status != *f.Status {
			continue
		}
		if f.Author != nil && !matchesAuthor(stored.Author, *f.Author) {
			continue
		}
		cp := cloneEntry(stored)
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// Update applies the non-nil fields of params to the entry and bumps
// UpdatedAt. An all-nil params still bumps UpdatedAt; the touch itself is
// the update.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.EntryUpdateParams) (*domain.Entry, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}

	if params.Title != nil {
		stored.Title = *params.Title
	}
	if params.Author != nil {
		stored.Author = *params.Author
	}
	if params.Status != nil {
		stored.Status = *params.Status
	}
	if params.Notes != nil {
		notes := *params.Notes
		stored.Notes = &notes
	}
	stored.UpdatedAt = time.Now().UTC()

	r.byID[id] = stored

	out := cloneEntry(stored)
	return &out, nil
}

// Delete removes the entry with the given ID.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}
	delete(r.byID, id)
	return nil
}

func matchesAuthor(author, query string) bool {
	return strings.Contains(strings.ToLower(author), strings.ToLower(query))
}

func cloneEntry(e domain.Entry) domain.Entry {
	cp := e
	if e.Notes != nil {
		notes := *e.Notes
		cp.Notes = &notes
	}
	return cp
}
