// Package audit implements the audit sink in process memory. Records are
// held in an append-only slice, matching the durability of the memory
// entry store it ships with.
package audit

import (
	"context"
	"sync"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

// Sink collects audit records in memory. It is safe for concurrent use.
type Sink struct {
	mu      sync.Mutex
	records []domain.AuditRecord
}

// New creates an empty in-memory audit sink.
func New() *Sink {
	return &Sink{}
}

// Append adds one record to the log.
func (s *Sink) Append(ctx context.Context, record domain.AuditRecord) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	return nil
}

// Records returns a copy of everything appended so far, in append order.
func (s *Sink) Records() []domain.AuditRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.AuditRecord, len(s.records))
	copy(out, s.records)
	return out
}
