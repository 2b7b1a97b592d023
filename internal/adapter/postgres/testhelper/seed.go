package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEntry inserts a reading-list entry with unique title and author.
// Returns the filled domain.Entry.
func SeedEntry(t *testing.T, pool *pgxpool.Pool) domain.Entry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.Entry{
		ID:        uuid.New(),
		Title:     "Test Book " + suffix,
		Author:    "Test Author " + suffix,
		Status:    domain.StatusToRead,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO entries (id, title, author, status, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.Title, entry.Author, string(entry.Status), entry.Notes, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert entry: %v", err)
	}

	return entry
}

// SeedAuditRecord inserts an audit record for the given entry ID.
// Returns the filled domain.AuditRecord.
func SeedAuditRecord(t *testing.T, pool *pgxpool.Pool, entryID uuid.UUID) domain.AuditRecord {
	t.Helper()
	ctx := context.Background()

	rec := domain.AuditRecord{
		ID:            uuid.New(),
		Timestamp:     time.Now().UTC().Truncate(time.Microsecond),
		Actor:         "test-actor-" + uniqueSuffix(),
		Action:        domain.AuditActionCreate,
		EntryID:       entryID,
		CorrelationID: uuid.NewString(),
		Outcome:       domain.AuditOutcomeSuccess,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO audit_log (id, ts, actor, action, entry_id, correlation_id, outcome, detail)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.Timestamp, rec.Actor, string(rec.Action), rec.EntryID, rec.CorrelationID, string(rec.Outcome), rec.Detail,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAuditRecord insert record: %v", err)
	}

	return rec
}
