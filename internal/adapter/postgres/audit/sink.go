// Package audit implements the audit sink using PostgreSQL. The log is
// append-only; records arrive fully formed from the audit service.
package audit

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/readinglist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

const table = "audit_log"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Sink provides audit log persistence backed by PostgreSQL.
type Sink struct {
	db postgres.Querier
}

// New creates a new audit sink.
func New(db postgres.Querier) *Sink {
	return &Sink{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts an audit record. Records are immutable; there is no update
// or delete path.
func (s *Sink) Append(ctx context.Context, rec domain.AuditRecord) error {
	sql, args, err := psql.Insert(table).
		Columns("id", "ts", "actor", "action", "entry_id", "correlation_id", "outcome", "detail").
		Values(
			rec.ID,
			rec.Timestamp,
			rec.Actor,
			string(rec.Action),
			nilUUIDToPgUUID(rec.EntryID),
			rec.CorrelationID,
			string(rec.Outcome),
			rec.Detail,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "audit_record", rec.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// nilUUIDToPgUUID converts a uuid.UUID to pgtype.UUID (uuid.Nil -> NULL).
// Failure records for create attempts carry no entry ID.
func nilUUIDToPgUUID(id uuid.UUID) pgtype.UUID {
	if id == uuid.Nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: id, Valid: true}
}
