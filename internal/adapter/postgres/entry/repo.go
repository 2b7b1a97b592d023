// Package entry implements the entry store using PostgreSQL. Queries are
// built with squirrel and rows scanned with scany; the database assigns
// IDs and timestamps through column defaults.
package entry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/heartmarshall/readinglist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

const table = "entries"

var columns = []string{"id", "title", "author", "status", "notes", "created_at", "updated_at"}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

// entryRow mirrors the entries table for scany.
type entryRow struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	Author    string    `db:"author"`
	Status    string    `db:"status"`
	Notes     *string   `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row entryRow) toDomain() *domain.Entry {
	e := domain.Entry{
		ID:        row.ID,
		Title:     row.Title,
		Author:    row.Author,
		Status:    domain.ReadingStatus(row.Status),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
	if row.Notes != nil {
		notes := *row.Notes
		e.Notes = &notes
	}
	return &e
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, r.db, &row, sql, args...); err != nil {
		return nil, mapError(err, "entry", id)
	}

	return row.toDomain(), nil
}

// List returns all entries ordered by creation time.
// Returns an empty slice (not nil) when the table is empty.
func (r *Repo) List(ctx context.Context) ([]*domain.Entry, error) {
	return r.ListByFilter(ctx, domain.EntryFilter{})
}

// ListByFilter returns entries matching the filter, ordered by creation
// time. A zero filter matches everything; the author filter is a
// case-insensitive substring match. Returns an empty slice (not nil) when
// nothing matches.
func (r *Repo) ListByFilter(ctx context.Context, f domain.EntryFilter) ([]*domain.Entry, error) {
	qb := psql.Select(columns...).
		From(table).
		OrderBy("created_at", "id")

	if f.Status != nil {
		qb = qb.Where(squirrel.Eq{"status": string(*f.Status)})
	}
	if f.Author != nil {
		qb = qb.Where(squirrel.ILike{"author": "%" + escapeLike(*f.Author) + "%"})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	out := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// escapeLike neutralizes LIKE metacharacters in user input so a filter
// value matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the persisted copy with the
// database-assigned ID and timestamps.
func (r *Repo) Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	sql, args, err := psql.Insert(table).
		Columns("title", "author", "status", "notes").
		Values(entry.Title, entry.Author, string(entry.Status), entry.Notes).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, r.db, &row, sql, args...); err != nil {
		return nil, mapError(err, "entry", uuid.Nil)
	}

	return row.toDomain(), nil
}

// Update applies the non-nil fields of params to the entry and bumps
// updated_at. An all-nil params still bumps updated_at; the touch itself
// is the update. Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.EntryUpdateParams) (*domain.Entry, error) {
	qb := psql.Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if params.Title != nil {
		qb = qb.Set("title", *params.Title)
	}
	if params.Author != nil {
		qb = qb.Set("author", *params.Author)
	}
	if params.Status != nil {
		qb = qb.Set("status", string(*params.Status))
	}
	if params.Notes != nil {
		qb = qb.Set("notes", *params.Notes)
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, r.db, &row, sql, args...); err != nil {
		return nil, mapError(err, "entry", id)
	}

	return row.toDomain(), nil
}

// Delete removes an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := psql.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err, "entry", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn and scany errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors keep their identity, never mapped to domain errors
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows / scany not-found -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
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

	// Everything else: wrap with entity and id
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
