// Package audit records who changed what on the reading list. Records are
// appended through a pluggable sink; a failing sink never fails the
// operation being audited.
package audit

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

type sink interface {
	Append(ctx context.Context, record domain.AuditRecord) error
}

// Logger writes audit records for entry mutations.
type Logger struct {
	sink sink
	log  *slog.Logger
}

// NewLogger creates a new audit logger over the given sink.
func NewLogger(log *slog.Logger, s sink) *Logger {
	return &Logger{
		sink: s,
		log:  log.With("service", "audit"),
	}
}

// Log appends one audit record. Missing ID and Timestamp are assigned here,
// and free-text fields are sanitized before they are persisted. Sink
// failures are reported to the service logger only; the caller's operation
// already succeeded or failed on its own terms.
func (l *Logger) Log(ctx context.Context, record domain.AuditRecord) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}
	record.Actor = sanitize(record.Actor)
	record.CorrelationID = sanitize(record.CorrelationID)
	record.Detail = sanitize(record.Detail)

	if err := l.sink.Append(ctx, record); err != nil {
		l.log.WarnContext(ctx, "audit append failed",
			slog.Any("error", err),
			slog.String("action", record.Action.String()),
			slog.String("entry_id", record.EntryID.String()),
			slog.String("correlation_id", record.CorrelationID),
		)
	}
}

// sanitize replaces control characters (below 0x20 plus DEL) with '_' so
// persisted audit text cannot inject newlines or escapes into log tooling.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return '_'
		}
		return r
	}, s)
}
