package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the kind of mutation recorded in the audit log.
// Reads are not audited.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// AuditOutcome records whether the audited operation succeeded.
type AuditOutcome string

const (
	AuditOutcomeSuccess AuditOutcome = "success"
	AuditOutcomeFailure AuditOutcome = "failure"
)

func (o AuditOutcome) String() string { return string(o) }

func (o AuditOutcome) IsValid() bool {
	switch o {
	case AuditOutcomeSuccess, AuditOutcomeFailure:
		return true
	}
	return false
}

// AuditRecord logs one mutation attempt. Records are immutable once written
// and never contain request bodies, field values, or credentials. Detail is
// a short sanitized reason, set only on failure records.
type AuditRecord struct {
	ID            uuid.UUID
	Timestamp     time.Time
	Actor         string
	Action        AuditAction
	EntryID       uuid.UUID
	CorrelationID string
	Outcome       AuditOutcome
	Detail        string
}
