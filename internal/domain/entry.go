package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field length bounds for reading-list entries, counted in Unicode code points.
const (
	TitleMaxLen  = 200
	AuthorMaxLen = 100
	NotesMaxLen  = 1000
)

// ReadingStatus represents the reading progress of an entry.
type ReadingStatus string

const (
	StatusToRead    ReadingStatus = "to_read"
	StatusReading   ReadingStatus = "reading"
	StatusCompleted ReadingStatus = "completed"
)

func (s ReadingStatus) String() string { return string(s) }

func (s ReadingStatus) IsValid() bool {
	switch s {
	case StatusToRead, StatusReading, StatusCompleted:
		return true
	}
	return false
}

// AllReadingStatuses returns every accepted status value, in declaration order.
// Used to build "accepted values" messages in validation violations.
func AllReadingStatuses() []ReadingStatus {
	return []ReadingStatus{StatusToRead, StatusReading, StatusCompleted}
}

// Entry is a single reading-list item. ID and both timestamps are assigned
// by the store and are never client-settable.
type Entry struct {
	ID        uuid.UUID
	Title     string
	Author    string
	Status    ReadingStatus
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryUpdateParams is a partial update: nil fields are left unchanged.
type EntryUpdateParams struct {
	Title  *string
	Author *string
	Status *ReadingStatus
	Notes  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.Status == nil && p.Notes == nil
}

// EntryFilter narrows a listing. Status matches exactly; Author matches as a
// case-insensitive substring. Nil fields do not constrain the result.
type EntryFilter struct {
	Status *ReadingStatus
	Author *string
}

// IsZero reports whether the filter constrains nothing.
func (f EntryFilter) IsZero() bool {
	return f.Status == nil && f.Author == nil
}
