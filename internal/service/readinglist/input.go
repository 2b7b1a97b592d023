package readinglist

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
)

// rule binds one field to a predicate. Rules are evaluated in order without
// short-circuiting, so a single response carries every violation at once.
type rule struct {
	field   string
	ok      func() bool
	message string
}

func evaluate(rules []rule) error {
	var errs []domain.FieldError
	for _, r := range rules {
		if !r.ok() {
			errs = append(errs, domain.FieldError{Field: r.field, Message: r.message})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// statusMessage lists the accepted values so clients can fix the request
// without reading docs.
var statusMessage = "must be one of: " + strings.Join(statusNames(), ", ")

func statusNames() []string {
	all := domain.AllReadingStatuses()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.String()
	}
	return names
}

// validStatus accepts a missing value; enum membership is only checked when
// the client sent something.
func validStatus(s *string) bool {
	return s == nil || domain.ReadingStatus(*s).IsValid()
}

// runesAtMost counts Unicode code points, not bytes, so multibyte titles
// get the same budget as ASCII ones. Bounds are inclusive.
func runesAtMost(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// CreateEntryInput holds the parameters for adding an entry. Values are
// validated exactly as sent: no trimming, so a whitespace-only title is a
// present title.
type CreateEntryInput struct {
	Title  string
	Author string
	Status *string
	Notes  *string
}

// Validate checks all fields and collects all violations.
func (i CreateEntryInput) Validate() error {
	return evaluate([]rule{
		{"title", func() bool { return i.Title != "" }, "required"},
		{"title", func() bool { return runesAtMost(i.Title, domain.TitleMaxLen) }, "max 200 characters"},
		{"author", func() bool { return i.Author != "" }, "required"},
		{"author", func() bool { return runesAtMost(i.Author, domain.AuthorMaxLen) }, "max 100 characters"},
		{"status", func() bool { return validStatus(i.Status) }, statusMessage},
		{"notes", func() bool { return i.Notes == nil || runesAtMost(*i.Notes, domain.NotesMaxLen) }, "max 1000 characters"},
	})
}

// UpdateEntryInput holds the parameters for updating an entry. A nil field
// means "leave unchanged"; constraints apply only to provided fields, and a
// patch with no fields at all is a valid touch.
type UpdateEntryInput struct {
	EntryID uuid.UUID
	Title   *string
	Author  *string
	Status  *string
	Notes   *string
}

// Validate checks all provided fields and collects all violations.
func (i UpdateEntryInput) Validate() error {
	return evaluate([]rule{
		{"title", func() bool { return i.Title == nil || *i.Title != "" }, "required"},
		{"title", func() bool { return i.Title == nil || runesAtMost(*i.Title, domain.TitleMaxLen) }, "max 200 characters"},
		{"author", func() bool { return i.Author == nil || *i.Author != "" }, "required"},
		{"author", func() bool { return i.Author == nil || runesAtMost(*i.Author, domain.AuthorMaxLen) }, "max 100 characters"},
		{"status", func() bool { return validStatus(i.Status) }, statusMessage},
		{"notes", func() bool { return i.Notes == nil || runesAtMost(*i.Notes, domain.NotesMaxLen) }, "max 1000 characters"},
	})
}

// ListEntriesInput holds the optional list filters.
type ListEntriesInput struct {
	Status *string
	Author *string
}

// Validate checks the filter values.
func (i ListEntriesInput) Validate() error {
	return evaluate([]rule{
		{"status", func() bool { return validStatus(i.Status) }, statusMessage},
	})
}
