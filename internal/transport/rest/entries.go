package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/readinglist-backend/internal/domain"
	"github.com/heartmarshall/readinglist-backend/internal/service/readinglist"
	"github.com/heartmarshall/readinglist-backend/internal/transport/middleware"
	"github.com/heartmarshall/readinglist-backend/internal/transport/problem"
	"github.com/heartmarshall/readinglist-backend/pkg/ctxutil"
)

// entryService defines the minimal interface needed by EntryHandler.
type entryService interface {
	CreateEntry(ctx context.Context, input readinglist.CreateEntryInput) (*domain.Entry, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	ListEntries(ctx context.Context, input readinglist.ListEntriesInput) ([]*domain.Entry, error)
	UpdateEntry(ctx context.Context, input readinglist.UpdateEntryInput) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

// auditor records mutation outcomes. Reads are never audited.
type auditor interface {
	Log(ctx context.Context, record domain.AuditRecord)
}

// EntryHandler serves the reading-list REST endpoints.
type EntryHandler struct {
	svc   entryService
	audit auditor
	log   *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc entryService, audit auditor, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, audit: audit, log: logger.With("handler", "entries")}
}

// createEntryRequest carries the client-settable fields. There are no keys
// for id or timestamps here: those are store-assigned, and matching keys in
// a payload are dropped by the decoder along with any other unknown field.
type createEntryRequest struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// updateEntryRequest is a partial update; absent fields keep stored values.
type updateEntryRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type entryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// List handles GET /entries.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListEntries(r.Context(), readinglist.ListEntriesInput{})
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// ListByFilter handles GET /entries/filter/by-status. Both query parameters
// are optional; an empty value counts as absent.
func (h *EntryHandler) ListByFilter(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListEntries(r.Context(), readinglist.ListEntriesInput{
		Status: queryParam(r, "status"),
		Author: queryParam(r, "author"),
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			problem.Write(w, problem.BadRequest(violationDetail(verr), r.URL.Path))
			return
		}
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// Create handles POST /entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	// The write and its audit record run to completion even if the client
	// disconnects mid-request.
	ctx := context.WithoutCancel(r.Context())
	entry, err := h.svc.CreateEntry(ctx, readinglist.CreateEntryInput{
		Title:  req.Title,
		Author: req.Author,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		h.mutationError(ctx, w, r, domain.AuditActionCreate, uuid.Nil, err)
		return
	}

	h.auditSuccess(ctx, r, domain.AuditActionCreate, entry.ID)
	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Get handles GET /entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, r, id)
			return
		}
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Update handles PUT /entries/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateEntryRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	ctx := context.WithoutCancel(r.Context())
	entry, err := h.svc.UpdateEntry(ctx, readinglist.UpdateEntryInput{
		EntryID: id,
		Title:   req.Title,
		Author:  req.Author,
		Status:  req.Status,
		Notes:   req.Notes,
	})
	if err != nil {
		h.mutationError(ctx, w, r, domain.AuditActionUpdate, id, err)
		return
	}

	h.auditSuccess(ctx, r, domain.AuditActionUpdate, entry.ID)
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx := context.WithoutCancel(r.Context())
	if err := h.svc.DeleteEntry(ctx, id); err != nil {
		h.mutationError(ctx, w, r, domain.AuditActionDelete, id, err)
		return
	}

	h.auditSuccess(ctx, r, domain.AuditActionDelete, id)
	w.WriteHeader(http.StatusNoContent)
}

// decodeBody decodes the JSON request body into dst, writing the problem
// response itself on failure. A body past the size cap surfaces here as
// *http.MaxBytesError once the reader installed by BodyLimit trips.
func (h *EntryHandler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			problem.Write(w, problem.PayloadTooLarge(maxBytesErr.Limit, r.URL.Path))
			return false
		}
		problem.Write(w, problem.Validation(r.URL.Path, []problem.Violation{
			{Field: "body", Message: "malformed JSON"},
		}))
		return false
	}
	return true
}

// mutationError maps a failed create/update/delete to its problem response.
// Validation and not-found outcomes are client errors and leave no audit
// trail; only an unexpected failure produces a failure record, carrying the
// same correlation id as the masked 500 the client receives.
func (h *EntryHandler) mutationError(ctx context.Context, w http.ResponseWriter, r *http.Request, action domain.AuditAction, entryID uuid.UUID, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		problem.Write(w, problem.Validation(r.URL.Path, toViolations(verr)))
	case errors.Is(err, domain.ErrValidation):
		problem.Write(w, problem.Validation(r.URL.Path, nil))
	case errors.Is(err, domain.ErrNotFound):
		writeNotFound(w, r, entryID)
	default:
		p := problem.Internal(r.URL.Path)
		h.log.ErrorContext(ctx, "internal error",
			slog.String("error", err.Error()),
			slog.String("correlation_id", p.CorrelationID),
		)
		h.audit.Log(ctx, domain.AuditRecord{
			Actor:         clientActor(ctx, r),
			Action:        action,
			EntryID:       entryID,
			CorrelationID: p.CorrelationID,
			Outcome:       domain.AuditOutcomeFailure,
			Detail:        err.Error(),
		})
		problem.Write(w, p)
	}
}

// internalError logs the failure and writes the masked 500. Read paths
// produce no audit record.
func (h *EntryHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	p := problem.Internal(r.URL.Path)
	h.log.ErrorContext(r.Context(), "internal error",
		slog.String("error", err.Error()),
		slog.String("correlation_id", p.CorrelationID),
	)
	problem.Write(w, p)
}

// auditSuccess writes the single success record for a completed mutation,
// correlated with the request id the client already holds.
func (h *EntryHandler) auditSuccess(ctx context.Context, r *http.Request, action domain.AuditAction, entryID uuid.UUID) {
	h.audit.Log(ctx, domain.AuditRecord{
		Actor:         clientActor(ctx, r),
		Action:        action,
		EntryID:       entryID,
		CorrelationID: ctxutil.RequestIDFromCtx(ctx),
		Outcome:       domain.AuditOutcomeSuccess,
	})
}

// pathID parses the {id} path parameter. A malformed id writes the same 404
// as an unknown one, so the two cases cannot be told apart.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		problem.Write(w, problem.NotFound(fmt.Sprintf("entry %s: not found", raw), r.URL.Path))
		return uuid.Nil, false
	}
	return id, true
}

func writeNotFound(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	problem.Write(w, problem.NotFound(fmt.Sprintf("entry %s: not found", id), r.URL.Path))
}

// clientActor attributes a mutation to the same key the rate limiter
// buckets by.
func clientActor(ctx context.Context, r *http.Request) string {
	if key := ctxutil.ClientKeyFromCtx(ctx); key != "" {
		return key
	}
	return middleware.ClientKey(r)
}

func queryParam(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}

func toViolations(verr *domain.ValidationError) []problem.Violation {
	out := make([]problem.Violation, len(verr.Errors))
	for i, fe := range verr.Errors {
		out[i] = problem.Violation{Field: fe.Field, Message: fe.Message}
	}
	return out
}

// violationDetail flattens field violations into one detail line for query
// parameter errors, which have no body to anchor an errors array on.
func violationDetail(verr *domain.ValidationError) string {
	parts := make([]string, len(verr.Errors))
	for i, fe := range verr.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

func toEntryResponse(entry *domain.Entry) entryResponse {
	return entryResponse{
		ID:        entry.ID.String(),
		Title:     entry.Title,
		Author:    entry.Author,
		Status:    entry.Status.String(),
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

func toEntryResponses(entries []*domain.Entry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = toEntryResponse(e)
	}
	return out
}
