// Package problem renders errors as RFC 7807 problem-detail responses.
// Every formatted error gets a fresh correlation id, letting operators join
// a client-visible failure with the log and audit records it produced.
package problem

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ContentType is the problem-detail media type, distinct from plain JSON.
const ContentType = "application/problem+json"

// Error type URIs. Stable identifiers for the error taxonomy; clients match
// on these rather than on titles or details.
const (
	TypeValidationError   = "/errors/validation_error"
	TypeNotFound          = "/errors/not_found"
	TypeRateLimitExceeded = "/errors/rate_limit_exceeded"
	TypePayloadTooLarge   = "/errors/payload-too-large"
	TypeMethodNotAllowed  = "/errors/method_not_allowed"
	TypeInternalError     = "/errors/internal_error"
)

// internalDetail replaces server-side error text on 500 responses. The real
// error is logged with the correlation id, never sent to the client.
const internalDetail = "internal server error"

// Violation is one field-level constraint failure, carried as an RFC 7807
// extension member so a single 422 reports every violation at once.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Problem is the RFC 7807 response body.
type Problem struct {
	Type          string      `json:"type"`
	Title         string      `json:"title"`
	Status        int         `json:"status"`
	Detail        string      `json:"detail"`
	Instance      string      `json:"instance"`
	CorrelationID string      `json:"correlation_id"`
	Errors        []Violation `json:"errors,omitempty"`
}

// New builds a Problem and stamps a fresh correlation id. A new id is
// generated for every formatted error even when the request already carries
// one upstream, so each surfaced error is traceable to exactly one response.
func New(typ, title string, status int, detail, instance string) Problem {
	return Problem{
		Type:          typ,
		Title:         title,
		Status:        status,
		Detail:        detail,
		Instance:      instance,
		CorrelationID: uuid.NewString(),
	}
}

// Validation builds a 422 problem carrying the full violation list.
func Validation(instance string, violations []Violation) Problem {
	p := New(TypeValidationError, "Validation Error", http.StatusUnprocessableEntity,
		"request validation failed", instance)
	p.Errors = violations
	return p
}

// BadRequest builds a 400 problem for malformed query parameters.
func BadRequest(detail, instance string) Problem {
	return New(TypeValidationError, "Validation Error", http.StatusBadRequest, detail, instance)
}

// NotFound builds a 404 problem.
func NotFound(detail, instance string) Problem {
	return New(TypeNotFound, "Not Found", http.StatusNotFound, detail, instance)
}

// RateLimitExceeded builds a 429 problem. The Retry-After header is set by
// the caller; retryAfterSeconds only feeds the human-readable detail.
func RateLimitExceeded(retryAfterSeconds int, instance string) Problem {
	detail := fmt.Sprintf("rate limit exceeded, retry after %d seconds", retryAfterSeconds)
	return New(TypeRateLimitExceeded, "Rate Limit Exceeded", http.StatusTooManyRequests, detail, instance)
}

// PayloadTooLarge builds a 413 problem.
func PayloadTooLarge(maxBytes int64, instance string) Problem {
	detail := fmt.Sprintf("request body exceeds the maximum allowed size of %d bytes", maxBytes)
	return New(TypePayloadTooLarge, "Payload Too Large", http.StatusRequestEntityTooLarge, detail, instance)
}

// MethodNotAllowed builds a 405 problem.
func MethodNotAllowed(instance string) Problem {
	return New(TypeMethodNotAllowed, "Method Not Allowed", http.StatusMethodNotAllowed,
		"method not allowed for this resource", instance)
}

// Internal builds a 500 problem with masked detail.
func Internal(instance string) Problem {
	return New(TypeInternalError, "Internal Server Error", http.StatusInternalServerError,
		internalDetail, instance)
}

// Write serializes p with the problem media type and p.Status as the HTTP
// status code.
func Write(w http.ResponseWriter, p Problem) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	json.NewEncoder(w).Encode(p) //nolint:errcheck
}
