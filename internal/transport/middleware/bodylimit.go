package middleware

import (
	"net/http"

	"github.com/heartmarshall/readinglist-backend/internal/transport/problem"
)

// BodyLimit returns middleware that rejects requests whose declared
// Content-Length exceeds maxBytes and caps chunked bodies with
// http.MaxBytesReader, so a decode past the limit surfaces as
// *http.MaxBytesError in the handler.
func BodyLimit(maxBytes int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				problem.Write(w, problem.PayloadTooLarge(maxBytes, r.URL.Path))
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
