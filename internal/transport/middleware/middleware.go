package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler. The named type keeps
// constructor signatures readable; chi's Use accepts it directly.
type Middleware func(http.Handler) http.Handler
