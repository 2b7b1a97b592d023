package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	clientKeyKey ctxKey = "client_key"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientKey stores the rate-limit client key (resolved source address)
// in the context.
func WithClientKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, clientKeyKey, key)
}

// ClientKeyFromCtx extracts the client key from the context.
// Returns an empty string if absent.
func ClientKeyFromCtx(ctx context.Context) string {
	key, _ := ctx.Value(clientKeyKey).(string)
	return key
}
