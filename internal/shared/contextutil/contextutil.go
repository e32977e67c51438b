package contextutil

import "context"

// private key type so no other package can collide with ours
type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID injects a request id into the context (also used by tests)
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetRequestID reads the request id back; empty when the middleware did not run
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}
