package logging

import "context"

type requestIDKey struct{}

const requestIDField = "request_id"

// WithRequestID returns a context carrying id. Loggers attach it to every
// record and the HTTP client forwards it to the server.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
