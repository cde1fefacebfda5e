package context

import (
	stdCtx "context"
)

type contextKey string

var requestIDKey contextKey = "request_id"

func SetRequestID(ctx stdCtx.Context, requestID string) stdCtx.Context {
	return stdCtx.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request ID set by the middleware, or "" when
// the middleware did not run.
func GetRequestID(ctx stdCtx.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
