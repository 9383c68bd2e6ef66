package telemetry

import "context"

// contextKey is an unexported type for context keys in this package.
// Using a custom type prevents collisions with keys from other packages
// that might use the same underlying string value.
type contextKey string

const (
	// ContextKeyCommandID identifies one operator command in the shell.
	ContextKeyCommandID contextKey = "command_id"
	// ContextKeyOrderID identifies the order transaction in progress.
	ContextKeyOrderID contextKey = "order_id"
	// ContextKeyRequestID identifies an HTTP request to the report API.
	ContextKeyRequestID contextKey = "request_id"
)

var loggedKeys = []contextKey{ContextKeyCommandID, ContextKeyOrderID, ContextKeyRequestID}

func WithCommandID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyCommandID, id)
}

func WithOrderID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyOrderID, id)
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, id)
}

// Value returns the string stored under key, or "" if absent.
func Value(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
