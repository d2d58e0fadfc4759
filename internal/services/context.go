package services

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	viewKey      contextKey = "view"
	requestIDKey contextKey = "request_id"
)

// WithView annotates context with the dashboard view handling the interaction.
func WithView(ctx context.Context, view string) context.Context {
	if view == "" {
		return ctx
	}
	return context.WithValue(ctx, viewKey, view)
}

// ViewFromContext returns the view name if present.
func ViewFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(viewKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// EnsureRequestID returns ctx unchanged when it already carries a correlation
// identifier, otherwise it stamps a fresh one.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := RequestIDFromContext(ctx); ok {
		return ctx, id
	}
	id := uuid.NewString()
	return WithRequestID(ctx, id), id
}
