// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyLoadID ctxKey = "load_id"
)

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, loadID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if loadID != "" {
		ctx = context.WithValue(ctx, keyLoadID, loadID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// LoadID returns the dataset load id on the context if present
func LoadID(ctx context.Context) string {
	if v, ok := ctx.Value(keyLoadID).(string); ok {
		return v
	}
	return ""
}
