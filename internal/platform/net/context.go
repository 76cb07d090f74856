// Package net carries request scoped identity shared by the transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type userKey struct{}

// WithRequestID stores a request id where chi's RequestID middleware keeps it
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on ctx, or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// WithUser stores the authenticated operator on ctx
func WithUser(ctx context.Context, user string) context.Context {
	if user == "" {
		return ctx
	}
	return context.WithValue(ctx, userKey{}, user)
}

// User returns the authenticated operator on ctx, or ""
func User(ctx context.Context) string {
	u, _ := ctx.Value(userKey{}).(string)
	return u
}
