// Package http exposes the session provider over HTTP: the session-resolving
// middleware, login rate limiting and the /v1/session handlers.
package http

import (
	"context"

	sessionDomain "github.com/fraservotes/console/internal/session/domain"
)

type sessionKey struct{}

type tokenHashKey struct{}

// WithSession stores the resolved session in ctx.
func WithSession(ctx context.Context, session sessionDomain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSession returns the session stored in ctx, or the anonymous session.
func GetSession(ctx context.Context) sessionDomain.Session {
	session, ok := ctx.Value(sessionKey{}).(sessionDomain.Session)
	if !ok {
		return sessionDomain.Anonymous()
	}
	return session
}

// WithTokenHash stores the hash of the presented token so logout can revoke it.
func WithTokenHash(ctx context.Context, tokenHash string) context.Context {
	return context.WithValue(ctx, tokenHashKey{}, tokenHash)
}

// GetTokenHash returns the hash of the token presented with the request.
func GetTokenHash(ctx context.Context) (string, bool) {
	tokenHash, ok := ctx.Value(tokenHashKey{}).(string)
	return tokenHash, ok && tokenHash != ""
}
