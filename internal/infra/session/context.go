package session

import (
	"context"

	"storefront/internal/domain/entity"
)

type contextKey struct{}

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, sess *entity.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// FromContext returns the session carried by the context, or nil.
func FromContext(ctx context.Context) *entity.Session {
	sess, _ := ctx.Value(contextKey{}).(*entity.Session)

	return sess
}

// TokenFromContext returns the bearer token carried by the context, or ""
// when no authenticated session is present.
func TokenFromContext(ctx context.Context) string {
	if sess := FromContext(ctx); sess.Authenticated() {
		return sess.Token
	}

	return ""
}
