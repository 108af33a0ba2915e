package auth

import "context"

type contextKey int

const sessionKey contextKey = iota

// ContextWithSession returns a context carrying the session.
func ContextWithSession(ctx context.Context, session UserSession) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext retrieves the session stored by the auth middleware.
func SessionFromContext(ctx context.Context) (UserSession, bool) {
	session, ok := ctx.Value(sessionKey).(UserSession)
	return session, ok
}
