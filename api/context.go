package api

import (
	"context"
	"errors"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/auth"
)

type keyType string

const sessionKey keyType = "session"

// ctxWithSession adds an authenticated admin session to the context
func ctxWithSession(ctx context.Context, session auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// ctxGetSession retrieves the admin session placed by the auth middleware
func ctxGetSession(ctx context.Context) (auth.Session, error) {
	value := ctx.Value(sessionKey)
	if value == nil {
		return auth.Session{}, errors.New("no session in context")
	}
	session, ok := value.(auth.Session)
	if !ok {
		return auth.Session{}, errors.New("value is not of type `auth.Session`")
	}
	return session, nil
}
