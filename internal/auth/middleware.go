// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/movierec/internal/models"
)

type contextKey string

// UserContextKey is the context key for the authenticated user.
const UserContextKey contextKey = "auth_user"

// WWWAuthenticate is sent with 401 responses.
const WWWAuthenticate = `Basic realm="Movierec", charset="UTF-8"`

// ErrorResponder writes an error response. The API package supplies its
// JSON envelope writer.
type ErrorResponder func(w http.ResponseWriter, status int, code, message string, err error)

// Middleware enforces HTTP Basic authentication.
type Middleware struct {
	authenticator *Authenticator
	respond       ErrorResponder
}

// NewMiddleware creates Basic auth middleware around a.
func NewMiddleware(a *Authenticator, respond ErrorResponder) *Middleware {
	if respond == nil {
		respond = plainError
	}
	return &Middleware{authenticator: a, respond: respond}
}

// RequireBasic rejects requests without valid Basic credentials and stores
// the authenticated user in the request context.
func (m *Middleware) RequireBasic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			m.handleAuthError(w, ErrNoCredentials)
			return
		}

		user, err := m.authenticator.Check(Attempt{
			Username:   username,
			Password:   password,
			Channel:    ChannelHTTP,
			RemoteAddr: r.RemoteAddr,
		})
		if err != nil {
			m.handleAuthError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

func (m *Middleware) handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrTooManyAttempts):
		w.Header().Set("Retry-After", "30")
		m.respond(w, http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS", "Too many failed login attempts", err)
	case errors.Is(err, ErrNoCredentials):
		w.Header().Set("WWW-Authenticate", WWWAuthenticate)
		m.respond(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", err)
	default:
		w.Header().Set("WWW-Authenticate", WWWAuthenticate)
		m.respond(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials", err)
	}
}

func plainError(w http.ResponseWriter, status int, _, message string, _ error) {
	http.Error(w, message, status)
}

// ContextWithUser returns ctx carrying user.
func ContextWithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// UserFromContext retrieves the authenticated user.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(models.User)
	return user, ok
}
