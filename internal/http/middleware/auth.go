package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mgfilms/site-service/internal/utils/jwt"
	"github.com/mgfilms/site-service/internal/utils/response"
)

type contextKey string

const sessionKey contextKey = "session"

// Session is the caller's authentication state for one request. Token is
// whatever bearer token was sent; Claims is set only when it verified.
type Session struct {
	Token  string
	Claims *jwt.Claims
}

func (s Session) Authenticated() bool { return s.Claims != nil }

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the session injected by SessionMiddleware, or
// an empty one.
func SessionFromContext(ctx context.Context) Session {
	s, _ := ctx.Value(sessionKey).(Session)
	return s
}

// GetAdminIDFromContext extracts the verified admin id from the request context
func GetAdminIDFromContext(ctx context.Context) (int64, bool) {
	s := SessionFromContext(ctx)
	if !s.Authenticated() {
		return 0, false
	}
	return s.Claims.ID, true
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// SessionMiddleware parses an optional bearer token into a Session on the
// request context. It never rejects a request.
func SessionMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := Session{Token: bearerToken(r)}
			if s.Token != "" {
				if claims, err := jwt.ParseToken(s.Token, jwtSecret); err == nil {
					s.Claims = claims
				}
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

// RequireAdmin rejects requests without a token (401) or with a token that
// did not verify (403).
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := SessionFromContext(r.Context())

		if s.Token == "" {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(
				errors.New("access denied, no token provided")))
			return
		}
		if !s.Authenticated() {
			response.WriteJSON(w, http.StatusForbidden, response.GeneralError(
				errors.New("invalid or expired token")))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminHandler wraps a handler func with RequireAdmin
func AdminHandler(handler http.HandlerFunc) http.Handler {
	return RequireAdmin(handler)
}
