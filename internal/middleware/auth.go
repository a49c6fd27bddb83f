package middleware

import (
	"context"
	"net/http"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
	"github.com/RigobertoEHA1/chismezon/internal/jwt"
	"github.com/RigobertoEHA1/chismezon/internal/utils"
)

// Keys for request-context values set by this package
type key int

const (
	authStateKey key = iota
	deviceIdKey
)

const AccessTokenCookie = "accessToken"

// WithAuthState decodes the session cookie when present and stores the
// resulting AuthState in the request context. Requests without a valid
// cookie pass through as anonymous; nothing is rejected here.
func WithAuthState(jwtService jwt.JwtService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := domain.AuthState{}
			if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
				if decoded, err := jwtService.DecodeToken(cookie.Value); err == nil {
					state = decoded
				}
			}
			ctx := context.WithValue(r.Context(), authStateKey, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly rejects requests whose session cookie is missing, invalid or
// not an admin session.
func AdminOnly(jwtService jwt.JwtService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(AccessTokenCookie)
			if err == http.ErrNoCookie {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			} else if err != nil {
				http.Error(w, "Invalid cookie", http.StatusInternalServerError)
				return
			}

			state, err := jwtService.DecodeToken(cookie.Value)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !state.Admin {
				http.Error(w, "Access denied. Only for admin", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), authStateKey, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAuthState returns the AuthState stored by WithAuthState/AdminOnly.
// Anonymous when no middleware ran for this request.
func GetAuthState(r *http.Request) domain.AuthState {
	state, ok := r.Context().Value(authStateKey).(domain.AuthState)
	if !ok {
		return domain.AuthState{}
	}
	return state
}
