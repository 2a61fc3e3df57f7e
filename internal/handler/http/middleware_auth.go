package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/where-is-it/internal/logger"
	"github.com/MKhiriev/where-is-it/internal/service"
	"github.com/MKhiriev/where-is-it/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, validates the signed token inside it via
// [service.SessionService.ParseSession], and on success stores the
// authenticated user's email in the request context under
// [utils.UserEmailCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The session cookie is absent ([ErrNoSessionCookie]).
//   - The session cookie carries an empty value ([ErrEmptySessionCookie]).
//   - The token has expired ([service.ErrTokenIsExpired]).
//   - The token is otherwise invalid or cannot be parsed.
//
// The downstream handler runs only after a token has been validated; every
// failure path ends the request here.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Err(ErrNoSessionCookie).Send()
			http.Error(w, ErrNoSessionCookie.Error(), http.StatusUnauthorized)
			return
		}
		if cookie.Value == "" {
			log.Err(ErrEmptySessionCookie).Send()
			http.Error(w, ErrEmptySessionCookie.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.SessionService.ParseSession(ctx, cookie.Value)

		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("session expired")
				http.Error(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing session token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		// Store the authenticated user's email in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserEmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireOwner is an HTTP middleware for per-user listing routes.
//
// Those routes select records by the `email` query parameter, so the
// middleware compares it with the email of the authenticated session and
// rejects the request with HTTP 403 Forbidden ([ErrOwnerMismatch]) when they
// differ. It must run after [Handler.auth].
func (h *Handler) requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		sessionEmail, ok := utils.GetUserEmailFromContext(r.Context())
		if !ok {
			log.Error().Msg("no authenticated email in request context")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if requested := r.URL.Query().Get("email"); requested != sessionEmail {
			log.Err(ErrOwnerMismatch).Str("requested", requested).Send()
			http.Error(w, ErrOwnerMismatch.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
