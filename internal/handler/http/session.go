package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/where-is-it/internal/logger"
	"github.com/MKhiriev/where-is-it/internal/service"
	"github.com/MKhiriev/where-is-it/internal/utils"
	"github.com/MKhiriev/where-is-it/models"
)

// sessionCookieName is the name of the HTTP-only cookie that carries the
// signed session token between the browser and the server.
const sessionCookieName = "token"

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var claims models.SessionClaims
	if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
		log.Err(err).Str("func", "*Handler.createSession").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.SessionService.IssueSession(ctx, claims)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid claims provided")
			http.Error(w, "invalid claims provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during session creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString, time.Now().Add(h.app.TokenDuration)))
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

func (h *Handler) destroySession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	log.Debug().Str("func", "*Handler.destroySession").Msg("clearing session cookie")

	http.SetCookie(w, h.expiredSessionCookie())
	utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// sessionCookie builds the session cookie for the given signed token.
//
// The cookie is always HTTP-only so that page scripts cannot read the token.
// In production the server sits behind TLS on a different origin than the
// frontend, so the cookie is marked Secure with SameSite=None; in every other
// environment SameSite=Lax is used so that plain-HTTP development setups keep
// working.
func (h *Handler) sessionCookie(signedToken string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    signedToken,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if h.app.IsProduction() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}

	return cookie
}

// expiredSessionCookie returns a cookie that instructs the browser to drop
// the session cookie immediately.
func (h *Handler) expiredSessionCookie() *http.Cookie {
	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	return cookie
}
