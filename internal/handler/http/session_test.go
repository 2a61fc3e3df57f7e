package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/where-is-it/internal/config"
	"github.com/MKhiriev/where-is-it/internal/service"
	"github.com/MKhiriev/where-is-it/models"
)

func executeCreateSession(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.createSession(rr, req)
	return rr
}

func sessionCookieFromResponse(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}
	t.Fatalf("no %q cookie in response", sessionCookieName)
	return nil
}

func TestCreateSession_SetsHTTPOnlyCookie(t *testing.T) {
	h := newTestHandler(&service.Services{
		SessionService: &mockSessionService{
			issueSessionFn: func(_ context.Context, claims models.SessionClaims) (models.Token, error) {
				return models.Token{SignedString: "signed-jwt", Email: claims.Email}, nil
			},
		},
	})
	h.app = config.App{TokenDuration: 2 * time.Hour}

	rr := executeCreateSession(h, `{"email":"owner@example.com","name":"Owner"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())

	cookie := sessionCookieFromResponse(t, rr)
	assert.Equal(t, "signed-jwt", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), cookie.Expires, time.Minute)
}

func TestCreateSession_ProductionCookieAttributes(t *testing.T) {
	h := newTestHandler(&service.Services{
		SessionService: &mockSessionService{
			issueSessionFn: func(_ context.Context, _ models.SessionClaims) (models.Token, error) {
				return models.Token{SignedString: "signed-jwt"}, nil
			},
		},
	})
	h.app = config.App{TokenDuration: time.Hour, Environment: config.EnvProduction}

	rr := executeCreateSession(h, `{"email":"owner@example.com","name":"Owner"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	cookie := sessionCookieFromResponse(t, rr)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestCreateSession_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{
		SessionService: &mockSessionService{
			issueSessionFn: func(_ context.Context, _ models.SessionClaims) (models.Token, error) {
				t.Fatal("IssueSession must not be called for malformed JSON")
				return models.Token{}, nil
			},
		},
	})

	rr := executeCreateSession(h, `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, rr.Result().Cookies())
}

func TestCreateSession_InvalidClaims(t *testing.T) {
	h := newTestHandler(&service.Services{
		SessionService: &mockSessionService{
			issueSessionFn: func(_ context.Context, _ models.SessionClaims) (models.Token, error) {
				return models.Token{}, service.ErrInvalidDataProvided
			},
		},
	})

	rr := executeCreateSession(h, `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, rr.Result().Cookies())
}

func TestDestroySession_ClearsCookie(t *testing.T) {
	h := newTestHandler(&service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.destroySession(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())

	cookie := sessionCookieFromResponse(t, rr)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.Expires.Before(time.Now()))
}
