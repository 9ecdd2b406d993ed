package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/petpalhq/petpal/pkg/httpx"
	"github.com/petpalhq/petpal/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const authnTestIssuer = "petpal-user"

func newAuthnFixture(t *testing.T) (*jwtx.HS256, http.Handler, *string) {
	t.Helper()

	h, err := jwtx.NewHS256([]byte(strings.Repeat("k", jwtx.MinSecretLength)), authnTestIssuer)
	require.NoError(t, err)

	var seenUserID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = r.Context().Value(httpx.CtxKeyUserID).(string)
		w.WriteHeader(http.StatusOK)
	})

	return h, httpx.AuthnMiddleware(h)(inner), &seenUserID
}

func TestAuthnMiddleware_MissingToken(t *testing.T) {
	_, handler, _ := newAuthnFixture(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "missing bearer token")
	require.Contains(t, rec.Body.String(), "invalid_token")
}

func TestAuthnMiddleware_NonBearerScheme(t *testing.T) {
	_, handler, _ := newAuthnFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthnMiddleware_ValidToken(t *testing.T) {
	h, handler, seenUserID := newAuthnFixture(t)

	claims := jwtx.NewAccessClaims("user-1", "alice", authnTestIssuer, time.Hour, time.Now().UTC())
	token, err := h.Sign(claims)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-1", *seenUserID, "verified identity must reach the handler context")
}

func TestAuthnMiddleware_ExpiredToken(t *testing.T) {
	h, handler, _ := newAuthnFixture(t)

	claims := jwtx.NewAccessClaims("user-1", "alice", authnTestIssuer, time.Hour, time.Now().UTC().Add(-2*time.Hour))
	token, err := h.Sign(claims)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "token expired")
	// The body is the same for every auth failure.
	require.Contains(t, rec.Body.String(), "invalid_token")
}

func TestAuthnMiddleware_GarbageToken(t *testing.T) {
	_, handler, _ := newAuthnFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
