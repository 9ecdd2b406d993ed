package petpalsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/users/register":
			require.Equal(t, http.MethodPost, r.Method)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "alice", body["username"])

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(RegisterResponse{UserID: "01ABC", Username: "alice"})

		case "/v1/users/login":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(TokenResponse{Token: "tok-123", TokenType: "Bearer", ExpiresIn: 3600})

		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewSDKClient(Endpoints{Users: srv.URL})

	reg, err := client.Register(context.Background(), "alice", "hunter2-hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", reg.Username)
	assert.NotEmpty(t, reg.UserID)

	session, err := client.Login(context.Background(), "alice", "hunter2-hunter2")
	require.NoError(t, err)
	assert.True(t, session.Valid())
	assert.Equal(t, "tok-123", session.Token())
}

func TestSessionAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Pet{})
	}))
	defer srv.Close()

	client := NewSDKClient(Endpoints{Pets: srv.URL})
	session := client.NewSessionFromToken("tok-456", 3600)

	pets, err := session.ListPets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pets)
	assert.Equal(t, "Bearer tok-456", gotAuth)
}

func TestErrorResponseParsing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error:            ErrorCodeNotFound,
			ErrorDescription: "record not found",
		})
	}))
	defer srv.Close()

	client := NewSDKClient(Endpoints{Pets: srv.URL})
	session := client.NewSessionFromToken("tok", 3600)

	_, err := session.GetPet(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "record not found", apiErr.Description)
}

func TestSessionInvalidatedOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error:            ErrorCodeInvalidToken,
			ErrorDescription: "the access token is missing, invalid or expired",
		})
	}))
	defer srv.Close()

	client := NewSDKClient(Endpoints{Pets: srv.URL})
	session := client.NewSessionFromToken("stale-token", 3600)

	_, err := session.ListPets(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	// The rejected token is discarded; further calls fail locally.
	assert.False(t, session.Valid())
	_, err = session.ListPets(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSessionExpiryWindow(t *testing.T) {
	client := NewSDKClient(Endpoints{})

	// ExpiresIn shorter than the safety buffer means the session is
	// unusable from the start.
	session := client.NewSessionFromToken("short-lived", 10)
	assert.False(t, session.Valid())

	_, err := session.ListPets(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestNonJSONErrorFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewSDKClient(Endpoints{Pets: srv.URL})
	session := client.NewSessionFromToken("tok", 3600)

	_, err := session.GetPet(context.Background(), "x")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, ErrorCodeServerError, apiErr.Code)
}
