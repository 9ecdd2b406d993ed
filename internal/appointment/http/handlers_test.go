package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/petpalhq/petpal/internal/appointment/service"
	"github.com/petpalhq/petpal/internal/appointment/store/drivers/sqlite"
	"github.com/petpalhq/petpal/pkg/jwtx"
	"github.com/petpalhq/petpal/pkg/petpalsdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type stubVerifier struct{ valid bool }

func (s stubVerifier) VerifyPet(context.Context, string, string) (bool, error) {
	return s.valid, nil
}

func newTestRouter(t *testing.T, verifierStub service.PetVerifier) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	verifier, err := jwtx.NewHS256([]byte(testSecret), "petpal-user")
	require.NoError(t, err)

	router := NewRouter(verifier, "test", st, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	router.AppointmentService = &service.AppointmentService{Store: st, PetVerifier: verifierStub}
	router.ApplyRoutes()
	return router
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()

	signer, err := jwtx.NewHS256([]byte(testSecret), "petpal-user")
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewAccessClaims(userID, "user", "petpal-user", time.Hour, time.Now()))
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, router *Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAppointmentLifecycle(t *testing.T) {
	router := newTestRouter(t, nil)
	token := tokenFor(t, "owner-1")

	rec := doJSON(t, router, http.MethodPost, "/v1/appointments", token, petpalsdk.CreateAppointmentParams{
		PetID:           "01PET",
		AppointmentDate: time.Now().Add(48 * time.Hour),
		AppointmentType: "checkup",
		Veterinarian:    "Dr. Harris",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var appt petpalsdk.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appt))
	assert.Equal(t, "scheduled", appt.Status)
	assert.Equal(t, "owner-1", appt.OwnerID)

	t.Run("complete it", func(t *testing.T) {
		status := "completed"
		rec := doJSON(t, router, http.MethodPut, "/v1/appointments/"+appt.ID, token, petpalsdk.UpdateAppointmentParams{
			Status: &status,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated petpalsdk.Appointment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "completed", updated.Status)
	})

	t.Run("delete it", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/v1/appointments/"+appt.ID, token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/v1/appointments/"+appt.ID, token, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBookingRejectedWhenPetNotOwned(t *testing.T) {
	router := newTestRouter(t, stubVerifier{valid: false})
	token := tokenFor(t, "owner-1")

	rec := doJSON(t, router, http.MethodPost, "/v1/appointments", token, petpalsdk.CreateAppointmentParams{
		PetID:           "01PET",
		AppointmentDate: time.Now().Add(48 * time.Hour),
		AppointmentType: "checkup",
		Veterinarian:    "Dr. Harris",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp petpalsdk.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, petpalsdk.ErrorCodeInvalidRequest, errResp.Error)
}

func TestCrossOwnerAppointmentLooksLikeNotFound(t *testing.T) {
	router := newTestRouter(t, nil)
	alice := tokenFor(t, "owner-1")
	bob := tokenFor(t, "owner-2")

	rec := doJSON(t, router, http.MethodPost, "/v1/appointments", alice, petpalsdk.CreateAppointmentParams{
		PetID:           "01PET",
		AppointmentDate: time.Now().Add(48 * time.Hour),
		AppointmentType: "checkup",
		Veterinarian:    "Dr. Harris",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var appt petpalsdk.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appt))

	missing := doJSON(t, router, http.MethodGet, "/v1/appointments/01GONE", bob, nil)
	crossOwner := doJSON(t, router, http.MethodGet, "/v1/appointments/"+appt.ID, bob, nil)

	require.Equal(t, http.StatusNotFound, missing.Code)
	require.Equal(t, http.StatusNotFound, crossOwner.Code)
	assert.Equal(t, missing.Body.String(), crossOwner.Body.String())
}

func TestEmptyListIsArray(t *testing.T) {
	router := newTestRouter(t, nil)
	token := tokenFor(t, "owner-1")

	rec := doJSON(t, router, http.MethodGet, "/v1/appointments", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListAppointmentsByPet(t *testing.T) {
	router := newTestRouter(t, nil)
	alice := tokenFor(t, "owner-1")
	bob := tokenFor(t, "owner-2")

	for _, petID := range []string{"01REX", "01REX", "01MILO"} {
		rec := doJSON(t, router, http.MethodPost, "/v1/appointments", alice, petpalsdk.CreateAppointmentParams{
			PetID:           petID,
			AppointmentDate: time.Now().Add(48 * time.Hour),
			AppointmentType: "checkup",
			Veterinarian:    "Dr. Harris",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/v1/appointments/pet/01REX", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var appts []petpalsdk.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appts))
	require.Len(t, appts, 2)
	for _, a := range appts {
		assert.Equal(t, "01REX", a.PetID)
	}

	// Another owner asking for the same pet gets an empty array.
	rec = doJSON(t, router, http.MethodGet, "/v1/appointments/pet/01REX", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
