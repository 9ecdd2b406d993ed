package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/petpalhq/petpal/internal/medical/service"
	"github.com/petpalhq/petpal/internal/medical/store/drivers/sqlite"
	"github.com/petpalhq/petpal/pkg/jwtx"
	"github.com/petpalhq/petpal/pkg/petpalsdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	verifier, err := jwtx.NewHS256([]byte(testSecret), "petpal-user")
	require.NoError(t, err)

	router := NewRouter(verifier, "test", st, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	router.RecordService = &service.RecordService{Store: st}
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

func TestMedicalRecordLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := tokenFor(t, "owner-1")

	visit := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	rec := doJSON(t, router, http.MethodPost, "/v1/medical-records", token, petpalsdk.CreateMedicalRecordParams{
		PetID:        "pet-1",
		VisitDate:    visit,
		RecordType:   "vaccination",
		Veterinarian: "Dr. Harvey",
		Diagnosis:    "healthy",
		Medications:  "rabies booster",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var record petpalsdk.MedicalRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, "owner-1", record.OwnerID)
	assert.Nil(t, record.FollowUpDate)

	t.Run("schedule follow-up", func(t *testing.T) {
		followUp := visit.AddDate(0, 1, 0)
		rec := doJSON(t, router, http.MethodPut, "/v1/medical-records/"+record.ID, token,
			petpalsdk.UpdateMedicalRecordParams{FollowUpDate: &followUp})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated petpalsdk.MedicalRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		require.NotNil(t, updated.FollowUpDate)
		assert.True(t, updated.FollowUpDate.Equal(followUp))
		assert.Equal(t, "rabies booster", updated.Medications)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, "/v1/medical-records/"+record.ID, token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/v1/medical-records/"+record.ID, token, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateRecordRejectsMissingFields(t *testing.T) {
	router := newTestRouter(t)
	token := tokenFor(t, "owner-1")

	rec := doJSON(t, router, http.MethodPost, "/v1/medical-records", token, petpalsdk.CreateMedicalRecordParams{
		PetID:     "pet-1",
		VisitDate: time.Now(),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr petpalsdk.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, petpalsdk.ErrorCodeInvalidRequest, apiErr.Code)
}

func TestCrossOwnerRecordHidden(t *testing.T) {
	router := newTestRouter(t)
	alice := tokenFor(t, "owner-1")
	bob := tokenFor(t, "owner-2")

	rec := doJSON(t, router, http.MethodPost, "/v1/medical-records", alice, petpalsdk.CreateMedicalRecordParams{
		PetID:        "pet-1",
		VisitDate:    time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		RecordType:   "checkup",
		Veterinarian: "Dr. Harvey",
		Diagnosis:    "healthy",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var record petpalsdk.MedicalRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))

	// A foreign record and a nonexistent one look identical.
	recOther := doJSON(t, router, http.MethodGet, "/v1/medical-records/"+record.ID, bob, nil)
	require.Equal(t, http.StatusNotFound, recOther.Code)

	recMissing := doJSON(t, router, http.MethodGet, "/v1/medical-records/does-not-exist", bob, nil)
	require.Equal(t, http.StatusNotFound, recMissing.Code)
	assert.Equal(t, recMissing.Body.String(), recOther.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/v1/medical-records", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListRecordsByPet(t *testing.T) {
	router := newTestRouter(t)
	alice := tokenFor(t, "owner-1")
	bob := tokenFor(t, "owner-2")

	for _, petID := range []string{"pet-1", "pet-1", "pet-2"} {
		rec := doJSON(t, router, http.MethodPost, "/v1/medical-records", alice, petpalsdk.CreateMedicalRecordParams{
			PetID:        petID,
			VisitDate:    time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			RecordType:   "checkup",
			Veterinarian: "Dr. Harvey",
			Diagnosis:    "healthy",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/v1/medical-records/pet/pet-1", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var history []petpalsdk.MedicalRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 2)
	for _, r := range history {
		assert.Equal(t, "pet-1", r.PetID)
	}

	// Another owner asking for the same pet gets an empty array.
	rec = doJSON(t, router, http.MethodGet, "/v1/medical-records/pet/pet-1", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRecordsRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/medical-records", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health petpalsdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "medical-service", health.Service)
}
