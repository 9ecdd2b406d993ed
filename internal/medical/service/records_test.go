package service

import (
	"context"
	"testing"
	"time"

	"github.com/petpalhq/petpal/internal/medical/store"
	"github.com/petpalhq/petpal/internal/medical/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func validParams(visit time.Time) CreateRecordParams {
	return CreateRecordParams{
		PetID:        "pet-1",
		VisitDate:    visit,
		RecordType:   "checkup",
		Veterinarian: "Dr. Harvey",
		Diagnosis:    "healthy",
	}
}

func TestCreateAndGetRecord(t *testing.T) {
	ctx := context.Background()
	svc := &RecordService{Store: newTestStore(t)}

	visit := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	followUp := visit.AddDate(0, 6, 0)

	params := validParams(visit)
	params.Treatment = "annual vaccination"
	params.Medications = "rabies booster"
	params.FollowUpDate = &followUp
	params.Notes = "weight stable"

	created, err := svc.Create(ctx, "owner-1", params)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "owner-1", created.OwnerID)
	require.NotNil(t, created.FollowUpDate)
	require.True(t, created.FollowUpDate.Equal(followUp))

	got, err := svc.Get(ctx, "owner-1", created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "rabies booster", got.Medications)
	require.True(t, got.VisitDate.Equal(visit))
}

func TestCreateRecordValidation(t *testing.T) {
	ctx := context.Background()
	svc := &RecordService{Store: newTestStore(t)}
	visit := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*CreateRecordParams)
	}{
		{"missing pet", func(p *CreateRecordParams) { p.PetID = "" }},
		{"missing visit date", func(p *CreateRecordParams) { p.VisitDate = time.Time{} }},
		{"missing record type", func(p *CreateRecordParams) { p.RecordType = "  " }},
		{"missing veterinarian", func(p *CreateRecordParams) { p.Veterinarian = "" }},
		{"missing diagnosis", func(p *CreateRecordParams) { p.Diagnosis = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams(visit)
			tt.mutate(&params)

			_, err := svc.Create(ctx, "owner-1", params)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateRecordPartialMerge(t *testing.T) {
	ctx := context.Background()
	svc := &RecordService{Store: newTestStore(t)}
	visit := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	created, err := svc.Create(ctx, "owner-1", validParams(visit))
	require.NoError(t, err)

	diagnosis := "mild ear infection"
	treatment := "ear drops twice daily"
	updated, err := svc.Update(ctx, "owner-1", created.ID, UpdateRecordParams{
		Diagnosis: &diagnosis,
		Treatment: &treatment,
	})
	require.NoError(t, err)
	require.Equal(t, diagnosis, updated.Diagnosis)
	require.Equal(t, treatment, updated.Treatment)

	// Untouched fields survive, as does the pet reference.
	require.Equal(t, "Dr. Harvey", updated.Veterinarian)
	require.Equal(t, "pet-1", updated.PetID)
	require.True(t, updated.VisitDate.Equal(visit))
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateRecordRejectsClearingRequiredField(t *testing.T) {
	ctx := context.Background()
	svc := &RecordService{Store: newTestStore(t)}
	visit := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	created, err := svc.Create(ctx, "owner-1", validParams(visit))
	require.NoError(t, err)

	empty := "   "
	_, err = svc.Update(ctx, "owner-1", created.ID, UpdateRecordParams{Diagnosis: &empty})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestListRecordsMostRecentVisitFirst(t *testing.T) {
	ctx := context.Background()
	svc := &RecordService{Store: newTestStore(t)}

	older := validParams(time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))
	newer := validParams(time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC))

	first, err := svc.Create(ctx, "owner-1", older)
	require.NoError(t, err)
	second, err := svc.Create(ctx, "owner-1", newer)
	require.NoError(t, err)

	list, err := svc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)
}

func TestListRecordsByPet(t *testing.T) {
	ctx := context.Background()
	svc := &RecordService{Store: newTestStore(t)}

	rexFirst := validParams(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	rexSecond := validParams(time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC))
	milo := validParams(time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))
	milo.PetID = "pet-2"

	older, err := svc.Create(ctx, "owner-1", rexFirst)
	require.NoError(t, err)
	newer, err := svc.Create(ctx, "owner-1", rexSecond)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", milo)
	require.NoError(t, err)

	history, err := svc.ListByPet(ctx, "owner-1", "pet-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, newer.ID, history[0].ID)
	require.Equal(t, older.ID, history[1].ID)

	// Another owner asking about the same pet sees nothing.
	history, err = svc.ListByPet(ctx, "owner-2", "pet-1")
	require.NoError(t, err)
	require.Empty(t, history)

	_, err = svc.ListByPet(ctx, "owner-1", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecordOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	svc := &RecordService{Store: newTestStore(t)}
	visit := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	created, err := svc.Create(ctx, "owner-1", validParams(visit))
	require.NoError(t, err)

	_, err = svc.Get(ctx, "owner-2", created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	notes := "stolen update"
	_, err = svc.Update(ctx, "owner-2", created.ID, UpdateRecordParams{Notes: &notes})
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "owner-2", created.ID), ErrNotFound)

	// Still intact for the real owner.
	got, err := svc.Get(ctx, "owner-1", created.ID)
	require.NoError(t, err)
	require.Empty(t, got.Notes)
}
