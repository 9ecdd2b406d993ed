package petpal_test

import (
	"context"
	"testing"
	"time"

	"github.com/petpalhq/petpal/pkg/petpalsdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicalRecordFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerAndLogin(t, env, "alice", alicePassword)
	pet := createPet(t, alice, "Rex")

	visit := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	record, err := alice.CreateMedicalRecord(ctx, petpalsdk.CreateMedicalRecordParams{
		PetID:        pet.ID,
		VisitDate:    visit,
		RecordType:   "vaccination",
		Veterinarian: "Dr. Harvey",
		Diagnosis:    "healthy",
		Medications:  "rabies booster",
	})
	require.NoError(t, err)
	assert.Nil(t, record.FollowUpDate)

	followUp := visit.AddDate(1, 0, 0)
	updated, err := alice.UpdateMedicalRecord(ctx, record.ID, petpalsdk.UpdateMedicalRecordParams{
		FollowUpDate: &followUp,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.FollowUpDate)
	assert.True(t, updated.FollowUpDate.Equal(followUp))
	assert.Equal(t, "rabies booster", updated.Medications)

	// Second, more recent visit sorts first.
	newer, err := alice.CreateMedicalRecord(ctx, petpalsdk.CreateMedicalRecordParams{
		PetID:        pet.ID,
		VisitDate:    visit.AddDate(0, 2, 0),
		RecordType:   "checkup",
		Veterinarian: "Dr. Harvey",
		Diagnosis:    "mild ear infection",
		Treatment:    "ear drops twice daily",
	})
	require.NoError(t, err)

	list, err := alice.ListMedicalRecords(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)

	// Per-pet history carries the same ordering.
	history, err := alice.ListMedicalRecordsByPet(ctx, pet.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer.ID, history[0].ID)

	other := createPet(t, alice, "Milo")
	empty, err := alice.ListMedicalRecordsByPet(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, alice.DeleteMedicalRecord(ctx, record.ID))
	_, err = alice.GetMedicalRecord(ctx, record.ID)
	require.True(t, petpalsdk.IsNotFound(err))
}

func TestMedicalRecordsAreOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerAndLogin(t, env, "alice", alicePassword)
	bob := registerAndLogin(t, env, "bob", bobPassword)
	pet := createPet(t, alice, "Rex")

	record, err := alice.CreateMedicalRecord(ctx, petpalsdk.CreateMedicalRecordParams{
		PetID:        pet.ID,
		VisitDate:    time.Now().UTC(),
		RecordType:   "checkup",
		Veterinarian: "Dr. Harvey",
		Diagnosis:    "healthy",
	})
	require.NoError(t, err)

	_, err = bob.GetMedicalRecord(ctx, record.ID)
	require.True(t, petpalsdk.IsNotFound(err))

	list, err := bob.ListMedicalRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
