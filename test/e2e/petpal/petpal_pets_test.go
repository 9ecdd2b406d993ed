package petpal_test

import (
	"context"
	"testing"

	"github.com/petpalhq/petpal/pkg/petpalsdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerAndLogin(t, env, "alice", alicePassword)

	pet := createPet(t, alice, "Rex")
	assert.Equal(t, "dog", pet.Species)
	assert.NotEmpty(t, pet.OwnerID)

	weight := 19.2
	updated, err := alice.UpdatePet(ctx, pet.ID, petpalsdk.UpdatePetParams{Weight: &weight})
	require.NoError(t, err)
	assert.Equal(t, weight, updated.Weight)
	assert.Equal(t, "Rex", updated.Name)

	list, err := alice.ListPets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, alice.DeletePet(ctx, pet.ID))

	_, err = alice.GetPet(ctx, pet.ID)
	require.True(t, petpalsdk.IsNotFound(err))
}

func TestPetsAreOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerAndLogin(t, env, "alice", alicePassword)
	bob := registerAndLogin(t, env, "bob", bobPassword)

	pet := createPet(t, alice, "Rex")

	// Bob cannot see, change, or delete Alice's pet; every path is the
	// same 404 a nonexistent id would get.
	_, err := bob.GetPet(ctx, pet.ID)
	require.True(t, petpalsdk.IsNotFound(err))

	name := "Stolen"
	_, err = bob.UpdatePet(ctx, pet.ID, petpalsdk.UpdatePetParams{Name: &name})
	require.True(t, petpalsdk.IsNotFound(err))

	require.True(t, petpalsdk.IsNotFound(bob.DeletePet(ctx, pet.ID)))

	list, err := bob.ListPets(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Alice's pet is untouched.
	got, err := alice.GetPet(ctx, pet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rex", got.Name)
}

func TestPetVerifyEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerAndLogin(t, env, "alice", alicePassword)
	bob := registerAndLogin(t, env, "bob", bobPassword)

	pet := createPet(t, alice, "Rex")

	own, err := alice.VerifyPet(ctx, pet.ID)
	require.NoError(t, err)
	assert.True(t, own.Valid)
	require.NotNil(t, own.Pet)
	assert.Equal(t, pet.ID, own.Pet.ID)

	foreign, err := bob.VerifyPet(ctx, pet.ID)
	require.NoError(t, err)
	assert.False(t, foreign.Valid)
	assert.Nil(t, foreign.Pet)
}
