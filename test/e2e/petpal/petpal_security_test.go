package petpal_test

import (
	"context"
	"strings"
	"testing"

	"github.com/petpalhq/petpal/pkg/petpalsdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenWorksAcrossAllServices(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerAndLogin(t, env, "alice", alicePassword)

	// One login, five services. Each verifies the same shared-secret token
	// on its own, with no callback to the user service.
	_, err := alice.Me(ctx)
	require.NoError(t, err)

	_, err = alice.ListPets(ctx)
	require.NoError(t, err)

	_, err = alice.ListAppointments(ctx)
	require.NoError(t, err)

	_, err = alice.ListNotifications(ctx)
	require.NoError(t, err)

	_, err = alice.ListMedicalRecords(ctx)
	require.NoError(t, err)
}

func TestTamperedTokenRejectedEverywhere(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerAndLogin(t, env, "alice", alicePassword)

	// Flip a character in the signature segment.
	token := alice.Token()
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := env.client.NewSessionFromToken(parts[0]+"."+parts[1]+"."+string(sig), 3600)

	_, err := tampered.ListPets(ctx)
	require.True(t, petpalsdk.IsUnauthorized(err))

	// The session refuses further use of the rejected token.
	_, err = tampered.ListNotifications(ctx)
	require.ErrorIs(t, err, petpalsdk.ErrSessionExpired)
}

func TestExpiredSessionRequiresFreshLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerAndLogin(t, env, "alice", alicePassword)

	// A session restored with a lifetime inside the expiry buffer is
	// treated as already expired without a network call.
	stale := env.client.NewSessionFromToken(alice.Token(), 5)
	assert.False(t, stale.Valid())

	_, err := stale.ListPets(ctx)
	require.ErrorIs(t, err, petpalsdk.ErrSessionExpired)

	// A fresh login recovers.
	fresh, err := env.client.Login(ctx, "alice", alicePassword)
	require.NoError(t, err)
	_, err = fresh.ListPets(ctx)
	require.NoError(t, err)
}
