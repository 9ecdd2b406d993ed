package service

import (
	"context"
	"testing"

	"github.com/petpalhq/petpal/internal/notification/domain"
	"github.com/petpalhq/petpal/internal/notification/store"
	"github.com/petpalhq/petpal/internal/notification/store/drivers/sqlite"
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

func TestCreateDefaultsTypeAndUnread(t *testing.T) {
	ctx := context.Background()
	svc := &NotificationService{Store: newTestStore(t)}

	created, err := svc.Create(ctx, "owner-1", CreateNotificationParams{
		Message: "Rex is due for a checkup",
	})
	require.NoError(t, err)
	require.Equal(t, domain.DefaultType, created.Type)
	require.False(t, created.Read)

	withType, err := svc.Create(ctx, "owner-1", CreateNotificationParams{
		Message: "Appointment tomorrow at 9am",
		Type:    "reminder",
	})
	require.NoError(t, err)
	require.Equal(t, "reminder", withType.Type)
}

func TestCreateRequiresMessage(t *testing.T) {
	ctx := context.Background()
	svc := &NotificationService{Store: newTestStore(t)}

	_, err := svc.Create(ctx, "owner-1", CreateNotificationParams{Message: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	svc := &NotificationService{Store: newTestStore(t)}

	created, err := svc.Create(ctx, "owner-1", CreateNotificationParams{Message: "hello"})
	require.NoError(t, err)

	read := true
	updated, err := svc.Update(ctx, "owner-1", created.ID, UpdateNotificationParams{Read: &read})
	require.NoError(t, err)
	require.True(t, updated.Read)

	// The message survives the partial update.
	require.Equal(t, "hello", updated.Message)
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := &NotificationService{Store: newTestStore(t)}

	_, err := svc.Create(ctx, "owner-1", CreateNotificationParams{Message: "first"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, "owner-1", CreateNotificationParams{Message: "second"})
	require.NoError(t, err)

	list, err := svc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
}

func TestOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	svc := &NotificationService{Store: newTestStore(t)}

	created, err := svc.Create(ctx, "owner-1", CreateNotificationParams{Message: "private"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "owner-2", created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	read := true
	_, err = svc.Update(ctx, "owner-2", created.ID, UpdateNotificationParams{Read: &read})
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "owner-2", created.ID), ErrNotFound)
}
