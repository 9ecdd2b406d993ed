package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/petpalhq/petpal/internal/notification/domain"
	"github.com/petpalhq/petpal/internal/notification/store"
)

type notificationsRepo struct {
	db *sql.DB
}

func (r *notificationsRepo) CreateNotification(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (id, owner_id, message, type, read, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.OwnerID, n.Message, n.Type, boolToInt(n.Read),
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano))
	if err != nil {
		return domain.Notification{}, err
	}

	n.CreatedAt = now
	n.UpdatedAt = now
	return n, nil
}

func (r *notificationsRepo) GetNotification(ctx context.Context, id, ownerID string) (domain.Notification, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, message, type, read, created_at, updated_at
		FROM notifications
		WHERE id = ? AND owner_id = ?`, id, ownerID)

	n, err := scanNotification(row)
	if err != nil {
		return domain.Notification{}, mapNotFound(err)
	}
	return n, nil
}

func (r *notificationsRepo) ListNotificationsByOwner(ctx context.Context, ownerID string) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, message, type, read, created_at, updated_at
		FROM notifications
		WHERE owner_id = ?
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]domain.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationsRepo) UpdateNotification(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE notifications
		SET message = ?, type = ?, read = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`,
		n.Message, n.Type, boolToInt(n.Read), now.Format(time.RFC3339Nano), n.ID, n.OwnerID)
	if err != nil {
		return domain.Notification{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Notification{}, err
	}
	if affected == 0 {
		return domain.Notification{}, store.ErrNotFound
	}

	n.UpdatedAt = now
	return n, nil
}

func (r *notificationsRepo) DeleteNotification(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM notifications
		WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (domain.Notification, error) {
	var n domain.Notification
	var read int
	var createdAt, updatedAt string

	err := row.Scan(&n.ID, &n.OwnerID, &n.Message, &n.Type, &read, &createdAt, &updatedAt)
	if err != nil {
		return domain.Notification{}, err
	}

	n.Read = read != 0
	n.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	n.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
