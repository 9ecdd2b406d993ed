package store

import (
	"context"
	"errors"

	"github.com/petpalhq/petpal/internal/notification/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface for the notification service.
type Store interface {
	Notifications() Notifications

	ApplyMigrations() error
	Close() error
	Ping(ctx context.Context) error
}

// Notifications is an ownership-scoped repository.
type Notifications interface {
	CreateNotification(ctx context.Context, n domain.Notification) (domain.Notification, error)

	GetNotification(ctx context.Context, id, ownerID string) (domain.Notification, error)

	// ListNotificationsByOwner returns the owner's notifications, newest first.
	ListNotificationsByOwner(ctx context.Context, ownerID string) ([]domain.Notification, error)

	// UpdateNotification persists mutable fields and bumps updated_at.
	// Returns ErrNotFound when no row matched.
	UpdateNotification(ctx context.Context, n domain.Notification) (domain.Notification, error)

	// DeleteNotification removes a notification. Returns ErrNotFound when
	// no row matched.
	DeleteNotification(ctx context.Context, id, ownerID string) error
}
