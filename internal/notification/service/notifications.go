package service

import (
	"context"
	"errors"
	"strings"

	"github.com/petpalhq/petpal/internal/notification/domain"
	"github.com/petpalhq/petpal/internal/notification/store"
	"github.com/petpalhq/petpal/pkg/idx"
	"github.com/petpalhq/petpal/pkg/slogx"
)

var (
	ErrInvalidInput = errors.New("invalid_input")
	ErrNotFound     = errors.New("not_found")
)

type NotificationService struct {
	Store store.Store
}

type CreateNotificationParams struct {
	Message string
	Type    string
}

// UpdateNotificationParams carries the optional fields of a partial update.
type UpdateNotificationParams struct {
	Message *string
	Type    *string
	Read    *bool
}

// Create stores a new unread notification for the owner. Type defaults to
// "general" when omitted.
func (s *NotificationService) Create(ctx context.Context, ownerID string, params CreateNotificationParams) (domain.Notification, error) {
	params.Message = strings.TrimSpace(params.Message)
	if params.Message == "" {
		return domain.Notification{}, ErrInvalidInput
	}

	notifType := strings.TrimSpace(params.Type)
	if notifType == "" {
		notifType = domain.DefaultType
	}

	notification := domain.Notification{
		ID:      idx.New().String(),
		OwnerID: ownerID,
		Message: params.Message,
		Type:    notifType,
		Read:    false,
	}

	created, err := s.Store.Notifications().CreateNotification(ctx, notification)
	if err != nil {
		return domain.Notification{}, err
	}

	slogx.FromContext(ctx).Info("notification created",
		"notification_id", created.ID, "owner_id", ownerID, "type", created.Type)
	return created, nil
}

// Get fetches a notification scoped to the owner.
func (s *NotificationService) Get(ctx context.Context, ownerID, id string) (domain.Notification, error) {
	notification, err := s.Store.Notifications().GetNotification(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Notification{}, ErrNotFound
		}
		return domain.Notification{}, err
	}
	return notification, nil
}

// List returns all notifications for the owner, newest first. Never nil.
func (s *NotificationService) List(ctx context.Context, ownerID string) ([]domain.Notification, error) {
	return s.Store.Notifications().ListNotificationsByOwner(ctx, ownerID)
}

// Update merges the non-nil params into the stored notification. Marking
// read is just an update with Read set.
func (s *NotificationService) Update(ctx context.Context, ownerID, id string, params UpdateNotificationParams) (domain.Notification, error) {
	notification, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return domain.Notification{}, err
	}

	if params.Message != nil {
		notification.Message = strings.TrimSpace(*params.Message)
	}
	if params.Type != nil {
		notification.Type = strings.TrimSpace(*params.Type)
	}
	if params.Read != nil {
		notification.Read = *params.Read
	}

	if notification.Message == "" || notification.Type == "" {
		return domain.Notification{}, ErrInvalidInput
	}

	updated, err := s.Store.Notifications().UpdateNotification(ctx, notification)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Notification{}, ErrNotFound
		}
		return domain.Notification{}, err
	}
	return updated, nil
}

// Delete removes a notification scoped to the owner.
func (s *NotificationService) Delete(ctx context.Context, ownerID, id string) error {
	err := s.Store.Notifications().DeleteNotification(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
