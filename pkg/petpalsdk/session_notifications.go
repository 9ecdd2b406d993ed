package petpalsdk

import (
	"context"
	"net/http"
)

// ListNotifications returns every notification for the session's account.
func (s *Session) ListNotifications(ctx context.Context) ([]Notification, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.Endpoints.Notifications+"/v1/notifications", nil)
	if err != nil {
		return nil, err
	}

	var out []Notification
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateNotification creates a notification for the session's account.
func (s *Session) CreateNotification(ctx context.Context, params CreateNotificationParams) (*Notification, error) {
	body, err := jsonBody(params)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, s.client.Endpoints.Notifications+"/v1/notifications", body)
	if err != nil {
		return nil, err
	}

	var out Notification
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetNotification fetches a single notification by id.
func (s *Session) GetNotification(ctx context.Context, id string) (*Notification, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.Endpoints.Notifications+"/v1/notifications/"+id, nil)
	if err != nil {
		return nil, err
	}

	var out Notification
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNotification applies a partial update.
func (s *Session) UpdateNotification(ctx context.Context, id string, params UpdateNotificationParams) (*Notification, error) {
	body, err := jsonBody(params)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, s.client.Endpoints.Notifications+"/v1/notifications/"+id, body)
	if err != nil {
		return nil, err
	}

	var out Notification
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkNotificationRead flags a notification as read.
func (s *Session) MarkNotificationRead(ctx context.Context, id string) (*Notification, error) {
	read := true
	return s.UpdateNotification(ctx, id, UpdateNotificationParams{Read: &read})
}

// DeleteNotification removes a notification.
func (s *Session) DeleteNotification(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, s.client.Endpoints.Notifications+"/v1/notifications/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
