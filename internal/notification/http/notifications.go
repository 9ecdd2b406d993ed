package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/petpalhq/petpal/internal/notification/domain"
	"github.com/petpalhq/petpal/internal/notification/service"
	"github.com/petpalhq/petpal/pkg/httpx"
	"github.com/petpalhq/petpal/pkg/petpalsdk"
	"github.com/petpalhq/petpal/pkg/slogx"
)

type NotificationsHandler struct {
	NotificationService *service.NotificationService
}

func toWireNotification(n domain.Notification) petpalsdk.Notification {
	return petpalsdk.Notification{
		ID:        n.ID,
		OwnerID:   n.OwnerID,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func ownerID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(httpx.CtxKeyUserID).(string)
	return id, ok && id != ""
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		petpalsdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		petpalsdk.ErrNotFound.WriteError(w)
	default:
		petpalsdk.ErrServerError.WriteError(w)
	}
}

// HandleList handles GET /v1/notifications.
func (h *NotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	notifications, err := h.NotificationService.List(r.Context(), owner)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list notifications", "owner_id", owner, "err", err)
		petpalsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]petpalsdk.Notification, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toWireNotification(n))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /v1/notifications.
func (h *NotificationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req petpalsdk.CreateNotificationParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		petpalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	notification, err := h.NotificationService.Create(r.Context(), owner, service.CreateNotificationParams{
		Message: req.Message,
		Type:    req.Type,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWireNotification(notification))
}

// HandleGet handles GET /v1/notifications/{id}.
func (h *NotificationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	notification, err := h.NotificationService.Get(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireNotification(notification))
}

// HandleUpdate handles PUT /v1/notifications/{id}.
func (h *NotificationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req petpalsdk.UpdateNotificationParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		petpalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	notification, err := h.NotificationService.Update(r.Context(), owner, r.PathValue("id"), service.UpdateNotificationParams{
		Message: req.Message,
		Type:    req.Type,
		Read:    req.Read,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireNotification(notification))
}

// HandleDelete handles DELETE /v1/notifications/{id}.
func (h *NotificationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.NotificationService.Delete(r.Context(), owner, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
