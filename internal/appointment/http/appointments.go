package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/petpalhq/petpal/internal/appointment/domain"
	"github.com/petpalhq/petpal/internal/appointment/service"
	"github.com/petpalhq/petpal/pkg/httpx"
	"github.com/petpalhq/petpal/pkg/petpalsdk"
	"github.com/petpalhq/petpal/pkg/slogx"
)

type AppointmentsHandler struct {
	AppointmentService *service.AppointmentService
}

func toWireAppointment(a domain.Appointment) petpalsdk.Appointment {
	return petpalsdk.Appointment{
		ID:              a.ID,
		OwnerID:         a.OwnerID,
		PetID:           a.PetID,
		AppointmentDate: a.AppointmentDate,
		AppointmentType: a.AppointmentType,
		Veterinarian:    a.Veterinarian,
		Reason:          a.Reason,
		Notes:           a.Notes,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func ownerID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(httpx.CtxKeyUserID).(string)
	return id, ok && id != ""
}

// bearerToken extracts the raw access token so it can be forwarded to the
// pet service during booking.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		petpalsdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrUnknownPet):
		petpalsdk.NewAPIError(http.StatusBadRequest, petpalsdk.ErrorCodeInvalidRequest,
			"pet not found or not owned by you").WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		petpalsdk.ErrNotFound.WriteError(w)
	default:
		petpalsdk.ErrServerError.WriteError(w)
	}
}

// HandleList handles GET /v1/appointments.
func (h *AppointmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	appts, err := h.AppointmentService.List(r.Context(), owner)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list appointments", "owner_id", owner, "err", err)
		petpalsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]petpalsdk.Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, toWireAppointment(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleListByPet handles GET /v1/appointments/pet/{petID}.
func (h *AppointmentsHandler) HandleListByPet(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	appts, err := h.AppointmentService.ListByPet(r.Context(), owner, r.PathValue("petID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]petpalsdk.Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, toWireAppointment(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /v1/appointments.
func (h *AppointmentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req petpalsdk.CreateAppointmentParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		petpalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	appt, err := h.AppointmentService.Create(r.Context(), owner, bearerToken(r), service.CreateAppointmentParams{
		PetID:           req.PetID,
		AppointmentDate: req.AppointmentDate,
		AppointmentType: req.AppointmentType,
		Veterinarian:    req.Veterinarian,
		Reason:          req.Reason,
		Notes:           req.Notes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWireAppointment(appt))
}

// HandleGet handles GET /v1/appointments/{id}.
func (h *AppointmentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	appt, err := h.AppointmentService.Get(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireAppointment(appt))
}

// HandleUpdate handles PUT /v1/appointments/{id}.
func (h *AppointmentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req petpalsdk.UpdateAppointmentParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		petpalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	appt, err := h.AppointmentService.Update(r.Context(), owner, r.PathValue("id"), service.UpdateAppointmentParams{
		AppointmentDate: req.AppointmentDate,
		AppointmentType: req.AppointmentType,
		Veterinarian:    req.Veterinarian,
		Reason:          req.Reason,
		Notes:           req.Notes,
		Status:          req.Status,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireAppointment(appt))
}

// HandleDelete handles DELETE /v1/appointments/{id}.
func (h *AppointmentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.AppointmentService.Delete(r.Context(), owner, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
