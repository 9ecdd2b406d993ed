package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/petpalhq/petpal/internal/medical/domain"
	"github.com/petpalhq/petpal/internal/medical/service"
	"github.com/petpalhq/petpal/pkg/httpx"
	"github.com/petpalhq/petpal/pkg/petpalsdk"
	"github.com/petpalhq/petpal/pkg/slogx"
)

type RecordsHandler struct {
	RecordService *service.RecordService
}

func toWireRecord(rec domain.MedicalRecord) petpalsdk.MedicalRecord {
	return petpalsdk.MedicalRecord{
		ID:           rec.ID,
		OwnerID:      rec.OwnerID,
		PetID:        rec.PetID,
		VisitDate:    rec.VisitDate,
		RecordType:   rec.RecordType,
		Veterinarian: rec.Veterinarian,
		Diagnosis:    rec.Diagnosis,
		Treatment:    rec.Treatment,
		Medications:  rec.Medications,
		FollowUpDate: rec.FollowUpDate,
		Notes:        rec.Notes,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
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

// HandleList handles GET /v1/medical-records.
func (h *RecordsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	records, err := h.RecordService.List(r.Context(), owner)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list medical records", "owner_id", owner, "err", err)
		petpalsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]petpalsdk.MedicalRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, toWireRecord(rec))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleListByPet handles GET /v1/medical-records/pet/{petID}.
func (h *RecordsHandler) HandleListByPet(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	records, err := h.RecordService.ListByPet(r.Context(), owner, r.PathValue("petID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]petpalsdk.MedicalRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, toWireRecord(rec))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /v1/medical-records.
func (h *RecordsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req petpalsdk.CreateMedicalRecordParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		petpalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	record, err := h.RecordService.Create(r.Context(), owner, service.CreateRecordParams{
		PetID:        req.PetID,
		VisitDate:    req.VisitDate,
		RecordType:   req.RecordType,
		Veterinarian: req.Veterinarian,
		Diagnosis:    req.Diagnosis,
		Treatment:    req.Treatment,
		Medications:  req.Medications,
		FollowUpDate: req.FollowUpDate,
		Notes:        req.Notes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWireRecord(record))
}

// HandleGet handles GET /v1/medical-records/{id}.
func (h *RecordsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	record, err := h.RecordService.Get(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireRecord(record))
}

// HandleUpdate handles PUT /v1/medical-records/{id}.
func (h *RecordsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req petpalsdk.UpdateMedicalRecordParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		petpalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	record, err := h.RecordService.Update(r.Context(), owner, r.PathValue("id"), service.UpdateRecordParams{
		VisitDate:    req.VisitDate,
		RecordType:   req.RecordType,
		Veterinarian: req.Veterinarian,
		Diagnosis:    req.Diagnosis,
		Treatment:    req.Treatment,
		Medications:  req.Medications,
		FollowUpDate: req.FollowUpDate,
		Notes:        req.Notes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireRecord(record))
}

// HandleDelete handles DELETE /v1/medical-records/{id}.
func (h *RecordsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.RecordService.Delete(r.Context(), owner, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
