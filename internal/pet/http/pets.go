package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/petpalhq/petpal/internal/pet/domain"
	"github.com/petpalhq/petpal/internal/pet/service"
	"github.com/petpalhq/petpal/pkg/httpx"
	"github.com/petpalhq/petpal/pkg/petpalsdk"
	"github.com/petpalhq/petpal/pkg/slogx"
)

type PetsHandler struct {
	PetService *service.PetService
}

func toWirePet(p domain.Pet) petpalsdk.Pet {
	return petpalsdk.Pet{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		Age:       p.Age,
		Weight:    p.Weight,
		Color:     p.Color,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ownerID pulls the authenticated account id injected by the authn middleware.
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

// HandleList handles GET /v1/pets.
func (h *PetsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	pets, err := h.PetService.List(r.Context(), owner)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list pets", "owner_id", owner, "err", err)
		petpalsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]petpalsdk.Pet, 0, len(pets))
	for _, p := range pets {
		out = append(out, toWirePet(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /v1/pets.
func (h *PetsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req petpalsdk.CreatePetParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		petpalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pet, err := h.PetService.Create(r.Context(), owner, service.CreatePetParams{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Age:     req.Age,
		Weight:  req.Weight,
		Color:   req.Color,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWirePet(pet))
}

// HandleGet handles GET /v1/pets/{id}.
func (h *PetsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	pet, err := h.PetService.Get(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWirePet(pet))
}

// HandleUpdate handles PUT /v1/pets/{id}.
func (h *PetsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req petpalsdk.UpdatePetParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		petpalsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pet, err := h.PetService.Update(r.Context(), owner, r.PathValue("id"), service.UpdatePetParams{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Age:     req.Age,
		Weight:  req.Weight,
		Color:   req.Color,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWirePet(pet))
}

// HandleDelete handles DELETE /v1/pets/{id}.
func (h *PetsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.PetService.Delete(r.Context(), owner, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleVerify handles GET /v1/pets/{id}/verify. Other services call this
// with the caller's own bearer token to confirm the pet belongs to them.
func (h *PetsHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		petpalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	pet, err := h.PetService.Get(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusOK, petpalsdk.PetVerifyResponse{Valid: false})
			return
		}
		writeServiceError(w, err)
		return
	}

	wire := toWirePet(pet)
	httpx.WriteJSON(w, http.StatusOK, petpalsdk.PetVerifyResponse{Valid: true, Pet: &wire})
}
