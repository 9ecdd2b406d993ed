package petpalsdk

import (
	"context"
	"net/http"
)

// ListPets returns every pet owned by the session's account.
func (s *Session) ListPets(ctx context.Context) ([]Pet, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.Endpoints.Pets+"/v1/pets", nil)
	if err != nil {
		return nil, err
	}

	var out []Pet
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePet registers a new pet for the session's account.
func (s *Session) CreatePet(ctx context.Context, params CreatePetParams) (*Pet, error) {
	body, err := jsonBody(params)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, s.client.Endpoints.Pets+"/v1/pets", body)
	if err != nil {
		return nil, err
	}

	var out Pet
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPet fetches a single pet by id. Pets owned by other accounts are
// indistinguishable from pets that do not exist.
func (s *Session) GetPet(ctx context.Context, id string) (*Pet, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.Endpoints.Pets+"/v1/pets/"+id, nil)
	if err != nil {
		return nil, err
	}

	var out Pet
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePet applies a partial update to a pet. Nil params fields are
// left unchanged.
func (s *Session) UpdatePet(ctx context.Context, id string, params UpdatePetParams) (*Pet, error) {
	body, err := jsonBody(params)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, s.client.Endpoints.Pets+"/v1/pets/"+id, body)
	if err != nil {
		return nil, err
	}

	var out Pet
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePet removes a pet.
func (s *Session) DeletePet(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, s.client.Endpoints.Pets+"/v1/pets/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// VerifyPet confirms that a pet exists and belongs to the session's
// account. The appointment service uses this before booking.
func (s *Session) VerifyPet(ctx context.Context, id string) (*PetVerifyResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.Endpoints.Pets+"/v1/pets/"+id+"/verify", nil)
	if err != nil {
		return nil, err
	}

	var out PetVerifyResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
