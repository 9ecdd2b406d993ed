package petpalsdk

import (
	"context"
	"net/http"
)

// ListMedicalRecords returns every medical record owned by the session's account.
func (s *Session) ListMedicalRecords(ctx context.Context) ([]MedicalRecord, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.Endpoints.MedicalRecords+"/v1/medical-records", nil)
	if err != nil {
		return nil, err
	}

	var out []MedicalRecord
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMedicalRecordsByPet returns one pet's medical history.
func (s *Session) ListMedicalRecordsByPet(ctx context.Context, petID string) ([]MedicalRecord, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.Endpoints.MedicalRecords+"/v1/medical-records/pet/"+petID, nil)
	if err != nil {
		return nil, err
	}

	var out []MedicalRecord
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMedicalRecord files a new veterinary visit record.
func (s *Session) CreateMedicalRecord(ctx context.Context, params CreateMedicalRecordParams) (*MedicalRecord, error) {
	body, err := jsonBody(params)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, s.client.Endpoints.MedicalRecords+"/v1/medical-records", body)
	if err != nil {
		return nil, err
	}

	var out MedicalRecord
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMedicalRecord fetches a single record by id.
func (s *Session) GetMedicalRecord(ctx context.Context, id string) (*MedicalRecord, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.Endpoints.MedicalRecords+"/v1/medical-records/"+id, nil)
	if err != nil {
		return nil, err
	}

	var out MedicalRecord
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMedicalRecord applies a partial update to a record.
func (s *Session) UpdateMedicalRecord(ctx context.Context, id string, params UpdateMedicalRecordParams) (*MedicalRecord, error) {
	body, err := jsonBody(params)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, s.client.Endpoints.MedicalRecords+"/v1/medical-records/"+id, body)
	if err != nil {
		return nil, err
	}

	var out MedicalRecord
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMedicalRecord removes a record.
func (s *Session) DeleteMedicalRecord(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, s.client.Endpoints.MedicalRecords+"/v1/medical-records/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
