package petpalsdk

import (
	"context"
	"net/http"
)

// ListAppointments returns every appointment booked by the session's account.
func (s *Session) ListAppointments(ctx context.Context) ([]Appointment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.Endpoints.Appointments+"/v1/appointments", nil)
	if err != nil {
		return nil, err
	}

	var out []Appointment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAppointmentsByPet returns the account's appointments for one pet.
func (s *Session) ListAppointmentsByPet(ctx context.Context, petID string) ([]Appointment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.Endpoints.Appointments+"/v1/appointments/pet/"+petID, nil)
	if err != nil {
		return nil, err
	}

	var out []Appointment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAppointment books a new appointment. The appointment service may
// verify the referenced pet against the pet service before accepting.
func (s *Session) CreateAppointment(ctx context.Context, params CreateAppointmentParams) (*Appointment, error) {
	body, err := jsonBody(params)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, s.client.Endpoints.Appointments+"/v1/appointments", body)
	if err != nil {
		return nil, err
	}

	var out Appointment
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAppointment fetches a single appointment by id.
func (s *Session) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, s.client.Endpoints.Appointments+"/v1/appointments/"+id, nil)
	if err != nil {
		return nil, err
	}

	var out Appointment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAppointment applies a partial update, typically changing the
// status or rescheduling the date.
func (s *Session) UpdateAppointment(ctx context.Context, id string, params UpdateAppointmentParams) (*Appointment, error) {
	body, err := jsonBody(params)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, s.client.Endpoints.Appointments+"/v1/appointments/"+id, body)
	if err != nil {
		return nil, err
	}

	var out Appointment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAppointment cancels and removes an appointment.
func (s *Session) DeleteAppointment(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, s.client.Endpoints.Appointments+"/v1/appointments/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
