package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/petpalhq/petpal/internal/appointment/domain"
	"github.com/petpalhq/petpal/internal/appointment/store"
	"github.com/petpalhq/petpal/pkg/idx"
	"github.com/petpalhq/petpal/pkg/slogx"
)

var (
	ErrInvalidInput = errors.New("invalid_input")
	ErrNotFound     = errors.New("not_found")
	ErrUnknownPet   = errors.New("unknown_pet")
)

// AppointmentService books and manages appointments. When PetVerifier is
// set, bookings are cross-checked against the pet service; when nil, the
// pet_id is taken at face value.
type AppointmentService struct {
	Store       store.Store
	PetVerifier PetVerifier
}

type CreateAppointmentParams struct {
	PetID           string
	AppointmentDate time.Time
	AppointmentType string
	Veterinarian    string
	Reason          string
	Notes           string
}

// UpdateAppointmentParams carries the optional fields of a partial update.
type UpdateAppointmentParams struct {
	AppointmentDate *time.Time
	AppointmentType *string
	Veterinarian    *string
	Reason          *string
	Notes           *string
	Status          *string
}

// Create books a new appointment for the given owner. bearerToken is the
// caller's own access token, forwarded to the pet service for ownership
// verification when a verifier is configured.
func (s *AppointmentService) Create(
	ctx context.Context,
	ownerID, bearerToken string,
	params CreateAppointmentParams,
) (domain.Appointment, error) {
	params.PetID = strings.TrimSpace(params.PetID)
	params.AppointmentType = strings.TrimSpace(params.AppointmentType)
	params.Veterinarian = strings.TrimSpace(params.Veterinarian)

	if params.PetID == "" || params.AppointmentDate.IsZero() ||
		params.AppointmentType == "" || params.Veterinarian == "" {
		return domain.Appointment{}, ErrInvalidInput
	}

	if s.PetVerifier != nil {
		valid, err := s.PetVerifier.VerifyPet(ctx, bearerToken, params.PetID)
		if err != nil {
			slogx.FromContext(ctx).Error("pet verification failed", "pet_id", params.PetID, "err", err)
			return domain.Appointment{}, err
		}
		if !valid {
			return domain.Appointment{}, ErrUnknownPet
		}
	}

	appt := domain.Appointment{
		ID:              idx.New().String(),
		OwnerID:         ownerID,
		PetID:           params.PetID,
		AppointmentDate: params.AppointmentDate,
		AppointmentType: params.AppointmentType,
		Veterinarian:    params.Veterinarian,
		Reason:          params.Reason,
		Notes:           params.Notes,
		Status:          domain.StatusScheduled,
	}

	created, err := s.Store.Appointments().CreateAppointment(ctx, appt)
	if err != nil {
		return domain.Appointment{}, err
	}

	slogx.FromContext(ctx).Info("appointment booked",
		"appointment_id", created.ID, "owner_id", ownerID, "pet_id", created.PetID)
	return created, nil
}

// Get fetches an appointment scoped to the owner.
func (s *AppointmentService) Get(ctx context.Context, ownerID, id string) (domain.Appointment, error) {
	appt, err := s.Store.Appointments().GetAppointment(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, ErrNotFound
		}
		return domain.Appointment{}, err
	}
	return appt, nil
}

// List returns all appointments for the owner, soonest first. Never nil.
func (s *AppointmentService) List(ctx context.Context, ownerID string) ([]domain.Appointment, error) {
	return s.Store.Appointments().ListAppointmentsByOwner(ctx, ownerID)
}

// ListByPet returns the owner's appointments for one pet, soonest first.
// A pet the owner does not hold simply yields an empty list.
func (s *AppointmentService) ListByPet(ctx context.Context, ownerID, petID string) ([]domain.Appointment, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}
	return s.Store.Appointments().ListAppointmentsByPet(ctx, ownerID, petID)
}

// Update merges the non-nil params into the stored appointment. The pet
// reference is immutable after booking; rebook instead.
func (s *AppointmentService) Update(
	ctx context.Context,
	ownerID, id string,
	params UpdateAppointmentParams,
) (domain.Appointment, error) {
	appt, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return domain.Appointment{}, err
	}

	if params.AppointmentDate != nil {
		appt.AppointmentDate = *params.AppointmentDate
	}
	if params.AppointmentType != nil {
		appt.AppointmentType = strings.TrimSpace(*params.AppointmentType)
	}
	if params.Veterinarian != nil {
		appt.Veterinarian = strings.TrimSpace(*params.Veterinarian)
	}
	if params.Reason != nil {
		appt.Reason = *params.Reason
	}
	if params.Notes != nil {
		appt.Notes = *params.Notes
	}
	if params.Status != nil {
		appt.Status = *params.Status
	}

	if appt.AppointmentDate.IsZero() || appt.AppointmentType == "" ||
		appt.Veterinarian == "" || !domain.ValidStatus(appt.Status) {
		return domain.Appointment{}, ErrInvalidInput
	}

	updated, err := s.Store.Appointments().UpdateAppointment(ctx, appt)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, ErrNotFound
		}
		return domain.Appointment{}, err
	}
	return updated, nil
}

// Delete removes an appointment scoped to the owner.
func (s *AppointmentService) Delete(ctx context.Context, ownerID, id string) error {
	err := s.Store.Appointments().DeleteAppointment(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("appointment deleted", "appointment_id", id, "owner_id", ownerID)
	return nil
}
