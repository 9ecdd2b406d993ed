package store

import (
	"context"
	"errors"

	"github.com/petpalhq/petpal/internal/appointment/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface for the appointment service.
type Store interface {
	Appointments() Appointments

	ApplyMigrations() error
	Close() error
	Ping(ctx context.Context) error
}

// Appointments is an ownership-scoped repository: every read and write
// carries the owner id alongside the record id.
type Appointments interface {
	CreateAppointment(ctx context.Context, a domain.Appointment) (domain.Appointment, error)

	GetAppointment(ctx context.Context, id, ownerID string) (domain.Appointment, error)

	// ListAppointmentsByOwner returns the owner's appointments ordered by
	// appointment date, soonest first.
	ListAppointmentsByOwner(ctx context.Context, ownerID string) ([]domain.Appointment, error)

	// ListAppointmentsByPet narrows the owner's appointments to a single
	// pet, same ordering.
	ListAppointmentsByPet(ctx context.Context, ownerID, petID string) ([]domain.Appointment, error)

	// UpdateAppointment persists mutable fields and bumps updated_at.
	// Returns ErrNotFound when no row matched.
	UpdateAppointment(ctx context.Context, a domain.Appointment) (domain.Appointment, error)

	// DeleteAppointment removes an appointment. Returns ErrNotFound when
	// no row matched.
	DeleteAppointment(ctx context.Context, id, ownerID string) error
}
