package store

import (
	"context"
	"errors"

	"github.com/petpalhq/petpal/internal/medical/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface for the medical record service.
type Store interface {
	MedicalRecords() MedicalRecords

	ApplyMigrations() error
	Close() error
	Ping(ctx context.Context) error
}

// MedicalRecords is an ownership-scoped repository.
type MedicalRecords interface {
	CreateMedicalRecord(ctx context.Context, rec domain.MedicalRecord) (domain.MedicalRecord, error)

	GetMedicalRecord(ctx context.Context, id, ownerID string) (domain.MedicalRecord, error)

	// ListMedicalRecordsByOwner returns the owner's records ordered by
	// visit date, most recent first.
	ListMedicalRecordsByOwner(ctx context.Context, ownerID string) ([]domain.MedicalRecord, error)

	// ListMedicalRecordsByPet narrows the owner's records to one pet's
	// history, same ordering.
	ListMedicalRecordsByPet(ctx context.Context, ownerID, petID string) ([]domain.MedicalRecord, error)

	// UpdateMedicalRecord persists mutable fields and bumps updated_at.
	// Returns ErrNotFound when no row matched.
	UpdateMedicalRecord(ctx context.Context, rec domain.MedicalRecord) (domain.MedicalRecord, error)

	// DeleteMedicalRecord removes a record. Returns ErrNotFound when no
	// row matched.
	DeleteMedicalRecord(ctx context.Context, id, ownerID string) error
}
