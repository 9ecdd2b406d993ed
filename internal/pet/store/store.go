package store

import (
	"context"
	"errors"

	"github.com/petpalhq/petpal/internal/pet/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface for the pet service.
type Store interface {
	Pets() Pets

	ApplyMigrations() error
	Close() error
	Ping(ctx context.Context) error
}

// Pets is an ownership-scoped repository: every read and write carries the
// owner id alongside the record id, so a record owned by someone else is
// indistinguishable from one that does not exist.
type Pets interface {
	// CreatePet inserts a new pet (id is provided by app via ULID).
	CreatePet(ctx context.Context, p domain.Pet) (domain.Pet, error)

	// GetPet returns a pet by id, scoped to the owner.
	GetPet(ctx context.Context, id, ownerID string) (domain.Pet, error)

	// ListPetsByOwner returns all pets for an owner, oldest first.
	ListPetsByOwner(ctx context.Context, ownerID string) ([]domain.Pet, error)

	// UpdatePet persists mutable fields and bumps updated_at, scoped to
	// the owner. Returns ErrNotFound when no row matched.
	UpdatePet(ctx context.Context, p domain.Pet) (domain.Pet, error)

	// DeletePet removes a pet, scoped to the owner. Returns ErrNotFound
	// when no row matched.
	DeletePet(ctx context.Context, id, ownerID string) error
}
