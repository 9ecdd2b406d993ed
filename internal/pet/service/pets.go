package service

import (
	"context"
	"errors"
	"strings"

	"github.com/petpalhq/petpal/internal/pet/domain"
	"github.com/petpalhq/petpal/internal/pet/store"
	"github.com/petpalhq/petpal/pkg/idx"
	"github.com/petpalhq/petpal/pkg/slogx"
)

var (
	ErrInvalidInput = errors.New("invalid_input")
	ErrNotFound     = errors.New("not_found")
)

type PetService struct {
	Store store.Store
}

type CreatePetParams struct {
	Name    string
	Species string
	Breed   string
	Age     float64
	Weight  float64
	Color   string
}

// UpdatePetParams carries the optional fields of a partial update.
// Nil means "leave untouched".
type UpdatePetParams struct {
	Name    *string
	Species *string
	Breed   *string
	Age     *float64
	Weight  *float64
	Color   *string
}

// Create registers a new pet for the given owner.
func (s *PetService) Create(ctx context.Context, ownerID string, params CreatePetParams) (domain.Pet, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Species = strings.TrimSpace(params.Species)
	params.Breed = strings.TrimSpace(params.Breed)

	if params.Name == "" || params.Species == "" || params.Age < 0 {
		return domain.Pet{}, ErrInvalidInput
	}

	pet := domain.Pet{
		ID:      idx.New().String(),
		OwnerID: ownerID,
		Name:    params.Name,
		Species: params.Species,
		Breed:   params.Breed,
		Age:     params.Age,
		Weight:  params.Weight,
		Color:   params.Color,
	}

	created, err := s.Store.Pets().CreatePet(ctx, pet)
	if err != nil {
		return domain.Pet{}, err
	}

	slogx.FromContext(ctx).Info("pet created", "pet_id", created.ID, "owner_id", ownerID)
	return created, nil
}

// Get fetches a pet scoped to the owner.
func (s *PetService) Get(ctx context.Context, ownerID, id string) (domain.Pet, error) {
	pet, err := s.Store.Pets().GetPet(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Pet{}, ErrNotFound
		}
		return domain.Pet{}, err
	}
	return pet, nil
}

// List returns all pets for the owner. Never nil.
func (s *PetService) List(ctx context.Context, ownerID string) ([]domain.Pet, error) {
	return s.Store.Pets().ListPetsByOwner(ctx, ownerID)
}

// Update merges the non-nil params into the stored pet. Identity fields
// (id, owner_id, created_at) are immutable.
func (s *PetService) Update(ctx context.Context, ownerID, id string, params UpdatePetParams) (domain.Pet, error) {
	pet, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return domain.Pet{}, err
	}

	if params.Name != nil {
		pet.Name = strings.TrimSpace(*params.Name)
	}
	if params.Species != nil {
		pet.Species = strings.TrimSpace(*params.Species)
	}
	if params.Breed != nil {
		pet.Breed = strings.TrimSpace(*params.Breed)
	}
	if params.Age != nil {
		pet.Age = *params.Age
	}
	if params.Weight != nil {
		pet.Weight = *params.Weight
	}
	if params.Color != nil {
		pet.Color = *params.Color
	}

	if pet.Name == "" || pet.Species == "" || pet.Age < 0 {
		return domain.Pet{}, ErrInvalidInput
	}

	updated, err := s.Store.Pets().UpdatePet(ctx, pet)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Pet{}, ErrNotFound
		}
		return domain.Pet{}, err
	}
	return updated, nil
}

// Delete removes a pet scoped to the owner.
func (s *PetService) Delete(ctx context.Context, ownerID, id string) error {
	err := s.Store.Pets().DeletePet(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("pet deleted", "pet_id", id, "owner_id", ownerID)
	return nil
}
