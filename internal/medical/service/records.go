package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/petpalhq/petpal/internal/medical/domain"
	"github.com/petpalhq/petpal/internal/medical/store"
	"github.com/petpalhq/petpal/pkg/idx"
	"github.com/petpalhq/petpal/pkg/slogx"
)

var (
	ErrInvalidInput = errors.New("invalid_input")
	ErrNotFound     = errors.New("not_found")
)

type RecordService struct {
	Store store.Store
}

type CreateRecordParams struct {
	PetID        string
	VisitDate    time.Time
	RecordType   string
	Veterinarian string
	Diagnosis    string
	Treatment    string
	Medications  string
	FollowUpDate *time.Time
	Notes        string
}

// UpdateRecordParams carries the optional fields of a partial update. The
// record's pet reference is fixed at creation and cannot be changed.
type UpdateRecordParams struct {
	VisitDate    *time.Time
	RecordType   *string
	Veterinarian *string
	Diagnosis    *string
	Treatment    *string
	Medications  *string
	FollowUpDate *time.Time
	Notes        *string
}

// Create stores a new medical record for one of the owner's pets.
func (s *RecordService) Create(ctx context.Context, ownerID string, params CreateRecordParams) (domain.MedicalRecord, error) {
	record := domain.MedicalRecord{
		ID:           idx.New().String(),
		OwnerID:      ownerID,
		PetID:        strings.TrimSpace(params.PetID),
		VisitDate:    params.VisitDate,
		RecordType:   strings.TrimSpace(params.RecordType),
		Veterinarian: strings.TrimSpace(params.Veterinarian),
		Diagnosis:    strings.TrimSpace(params.Diagnosis),
		Treatment:    strings.TrimSpace(params.Treatment),
		Medications:  strings.TrimSpace(params.Medications),
		FollowUpDate: params.FollowUpDate,
		Notes:        strings.TrimSpace(params.Notes),
	}

	if err := validateRecord(record); err != nil {
		return domain.MedicalRecord{}, err
	}

	created, err := s.Store.MedicalRecords().CreateMedicalRecord(ctx, record)
	if err != nil {
		return domain.MedicalRecord{}, err
	}

	slogx.FromContext(ctx).Info("medical record created",
		"record_id", created.ID, "owner_id", ownerID, "pet_id", created.PetID)
	return created, nil
}

// Get fetches a medical record scoped to the owner.
func (s *RecordService) Get(ctx context.Context, ownerID, id string) (domain.MedicalRecord, error) {
	record, err := s.Store.MedicalRecords().GetMedicalRecord(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MedicalRecord{}, ErrNotFound
		}
		return domain.MedicalRecord{}, err
	}
	return record, nil
}

// List returns all of the owner's medical records, most recent visit
// first. Never nil.
func (s *RecordService) List(ctx context.Context, ownerID string) ([]domain.MedicalRecord, error) {
	return s.Store.MedicalRecords().ListMedicalRecordsByOwner(ctx, ownerID)
}

// ListByPet returns one pet's medical history for the owner, most recent
// visit first. A pet the owner does not hold yields an empty list.
func (s *RecordService) ListByPet(ctx context.Context, ownerID, petID string) ([]domain.MedicalRecord, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}
	return s.Store.MedicalRecords().ListMedicalRecordsByPet(ctx, ownerID, petID)
}

// Update merges the non-nil params into the stored record and validates
// the result.
func (s *RecordService) Update(ctx context.Context, ownerID, id string, params UpdateRecordParams) (domain.MedicalRecord, error) {
	record, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return domain.MedicalRecord{}, err
	}

	if params.VisitDate != nil {
		record.VisitDate = *params.VisitDate
	}
	if params.RecordType != nil {
		record.RecordType = strings.TrimSpace(*params.RecordType)
	}
	if params.Veterinarian != nil {
		record.Veterinarian = strings.TrimSpace(*params.Veterinarian)
	}
	if params.Diagnosis != nil {
		record.Diagnosis = strings.TrimSpace(*params.Diagnosis)
	}
	if params.Treatment != nil {
		record.Treatment = strings.TrimSpace(*params.Treatment)
	}
	if params.Medications != nil {
		record.Medications = strings.TrimSpace(*params.Medications)
	}
	if params.FollowUpDate != nil {
		record.FollowUpDate = params.FollowUpDate
	}
	if params.Notes != nil {
		record.Notes = strings.TrimSpace(*params.Notes)
	}

	if err := validateRecord(record); err != nil {
		return domain.MedicalRecord{}, err
	}

	updated, err := s.Store.MedicalRecords().UpdateMedicalRecord(ctx, record)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MedicalRecord{}, ErrNotFound
		}
		return domain.MedicalRecord{}, err
	}
	return updated, nil
}

// Delete removes a medical record scoped to the owner.
func (s *RecordService) Delete(ctx context.Context, ownerID, id string) error {
	err := s.Store.MedicalRecords().DeleteMedicalRecord(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateRecord(record domain.MedicalRecord) error {
	if record.PetID == "" || record.VisitDate.IsZero() {
		return ErrInvalidInput
	}
	if record.RecordType == "" || record.Veterinarian == "" || record.Diagnosis == "" {
		return ErrInvalidInput
	}
	return nil
}
