package domain

import "time"

// MedicalRecord documents a single veterinary visit for one of the
// owner's pets.
type MedicalRecord struct {
	ID           string
	OwnerID      string
	PetID        string
	VisitDate    time.Time
	RecordType   string
	Veterinarian string
	Diagnosis    string
	Treatment    string
	Medications  string
	FollowUpDate *time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
