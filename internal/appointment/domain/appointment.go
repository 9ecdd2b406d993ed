package domain

import "time"

// Appointment statuses. New appointments start as StatusScheduled.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s string) bool {
	return s == StatusScheduled || s == StatusCompleted || s == StatusCancelled
}

// Appointment is a veterinary appointment booked by an owner for one of
// their pets.
type Appointment struct {
	ID              string
	OwnerID         string
	PetID           string
	AppointmentDate time.Time
	AppointmentType string
	Veterinarian    string
	Reason          string
	Notes           string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
