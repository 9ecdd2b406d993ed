package domain

import "time"

// Pet is a pet profile. OwnerID is derived from the bearer token on
// creation and never changes afterwards.
type Pet struct {
	ID        string
	OwnerID   string
	Name      string
	Species   string
	Breed     string
	Age       float64 // years
	Weight    float64 // optional
	Color     string  // optional
	CreatedAt time.Time
	UpdatedAt time.Time
}
