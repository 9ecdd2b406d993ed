package domain

import "time"

// DefaultType is assigned when a notification is created without a type.
const DefaultType = "general"

// Notification is a message for an account, such as an appointment
// reminder. Read starts false and is flipped by the owner.
type Notification struct {
	ID        string
	OwnerID   string
	Message   string
	Type      string
	Read      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
