package petpalsdk

import "time"

// ErrorResponse is the structured failure body every service returns.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// RegisterResponse is returned by POST /v1/users/register.
type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// TokenResponse is returned by POST /v1/users/login.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"` // always "Bearer"
	ExpiresIn int    `json:"expires_in"` // seconds until expiry
}

// UserInfo is a public view of an account. It never carries the password
// verifier.
type UserInfo struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// HealthResponse is returned by the /livez and /readyz endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Pet is a pet profile record as it appears on the wire.
type Pet struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed"`
	Age       float64   `json:"age"` // years
	Weight    float64   `json:"weight,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePetParams are the caller-supplied fields for a new pet.
// The owner is never part of the payload; it comes from the bearer token.
type CreatePetParams struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   string  `json:"breed"`
	Age     float64 `json:"age"`
	Weight  float64 `json:"weight,omitempty"`
	Color   string  `json:"color,omitempty"`
}

// UpdatePetParams are the optional fields for a partial pet update.
// Nil fields are left untouched.
type UpdatePetParams struct {
	Name    *string  `json:"name,omitempty"`
	Species *string  `json:"species,omitempty"`
	Breed   *string  `json:"breed,omitempty"`
	Age     *float64 `json:"age,omitempty"`
	Weight  *float64 `json:"weight,omitempty"`
	Color   *string  `json:"color,omitempty"`
}

// PetVerifyResponse is returned by GET /v1/pets/{id}/verify. Other services
// use it to confirm a pet belongs to the calling account.
type PetVerifyResponse struct {
	Valid bool `json:"valid"`
	Pet   *Pet `json:"pet,omitempty"`
}

// Appointment is a veterinary appointment record.
type Appointment struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	PetID           string    `json:"pet_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	AppointmentType string    `json:"appointment_type"`
	Veterinarian    string    `json:"veterinarian"`
	Reason          string    `json:"reason,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"` // scheduled, completed, cancelled
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateAppointmentParams are the caller-supplied fields for a new appointment.
type CreateAppointmentParams struct {
	PetID           string    `json:"pet_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	AppointmentType string    `json:"appointment_type"`
	Veterinarian    string    `json:"veterinarian"`
	Reason          string    `json:"reason,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// UpdateAppointmentParams are the optional fields for a partial update.
type UpdateAppointmentParams struct {
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	AppointmentType *string    `json:"appointment_type,omitempty"`
	Veterinarian    *string    `json:"veterinarian,omitempty"`
	Reason          *string    `json:"reason,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Status          *string    `json:"status,omitempty"`
}

// Notification is a user-facing notification record.
type Notification struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"` // e.g. "general", "reminder"
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateNotificationParams are the caller-supplied fields for a new notification.
type CreateNotificationParams struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// UpdateNotificationParams are the optional fields for a partial update.
// Marking a notification read is an update with Read=&true.
type UpdateNotificationParams struct {
	Message *string `json:"message,omitempty"`
	Type    *string `json:"type,omitempty"`
	Read    *bool   `json:"read,omitempty"`
}

// MedicalRecord is a veterinary visit record for a pet.
type MedicalRecord struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	PetID        string     `json:"pet_id"`
	VisitDate    time.Time  `json:"visit_date"`
	RecordType   string     `json:"record_type"` // e.g. "checkup", "vaccination"
	Veterinarian string     `json:"veterinarian"`
	Diagnosis    string     `json:"diagnosis"`
	Treatment    string     `json:"treatment,omitempty"`
	Medications  string     `json:"medications,omitempty"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreateMedicalRecordParams are the caller-supplied fields for a new record.
type CreateMedicalRecordParams struct {
	PetID        string     `json:"pet_id"`
	VisitDate    time.Time  `json:"visit_date"`
	RecordType   string     `json:"record_type"`
	Veterinarian string     `json:"veterinarian"`
	Diagnosis    string     `json:"diagnosis"`
	Treatment    string     `json:"treatment,omitempty"`
	Medications  string     `json:"medications,omitempty"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// UpdateMedicalRecordParams are the optional fields for a partial update.
type UpdateMedicalRecordParams struct {
	VisitDate    *time.Time `json:"visit_date,omitempty"`
	RecordType   *string    `json:"record_type,omitempty"`
	Veterinarian *string    `json:"veterinarian,omitempty"`
	Diagnosis    *string    `json:"diagnosis,omitempty"`
	Treatment    *string    `json:"treatment,omitempty"`
	Medications  *string    `json:"medications,omitempty"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}
