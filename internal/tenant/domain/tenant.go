package domain

import "time"

// Status represents whether a tenant is currently renting
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Tenant is a person renting (or who has rented) a property
type Tenant struct {
	ID                    string     `json:"id" gorm:"primaryKey"`
	FirstName             string     `json:"first_name" gorm:"not null"`
	LastName              string     `json:"last_name" gorm:"not null"`
	Email                 *string    `json:"email" gorm:"uniqueIndex"`
	Phone                 string     `json:"phone"`
	NationalID            string     `json:"national_id"`
	EmergencyContactName  string     `json:"emergency_contact_name"`
	EmergencyContactPhone string     `json:"emergency_contact_phone"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Occupation            string     `json:"occupation"`
	Status                Status     `json:"status" gorm:"index;default:active"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func (t *Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}
