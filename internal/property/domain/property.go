package domain

import "time"

// Status represents whether a property can be leased
type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
)

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusOccupied
}

// Property is a rentable unit
type Property struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Name            string    `json:"property_name" gorm:"column:property_name;not null"`
	PropertyType    string    `json:"property_type" gorm:"not null"`
	Address         string    `json:"address" gorm:"not null"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	RoomNumber      string    `json:"room_number"`
	Bedrooms        int       `json:"bedrooms"`
	Bathrooms       float64   `json:"bathrooms"`
	MonthlyRent     float64   `json:"monthly_rent" gorm:"not null"`
	SecurityDeposit float64   `json:"security_deposit"`
	Amenities       string    `json:"amenities"`
	Status          Status    `json:"status" gorm:"index;default:available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
