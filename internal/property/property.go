package property

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("property not found")
	ErrForbidden = errors.New("not allowed to modify this property")
	ErrInvalid   = errors.New("invalid listing")
)

// Status represents the listing state of a property.
type Status string

const (
	StatusActive   Status = "active"
	StatusRented   Status = "rented"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusRented, StatusInactive:
		return true
	}

	return false
}

// Policies are the house rules attached to a listing. They are stored as a
// single JSONB document and copied verbatim into application snapshots.
type Policies struct {
	Pets              string   `json:"pets,omitempty"`
	Smoking           string   `json:"smoking,omitempty"`
	OccupancyLimit    int      `json:"occupancy_limit,omitempty"`
	UtilitiesIncluded []string `json:"utilities_included,omitempty"`
}

// Property is a rental listing.
type Property struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Title           string
	Description     string
	Address         string
	City            string
	State           string
	Zip             string
	Type            string
	Bedrooms        int
	Bathrooms       float64
	SquareFeet      int
	Rent            float64
	Deposit         float64
	ApplicationFee  float64
	LeaseTermMonths int
	AvailableDate   *time.Time
	Policies        Policies
	Status          Status

	// Version increments on every listing edit. Applications record the
	// version they were submitted against.
	Version int

	CreatedAt time.Time
	UpdatedAt *time.Time
}
