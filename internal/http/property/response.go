package property

import (
	"time"

	"github.com/google/uuid"

	"github.com/rentora/rentora/internal/property"
)

type propertyResponse struct {
	ID              uuid.UUID         `json:"id"`
	OwnerID         uuid.UUID         `json:"owner_id"`
	Title           string            `json:"title"`
	Description     string            `json:"description,omitempty"`
	Address         string            `json:"address"`
	City            string            `json:"city,omitempty"`
	State           string            `json:"state,omitempty"`
	Zip             string            `json:"zip,omitempty"`
	Type            string            `json:"type,omitempty"`
	Bedrooms        int               `json:"bedrooms"`
	Bathrooms       float64           `json:"bathrooms"`
	SquareFeet      int               `json:"square_feet,omitempty"`
	Rent            float64           `json:"rent"`
	Deposit         float64           `json:"deposit"`
	ApplicationFee  float64           `json:"application_fee"`
	LeaseTermMonths int               `json:"lease_term_months"`
	AvailableDate   *time.Time        `json:"available_date,omitempty"`
	Policies        property.Policies `json:"policies"`
	Status          property.Status   `json:"status"`
	Version         int               `json:"version"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       *time.Time        `json:"updated_at,omitempty"`
}

func toResponse(p *property.Property) propertyResponse {
	return propertyResponse{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		Title:           p.Title,
		Description:     p.Description,
		Address:         p.Address,
		City:            p.City,
		State:           p.State,
		Zip:             p.Zip,
		Type:            p.Type,
		Bedrooms:        p.Bedrooms,
		Bathrooms:       p.Bathrooms,
		SquareFeet:      p.SquareFeet,
		Rent:            p.Rent,
		Deposit:         p.Deposit,
		ApplicationFee:  p.ApplicationFee,
		LeaseTermMonths: p.LeaseTermMonths,
		AvailableDate:   p.AvailableDate,
		Policies:        p.Policies,
		Status:          p.Status,
		Version:         p.Version,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toResponseList(props []*property.Property) []propertyResponse {
	resp := make([]propertyResponse, len(props))
	for i, p := range props {
		resp[i] = toResponse(p)
	}

	return resp
}
