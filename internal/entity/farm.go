package entity

import (
	"time"

	"github.com/google/uuid"
)

// Farm represents a client profile for data transfer between layers.
type Farm struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	CountryCode     string    `json:"country_code"`
	DefaultCurrency string    `json:"default_currency"`
	LegalForm       *string   `json:"legal_form,omitempty"`
	ContactEmail    *string   `json:"contact_email,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
