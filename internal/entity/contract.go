package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contract represents extracted contract data for data transfer between layers.
type Contract struct {
	ID             uuid.UUID  `json:"id"`
	DocumentID     uuid.UUID  `json:"document_id"`
	PartyA         *string    `json:"party_a,omitempty"`
	PartyB         *string    `json:"party_b,omitempty"`
	EffectiveDate  *time.Time `json:"effective_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Summary        *string    `json:"summary,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
