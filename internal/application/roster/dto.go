package roster

import (
	"time"

	"github.com/artistai/backend/internal/domain/roster"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateArtistRequest represents a request to add an artist to the roster
type CreateArtistRequest struct {
	Name                  string           `json:"name" binding:"required,min=1,max=255"`
	PhotoURL              string           `json:"photo_url" binding:"omitempty,url"`
	BaseFee               *decimal.Decimal `json:"base_fee"`
	MinFee                *decimal.Decimal `json:"min_fee"`
	DownPaymentPercentage *int             `json:"down_payment_percentage" binding:"omitempty,min=0,max=100"`
	BaseCity              string           `json:"base_city" binding:"max=255"`
}

// UpdateArtistRequest represents a partial update to an artist
type UpdateArtistRequest struct {
	Name                  *string          `json:"name" binding:"omitempty,min=1,max=255"`
	PhotoURL              *string          `json:"photo_url"`
	BaseFee               *decimal.Decimal `json:"base_fee"`
	MinFee                *decimal.Decimal `json:"min_fee"`
	DownPaymentPercentage *int             `json:"down_payment_percentage" binding:"omitempty,min=0,max=100"`
	BaseCity              *string          `json:"base_city" binding:"omitempty,max=255"`
	Status                *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ArtistResponse represents an artist in API responses
type ArtistResponse struct {
	ID                    uuid.UUID       `json:"id"`
	Name                  string          `json:"name"`
	PhotoURL              string          `json:"photo_url"`
	BaseFee               decimal.Decimal `json:"base_fee"`
	MinFee                decimal.Decimal `json:"min_fee"`
	DownPaymentPercentage int             `json:"down_payment_percentage"`
	BaseCity              string          `json:"base_city"`
	Status                string          `json:"status"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// ToArtistResponse converts a domain artist to a response DTO
func ToArtistResponse(artist *roster.Artist) *ArtistResponse {
	return &ArtistResponse{
		ID:                    artist.ID,
		Name:                  artist.Name,
		PhotoURL:              artist.PhotoURL,
		BaseFee:               artist.BaseFee,
		MinFee:                artist.MinFee,
		DownPaymentPercentage: artist.DownPaymentPercentage,
		BaseCity:              artist.BaseCity,
		Status:                string(artist.Status),
		CreatedAt:             artist.CreatedAt,
		UpdatedAt:             artist.UpdatedAt,
	}
}
