package booking

import (
	"time"

	"github.com/artistai/backend/internal/domain/booking"
	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/roster"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateEventRequest represents a request to book an event
type CreateEventRequest struct {
	ArtistID      uuid.UUID       `json:"artist_id" binding:"required"`
	ContractorID  uuid.UUID       `json:"contractor_id" binding:"required"`
	Title         string          `json:"title" binding:"required,min=1,max=255"`
	EventDate     time.Time       `json:"event_date" binding:"required"`
	EventLocation *string         `json:"event_location"`
	AgreedFee     decimal.Decimal `json:"agreed_fee"`
}

// UpdateEventRequest represents a partial update to an event.
// Reference changes are re-validated against the tenant's roster.
type UpdateEventRequest struct {
	ArtistID      *uuid.UUID       `json:"artist_id"`
	ContractorID  *uuid.UUID       `json:"contractor_id"`
	Title         *string          `json:"title" binding:"omitempty,min=1,max=255"`
	EventDate     *time.Time       `json:"event_date"`
	EventLocation *string          `json:"event_location"`
	AgreedFee     *decimal.Decimal `json:"agreed_fee"`
	Status        *string          `json:"status" binding:"omitempty,oneof=pending_payment confirmed cancelled"`
}

// EventListFilter narrows event listings
type EventListFilter struct {
	ArtistID     *uuid.UUID `form:"artist_id"`
	ContractorID *uuid.UUID `form:"contractor_id"`
	StartDate    *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate      *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// ArtistSummary inlines the booked artist into event responses
type ArtistSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ContractorSummary inlines the hiring contractor into event responses
type ContractorSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// EventResponse represents an event in API responses
type EventResponse struct {
	ID            uuid.UUID          `json:"id"`
	ArtistID      uuid.UUID          `json:"artist_id"`
	ContractorID  uuid.UUID          `json:"contractor_id"`
	Title         string             `json:"title"`
	EventDate     time.Time          `json:"event_date"`
	EventLocation *string            `json:"event_location"`
	AgreedFee     decimal.Decimal    `json:"agreed_fee"`
	Status        string             `json:"status"`
	Artist        *ArtistSummary     `json:"artist,omitempty"`
	Contractor    *ContractorSummary `json:"contractor,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ToEventResponse converts a domain event to a response DTO. The artist
// and contractor may be nil when the caller did not resolve them.
func ToEventResponse(event *booking.Event, artist *roster.Artist, contractor *crm.Contractor) *EventResponse {
	resp := &EventResponse{
		ID:            event.ID,
		ArtistID:      event.ArtistID,
		ContractorID:  event.ContractorID,
		Title:         event.Title,
		EventDate:     event.EventDate,
		EventLocation: event.EventLocation,
		AgreedFee:     event.AgreedFee,
		Status:        string(event.Status),
		CreatedAt:     event.CreatedAt,
		UpdatedAt:     event.UpdatedAt,
	}
	if artist != nil {
		resp.Artist = &ArtistSummary{ID: artist.ID, Name: artist.Name}
	}
	if contractor != nil {
		resp.Contractor = &ContractorSummary{
			ID:    contractor.ID,
			Name:  contractor.Name,
			Phone: contractor.Phone,
		}
	}
	return resp
}
