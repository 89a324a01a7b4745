package booking

import (
	"time"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventStatus represents the lifecycle state of a booked show
type EventStatus string

const (
	EventStatusPendingPayment EventStatus = "pending_payment"
	EventStatusConfirmed      EventStatus = "confirmed"
	EventStatusCancelled      EventStatus = "cancelled"
)

// IsValid checks if the event status is valid
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusPendingPayment, EventStatusConfirmed, EventStatusCancelled:
		return true
	}
	return false
}

// Event is a show booked for an artist on behalf of a contractor
type Event struct {
	shared.TenantEntity
	ArtistID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"artist_id"`
	ContractorID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"contractor_id"`
	Title         string          `gorm:"type:varchar(255);not null" json:"title"`
	EventDate     time.Time       `gorm:"type:date;not null;index" json:"event_date"`
	EventLocation *string         `gorm:"type:text" json:"event_location"`
	AgreedFee     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"agreed_fee"`
	Status        EventStatus     `gorm:"type:varchar(20);not null;default:'pending_payment'" json:"status"`
}

// TableName returns the table name for GORM
func (Event) TableName() string {
	return "events"
}

// NewEvent creates a new event linking an artist and a contractor
func NewEvent(userID, artistID, contractorID uuid.UUID, title string, eventDate time.Time, agreedFee decimal.Decimal) (*Event, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Event title cannot be empty")
	}
	if agreedFee.IsNegative() {
		return nil, shared.NewDomainError("INVALID_FEE", "Agreed fee cannot be negative")
	}
	return &Event{
		TenantEntity: shared.NewTenantEntity(userID),
		ArtistID:     artistID,
		ContractorID: contractorID,
		Title:        title,
		EventDate:    eventDate,
		AgreedFee:    agreedFee,
		Status:       EventStatusPendingPayment,
	}, nil
}

// SetAgreedFee changes the negotiated fee
func (e *Event) SetAgreedFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return shared.NewDomainError("INVALID_FEE", "Agreed fee cannot be negative")
	}
	e.AgreedFee = fee
	e.Touch()
	return nil
}

// SetStatus transitions the event to a new status
func (e *Event) SetStatus(status EventStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invalid event status")
	}
	e.Status = status
	e.Touch()
	return nil
}

// IsBooked reports whether the event still counts toward the agenda
func (e *Event) IsBooked() bool {
	return e.Status != EventStatusCancelled
}
