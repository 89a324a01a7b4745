package roster

import (
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ArtistStatus represents the status of an artist
type ArtistStatus string

const (
	ArtistStatusActive   ArtistStatus = "active"
	ArtistStatusInactive ArtistStatus = "inactive"
)

// Artist represents a bookable artist on the agency roster
type Artist struct {
	shared.TenantEntity
	Name                  string          `gorm:"type:varchar(255);not null" json:"name"`
	PhotoURL              string          `gorm:"type:text" json:"photo_url"`
	BaseFee               decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"base_fee"`
	MinFee                decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"min_fee"`
	DownPaymentPercentage int             `gorm:"not null;default:50" json:"down_payment_percentage"`
	BaseCity              string          `gorm:"type:varchar(255)" json:"base_city"`
	Status                ArtistStatus    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
}

// TableName returns the table name for GORM
func (Artist) TableName() string {
	return "artists"
}

// NewArtist creates a new artist owned by the given user
func NewArtist(userID uuid.UUID, name string) (*Artist, error) {
	if err := validateArtistName(name); err != nil {
		return nil, err
	}
	return &Artist{
		TenantEntity:          shared.NewTenantEntity(userID),
		Name:                  name,
		BaseFee:               decimal.Zero,
		MinFee:                decimal.Zero,
		DownPaymentPercentage: 50,
		Status:                ArtistStatusActive,
	}, nil
}

// Rename changes the artist's display name
func (a *Artist) Rename(name string) error {
	if err := validateArtistName(name); err != nil {
		return err
	}
	a.Name = name
	a.Touch()
	return nil
}

// SetFees sets the base and minimum negotiable fee
func (a *Artist) SetFees(baseFee, minFee decimal.Decimal) error {
	if baseFee.IsNegative() || minFee.IsNegative() {
		return shared.NewDomainError("INVALID_FEE", "Fees cannot be negative")
	}
	if minFee.GreaterThan(baseFee) {
		return shared.NewDomainError("INVALID_FEE", "Minimum fee cannot exceed base fee")
	}
	a.BaseFee = baseFee
	a.MinFee = minFee
	a.Touch()
	return nil
}

// SetDownPaymentPercentage sets the required down payment share
func (a *Artist) SetDownPaymentPercentage(pct int) error {
	if pct < 0 || pct > 100 {
		return shared.NewDomainError("INVALID_PERCENTAGE", "Down payment percentage must be between 0 and 100")
	}
	a.DownPaymentPercentage = pct
	a.Touch()
	return nil
}

// SetStatus sets the roster status
func (a *Artist) SetStatus(status ArtistStatus) error {
	switch status {
	case ArtistStatusActive, ArtistStatusInactive:
		a.Status = status
		a.Touch()
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Artist status must be 'active' or 'inactive'")
	}
}

// IsActive returns true if the artist is active
func (a *Artist) IsActive() bool {
	return a.Status == ArtistStatusActive
}

func validateArtistName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Artist name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Artist name cannot exceed 255 characters")
	}
	return nil
}
