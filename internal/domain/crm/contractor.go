package crm

import (
	"fmt"
	"regexp"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

var phonePattern = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)

// Contractor represents a client or lead (the party hiring artists)
type Contractor struct {
	shared.TenantEntity
	Name    string     `gorm:"type:varchar(255);not null" json:"name"`
	Phone   string     `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone"`
	CpfCnpj *string    `gorm:"type:varchar(18);uniqueIndex" json:"cpf_cnpj"`
	Email   *string    `gorm:"type:varchar(255)" json:"email"`
	StageID *uuid.UUID `gorm:"type:uuid;index" json:"stage_id"`
}

// TableName returns the table name for GORM
func (Contractor) TableName() string {
	return "contractors"
}

// NewContractor creates a new contractor owned by the given user
func NewContractor(userID uuid.UUID, name, phone string) (*Contractor, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Contractor name cannot be empty")
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}
	return &Contractor{
		TenantEntity: shared.NewTenantEntity(userID),
		Name:         name,
		Phone:        phone,
	}, nil
}

// NewPlaceholderContractor creates a minimal contractor from an inbound
// channel identity, named after the phone number.
func NewPlaceholderContractor(userID uuid.UUID, phone string) (*Contractor, error) {
	return NewContractor(userID, fmt.Sprintf("Contato %s", phone), phone)
}

// SetPhone changes the contractor's phone number
func (c *Contractor) SetPhone(phone string) error {
	if err := validatePhone(phone); err != nil {
		return err
	}
	c.Phone = phone
	c.Touch()
	return nil
}

// AssignStage moves the contractor into a pipeline stage (nil clears it)
func (c *Contractor) AssignStage(stageID *uuid.UUID) {
	c.StageID = stageID
	c.Touch()
}

// InPipeline returns true if the contractor is assigned to a stage
func (c *Contractor) InPipeline() bool {
	return c.StageID != nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot be empty")
	}
	if len(phone) > 20 || !phonePattern.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}
