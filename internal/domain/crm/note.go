package crm

import (
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Note is a free-text annotation attached to a contractor
type Note struct {
	shared.TenantEntity
	ContractorID uuid.UUID `gorm:"type:uuid;not null;index" json:"contractor_id"`
	Content      string    `gorm:"type:text;not null" json:"content"`
}

// TableName returns the table name for GORM
func (Note) TableName() string {
	return "notes"
}

// NewNote creates a new note on a contractor
func NewNote(userID, contractorID uuid.UUID, content string) (*Note, error) {
	if content == "" {
		return nil, shared.NewDomainError("INVALID_CONTENT", "Note content cannot be empty")
	}
	return &Note{
		TenantEntity: shared.NewTenantEntity(userID),
		ContractorID: contractorID,
		Content:      content,
	}, nil
}

// SetContent replaces the note text
func (n *Note) SetContent(content string) error {
	if content == "" {
		return shared.NewDomainError("INVALID_CONTENT", "Note content cannot be empty")
	}
	n.Content = content
	n.Touch()
	return nil
}
