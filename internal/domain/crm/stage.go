package crm

import (
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PipelineStage is one step of the sales funnel a contractor moves through.
// Order values are advisory; ties are resolved by creation time.
type PipelineStage struct {
	shared.TenantEntity
	Name  string `gorm:"type:varchar(100);not null" json:"name"`
	Order int    `gorm:"column:order;not null;default:0" json:"order"`
}

// TableName returns the table name for GORM
func (PipelineStage) TableName() string {
	return "pipeline_stages"
}

// NewPipelineStage creates a new stage owned by the given user
func NewPipelineStage(userID uuid.UUID, name string, order int) (*PipelineStage, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Stage name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Stage name cannot exceed 100 characters")
	}
	return &PipelineStage{
		TenantEntity: shared.NewTenantEntity(userID),
		Name:         name,
		Order:        order,
	}, nil
}

// StageOrder is one (id, order) pair of a bulk reorder request
type StageOrder struct {
	ID    uuid.UUID
	Order int
}
