package agent

import (
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PromptVersion is a snapshot taken each time a prompt is deployed
type PromptVersion struct {
	shared.BaseEntity
	AgentConfigID uuid.UUID `gorm:"type:uuid;not null;index" json:"agent_config_id"`
	Version       int       `gorm:"not null" json:"version"`
	PromptContent string    `gorm:"type:text;not null" json:"prompt_content"`
}

// TableName returns the table name for GORM
func (PromptVersion) TableName() string {
	return "prompt_versions"
}

// NewPromptVersion snapshots deployed prompt content
func NewPromptVersion(agentConfigID uuid.UUID, version int, content string) *PromptVersion {
	return &PromptVersion{
		BaseEntity:    shared.NewBaseEntity(),
		AgentConfigID: agentConfigID,
		Version:       version,
		PromptContent: content,
	}
}
