package agent

import (
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Config holds a tenant's conversational agent settings. The
// laboratory prompt is the editable draft; the production prompt only
// changes through Deploy and Rollback.
type Config struct {
	shared.TenantEntity
	IsActive               bool    `gorm:"not null;default:true" json:"is_active"`
	WaitTimeBuffer         int     `gorm:"not null;default:2" json:"wait_time_buffer"`
	SystemPromptLaboratory *string `gorm:"type:text" json:"system_prompt_laboratory"`
	SystemPromptProduction *string `gorm:"type:text" json:"system_prompt_production"`
}

// TableName returns the table name for GORM
func (Config) TableName() string {
	return "agent_configurations"
}

// NewConfig creates a tenant's default agent configuration
func NewConfig(userID uuid.UUID) *Config {
	return &Config{
		TenantEntity:   shared.NewTenantEntity(userID),
		IsActive:       true,
		WaitTimeBuffer: 2,
	}
}

// Deploy promotes the laboratory prompt to production and returns the
// promoted content. An empty laboratory prompt cannot be deployed.
func (c *Config) Deploy() (string, error) {
	if c.SystemPromptLaboratory == nil || *c.SystemPromptLaboratory == "" {
		return "", shared.NewDomainError("EMPTY_PROMPT", "Laboratory prompt is empty, nothing to deploy")
	}
	content := *c.SystemPromptLaboratory
	c.SystemPromptProduction = &content
	c.Touch()
	return content, nil
}

// Revert copies the production prompt back into the laboratory
func (c *Config) Revert() {
	if c.SystemPromptProduction != nil {
		content := *c.SystemPromptProduction
		c.SystemPromptLaboratory = &content
	} else {
		c.SystemPromptLaboratory = nil
	}
	c.Touch()
}

// Rollback loads a historical prompt version into the laboratory
func (c *Config) Rollback(content string) {
	c.SystemPromptLaboratory = &content
	c.Touch()
}
