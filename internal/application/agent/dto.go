package agent

import (
	"time"

	"github.com/artistai/backend/internal/domain/agent"
	"github.com/google/uuid"
)

// UpdateConfigRequest represents a partial update to the agent settings
type UpdateConfigRequest struct {
	IsActive               *bool   `json:"is_active"`
	WaitTimeBuffer         *int    `json:"wait_time_buffer" binding:"omitempty,min=0,max=60"`
	SystemPromptLaboratory *string `json:"system_prompt_laboratory"`
}

// TestLabRequest forwards a chat message to the test laboratory
type TestLabRequest struct {
	Message string `json:"message" binding:"required,min=1"`
}

// PromptEngineerRequest forwards a rewrite instruction to the prompt
// engineering flow.
type PromptEngineerRequest struct {
	Instruction string `json:"instruction" binding:"required,min=1"`
}

// RollbackRequest loads a historical prompt version into the laboratory
type RollbackRequest struct {
	VersionID uuid.UUID `json:"version_id" binding:"required"`
}

// ConfigResponse represents the agent settings in API responses
type ConfigResponse struct {
	ID                     uuid.UUID `json:"id"`
	IsActive               bool      `json:"is_active"`
	WaitTimeBuffer         int       `json:"wait_time_buffer"`
	SystemPromptLaboratory *string   `json:"system_prompt_laboratory"`
	SystemPromptProduction *string   `json:"system_prompt_production"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ToConfigResponse converts a domain config to a response DTO
func ToConfigResponse(config *agent.Config) *ConfigResponse {
	return &ConfigResponse{
		ID:                     config.ID,
		IsActive:               config.IsActive,
		WaitTimeBuffer:         config.WaitTimeBuffer,
		SystemPromptLaboratory: config.SystemPromptLaboratory,
		SystemPromptProduction: config.SystemPromptProduction,
		CreatedAt:              config.CreatedAt,
		UpdatedAt:              config.UpdatedAt,
	}
}

// PromptVersionResponse represents a deployed prompt snapshot
type PromptVersionResponse struct {
	ID            uuid.UUID `json:"id"`
	AgentConfigID uuid.UUID `json:"agent_config_id"`
	Version       int       `json:"version"`
	PromptContent string    `json:"prompt_content"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToPromptVersionResponse converts a domain version to a response DTO
func ToPromptVersionResponse(version *agent.PromptVersion) *PromptVersionResponse {
	return &PromptVersionResponse{
		ID:            version.ID,
		AgentConfigID: version.AgentConfigID,
		Version:       version.Version,
		PromptContent: version.PromptContent,
		CreatedAt:     version.CreatedAt,
	}
}
