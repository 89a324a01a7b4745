package agent

import (
	"context"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ConfigRepository defines the interface for agent config persistence
type ConfigRepository interface {
	// FindByUser finds the tenant's config; shared.ErrNotFound if none
	FindByUser(ctx context.Context, userID uuid.UUID) (*Config, error)

	// Save creates or updates a config
	Save(ctx context.Context, config *Config) error
}

// PromptVersionRepository defines the interface for prompt history
type PromptVersionRepository interface {
	// FindByID finds a version belonging to the given config
	FindByID(ctx context.Context, agentConfigID, id uuid.UUID) (*PromptVersion, error)

	// FindByConfig lists a config's versions, newest first
	FindByConfig(ctx context.Context, agentConfigID uuid.UUID, page shared.Page) ([]PromptVersion, error)

	// LatestVersionNumber returns the highest version number recorded
	// for the config, zero when there is none.
	LatestVersionNumber(ctx context.Context, agentConfigID uuid.UUID) (int, error)

	// Save stores a new version snapshot
	Save(ctx context.Context, version *PromptVersion) error
}
