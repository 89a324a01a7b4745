package agent

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/agent"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfigService manages agent settings, the prompt deploy cycle and
// the automation webhook proxies.
type ConfigService struct {
	configRepo  agent.ConfigRepository
	versionRepo agent.PromptVersionRepository
	automation  agent.AutomationGateway
	logger      *zap.Logger
}

// NewConfigService creates a new ConfigService
func NewConfigService(
	configRepo agent.ConfigRepository,
	versionRepo agent.PromptVersionRepository,
	automation agent.AutomationGateway,
	logger *zap.Logger,
) *ConfigService {
	return &ConfigService{
		configRepo:  configRepo,
		versionRepo: versionRepo,
		automation:  automation,
		logger:      logger,
	}
}

// Get returns the tenant's agent settings, creating the default
// configuration on first access.
func (s *ConfigService) Get(ctx context.Context, userID uuid.UUID) (*ConfigResponse, error) {
	config, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToConfigResponse(config), nil
}

// Update applies a partial update to the agent settings
func (s *ConfigService) Update(ctx context.Context, userID uuid.UUID, req UpdateConfigRequest) (*ConfigResponse, error) {
	config, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.IsActive != nil {
		config.IsActive = *req.IsActive
	}
	if req.WaitTimeBuffer != nil {
		if *req.WaitTimeBuffer < 0 {
			return nil, shared.NewDomainError("INVALID_BUFFER", "Wait time buffer cannot be negative")
		}
		config.WaitTimeBuffer = *req.WaitTimeBuffer
	}
	if req.SystemPromptLaboratory != nil {
		config.SystemPromptLaboratory = req.SystemPromptLaboratory
	}
	config.Touch()

	if err := s.configRepo.Save(ctx, config); err != nil {
		return nil, err
	}

	return ToConfigResponse(config), nil
}

// Deploy promotes the laboratory prompt to production and snapshots it
// as a new version.
func (s *ConfigService) Deploy(ctx context.Context, userID uuid.UUID) (*ConfigResponse, error) {
	config, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	content, err := config.Deploy()
	if err != nil {
		return nil, err
	}

	latest, err := s.versionRepo.LatestVersionNumber(ctx, config.ID)
	if err != nil {
		return nil, err
	}
	version := agent.NewPromptVersion(config.ID, latest+1, content)
	if err := s.versionRepo.Save(ctx, version); err != nil {
		return nil, err
	}

	if err := s.configRepo.Save(ctx, config); err != nil {
		return nil, err
	}

	s.logger.Info("prompt deployed",
		zap.String("agent_config_id", config.ID.String()),
		zap.Int("version", version.Version))

	return ToConfigResponse(config), nil
}

// Revert copies the production prompt back into the laboratory,
// discarding unreleased draft changes.
func (s *ConfigService) Revert(ctx context.Context, userID uuid.UUID) (*ConfigResponse, error) {
	config, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	config.Revert()

	if err := s.configRepo.Save(ctx, config); err != nil {
		return nil, err
	}

	return ToConfigResponse(config), nil
}

// Rollback loads a historical prompt version into the laboratory. The
// production prompt stays untouched until the next deploy.
func (s *ConfigService) Rollback(ctx context.Context, userID uuid.UUID, req RollbackRequest) (*ConfigResponse, error) {
	config, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	version, err := s.versionRepo.FindByID(ctx, config.ID, req.VersionID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewRelationshipViolation("Prompt version")
		}
		return nil, err
	}

	config.Rollback(version.PromptContent)

	if err := s.configRepo.Save(ctx, config); err != nil {
		return nil, err
	}

	return ToConfigResponse(config), nil
}

// ListVersions lists the deployed prompt history, newest first
func (s *ConfigService) ListVersions(ctx context.Context, userID uuid.UUID, page shared.Page) ([]PromptVersionResponse, error) {
	config, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	versions, err := s.versionRepo.FindByConfig(ctx, config.ID, page.Normalize())
	if err != nil {
		return nil, err
	}

	responses := make([]PromptVersionResponse, len(versions))
	for i := range versions {
		responses[i] = *ToPromptVersionResponse(&versions[i])
	}
	return responses, nil
}

// TestLab forwards a chat message plus the laboratory prompt to the
// test lab flow. Delivery failures come back in-band.
func (s *ConfigService) TestLab(ctx context.Context, userID uuid.UUID, req TestLabRequest) (*agent.WebhookResult, error) {
	config, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	prompt := ""
	if config.SystemPromptLaboratory != nil {
		prompt = *config.SystemPromptLaboratory
	}
	return s.automation.ForwardTestMessage(ctx, userID, req.Message, prompt), nil
}

// PromptEngineer forwards a rewrite instruction plus the laboratory
// prompt to the prompt engineering flow.
func (s *ConfigService) PromptEngineer(ctx context.Context, userID uuid.UUID, req PromptEngineerRequest) (*agent.WebhookResult, error) {
	config, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	prompt := ""
	if config.SystemPromptLaboratory != nil {
		prompt = *config.SystemPromptLaboratory
	}
	return s.automation.ForwardEngineerInstruction(ctx, userID, req.Instruction, prompt), nil
}

func (s *ConfigService) getOrCreate(ctx context.Context, userID uuid.UUID) (*agent.Config, error) {
	config, err := s.configRepo.FindByUser(ctx, userID)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	config = agent.NewConfig(userID)
	if err := s.configRepo.Save(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}
