package agent

import (
	"context"
	"testing"

	"github.com/artistai/backend/internal/domain/agent"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockConfigRepository is a mock implementation of agent.ConfigRepository
type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*agent.Config, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Config), args.Error(1)
}

func (m *MockConfigRepository) Save(ctx context.Context, config *agent.Config) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

// MockPromptVersionRepository is a mock implementation of agent.PromptVersionRepository
type MockPromptVersionRepository struct {
	mock.Mock
}

func (m *MockPromptVersionRepository) FindByID(ctx context.Context, agentConfigID, id uuid.UUID) (*agent.PromptVersion, error) {
	args := m.Called(ctx, agentConfigID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.PromptVersion), args.Error(1)
}

func (m *MockPromptVersionRepository) FindByConfig(ctx context.Context, agentConfigID uuid.UUID, page shared.Page) ([]agent.PromptVersion, error) {
	args := m.Called(ctx, agentConfigID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]agent.PromptVersion), args.Error(1)
}

func (m *MockPromptVersionRepository) LatestVersionNumber(ctx context.Context, agentConfigID uuid.UUID) (int, error) {
	args := m.Called(ctx, agentConfigID)
	return args.Int(0), args.Error(1)
}

func (m *MockPromptVersionRepository) Save(ctx context.Context, version *agent.PromptVersion) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

// MockAutomationGateway is a mock implementation of agent.AutomationGateway
type MockAutomationGateway struct {
	mock.Mock
}

func (m *MockAutomationGateway) ForwardTestMessage(ctx context.Context, userID uuid.UUID, message, systemPrompt string) *agent.WebhookResult {
	args := m.Called(ctx, userID, message, systemPrompt)
	return args.Get(0).(*agent.WebhookResult)
}

func (m *MockAutomationGateway) ForwardEngineerInstruction(ctx context.Context, userID uuid.UUID, instruction, currentPrompt string) *agent.WebhookResult {
	args := m.Called(ctx, userID, instruction, currentPrompt)
	return args.Get(0).(*agent.WebhookResult)
}

func newConfigService() (*ConfigService, *MockConfigRepository, *MockPromptVersionRepository, *MockAutomationGateway) {
	configRepo := new(MockConfigRepository)
	versionRepo := new(MockPromptVersionRepository)
	automation := new(MockAutomationGateway)
	return NewConfigService(configRepo, versionRepo, automation, zap.NewNop()), configRepo, versionRepo, automation
}

func TestConfigService_Get(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates default config on first access", func(t *testing.T) {
		service, configRepo, _, _ := newConfigService()

		configRepo.On("FindByUser", ctx, userID).Return(nil, shared.ErrNotFound)
		configRepo.On("Save", ctx, mock.MatchedBy(func(c *agent.Config) bool {
			return c.UserID == userID && c.IsActive && c.WaitTimeBuffer == 2
		})).Return(nil)

		resp, err := service.Get(ctx, userID)
		require.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.Equal(t, 2, resp.WaitTimeBuffer)
		assert.Nil(t, resp.SystemPromptLaboratory)
	})

	t.Run("returns existing config unchanged", func(t *testing.T) {
		service, configRepo, _, _ := newConfigService()

		config := agent.NewConfig(userID)
		prompt := "Você é um agente de booking."
		config.SystemPromptLaboratory = &prompt
		configRepo.On("FindByUser", ctx, userID).Return(config, nil)

		resp, err := service.Get(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, resp.SystemPromptLaboratory)
		assert.Equal(t, prompt, *resp.SystemPromptLaboratory)
		configRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestConfigService_Deploy(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("promotes laboratory prompt and snapshots a version", func(t *testing.T) {
		service, configRepo, versionRepo, _ := newConfigService()

		config := agent.NewConfig(userID)
		prompt := "Você é um agente formal de booking."
		config.SystemPromptLaboratory = &prompt

		configRepo.On("FindByUser", ctx, userID).Return(config, nil)
		versionRepo.On("LatestVersionNumber", ctx, config.ID).Return(3, nil)
		versionRepo.On("Save", ctx, mock.MatchedBy(func(v *agent.PromptVersion) bool {
			return v.AgentConfigID == config.ID && v.Version == 4 && v.PromptContent == prompt
		})).Return(nil)
		configRepo.On("Save", ctx, config).Return(nil)

		resp, err := service.Deploy(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, resp.SystemPromptProduction)
		assert.Equal(t, prompt, *resp.SystemPromptProduction)
		versionRepo.AssertExpectations(t)
	})

	t.Run("empty laboratory prompt cannot be deployed", func(t *testing.T) {
		service, configRepo, versionRepo, _ := newConfigService()

		config := agent.NewConfig(userID)
		configRepo.On("FindByUser", ctx, userID).Return(config, nil)

		_, err := service.Deploy(ctx, userID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMPTY_PROMPT", domainErr.Code)
		versionRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestConfigService_Rollback(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("loads version content into the laboratory only", func(t *testing.T) {
		service, configRepo, versionRepo, _ := newConfigService()

		config := agent.NewConfig(userID)
		production := "prompt em produção"
		config.SystemPromptProduction = &production

		version := agent.NewPromptVersion(config.ID, 2, "prompt antigo")
		configRepo.On("FindByUser", ctx, userID).Return(config, nil)
		versionRepo.On("FindByID", ctx, config.ID, version.ID).Return(version, nil)
		configRepo.On("Save", ctx, config).Return(nil)

		resp, err := service.Rollback(ctx, userID, RollbackRequest{VersionID: version.ID})
		require.NoError(t, err)
		require.NotNil(t, resp.SystemPromptLaboratory)
		assert.Equal(t, "prompt antigo", *resp.SystemPromptLaboratory)
		assert.Equal(t, production, *resp.SystemPromptProduction)
	})

	t.Run("foreign version id is a relationship violation", func(t *testing.T) {
		service, configRepo, versionRepo, _ := newConfigService()

		config := agent.NewConfig(userID)
		versionID := uuid.New()
		configRepo.On("FindByUser", ctx, userID).Return(config, nil)
		versionRepo.On("FindByID", ctx, config.ID, versionID).Return(nil, shared.ErrNotFound)

		_, err := service.Rollback(ctx, userID, RollbackRequest{VersionID: versionID})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "RELATIONSHIP_VIOLATION", domainErr.Code)
	})
}

func TestConfigService_TestLab(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	service, configRepo, _, automation := newConfigService()

	config := agent.NewConfig(userID)
	prompt := "Você é um agente de booking."
	config.SystemPromptLaboratory = &prompt
	configRepo.On("FindByUser", ctx, userID).Return(config, nil)
	automation.On("ForwardTestMessage", ctx, userID, "Qual o cachê?", prompt).
		Return(&agent.WebhookResult{Success: true})

	result, err := service.TestLab(ctx, userID, TestLabRequest{Message: "Qual o cachê?"})
	require.NoError(t, err)
	assert.True(t, result.Success)
}
