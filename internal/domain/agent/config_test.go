package agent

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	userID := uuid.New()

	config := NewConfig(userID)
	assert.Equal(t, userID, config.UserID)
	assert.True(t, config.IsActive)
	assert.Equal(t, 2, config.WaitTimeBuffer)
	assert.Nil(t, config.SystemPromptLaboratory)
	assert.Nil(t, config.SystemPromptProduction)
}

func TestConfigDeploy(t *testing.T) {
	config := NewConfig(uuid.New())

	t.Run("fails with empty laboratory prompt", func(t *testing.T) {
		_, err := config.Deploy()
		require.Error(t, err)
	})

	t.Run("promotes laboratory to production", func(t *testing.T) {
		prompt := "Você é um agente de agendamento de shows."
		config.SystemPromptLaboratory = &prompt

		content, err := config.Deploy()
		require.NoError(t, err)
		assert.Equal(t, prompt, content)
		require.NotNil(t, config.SystemPromptProduction)
		assert.Equal(t, prompt, *config.SystemPromptProduction)
	})
}

func TestConfigRevert(t *testing.T) {
	config := NewConfig(uuid.New())
	lab := "draft v2"
	prod := "stable v1"
	config.SystemPromptLaboratory = &lab
	config.SystemPromptProduction = &prod

	config.Revert()
	require.NotNil(t, config.SystemPromptLaboratory)
	assert.Equal(t, "stable v1", *config.SystemPromptLaboratory)

	config.SystemPromptProduction = nil
	config.Revert()
	assert.Nil(t, config.SystemPromptLaboratory)
}

func TestConfigRollback(t *testing.T) {
	config := NewConfig(uuid.New())

	config.Rollback("prompt from version 3")
	require.NotNil(t, config.SystemPromptLaboratory)
	assert.Equal(t, "prompt from version 3", *config.SystemPromptLaboratory)
}
