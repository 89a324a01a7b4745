package crm

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContractor(t *testing.T) {
	userID := uuid.New()

	t.Run("creates contractor with valid inputs", func(t *testing.T) {
		contractor, err := NewContractor(userID, "Prefeitura de Goiânia", "+55 62 99999-0001")
		require.NoError(t, err)
		require.NotNil(t, contractor)

		assert.Equal(t, userID, contractor.UserID)
		assert.Equal(t, "Prefeitura de Goiânia", contractor.Name)
		assert.Equal(t, "+55 62 99999-0001", contractor.Phone)
		assert.Nil(t, contractor.StageID)
		assert.False(t, contractor.InPipeline())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewContractor(userID, "", "+55 62 99999-0001")
		require.Error(t, err)
	})

	t.Run("fails with empty phone", func(t *testing.T) {
		_, err := NewContractor(userID, "Prefeitura", "")
		require.Error(t, err)
	})

	t.Run("fails with malformed phone", func(t *testing.T) {
		_, err := NewContractor(userID, "Prefeitura", "not-a-phone!")
		require.Error(t, err)
	})
}

func TestNewPlaceholderContractor(t *testing.T) {
	userID := uuid.New()

	contractor, err := NewPlaceholderContractor(userID, "5562999990002")
	require.NoError(t, err)
	assert.Equal(t, "Contato 5562999990002", contractor.Name)
	assert.Equal(t, "5562999990002", contractor.Phone)
}

func TestContractorAssignStage(t *testing.T) {
	userID := uuid.New()
	contractor, err := NewContractor(userID, "Clube do Choro", "6233330000")
	require.NoError(t, err)

	stageID := uuid.New()
	contractor.AssignStage(&stageID)
	require.NotNil(t, contractor.StageID)
	assert.Equal(t, stageID, *contractor.StageID)
	assert.True(t, contractor.InPipeline())

	contractor.AssignStage(nil)
	assert.Nil(t, contractor.StageID)
	assert.False(t, contractor.InPipeline())
}
