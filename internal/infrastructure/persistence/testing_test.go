package persistence

import (
	"testing"

	"github.com/artistai/backend/internal/domain/agent"
	"github.com/artistai/backend/internal/domain/booking"
	"github.com/artistai/backend/internal/domain/channel"
	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/messaging"
	"github.com/artistai/backend/internal/domain/roster"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&roster.Artist{},
		&crm.Contractor{},
		&crm.PipelineStage{},
		&crm.Note{},
		&booking.Event{},
		&messaging.Conversation{},
		&messaging.Message{},
		&finance.Account{},
		&finance.Category{},
		&finance.Transaction{},
		&finance.Goal{},
		&finance.Budget{},
		&channel.Instance{},
		&agent.Config{},
		&agent.PromptVersion{},
	)
	require.NoError(t, err)

	return db
}
