package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/messaging"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository_Append(t *testing.T) {
	db := setupTestDB(t)
	conversations := NewGormConversationRepository(db)
	messages := NewGormMessageRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	contractor, err := crm.NewContractor(userID, "Contato 5562955550001", "5562955550001")
	require.NoError(t, err)
	require.NoError(t, db.Create(contractor).Error)

	conversation, err := messaging.NewConversation(userID, contractor.ID, messaging.ChannelWhatsApp)
	require.NoError(t, err)
	require.NoError(t, conversations.Save(ctx, conversation))
	require.Nil(t, conversation.LastMessageAt)

	sentAt := time.Now().UTC().Truncate(time.Second)
	message, err := messaging.NewMessage(userID, conversation.ID, messaging.SenderUser,
		messaging.ContentText, "Qual o valor do show?", sentAt)
	require.NoError(t, err)
	require.NoError(t, messages.Append(ctx, message))

	t.Run("message is listed in order", func(t *testing.T) {
		later, err := messaging.NewMessage(userID, conversation.ID, messaging.SenderAgent,
			messaging.ContentText, "O cachê base é R$ 50.000.", sentAt.Add(time.Minute))
		require.NoError(t, err)
		require.NoError(t, messages.Append(ctx, later))

		listed, err := messages.FindByConversation(ctx, userID, conversation.ID, shared.DefaultPage())
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, messaging.SenderUser, listed[0].SenderType)
		assert.Equal(t, messaging.SenderAgent, listed[1].SenderType)
	})

	t.Run("append bumps last_message_at", func(t *testing.T) {
		refreshed, err := conversations.FindByID(ctx, userID, conversation.ID)
		require.NoError(t, err)
		require.NotNil(t, refreshed.LastMessageAt)
		assert.WithinDuration(t, sentAt.Add(time.Minute), *refreshed.LastMessageAt, time.Second)
	})

	t.Run("lookup by channel message id", func(t *testing.T) {
		waID := "wamid.HBgNNTU2Mjk1NTU1MDAwMRUCABIYFDNBMD"
		tagged, err := messaging.NewMessage(userID, conversation.ID, messaging.SenderUser,
			messaging.ContentText, "Fechado!", sentAt.Add(2*time.Minute))
		require.NoError(t, err)
		tagged.WhatsappMessageID = &waID
		require.NoError(t, messages.Append(ctx, tagged))

		found, err := messages.FindByWhatsappMessageID(ctx, userID, waID)
		require.NoError(t, err)
		assert.Equal(t, tagged.ID, found.ID)

		_, err = messages.FindByWhatsappMessageID(ctx, userID, "wamid.unknown")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
