package automation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/artistai/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_ForwardTestMessage(t *testing.T) {
	userID := uuid.New()

	t.Run("relays the webhook reply", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Quanto custa um show?", payload["message"])
			assert.Equal(t, "Você é um agente de booking.", payload["system_prompt"])
			assert.Equal(t, userID.String(), payload["user_id"])

			_, _ = w.Write([]byte(`{"reply":"O cachê base é R$ 50.000."}`))
		}))
		defer server.Close()

		client := NewClient(config.AutomationConfig{
			TestLabWebhookURL: server.URL,
			Timeout:           5 * time.Second,
		}, zap.NewNop())

		result := client.ForwardTestMessage(context.Background(), userID,
			"Quanto custa um show?", "Você é um agente de booking.")
		assert.True(t, result.Success)
		assert.JSONEq(t, `{"reply":"O cachê base é R$ 50.000."}`, string(result.Response))
		assert.Empty(t, result.Error)
	})

	t.Run("http error comes back in-band", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "workflow not active", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(config.AutomationConfig{
			TestLabWebhookURL: server.URL,
			Timeout:           5 * time.Second,
		}, zap.NewNop())

		result := client.ForwardTestMessage(context.Background(), userID, "oi", "prompt")
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "503")
	})

	t.Run("unconfigured url comes back in-band", func(t *testing.T) {
		client := NewClient(config.AutomationConfig{Timeout: time.Second}, zap.NewNop())

		result := client.ForwardTestMessage(context.Background(), userID, "oi", "prompt")
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "not configured")
	})
}

func TestClient_ForwardEngineerInstruction(t *testing.T) {
	userID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Deixe o tom mais formal.", payload["instruction"])
		assert.Equal(t, "Você é um agente.", payload["current_prompt"])

		_, _ = w.Write([]byte(`{"improved_prompt":"Você é um agente formal de booking."}`))
	}))
	defer server.Close()

	client := NewClient(config.AutomationConfig{
		PromptEngineerWebhookURL: server.URL,
		Timeout:                  5 * time.Second,
	}, zap.NewNop())

	result := client.ForwardEngineerInstruction(context.Background(), userID,
		"Deixe o tom mais formal.", "Você é um agente.")
	assert.True(t, result.Success)
	assert.Contains(t, string(result.Response), "improved_prompt")
}
