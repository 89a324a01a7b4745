package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/artistai/backend/internal/domain/agent"
	"github.com/artistai/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client forwards agent requests to the automation platform webhooks.
// It never returns an error: delivery problems come back in-band in
// the WebhookResult so handlers relay them instead of failing.
type Client struct {
	testLabURL        string
	promptEngineerURL string
	httpClient        *http.Client
	logger            *zap.Logger
}

// NewClient creates an automation webhook client from configuration
func NewClient(cfg config.AutomationConfig, logger *zap.Logger) *Client {
	return &Client{
		testLabURL:        cfg.TestLabWebhookURL,
		promptEngineerURL: cfg.PromptEngineerWebhookURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type testLabPayload struct {
	Message      string    `json:"message"`
	SystemPrompt string    `json:"system_prompt"`
	UserID       uuid.UUID `json:"user_id"`
}

type promptEngineerPayload struct {
	Instruction   string    `json:"instruction"`
	CurrentPrompt string    `json:"current_prompt"`
	UserID        uuid.UUID `json:"user_id"`
}

// ForwardTestMessage sends a chat message plus the laboratory prompt
// to the test lab flow and relays its reply.
func (c *Client) ForwardTestMessage(ctx context.Context, userID uuid.UUID, message, systemPrompt string) *agent.WebhookResult {
	return c.forward(ctx, "test_lab", c.testLabURL, testLabPayload{
		Message:      message,
		SystemPrompt: systemPrompt,
		UserID:       userID,
	})
}

// ForwardEngineerInstruction sends a rewrite instruction plus the
// current laboratory prompt to the prompt engineering flow.
func (c *Client) ForwardEngineerInstruction(ctx context.Context, userID uuid.UUID, instruction, currentPrompt string) *agent.WebhookResult {
	return c.forward(ctx, "prompt_engineer", c.promptEngineerURL, promptEngineerPayload{
		Instruction:   instruction,
		CurrentPrompt: currentPrompt,
		UserID:        userID,
	})
}

func (c *Client) forward(ctx context.Context, flow, url string, payload any) *agent.WebhookResult {
	if url == "" {
		return failure(fmt.Sprintf("%s webhook url is not configured", flow))
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return failure(fmt.Sprintf("encode payload: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return failure(fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("automation webhook unreachable",
			zap.String("flow", flow), zap.Error(err))
		return failure(fmt.Sprintf("connection error: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(fmt.Sprintf("read response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("automation webhook rejected request",
			zap.String("flow", flow), zap.Int("status", resp.StatusCode))
		return failure(fmt.Sprintf("http error %d: %s", resp.StatusCode, string(body)))
	}

	if !json.Valid(body) {
		return failure("webhook returned a non-JSON response")
	}

	return &agent.WebhookResult{
		Success:  true,
		Response: json.RawMessage(body),
	}
}

func failure(message string) *agent.WebhookResult {
	return &agent.WebhookResult{
		Success:  false,
		Response: json.RawMessage("{}"),
		Error:    message,
	}
}

var _ agent.AutomationGateway = (*Client)(nil)
