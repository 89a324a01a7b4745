package agent

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// WebhookResult carries the outcome of forwarding a request to an
// automation webhook. Delivery failures are reported in-band through
// Success and Error so the caller can show them instead of failing.
type WebhookResult struct {
	Success  bool            `json:"success"`
	Response json.RawMessage `json:"response"`
	Error    string          `json:"error,omitempty"`
}

// AutomationGateway forwards agent requests to the external automation
// platform that runs the test laboratory and prompt engineering flows.
type AutomationGateway interface {
	// ForwardTestMessage sends a chat message plus the laboratory
	// prompt to the test lab flow and relays its reply.
	ForwardTestMessage(ctx context.Context, userID uuid.UUID, message, systemPrompt string) *WebhookResult

	// ForwardEngineerInstruction sends a rewrite instruction plus the
	// current laboratory prompt to the prompt engineering flow.
	ForwardEngineerInstruction(ctx context.Context, userID uuid.UUID, instruction, currentPrompt string) *WebhookResult
}
