package messaging

import (
	"context"
	"time"
)

// IdempotencyStore remembers channel message ids that were already
// ingested so webhook redeliveries do not duplicate messages.
type IdempotencyStore interface {
	// MarkProcessed marks a message id as processed with a TTL.
	// Returns true if it was newly marked, false if already seen.
	MarkProcessed(ctx context.Context, messageID string, ttl time.Duration) (bool, error)

	// IsProcessed checks if a message id was already ingested
	IsProcessed(ctx context.Context, messageID string) (bool, error)

	// Close releases any resources held by the store
	Close() error
}
