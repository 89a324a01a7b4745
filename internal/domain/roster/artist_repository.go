package roster

import (
	"context"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ArtistRepository defines the interface for artist persistence
type ArtistRepository interface {
	// FindByID finds an artist by ID within a user's data
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Artist, error)

	// FindAll lists a user's artists in insertion order
	FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]Artist, error)

	// CountActive counts the user's active artists
	CountActive(ctx context.Context, userID uuid.UUID) (int64, error)

	// Save creates or updates an artist
	Save(ctx context.Context, artist *Artist) error

	// Delete removes an artist; returns shared.ErrNotFound if absent
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
