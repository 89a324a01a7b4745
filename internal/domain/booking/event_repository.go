package booking

import (
	"context"
	"time"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EventFilter narrows event listings
type EventFilter struct {
	ArtistID     *uuid.UUID
	ContractorID *uuid.UUID
	StartDate    *time.Time
	EndDate      *time.Time
}

// EventRepository defines the interface for event persistence
type EventRepository interface {
	// FindByID finds an event by ID within a user's data
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Event, error)

	// FindAll lists a user's events matching the filter, ordered by event date
	FindAll(ctx context.Context, userID uuid.UUID, filter EventFilter, page shared.Page) ([]Event, error)

	// CountUpcoming counts non-cancelled events with a date in [from, to)
	CountUpcoming(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error)

	// FindUpcoming lists non-cancelled events dated from `from` on,
	// soonest first, up to limit.
	FindUpcoming(ctx context.Context, userID uuid.UUID, from time.Time, limit int) ([]Event, error)

	// FindRecentlyCreated lists events created since the given time,
	// newest first, up to limit.
	FindRecentlyCreated(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]Event, error)

	// Save creates or updates an event
	Save(ctx context.Context, event *Event) error

	// Delete removes an event; returns shared.ErrNotFound if absent
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
