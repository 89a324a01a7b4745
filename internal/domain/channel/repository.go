package channel

import (
	"context"

	"github.com/google/uuid"
)

// InstanceRepository defines the interface for instance persistence
type InstanceRepository interface {
	// FindByUser finds the tenant's instance; shared.ErrNotFound if none
	FindByUser(ctx context.Context, userID uuid.UUID) (*Instance, error)

	// FindByName finds an instance by its provider-side name
	FindByName(ctx context.Context, instanceName string) (*Instance, error)

	// Save creates or updates an instance
	Save(ctx context.Context, instance *Instance) error

	// DeleteByUser removes the tenant's instance if present. Deleting a
	// missing instance is not an error.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
