package crm

import (
	"context"
	"time"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContractorRepository defines the interface for contractor persistence
type ContractorRepository interface {
	// FindByID finds a contractor by ID within a user's data
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Contractor, error)

	// FindByPhone finds a contractor by exact phone within a user's data
	FindByPhone(ctx context.Context, userID uuid.UUID, phone string) (*Contractor, error)

	// FindDuplicate scans the user's contractors for a phone or document
	// match, excluding excludeID (uuid.Nil to exclude nothing). Returns
	// (match, conflicting field name) or shared.ErrNotFound.
	FindDuplicate(ctx context.Context, userID uuid.UUID, phone string, cpfCnpj *string, excludeID uuid.UUID) (*Contractor, string, error)

	// FindAll lists a user's contractors in insertion order
	FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]Contractor, error)

	// FindRecentlyCreated lists contractors created since the given
	// time, newest first, up to limit.
	FindRecentlyCreated(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]Contractor, error)

	// CountByStage counts contractors assigned to a stage (nil for unassigned)
	CountByStage(ctx context.Context, userID uuid.UUID, stageID *uuid.UUID) (int64, error)

	// CountInPipeline counts contractors assigned to any stage
	CountInPipeline(ctx context.Context, userID uuid.UUID) (int64, error)

	// Save creates or updates a contractor
	Save(ctx context.Context, contractor *Contractor) error

	// Delete removes a contractor; returns shared.ErrNotFound if absent
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// StageRepository defines the interface for pipeline stage persistence
type StageRepository interface {
	// FindByID finds a stage by ID within a user's data
	FindByID(ctx context.Context, userID, id uuid.UUID) (*PipelineStage, error)

	// FindAll lists a user's stages ordered by (order, created_at)
	FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]PipelineStage, error)

	// Save creates or updates a stage
	Save(ctx context.Context, stage *PipelineStage) error

	// Reorder applies the given (id, order) pairs in one transaction.
	// Unknown ids are skipped; the updated stages are returned.
	Reorder(ctx context.Context, userID uuid.UUID, orders []StageOrder) ([]PipelineStage, error)

	// DeleteWithCleanup nulls the stage reference on dependent contractors
	// and removes the stage, all in one transaction.
	DeleteWithCleanup(ctx context.Context, userID, id uuid.UUID) error
}

// NoteRepository defines the interface for note persistence
type NoteRepository interface {
	// FindByID finds a note by ID within a user's data
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Note, error)

	// FindByContractor lists a contractor's notes, newest first
	FindByContractor(ctx context.Context, userID, contractorID uuid.UUID, page shared.Page) ([]Note, error)

	// Save creates or updates a note
	Save(ctx context.Context, note *Note) error

	// Delete removes a note; returns shared.ErrNotFound if absent
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
