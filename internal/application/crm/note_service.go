package crm

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// NoteService handles contractor note operations
type NoteService struct {
	noteRepo       crm.NoteRepository
	contractorRepo crm.ContractorRepository
}

// NewNoteService creates a new NoteService
func NewNoteService(
	noteRepo crm.NoteRepository,
	contractorRepo crm.ContractorRepository,
) *NoteService {
	return &NoteService{
		noteRepo:       noteRepo,
		contractorRepo: contractorRepo,
	}
}

// Create attaches a note to one of the user's contractors
func (s *NoteService) Create(ctx context.Context, userID uuid.UUID, req CreateNoteRequest) (*NoteResponse, error) {
	if _, err := s.contractorRepo.FindByID(ctx, userID, req.ContractorID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewRelationshipViolation("Contractor")
		}
		return nil, err
	}

	note, err := crm.NewNote(userID, req.ContractorID, req.Content)
	if err != nil {
		return nil, err
	}

	if err := s.noteRepo.Save(ctx, note); err != nil {
		return nil, err
	}

	return ToNoteResponse(note), nil
}

// ListByContractor retrieves a contractor's notes, newest first
func (s *NoteService) ListByContractor(ctx context.Context, userID, contractorID uuid.UUID, page shared.Page) ([]NoteResponse, error) {
	if _, err := s.contractorRepo.FindByID(ctx, userID, contractorID); err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.FindByContractor(ctx, userID, contractorID, page.Normalize())
	if err != nil {
		return nil, err
	}

	responses := make([]NoteResponse, len(notes))
	for i := range notes {
		responses[i] = *ToNoteResponse(&notes[i])
	}
	return responses, nil
}

// Update replaces a note's content
func (s *NoteService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateNoteRequest) (*NoteResponse, error) {
	note, err := s.noteRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := note.SetContent(req.Content); err != nil {
		return nil, err
	}

	if err := s.noteRepo.Save(ctx, note); err != nil {
		return nil, err
	}

	return ToNoteResponse(note), nil
}

// Delete removes a note
func (s *NoteService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.noteRepo.Delete(ctx, userID, id)
}
