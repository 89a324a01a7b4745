package booking

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/booking"
	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/roster"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EventService handles event booking operations
type EventService struct {
	eventRepo      booking.EventRepository
	artistRepo     roster.ArtistRepository
	contractorRepo crm.ContractorRepository
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo booking.EventRepository,
	artistRepo roster.ArtistRepository,
	contractorRepo crm.ContractorRepository,
) *EventService {
	return &EventService{
		eventRepo:      eventRepo,
		artistRepo:     artistRepo,
		contractorRepo: contractorRepo,
	}
}

// Create books an event after validating that the referenced artist
// and contractor belong to the user.
func (s *EventService) Create(ctx context.Context, userID uuid.UUID, req CreateEventRequest) (*EventResponse, error) {
	artist, err := s.artistRepo.FindByID(ctx, userID, req.ArtistID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewRelationshipViolation("Artist")
		}
		return nil, err
	}

	contractor, err := s.contractorRepo.FindByID(ctx, userID, req.ContractorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewRelationshipViolation("Contractor")
		}
		return nil, err
	}

	event, err := booking.NewEvent(userID, req.ArtistID, req.ContractorID, req.Title, req.EventDate, req.AgreedFee)
	if err != nil {
		return nil, err
	}
	event.EventLocation = req.EventLocation

	if err := s.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}

	return ToEventResponse(event, artist, contractor), nil
}

// GetByID retrieves an event with its artist and contractor inlined
func (s *EventService) GetByID(ctx context.Context, userID, id uuid.UUID) (*EventResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.withRelations(ctx, userID, event), nil
}

// List retrieves events matching the filter, artist and contractor inlined
func (s *EventService) List(ctx context.Context, userID uuid.UUID, filter EventListFilter, page shared.Page) ([]EventResponse, error) {
	domainFilter := booking.EventFilter{
		ArtistID:     filter.ArtistID,
		ContractorID: filter.ContractorID,
		StartDate:    filter.StartDate,
		EndDate:      filter.EndDate,
	}

	events, err := s.eventRepo.FindAll(ctx, userID, domainFilter, page.Normalize())
	if err != nil {
		return nil, err
	}

	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = *s.withRelations(ctx, userID, &events[i])
	}
	return responses, nil
}

// Update applies a partial update to an event
func (s *EventService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateEventRequest) (*EventResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.ArtistID != nil && *req.ArtistID != event.ArtistID {
		if _, err := s.artistRepo.FindByID(ctx, userID, *req.ArtistID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewRelationshipViolation("Artist")
			}
			return nil, err
		}
		event.ArtistID = *req.ArtistID
		event.Touch()
	}
	if req.ContractorID != nil && *req.ContractorID != event.ContractorID {
		if _, err := s.contractorRepo.FindByID(ctx, userID, *req.ContractorID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewRelationshipViolation("Contractor")
			}
			return nil, err
		}
		event.ContractorID = *req.ContractorID
		event.Touch()
	}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, shared.NewDomainError("INVALID_TITLE", "Event title cannot be empty")
		}
		event.Title = *req.Title
		event.Touch()
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
		event.Touch()
	}
	if req.EventLocation != nil {
		event.EventLocation = req.EventLocation
		event.Touch()
	}
	if req.AgreedFee != nil {
		if err := event.SetAgreedFee(*req.AgreedFee); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := event.SetStatus(booking.EventStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}

	return s.withRelations(ctx, userID, event), nil
}

// Delete removes an event
func (s *EventService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.eventRepo.Delete(ctx, userID, id)
}

// withRelations resolves the artist and contractor for the response.
// Lookup failures leave the summary out rather than failing the read.
func (s *EventService) withRelations(ctx context.Context, userID uuid.UUID, event *booking.Event) *EventResponse {
	artist, err := s.artistRepo.FindByID(ctx, userID, event.ArtistID)
	if err != nil {
		artist = nil
	}
	contractor, err := s.contractorRepo.FindByID(ctx, userID, event.ContractorID)
	if err != nil {
		contractor = nil
	}
	return ToEventResponse(event, artist, contractor)
}
