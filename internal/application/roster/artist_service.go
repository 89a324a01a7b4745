package roster

import (
	"context"

	"github.com/artistai/backend/internal/domain/roster"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ArtistService handles roster management operations
type ArtistService struct {
	artistRepo roster.ArtistRepository
}

// NewArtistService creates a new ArtistService
func NewArtistService(artistRepo roster.ArtistRepository) *ArtistService {
	return &ArtistService{artistRepo: artistRepo}
}

// Create adds an artist to the user's roster
func (s *ArtistService) Create(ctx context.Context, userID uuid.UUID, req CreateArtistRequest) (*ArtistResponse, error) {
	artist, err := roster.NewArtist(userID, req.Name)
	if err != nil {
		return nil, err
	}

	if req.BaseFee != nil || req.MinFee != nil {
		baseFee := artist.BaseFee
		minFee := artist.MinFee
		if req.BaseFee != nil {
			baseFee = *req.BaseFee
		}
		if req.MinFee != nil {
			minFee = *req.MinFee
		}
		if err := artist.SetFees(baseFee, minFee); err != nil {
			return nil, err
		}
	}

	if req.DownPaymentPercentage != nil {
		if err := artist.SetDownPaymentPercentage(*req.DownPaymentPercentage); err != nil {
			return nil, err
		}
	}

	artist.PhotoURL = req.PhotoURL
	artist.BaseCity = req.BaseCity

	if err := s.artistRepo.Save(ctx, artist); err != nil {
		return nil, err
	}

	return ToArtistResponse(artist), nil
}

// GetByID retrieves an artist by ID
func (s *ArtistService) GetByID(ctx context.Context, userID, id uuid.UUID) (*ArtistResponse, error) {
	artist, err := s.artistRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToArtistResponse(artist), nil
}

// List retrieves the user's roster
func (s *ArtistService) List(ctx context.Context, userID uuid.UUID, page shared.Page) ([]ArtistResponse, error) {
	artists, err := s.artistRepo.FindAll(ctx, userID, page.Normalize())
	if err != nil {
		return nil, err
	}

	responses := make([]ArtistResponse, len(artists))
	for i := range artists {
		responses[i] = *ToArtistResponse(&artists[i])
	}
	return responses, nil
}

// Update applies a partial update to an artist
func (s *ArtistService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateArtistRequest) (*ArtistResponse, error) {
	artist, err := s.artistRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := artist.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.BaseFee != nil || req.MinFee != nil {
		baseFee := artist.BaseFee
		minFee := artist.MinFee
		if req.BaseFee != nil {
			baseFee = *req.BaseFee
		}
		if req.MinFee != nil {
			minFee = *req.MinFee
		}
		if err := artist.SetFees(baseFee, minFee); err != nil {
			return nil, err
		}
	}

	if req.DownPaymentPercentage != nil {
		if err := artist.SetDownPaymentPercentage(*req.DownPaymentPercentage); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		if err := artist.SetStatus(roster.ArtistStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if req.PhotoURL != nil {
		artist.PhotoURL = *req.PhotoURL
		artist.Touch()
	}
	if req.BaseCity != nil {
		artist.BaseCity = *req.BaseCity
		artist.Touch()
	}

	if err := s.artistRepo.Save(ctx, artist); err != nil {
		return nil, err
	}

	return ToArtistResponse(artist), nil
}

// Delete removes an artist from the roster
func (s *ArtistService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.artistRepo.Delete(ctx, userID, id)
}
