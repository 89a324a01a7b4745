package crm

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/crm"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContractorService handles contractor-related business operations
type ContractorService struct {
	contractorRepo crm.ContractorRepository
	stageRepo      crm.StageRepository
}

// NewContractorService creates a new ContractorService
func NewContractorService(
	contractorRepo crm.ContractorRepository,
	stageRepo crm.StageRepository,
) *ContractorService {
	return &ContractorService{
		contractorRepo: contractorRepo,
		stageRepo:      stageRepo,
	}
}

// Create creates a new contractor, rejecting phone or document duplicates
func (s *ContractorService) Create(ctx context.Context, userID uuid.UUID, req CreateContractorRequest) (*ContractorResponse, error) {
	if err := s.checkDuplicate(ctx, userID, req.Phone, req.CpfCnpj, uuid.Nil); err != nil {
		return nil, err
	}

	contractor, err := crm.NewContractor(userID, req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	contractor.CpfCnpj = req.CpfCnpj
	contractor.Email = req.Email

	if req.StageID != nil {
		if _, err := s.stageRepo.FindByID(ctx, userID, *req.StageID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewRelationshipViolation("Pipeline stage")
			}
			return nil, err
		}
		contractor.AssignStage(req.StageID)
	}

	if err := s.contractorRepo.Save(ctx, contractor); err != nil {
		return nil, err
	}

	return ToContractorResponse(contractor), nil
}

// GetByID retrieves a contractor by ID
func (s *ContractorService) GetByID(ctx context.Context, userID, id uuid.UUID) (*ContractorResponse, error) {
	contractor, err := s.contractorRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToContractorResponse(contractor), nil
}

// List retrieves the user's contractors
func (s *ContractorService) List(ctx context.Context, userID uuid.UUID, page shared.Page) ([]ContractorResponse, error) {
	contractors, err := s.contractorRepo.FindAll(ctx, userID, page.Normalize())
	if err != nil {
		return nil, err
	}

	responses := make([]ContractorResponse, len(contractors))
	for i := range contractors {
		responses[i] = *ToContractorResponse(&contractors[i])
	}
	return responses, nil
}

// Update applies a partial update to a contractor, re-checking
// uniqueness when the phone or document changes.
func (s *ContractorService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateContractorRequest) (*ContractorResponse, error) {
	contractor, err := s.contractorRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	phone := contractor.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	cpfCnpj := contractor.CpfCnpj
	if req.CpfCnpj != nil {
		cpfCnpj = req.CpfCnpj
	}
	if req.Phone != nil || req.CpfCnpj != nil {
		if err := s.checkDuplicate(ctx, userID, phone, cpfCnpj, id); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Contractor name cannot be empty")
		}
		contractor.Name = *req.Name
		contractor.Touch()
	}
	if req.Phone != nil {
		if err := contractor.SetPhone(*req.Phone); err != nil {
			return nil, err
		}
	}
	if req.CpfCnpj != nil {
		contractor.CpfCnpj = req.CpfCnpj
		contractor.Touch()
	}
	if req.Email != nil {
		contractor.Email = req.Email
		contractor.Touch()
	}

	if err := s.contractorRepo.Save(ctx, contractor); err != nil {
		return nil, err
	}

	return ToContractorResponse(contractor), nil
}

// AssignStage moves a contractor into a pipeline stage, or out of the
// pipeline when the stage id is nil.
func (s *ContractorService) AssignStage(ctx context.Context, userID, id uuid.UUID, req AssignStageRequest) (*ContractorResponse, error) {
	contractor, err := s.contractorRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.StageID != nil {
		if _, err := s.stageRepo.FindByID(ctx, userID, *req.StageID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewRelationshipViolation("Pipeline stage")
			}
			return nil, err
		}
	}

	contractor.AssignStage(req.StageID)

	if err := s.contractorRepo.Save(ctx, contractor); err != nil {
		return nil, err
	}

	return ToContractorResponse(contractor), nil
}

// Delete removes a contractor
func (s *ContractorService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.contractorRepo.Delete(ctx, userID, id)
}

func (s *ContractorService) checkDuplicate(ctx context.Context, userID uuid.UUID, phone string, cpfCnpj *string, excludeID uuid.UUID) error {
	match, field, err := s.contractorRepo.FindDuplicate(ctx, userID, phone, cpfCnpj, excludeID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if field == "cpf_cnpj" && match.CpfCnpj != nil {
		return shared.NewDuplicateConflict("DOCUMENT", *match.CpfCnpj)
	}
	return shared.NewDuplicateConflict("PHONE", match.Phone)
}
