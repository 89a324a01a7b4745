package finance

import (
	"context"

	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryService handles transaction category operations
type CategoryService struct {
	categoryRepo finance.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo finance.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := finance.NewCategory(userID, req.Name, finance.CategoryType(req.CategoryType))
	if err != nil {
		return nil, err
	}
	category.Color = req.Color
	category.Icon = req.Icon

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// GetByID retrieves a single category
func (s *CategoryService) GetByID(ctx context.Context, userID, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// List retrieves the user's categories, optionally filtered by type
func (s *CategoryService) List(ctx context.Context, userID uuid.UUID, categoryType *string) ([]CategoryResponse, error) {
	var filter *finance.CategoryType
	if categoryType != nil && *categoryType != "" {
		t := finance.CategoryType(*categoryType)
		filter = &t
	}

	categories, err := s.categoryRepo.FindAll(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *ToCategoryResponse(&categories[i])
	}
	return responses, nil
}

// Update applies a partial update to a category
func (s *CategoryService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
		}
		category.Name = *req.Name
	}
	if req.CategoryType != nil {
		categoryType := finance.CategoryType(*req.CategoryType)
		if !categoryType.IsValid() {
			return nil, shared.NewDomainError("INVALID_CATEGORY_TYPE", "Category type must be income or expense")
		}
		category.CategoryType = categoryType
	}
	if req.Color != nil {
		category.Color = req.Color
	}
	if req.Icon != nil {
		category.Icon = req.Icon
	}
	category.Touch()

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// Delete removes a category
func (s *CategoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.categoryRepo.Delete(ctx, userID, id)
}
