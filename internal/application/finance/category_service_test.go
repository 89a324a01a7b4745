package finance

import (
	"context"
	"testing"

	"github.com/artistai/backend/internal/domain/finance"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_GetByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns the category", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		category, err := finance.NewCategory(userID, "Cachê", finance.CategoryIncome)
		require.NoError(t, err)

		categoryRepo.On("FindByID", ctx, userID, category.ID).Return(category, nil)

		resp, err := service.GetByID(ctx, userID, category.ID)
		require.NoError(t, err)
		assert.Equal(t, "Cachê", resp.Name)
		assert.Equal(t, "income", resp.CategoryType)
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		categoryID := uuid.New()
		categoryRepo.On("FindByID", ctx, userID, categoryID).Return(nil, shared.ErrNotFound)

		_, err := service.GetByID(ctx, userID, categoryID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCategoryService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("renames and recolors", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		category, err := finance.NewCategory(userID, "Transporte", finance.CategoryExpense)
		require.NoError(t, err)

		categoryRepo.On("FindByID", ctx, userID, category.ID).Return(category, nil)
		categoryRepo.On("Save", ctx, category).Return(nil)

		name := "Logística"
		color := "#FF8800"
		resp, err := service.Update(ctx, userID, category.ID, UpdateCategoryRequest{
			Name:  &name,
			Color: &color,
		})
		require.NoError(t, err)
		assert.Equal(t, "Logística", resp.Name)
		require.NotNil(t, resp.Color)
		assert.Equal(t, "#FF8800", *resp.Color)
		assert.Equal(t, "expense", resp.CategoryType)
	})

	t.Run("omitted fields stay untouched", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		category, err := finance.NewCategory(userID, "Cachê", finance.CategoryIncome)
		require.NoError(t, err)
		icon := "music"
		category.Icon = &icon

		categoryRepo.On("FindByID", ctx, userID, category.ID).Return(category, nil)
		categoryRepo.On("Save", ctx, category).Return(nil)

		categoryType := "expense"
		resp, err := service.Update(ctx, userID, category.ID, UpdateCategoryRequest{
			CategoryType: &categoryType,
		})
		require.NoError(t, err)
		assert.Equal(t, "Cachê", resp.Name)
		assert.Equal(t, "expense", resp.CategoryType)
		require.NotNil(t, resp.Icon)
		assert.Equal(t, "music", *resp.Icon)
	})

	t.Run("invalid category type is rejected", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		category, err := finance.NewCategory(userID, "Cachê", finance.CategoryIncome)
		require.NoError(t, err)

		categoryRepo.On("FindByID", ctx, userID, category.ID).Return(category, nil)

		categoryType := "transfer"
		_, err = service.Update(ctx, userID, category.ID, UpdateCategoryRequest{
			CategoryType: &categoryType,
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CATEGORY_TYPE", domainErr.Code)
		categoryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		category, err := finance.NewCategory(userID, "Cachê", finance.CategoryIncome)
		require.NoError(t, err)

		categoryRepo.On("FindByID", ctx, userID, category.ID).Return(category, nil)

		name := ""
		_, err = service.Update(ctx, userID, category.ID, UpdateCategoryRequest{Name: &name})
		require.Error(t, err)
		categoryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
