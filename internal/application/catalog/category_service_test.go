package catalog

import (
	"context"
	"testing"

	"github.com/shopx/backend/internal/domain/catalog"
	"github.com/shopx/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newCategoryService(repo *MockCategoryRepository) *CategoryService {
	return NewCategoryService(repo, zap.NewNop())
}

func TestCategoryService_Create_Success(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo)

	ctx := context.Background()
	req := CreateCategoryRequest{Name: "Electronics", Description: "Gadgets"}

	mockRepo.On("FindByName", ctx, "Electronics").Return(nil, shared.ErrNotFound)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

	result, err := service.Create(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "Electronics", result.Name)
	assert.Equal(t, "Gadgets", result.Description)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo)

	ctx := context.Background()
	existing, _ := catalog.NewCategory("Electronics", "")

	mockRepo.On("FindByName", ctx, "Electronics").Return(existing, nil)

	result, err := service.Create(ctx, CreateCategoryRequest{Name: "Electronics"})

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCategoryService_Update_RenameCollision(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo)

	ctx := context.Background()
	category, _ := catalog.NewCategory("Books", "")
	other, _ := catalog.NewCategory("Electronics", "")
	newName := "Electronics"

	mockRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	mockRepo.On("FindByName", ctx, "Electronics").Return(other, nil)

	result, err := service.Update(ctx, category.ID, UpdateCategoryRequest{Name: &newName})

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestCategoryService_Update_DescriptionOnly(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo)

	ctx := context.Background()
	category, _ := catalog.NewCategory("Books", "Old")
	newDescription := "Printed matter"

	mockRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	mockRepo.On("Save", ctx, category).Return(nil)

	result, err := service.Update(ctx, category.ID, UpdateCategoryRequest{Description: &newDescription})

	assert.NoError(t, err)
	assert.Equal(t, "Books", result.Name)
	assert.Equal(t, "Printed matter", result.Description)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Delete_Success(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo)

	ctx := context.Background()
	category, _ := catalog.NewCategory("Books", "")

	mockRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	mockRepo.On("Delete", ctx, category.ID).Return(nil)

	err := service.Delete(ctx, category.ID)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo)

	ctx := context.Background()
	categoryID := newTestCategoryID()
	mockRepo.On("FindByID", ctx, categoryID).Return(nil, shared.ErrNotFound)

	err := service.Delete(ctx, categoryID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryService_List_Defaults(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := newCategoryService(mockRepo)

	ctx := context.Background()
	category, _ := catalog.NewCategory("Books", "")

	mockRepo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 1 && f.PageSize == 100
	})).Return([]catalog.Category{*category}, nil)

	result, err := service.List(ctx, shared.Filter{})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Books", result[0].Name)
	mockRepo.AssertExpectations(t)
}
