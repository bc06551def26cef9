package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopx/backend/internal/domain/catalog"
	"github.com/shopx/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter catalog.ProductFilter) (shared.Paginated[catalog.Product], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockImageStorage is a mock implementation of ImageStorage
type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) Store(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockImageStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func newTestProductID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}

func newTestCategoryID() uuid.UUID {
	return uuid.MustParse("33333333-3333-3333-3333-333333333333")
}

func newProductService(productRepo *MockProductRepository, categoryRepo *MockCategoryRepository, images *MockImageStorage) *ProductService {
	return NewProductService(productRepo, categoryRepo, images, zap.NewNop())
}

func createTestProduct(t *testing.T) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("Laptop", "Portable computer", decimal.NewFromInt(999), 10)
	assert.NoError(t, err)
	return product
}

func TestProductService_Create_Success(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockProductRepo, mockCategoryRepo, new(MockImageStorage))

	ctx := context.Background()
	req := CreateProductRequest{
		Name:        "Laptop",
		Description: "Portable computer",
		Price:       decimal.NewFromInt(999),
		Stock:       10,
	}

	mockProductRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

	result, err := service.Create(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "Laptop", result.Name)
	assert.True(t, result.Price.Equal(decimal.NewFromInt(999)))
	assert.Equal(t, 10, result.Stock)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_Create_WithCategory(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockProductRepo, mockCategoryRepo, new(MockImageStorage))

	ctx := context.Background()
	categoryID := newTestCategoryID()
	category, _ := catalog.NewCategory("Electronics", "")

	req := CreateProductRequest{
		Name:       "Laptop",
		Price:      decimal.NewFromInt(999),
		Stock:      10,
		CategoryID: &categoryID,
	}

	mockCategoryRepo.On("FindByID", ctx, categoryID).Return(category, nil)
	mockProductRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

	result, err := service.Create(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, &categoryID, result.CategoryID)
	mockCategoryRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_Create_UnknownCategory(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := newProductService(mockProductRepo, mockCategoryRepo, new(MockImageStorage))

	ctx := context.Background()
	categoryID := newTestCategoryID()
	req := CreateProductRequest{
		Name:       "Laptop",
		Price:      decimal.NewFromInt(999),
		CategoryID: &categoryID,
	}

	mockCategoryRepo.On("FindByID", ctx, categoryID).Return(nil, shared.ErrNotFound)

	result, err := service.Create(ctx, req)

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CATEGORY", domainErr.Code)
	mockProductRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_Create_NegativePrice(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	service := newProductService(mockProductRepo, new(MockCategoryRepository), new(MockImageStorage))

	req := CreateProductRequest{
		Name:  "Laptop",
		Price: decimal.NewFromInt(-1),
	}

	result, err := service.Create(context.Background(), req)

	assert.Nil(t, result)
	assert.Error(t, err)
	mockProductRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	service := newProductService(mockProductRepo, new(MockCategoryRepository), new(MockImageStorage))

	ctx := context.Background()
	productID := newTestProductID()
	mockProductRepo.On("FindByID", ctx, productID).Return(nil, shared.ErrNotFound)

	result, err := service.GetByID(ctx, productID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductService_List_DefaultsPagination(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	service := newProductService(mockProductRepo, new(MockCategoryRepository), new(MockImageStorage))

	ctx := context.Background()
	product := createTestProduct(t)
	page := shared.NewPaginated([]catalog.Product{*product}, 1, 1, 20)

	mockProductRepo.On("FindAll", ctx, mock.MatchedBy(func(f catalog.ProductFilter) bool {
		return f.Page == 1 && f.PageSize == 20
	})).Return(page, nil)

	result, err := service.List(ctx, ProductListFilter{})

	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.EqualValues(t, 1, result.Total)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_List_PriceFilter(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	service := newProductService(mockProductRepo, new(MockCategoryRepository), new(MockImageStorage))

	ctx := context.Background()
	minPrice := 10.0
	maxPrice := 100.0
	page := shared.NewPaginated([]catalog.Product{}, 0, 1, 20)

	mockProductRepo.On("FindAll", ctx, mock.MatchedBy(func(f catalog.ProductFilter) bool {
		return f.MinPrice != nil && f.MinPrice.Equal(decimal.NewFromFloat(minPrice)) &&
			f.MaxPrice != nil && f.MaxPrice.Equal(decimal.NewFromFloat(maxPrice))
	})).Return(page, nil)

	result, err := service.List(ctx, ProductListFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})

	assert.NoError(t, err)
	assert.Empty(t, result.Items)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_Update_PartialFields(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	service := newProductService(mockProductRepo, new(MockCategoryRepository), new(MockImageStorage))

	ctx := context.Background()
	product := createTestProduct(t)
	newPrice := decimal.NewFromInt(899)

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	mockProductRepo.On("Save", ctx, product).Return(nil)

	result, err := service.Update(ctx, product.ID, UpdateProductRequest{Price: &newPrice})

	assert.NoError(t, err)
	assert.True(t, result.Price.Equal(newPrice))
	// untouched fields survive
	assert.Equal(t, "Laptop", result.Name)
	assert.Equal(t, 10, result.Stock)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	service := newProductService(mockProductRepo, new(MockCategoryRepository), new(MockImageStorage))

	ctx := context.Background()
	productID := newTestProductID()
	mockProductRepo.On("FindByID", ctx, productID).Return(nil, shared.ErrNotFound)

	err := service.Delete(ctx, productID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	mockProductRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProductService_UploadImage_Success(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockImages := new(MockImageStorage)
	service := newProductService(mockProductRepo, new(MockCategoryRepository), mockImages)

	ctx := context.Background()
	product := createTestProduct(t)
	data := []byte("fake-png-bytes")

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	mockImages.On("Store", ctx, mock.AnythingOfType("string"), data, "image/png").
		Return("https://cdn.example.com/products/img.png", nil)
	mockProductRepo.On("Save", ctx, product).Return(nil)

	result, err := service.UploadImage(ctx, product.ID, data, "image/png")

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/img.png", result.ImageURL)
	mockImages.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_UploadImage_RejectsUnsupportedType(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	mockImages := new(MockImageStorage)
	service := newProductService(mockProductRepo, new(MockCategoryRepository), mockImages)

	ctx := context.Background()
	product := createTestProduct(t)
	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	result, err := service.UploadImage(ctx, product.ID, []byte("gif"), "image/gif")

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_IMAGE", domainErr.Code)
	mockImages.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
