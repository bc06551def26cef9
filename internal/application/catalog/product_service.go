package catalog

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopx/backend/internal/domain/catalog"
	"github.com/shopx/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// MaxImageSize caps product image uploads at 5 MiB
const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	images       ImageStorage
	logger       *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	images ImageStorage,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		images:       images,
		logger:       logger,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	// Validate category exists (if provided)
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
	}

	product, err := catalog.NewProduct(req.Name, req.Description, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		product.AssignCategory(*req.CategoryID)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := catalog.ProductFilter{
		Search:     filter.Search,
		CategoryID: filter.CategoryID,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}
	if filter.MinPrice != nil {
		min := decimal.NewFromFloat(*filter.MinPrice)
		domainFilter.MinPrice = &min
	}
	if filter.MaxPrice != nil {
		max := decimal.NewFromFloat(*filter.MaxPrice)
		domainFilter.MaxPrice = &max
	}

	page, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.Paginated[ProductResponse]{
		Items:      ToProductResponses(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
	return &result, nil
}

// Update updates a product
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	price := product.Price
	if req.Price != nil {
		price = *req.Price
	}
	stock := product.Stock
	if req.Stock != nil {
		stock = *req.Stock
	}

	if err := product.Update(name, description, price, stock); err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
		product.AssignCategory(*req.CategoryID)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, productID)
}

// UploadImage stores the product image and records its URL on the
// product. The previous image, if any, is left in place in the store.
func (s *ProductService) UploadImage(ctx context.Context, productID uuid.UUID, data []byte, contentType string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Image file is empty")
	}
	if len(data) > MaxImageSize {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Image file exceeds the 5MB limit")
	}

	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Image must be JPEG, PNG or WebP")
	}

	key := path.Join("products", fmt.Sprintf("%s-%s%s", productID, uuid.New().String()[:8], ext))
	url, err := s.images.Store(ctx, key, data, contentType)
	if err != nil {
		s.logger.Error("Failed to store product image",
			zap.String("product_id", productID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("STORAGE_ERROR", "Failed to store product image")
	}

	product.SetImageURL(url)
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product image uploaded",
		zap.String("product_id", productID.String()),
		zap.String("key", key))

	response := ToProductResponse(product)
	return &response, nil
}
