package handler

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	catalogapp "github.com/shopx/backend/internal/application/catalog"
	"github.com/shopx/backend/internal/interfaces/http/dto"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// createProductForm is the multipart form for product creation. The
// image file travels in the "image" part.
type createProductForm struct {
	Name        string  `form:"name" binding:"required,min=1,max=200"`
	Description string  `form:"description" binding:"max=2000"`
	Price       float64 `form:"price" binding:"required,gt=0"`
	Stock       int     `form:"stock" binding:"min=0"`
	CategoryID  string  `form:"category_id" binding:"omitempty,uuid"`
}

// Create godoc
// @Summary      Create a product
// @Description  Create a product with an optional image file (multipart form)
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        name formData string true "Product name"
// @Param        price formData number true "Unit price"
// @Param        stock formData integer false "Stock count"
// @Param        category_id formData string false "Category ID"
// @Param        image formData file false "Product image"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var form createProductForm
	if err := c.ShouldBind(&form); err != nil {
		h.BindError(c, err)
		return
	}

	req := catalogapp.CreateProductRequest{
		Name:        form.Name,
		Description: form.Description,
		Price:       decimal.NewFromFloat(form.Price),
		Stock:       form.Stock,
	}
	if form.CategoryID != "" {
		categoryID, err := uuid.Parse(form.CategoryID)
		if err != nil {
			h.BadRequest(c, "Invalid category ID")
			return
		}
		req.CategoryID = &categoryID
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	// The image part is optional; when present it is stored and the
	// product's image URL is set before responding.
	if file, err := c.FormFile("image"); err == nil {
		data, contentType, err := readImagePart(file)
		if err != nil {
			h.BadRequest(c, "Could not read image file")
			return
		}
		product, err = h.productService.UploadImage(c.Request.Context(), product.ID, data, contentType)
		if err != nil {
			h.HandleError(c, err)
			return
		}
	}

	h.Created(c, "Product created", gin.H{"product": product})
}

// List godoc
// @Summary      List products
// @Description  List products with optional search, category, and price filters
// @Tags         products
// @Produce      json
// @Param        search query string false "Name search"
// @Param        category_id query string false "Category filter"
// @Param        min_price query number false "Minimum price"
// @Param        max_price query number false "Maximum price"
// @Param        page query integer false "Page number"
// @Param        page_size query integer false "Page size"
// @Success      200 {object} map[string]interface{}
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Products", gin.H{
		"products": page.Items,
		"meta": dto.PaginationMeta{
			Total:      page.Total,
			Page:       page.Page,
			PageSize:   page.PageSize,
			TotalPages: page.TotalPages,
		},
	})
}

// Get godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Product", gin.H{"product": product})
}

// Update godoc
// @Summary      Update a product
// @Description  Partially update a product; omitted fields are left unchanged
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body catalogapp.UpdateProductRequest true "Fields to update"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Product updated", gin.H{"product": product})
}

// Delete godoc
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Product deleted", nil)
}

// UploadImage godoc
// @Summary      Upload a product image
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        image formData file true "Product image"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /products/{id}/image [post]
func (h *ProductHandler) UploadImage(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		h.BadRequest(c, "Missing image file")
		return
	}

	data, contentType, err := readImagePart(file)
	if err != nil {
		h.BadRequest(c, "Could not read image file")
		return
	}

	product, err := h.productService.UploadImage(c.Request.Context(), productID, data, contentType)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Image uploaded", gin.H{"product": product})
}

// readImagePart reads an uploaded multipart file into memory
func readImagePart(file *multipart.FileHeader) ([]byte, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, catalogapp.MaxImageSize+1))
	if err != nil {
		return nil, "", err
	}
	return data, file.Header.Get("Content-Type"), nil
}
