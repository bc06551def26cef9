package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/shopx/backend/internal/application/catalog"
	"github.com/shopx/backend/internal/domain/catalog"
	"github.com/shopx/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryTestHandler() (*CategoryHandler, *MockCategoryRepository) {
	mockCategories := new(MockCategoryRepository)
	service := catalogapp.NewCategoryService(mockCategories, newNopLogger())
	return NewCategoryHandler(service), mockCategories
}

func TestCategoryHandler_Create(t *testing.T) {
	handler, mockCategories := newCategoryTestHandler()
	router := newTestRouter()
	router.POST("/categories", handler.Create)

	mockCategories.On("FindByName", mock.Anything, "Peripherals").Return(nil, shared.ErrNotFound)
	mockCategories.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Category")).Return(nil)

	body, _ := json.Marshal(gin.H{"name": "Peripherals"})
	req, _ := http.NewRequest(http.MethodPost, "/categories", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Contains(t, resp, "category")
	mockCategories.AssertExpectations(t)
}

func TestCategoryHandler_Create_DuplicateName(t *testing.T) {
	handler, mockCategories := newCategoryTestHandler()
	router := newTestRouter()
	router.POST("/categories", handler.Create)

	existing, err := catalog.NewCategory("Peripherals", "")
	require.NoError(t, err)
	mockCategories.On("FindByName", mock.Anything, "Peripherals").Return(existing, nil)

	body, _ := json.Marshal(gin.H{"name": "Peripherals"})
	req, _ := http.NewRequest(http.MethodPost, "/categories", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "ALREADY_EXISTS", resp["code"])
}

func TestCategoryHandler_List(t *testing.T) {
	handler, mockCategories := newCategoryTestHandler()
	router := newTestRouter()
	router.GET("/categories", handler.List)

	peripherals, err := catalog.NewCategory("Peripherals", "")
	require.NoError(t, err)
	mockCategories.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return([]catalog.Category{*peripherals}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Contains(t, resp, "categories")
}

func TestCategoryHandler_Delete_NotFound(t *testing.T) {
	handler, mockCategories := newCategoryTestHandler()
	router := newTestRouter()
	router.DELETE("/categories/:id", handler.Delete)

	categoryID := uuid.New()
	mockCategories.On("FindByID", mock.Anything, categoryID).Return(nil, shared.ErrNotFound)

	req, _ := http.NewRequest(http.MethodDelete, "/categories/"+categoryID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
