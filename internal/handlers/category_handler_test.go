package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dennismwa/luidigitals/internal/errors"
	"github.com/dennismwa/luidigitals/internal/models"
	"github.com/dennismwa/luidigitals/internal/services"
)

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn     func(userID uint, name, icon, color string) (*models.Category, error)
	getUserCategoriesFn  func(userID uint) ([]models.Category, error)
	getCategoryForUserFn func(userID, categoryID uint) (*models.Category, error)
	updateCategoryFn     func(userID, categoryID uint, name, icon, color string) (*models.Category, error)
	deleteCategoryFn     func(userID, categoryID uint) error
}

func (m *mockCategoryService) CreateCategory(userID uint, name, icon, color string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(userID, name, icon, color)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) GetUserCategories(userID uint) ([]models.Category, error) {
	if m.getUserCategoriesFn != nil {
		return m.getUserCategoriesFn(userID)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetCategoryForUser(userID, categoryID uint) (*models.Category, error) {
	if m.getCategoryForUserFn != nil {
		return m.getCategoryForUserFn(userID, categoryID)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) UpdateCategory(userID, categoryID uint, name, icon, color string) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(userID, categoryID, name, icon, color)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) DeleteCategory(userID, categoryID uint) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(userID, categoryID)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/categories", handler.CreateCategory)
	auth.GET("/categories", handler.GetCategories)
	auth.PUT("/categories/:id", handler.UpdateCategory)
	auth.DELETE("/categories/:id", handler.DeleteCategory)
	return r
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		catSvc := &mockCategoryService{
			createCategoryFn: func(userID uint, name, icon, color string) (*models.Category, error) {
				return &models.Category{Base: models.Base{ID: 1}, UserID: &userID, Name: name, Icon: icon, Color: color}, nil
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "POST", "/categories", `{"name":"Transport","icon":"bus","color":"#336699"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		category := result["category"].(map[string]interface{})
		if category["name"] != "Transport" {
			t.Errorf("expected name Transport, got %v", category["name"])
		}
	})

	t.Run("returns 400 on bad color", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{})
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "POST", "/categories", `{"name":"Transport","color":"notahex"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate name", func(t *testing.T) {
		catSvc := &mockCategoryService{
			createCategoryFn: func(_ uint, _, _, _ string) (*models.Category, error) {
				return nil, apperrors.ErrDuplicateCategory
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "POST", "/categories", `{"name":"Food"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_CATEGORY")
	})
}

func TestCategoryHandler_GetCategories(t *testing.T) {
	t.Run("returns category list", func(t *testing.T) {
		catSvc := &mockCategoryService{
			getUserCategoriesFn: func(_ uint) ([]models.Category, error) {
				return []models.Category{
					{Base: models.Base{ID: 1}, Name: "Food"},
					{Base: models.Base{ID: 2}, Name: "Transport"},
				}, nil
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "GET", "/categories", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if len(result["categories"].([]interface{})) != 2 {
			t.Errorf("expected 2 categories, got %v", result["categories"])
		}
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("returns 409 when category in use", func(t *testing.T) {
		catSvc := &mockCategoryService{
			deleteCategoryFn: func(_, _ uint) error {
				return apperrors.ErrCategoryInUse
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "DELETE", "/categories/3", "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_IN_USE")
	})

	t.Run("returns 404 when category missing", func(t *testing.T) {
		catSvc := &mockCategoryService{
			deleteCategoryFn: func(_, _ uint) error {
				return apperrors.ErrCategoryNotFound
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "DELETE", "/categories/99", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
