package handlers

import (
	"net/http"

	response "resident_service/internal/adapter/http/dto/response"
	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"
	"resident_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errCategoryNotFound = pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	errFixtureNotFound  = pkg.NewDomainErrorSimple("FIXTURE_NOT_FOUND", "Fixture not found", http.StatusNotFound)
)

// CatalogHandler serves the read-only fixture catalog.
type CatalogHandler struct {
	catalog interfaces.IFixtureCatalog
}

func NewCatalogHandler(catalog interfaces.IFixtureCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCategories godoc
// @Summary  List fixture categories
// @Tags     catalog
// @Produce  json
// @Success  200  {object}  response.CategoriesResponse
// @Router   /catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, response.CategoriesResponse{Categories: h.catalog.Categories()})
}

// ListFixtures godoc
// @Summary  List fixtures, optionally of one category
// @Tags     catalog
// @Produce  json
// @Param    category  query     string  false  "Category name"
// @Success  200       {array}   response.FixtureResponse
// @Failure  404       {object}  pkg.HTTPError
// @Router   /catalog/fixtures [get]
func (h *CatalogHandler) ListFixtures(c *gin.Context) {
	categories := h.catalog.Categories()
	if category, ok := c.GetQuery("category"); ok {
		if !entities.HasTag(categories, category) {
			writeError(c, errCategoryNotFound)
			return
		}
		categories = []string{category}
	}

	var fixtures []entities.Fixture
	for _, category := range categories {
		fixtures = append(fixtures, h.catalog.ListByCategory(category)...)
	}
	c.JSON(http.StatusOK, response.FromFixtures(fixtures))
}

// GetFixture godoc
// @Summary  Get one fixture with its condition vocabulary
// @Tags     catalog
// @Produce  json
// @Param    key  path      string  true  "Fixture key"
// @Success  200  {object}  response.FixtureResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /catalog/fixtures/{key} [get]
func (h *CatalogHandler) GetFixture(c *gin.Context) {
	fx, ok := h.catalog.ByKey(c.Param("key"))
	if !ok {
		writeError(c, errFixtureNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromFixture(fx))
}
