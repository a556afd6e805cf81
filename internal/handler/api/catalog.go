package api

import (
	"net/http"

	resdto "turipack/internal/handler/dto/response"
	"turipack/internal/handler/httperr"
	"turipack/internal/pkg/errs"
	"turipack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List catalog services
// @Description List bookable services, optionally filtered by category
// @Tags catalog
// @Produce json
// @Param category query string false "Category filter" Enums(lodging, food, tours, astronomy, poi)
// @Success 200 {array} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Router /catalog/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	views, err := h.catalogQueries.ListServices(c.Request.Context(), c.Query("category"))
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCategory) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown category", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list services", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get catalog service
// @Description Get one bookable service by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /catalog/services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID", nil)
		return
	}

	view, err := h.catalogQueries.GetService(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrServiceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load service", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}
