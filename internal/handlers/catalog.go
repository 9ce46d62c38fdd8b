package handlers

import (
	"net/http"

	"realestate-listings/internal/models"
	"realestate-listings/internal/services"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves reference data and site settings.
type CatalogHandler struct {
	search *services.PropertySearchService
}

func NewCatalogHandler(search *services.PropertySearchService) *CatalogHandler {
	return &CatalogHandler{search: search}
}

// GetReferenceData handles GET /api/reference/:kind.
func (h *CatalogHandler) GetReferenceData(c *gin.Context) {
	data, err := h.search.GetReferenceData(c.Request.Context(), models.ReferenceKind(c.Param("kind")))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": data})
}

func (h *CatalogHandler) GetSiteSettings(c *gin.Context) {
	settings, err := h.search.GetSiteSettings(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
