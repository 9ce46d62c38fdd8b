package handlers

import (
	"net/http"

	"realestate-listings/internal/models"
	"realestate-listings/internal/services"
	"realestate-listings/internal/utils"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	search *services.PropertySearchService
}

func NewPropertyHandler(search *services.PropertySearchService) *PropertyHandler {
	return &PropertyHandler{search: search}
}

type searchResponse struct {
	Items []models.Property     `json:"items"`
	Meta  models.PaginationMeta `json:"meta"`
}

// SearchProperties handles GET /api/properties/search.
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	filter, err := parseSearchFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.search.SearchProperties(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	meta := models.PaginationMeta{
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
	meta.Next, meta.Prev = utils.PageLinks(c.Request.URL.Path, result.Page, result.Limit, result.TotalPages, c.Request.URL.Query())

	c.JSON(http.StatusOK, searchResponse{Items: result.Items, Meta: meta})
}

// CountProperties handles GET /api/properties/search/count.
func (h *PropertyHandler) CountProperties(c *gin.Context) {
	filter, err := parseSearchFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.search.SearchPropertiesCount(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProperty handles GET /api/properties/:id.
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	property, err := h.search.GetProperty(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, property)
}
