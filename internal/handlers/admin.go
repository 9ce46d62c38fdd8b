package handlers

import (
	"net/http"

	"realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/internal/services"
	"realestate-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the authenticated write endpoints.
type AdminHandler struct {
	properties *services.PropertyService
	catalog    *services.CatalogService
	search     *services.PropertySearchService
	migration  *services.PropertyMigrationService
}

func NewAdminHandler(
	properties *services.PropertyService,
	catalog *services.CatalogService,
	search *services.PropertySearchService,
	migration *services.PropertyMigrationService,
) *AdminHandler {
	return &AdminHandler{
		properties: properties,
		catalog:    catalog,
		search:     search,
		migration:  migration,
	}
}

func (h *AdminHandler) CreateProperty(c *gin.Context) {
	var input models.PropertyInput
	if err := bindJSON(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	property, err := h.properties.CreateProperty(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

// GetProperty returns a listing whether or not it is published.
func (h *AdminHandler) GetProperty(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	property, err := h.properties.GetProperty(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *AdminHandler) UpdateProperty(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var input models.PropertyInput
	if err := bindJSON(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	property, err := h.properties.UpdateProperty(c.Request.Context(), id, &input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *AdminHandler) DeleteProperty(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.properties.DeleteProperty(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ReorderProperties(c *gin.Context) {
	var orders []models.PropertyOrder
	if err := bindJSON(c, &orders); err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.properties.ReorderProperties(c.Request.Context(), orders); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) RebuildSearchText(c *gin.Context) {
	updated, err := h.migration.RebuildSearchText(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// SaveReference creates an entry on PUT /reference/:kind and updates one on
// PUT /reference/:kind/:id.
func (h *AdminHandler) SaveReference(c *gin.Context) {
	var id int64
	if c.Param("id") != "" {
		var err error
		if id, err = pathID(c); err != nil {
			_ = c.Error(err)
			return
		}
	}

	ctx := c.Request.Context()
	var (
		saved any
		err   error
	)
	switch models.ReferenceKind(c.Param("kind")) {
	case models.ReferenceCities:
		var city models.City
		if err = bindJSON(c, &city); err == nil {
			city.ID = id
			err = h.catalog.SaveCity(ctx, &city)
		}
		saved = city
	case models.ReferenceDistricts:
		var district models.District
		if err = bindJSON(c, &district); err == nil {
			district.ID = id
			err = h.catalog.SaveDistrict(ctx, &district)
		}
		saved = district
	case models.ReferenceAmenities:
		var amenity models.Amenity
		if err = bindJSON(c, &amenity); err == nil {
			amenity.ID = id
			err = h.catalog.SaveAmenity(ctx, &amenity)
		}
		saved = amenity
	default:
		err = errors.NewValidationError("kind", "must be cities, districts or amenities")
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, saved)
}

func (h *AdminHandler) DeleteReference(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.catalog.DeleteReference(c.Request.Context(), models.ReferenceKind(c.Param("kind")), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) SaveSettings(c *gin.Context) {
	var settings models.SiteSettings
	if err := bindJSON(c, &settings); err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.catalog.SaveSettings(c.Request.Context(), settings); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.search.CacheStats())
}

func (h *AdminHandler) ClearCache(c *gin.Context) {
	h.search.ClearCache()
	logger.Ctx(c.Request.Context()).Info().Str(logger.FieldUserID, c.GetString("user_id")).Msg("cache cleared by admin")
	c.Status(http.StatusNoContent)
}
