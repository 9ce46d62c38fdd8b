package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"realestate-listings/internal/errors"
	"realestate-listings/internal/models"

	"github.com/gin-gonic/gin"
)

// parseSearchFilter reads the search query string. Beyond parsing numbers it
// only rejects explicit paging values, since the service treats zero as
// absent.
func parseSearchFilter(c *gin.Context) (models.SearchFilter, error) {
	f := models.SearchFilter{
		Type:        models.PropertyType(c.Query("type")),
		ListingType: models.ListingType(c.Query("listing_type")),
		Query:       c.Query("q"),
		Sort:        models.SortMode(c.Query("sort")),
	}

	var err error
	if f.MinPrice, err = optionalFloat(c, "price_min"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = optionalFloat(c, "price_max"); err != nil {
		return f, err
	}
	if f.MinRooms, err = optionalInt(c, "rooms_min"); err != nil {
		return f, err
	}
	if f.MinBathrooms, err = optionalInt(c, "bathrooms_min"); err != nil {
		return f, err
	}
	if f.CityID, err = optionalInt64(c, "city"); err != nil {
		return f, err
	}
	if f.DistrictID, err = optionalInt64(c, "district"); err != nil {
		return f, err
	}
	if f.AmenityIDs, err = idList(c, "amenities"); err != nil {
		return f, err
	}

	page, err := optionalInt(c, "page")
	if err != nil {
		return f, err
	}
	if page != nil {
		if *page < 1 {
			return f, errors.NewValidationError("page", "must be at least 1")
		}
		f.Page = *page
	}
	limit, err := optionalInt(c, "limit")
	if err != nil {
		return f, err
	}
	if limit != nil {
		if *limit < 1 || *limit > models.MaxLimit {
			return f, errors.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", models.MaxLimit))
		}
		f.Limit = *limit
	}
	return f, nil
}

func optionalFloat(c *gin.Context, name string) (*float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.NewValidationError(name, "must be a number")
	}
	return &v, nil
}

func optionalInt(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.NewValidationError(name, "must be an integer")
	}
	return &v, nil
}

func optionalInt64(c *gin.Context, name string) (*int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.NewValidationError(name, "must be an integer")
	}
	return &v, nil
}

// idList accepts both amenities=1,2 and amenities=1&amenities=2.
func idList(c *gin.Context, name string) ([]int64, error) {
	var ids []int64
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, errors.NewValidationError(name, "must be a list of integers")
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.NewValidationError("id", "must be an integer")
	}
	return id, nil
}

// bindJSON decodes the request body, reporting malformed JSON as invalid
// input.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return errors.NewValidationError("body", err.Error())
	}
	return nil
}
