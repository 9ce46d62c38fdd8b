package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"realestate-listings/internal/models"
)

// SeedData is the JSON document loaded into the memory data source at
// startup. Reference ids are assigned in file order starting at 1, so
// listings can refer to them by position.
type SeedData struct {
	Cities     []models.City          `json:"cities"`
	Districts  []models.District      `json:"districts"`
	Amenities  []models.Amenity       `json:"amenities"`
	Properties []models.PropertyInput `json:"properties"`
	Settings   models.SiteSettings    `json:"settings"`
}

func ReadSeedData(path string) (*SeedData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed SeedData
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &seed, nil
}
