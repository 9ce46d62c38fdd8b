package transformers

import (
	"slices"
	"strings"

	"realestate-listings/internal/models"
)

type propertyTransformer struct {
	text TextNormalizer
}

func NewPropertyTransformer(text TextNormalizer) PropertyTransformer {
	return &propertyTransformer{text: text}
}

// ApplyInput copies editable fields onto p and refreshes its search text.
// A nil Published leaves the current value alone.
func (t *propertyTransformer) ApplyInput(in *models.PropertyInput, p *models.Property) {
	p.Title = strings.TrimSpace(in.Title)
	p.Description = strings.TrimSpace(in.Description)
	p.Address = strings.TrimSpace(in.Address)
	p.Type = in.Type
	p.ListingType = in.ListingType
	p.Price = in.Price
	p.Rooms = in.Rooms
	p.Bathrooms = in.Bathrooms
	p.Area = in.Area
	p.CityID = in.CityID
	p.DistrictID = in.DistrictID

	ids := slices.Clone(in.AmenityIDs)
	slices.Sort(ids)
	p.AmenityIDs = slices.Compact(ids)

	if in.Published != nil {
		p.Published = *in.Published
	}
	p.SearchText = t.BuildSearchText(p)
}

// BuildSearchText is the normalized text free-text queries match against.
func (t *propertyTransformer) BuildSearchText(p *models.Property) string {
	return t.text.Normalize(strings.Join([]string{p.Title, p.Description, p.Address}, " "))
}
