package transformers

import (
	"realestate-listings/internal/models"
)

type PropertyTransformer interface {
	ApplyInput(in *models.PropertyInput, p *models.Property)
	BuildSearchText(p *models.Property) string
}

type TextNormalizer interface {
	Normalize(input string) string
}
