package transformers

import (
	"testing"

	"realestate-listings/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	n := NewTextNormalizer()

	cases := map[string]string{
		"":                       "",
		"  Sea-View   VILLA!  ":  "sea view villa",
		"Café Résidence":         "cafe residence",
		"مَدْرَسَة":              "مدرسه",
		"أحمد إسلام آمنة":        "احمد اسلام امنه",
		"ٱلبحر":                  "البحر",
		"مستشفى":                 "مستشفي",
		"جميـــل":                "جميل",
		"شقة ٣ غرف":              "شقه 3 غرف",
		"۱۲":                     "12",
		"Villa فيلا, near Beach": "villa فيلا near beach",
	}
	for in, want := range cases {
		assert.Equal(t, want, n.Normalize(in), in)
	}
}

func TestNormalize_VariantsMatchEachOther(t *testing.T) {
	n := NewTextNormalizer()
	assert.Equal(t, n.Normalize("مدرسة"), n.Normalize("مدرسه"))
	assert.Equal(t, n.Normalize("إطلالة"), n.Normalize("اطلاله"))
	assert.Equal(t, n.Normalize("NAÏVE"), n.Normalize("naive"))
}

func TestApplyInput(t *testing.T) {
	tr := NewPropertyTransformer(NewTextNormalizer())
	published := true
	in := &models.PropertyInput{
		Title:       " Villa Ārya ",
		Description: "فيلا مع مسبح",
		Address:     "Corniche Rd",
		Type:        models.TypeVilla,
		ListingType: models.ListingSale,
		AmenityIDs:  []int64{3, 1, 3},
		Published:   &published,
	}

	var p models.Property
	tr.ApplyInput(in, &p)

	assert.Equal(t, "Villa Ārya", p.Title)
	assert.Equal(t, []int64{1, 3}, p.AmenityIDs)
	assert.True(t, p.Published)
	assert.Equal(t, "villa arya فيلا مع مسبح corniche rd", p.SearchText)

	p.Published = true
	in.Published = nil
	tr.ApplyInput(in, &p)
	assert.True(t, p.Published, "nil Published keeps current value")
}
