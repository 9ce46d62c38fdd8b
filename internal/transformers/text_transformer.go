package transformers

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type textNormalizer struct{}

// NewTextNormalizer returns a normalizer for mixed Arabic and English text.
// Output is case folded, stripped of diacritics and tatweel, has Arabic
// letter variants unified and Arabic-Indic digits mapped to ASCII.
// Punctuation becomes a single space.
func NewTextNormalizer() TextNormalizer {
	return &textNormalizer{}
}

func (t *textNormalizer) Normalize(input string) string {
	if input == "" {
		return ""
	}

	// transformers carry state, so a fresh chain per call
	chain := transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(isMarkOrTatweel)),
		runes.Map(foldArabic),
		cases.Fold(),
		norm.NFC,
	)
	out, _, err := transform.String(chain, input)
	if err != nil {
		out = strings.ToLower(input)
	}

	return strings.Join(strings.FieldsFunc(out, isSeparator), " ")
}

const tatweel = '\u0640'

func isMarkOrTatweel(r rune) bool {
	return r == tatweel || unicode.Is(unicode.Mn, r)
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func foldArabic(r rune) rune {
	switch {
	case r == 'ٱ':
		return 'ا'
	case r == 'ة':
		return 'ه'
	case r == 'ى':
		return 'ي'
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠')
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰')
	}
	return r
}
