package v1

import (
	"unicode"

	"github.com/rwcunningham/MandarinLanguageInstructor/internal/core/domain"
)

// ClassifyGranularity maps text onto a granularity tier by counting its
// non-whitespace code points (not bytes — one hanzi is one character).
// It is a heuristic fallback: an exact dictionary hit or an explicit
// caller-supplied granularity takes precedence, in that order.
func ClassifyGranularity(text string) domain.Granularity {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}

	switch {
	case count <= 1:
		return domain.GranularityCharacter
	case count <= 3:
		return domain.GranularityWord
	case count <= 9:
		return domain.GranularityPhrase
	case count <= 20:
		return domain.GranularityClause
	default:
		return domain.GranularitySentence
	}
}
