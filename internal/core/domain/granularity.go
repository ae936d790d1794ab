package domain

// Granularity is the linguistic span of a piece of text, ordered by
// increasing size. The same vocabulary is used for dictionary metadata,
// classifier output, and flashcards, so the three are substitutable.
type Granularity string

const (
	GranularityCharacter Granularity = "character"
	GranularityWord      Granularity = "word"
	GranularityPhrase    Granularity = "phrase"
	GranularityClause    Granularity = "clause"
	GranularitySentence  Granularity = "sentence"
)

// ParseGranularity maps a wire string onto the closed enum.
// Returns ("", false) for anything outside the vocabulary.
func ParseGranularity(s string) (Granularity, bool) {
	switch g := Granularity(s); g {
	case GranularityCharacter, GranularityWord, GranularityPhrase, GranularityClause, GranularitySentence:
		return g, true
	default:
		return "", false
	}
}
