package sentiment

import (
	"strings"

	"github.com/spacesedan/newslens/internal/lexicon"
)

const englishHitWeight = 0.15

// KeywordBoost is the outcome of the English keyword lookup.
type KeywordBoost struct {
	Positive int
	Negative int
	Boost    float64 // not clamped
}

// BoostEnglish matches the distinct lowercased whitespace tokens of text
// against the English keyword lists. Punctuation is not stripped, so
// "great." does not match "great".
func BoostEnglish(lex *lexicon.Lexicon, text string) KeywordBoost {
	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tokens[tok] = struct{}{}
	}

	var b KeywordBoost
	for tok := range tokens {
		switch {
		case lex.IsEnglishPositive(tok):
			b.Positive++
		case lex.IsEnglishNegative(tok):
			b.Negative++
		}
	}
	b.Boost = float64(b.Positive-b.Negative) * englishHitWeight
	return b
}
