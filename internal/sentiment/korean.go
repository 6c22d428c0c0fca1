package sentiment

import (
	"strings"

	"github.com/spacesedan/newslens/internal/lexicon"
)

const koreanHitWeight = 0.25

// LexiconMatch is the outcome of a Korean dictionary lookup.
type LexiconMatch struct {
	Positive int
	Negative int
	RawScore float64 // unclamped
}

// Score returns RawScore clamped to [-1, 1].
func (m LexiconMatch) Score() float64 {
	return clamp(m.RawScore)
}

// ScoreKorean counts the lexicon entries that occur as substrings of text.
// Every entry is checked independently, so overlapping stems of the same
// polarity each count.
func ScoreKorean(lex *lexicon.Lexicon, text string) LexiconMatch {
	var m LexiconMatch
	for w := range lex.KoreanPositive() {
		if strings.Contains(text, w) {
			m.Positive++
		}
	}
	for w := range lex.KoreanNegative() {
		if strings.Contains(text, w) {
			m.Negative++
		}
	}
	m.RawScore = float64(m.Positive-m.Negative) * koreanHitWeight
	return m
}
