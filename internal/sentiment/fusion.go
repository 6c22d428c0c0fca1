package sentiment

import (
	"fmt"
	"math"

	"github.com/spacesedan/newslens/internal/models"
)

// Fusion weights. Korean text with a usable translation blends all three
// signals; non-Korean text blends the classifier with the keyword boost.
const (
	KoreanTranslatedLexiconWeight    = 0.4
	KoreanTranslatedClassifierWeight = 0.3
	KoreanTranslatedKeywordWeight    = 0.3

	EnglishClassifierWeight = 0.6
	EnglishKeywordWeight    = 0.4
)

const (
	// labelDeadband absorbs classifier noise around zero.
	labelDeadband = 0.03

	maxAnalyzedRunes = 100
)

// fusionCase selects one of the three weighted-sum formulas.
type fusionCase int

const (
	caseNotKorean fusionCase = iota
	caseKoreanTranslated
	caseKoreanOnly
)

func (c fusionCase) String() string {
	switch c {
	case caseKoreanTranslated:
		return "korean-translated"
	case caseKoreanOnly:
		return "korean-only"
	default:
		return "not-korean"
	}
}

func selectCase(isKorean, translated bool) fusionCase {
	switch {
	case isKorean && translated:
		return caseKoreanTranslated
	case isKorean:
		return caseKoreanOnly
	default:
		return caseNotKorean
	}
}

// signals carries the per-stage scores into fuse.
type signals struct {
	korean     float64
	classifier float64
	keyword    float64
}

// fuse combines the signals for c and describes the combination. The result
// is not clamped.
func fuse(c fusionCase, s signals) (float64, string) {
	switch c {
	case caseKoreanTranslated:
		score := s.korean*KoreanTranslatedLexiconWeight +
			s.classifier*KoreanTranslatedClassifierWeight +
			s.keyword*KoreanTranslatedKeywordWeight
		return score, fmt.Sprintf("ko-lexicon(%.2f)+translated-vader(%.2f)+en-keywords(%.2f)",
			s.korean, s.classifier, s.keyword)
	case caseKoreanOnly:
		return s.korean, fmt.Sprintf("ko-lexicon only(%.2f)", s.korean)
	default:
		score := s.classifier*EnglishClassifierWeight + s.keyword*EnglishKeywordWeight
		return score, fmt.Sprintf("vader(%.2f)+en-keywords(%.2f)", s.classifier, s.keyword)
	}
}

func labelFor(score float64) models.Label {
	switch {
	case score > labelDeadband:
		return models.LabelPositive
	case score < -labelDeadband:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

func round4(v float64) float64 {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		return 0 // no negative zero in responses
	}
	return r
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
