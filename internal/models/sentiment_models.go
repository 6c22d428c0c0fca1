package models

// Label is the polarity bucket assigned to an analyzed text.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNeutral  Label = "Neutral"
	LabelNegative Label = "Negative"
)

// Labels lists every label in display order.
var Labels = []Label{LabelPositive, LabelNeutral, LabelNegative}

// Language is the language a caller declares for the text being analyzed.
type Language string

const (
	LanguageAuto     Language = "auto"
	LanguageEnglish  Language = "en"
	LanguageKorean   Language = "ko"
	LanguageJapanese Language = "ja"
	LanguageGerman   Language = "de"
	LanguageFrench   Language = "fr"
	LanguageSpanish  Language = "es"
)

var knownLanguages = map[Language]struct{}{
	LanguageAuto:     {},
	LanguageEnglish:  {},
	LanguageKorean:   {},
	LanguageJapanese: {},
	LanguageGerman:   {},
	LanguageFrench:   {},
	LanguageSpanish:  {},
}

// ParseLanguage maps a request value onto a Language. Anything outside the
// supported set, including the empty string, is treated as auto.
func ParseLanguage(s string) Language {
	lang := Language(s)
	if _, ok := knownLanguages[lang]; ok {
		return lang
	}
	return LanguageAuto
}

type SentimentResult struct {
	Label        Label   `json:"label"`
	Polarity     float64 `json:"polarity"`
	AnalyzedText string  `json:"analyzed_text"`
	Method       string  `json:"method"`
}
