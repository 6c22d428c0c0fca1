// Package sentiment implements the polarity scoring pipeline for news
// headlines: Korean dictionary lookup, best-effort translation to English, a
// VADER classifier and an English keyword boost, fused into one label.
//
// Every exported function is pure with respect to shared state. An Engine
// only holds read-only collaborators and is safe for concurrent use.
package sentiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/newslens/internal/lexicon"
	"github.com/spacesedan/newslens/internal/models"
)

const (
	unanalyzableText   = "(unanalyzable)"
	unanalyzableMethod = "none"
)

// Translator translates text to English. It reports failure instead of
// returning an error; on failure the returned text is the input.
type Translator interface {
	Translate(ctx context.Context, text string) (string, bool)
}

// Engine fuses the individual sentiment signals into a SentimentResult.
type Engine struct {
	lexicon    *lexicon.Lexicon
	translator Translator
	classifier Classifier
}

type Option func(*Engine)

// WithLexicon replaces the embedded production lexicon.
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(e *Engine) { e.lexicon = lex }
}

// WithTranslator sets the translation collaborator. Without one, every
// translation attempt fails.
func WithTranslator(t Translator) Option {
	return func(e *Engine) { e.translator = t }
}

// WithClassifier replaces the VADER classifier.
func WithClassifier(c Classifier) Option {
	return func(e *Engine) { e.classifier = c }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.lexicon == nil {
		e.lexicon = lexicon.Default()
	}
	if e.classifier == nil {
		e.classifier = NewVaderClassifier()
	}
	return e
}

// Analyze scores text. It never fails: collaborator errors degrade to an
// untranslated text or a zero classifier polarity.
func (e *Engine) Analyze(ctx context.Context, text string, language models.Language) models.SentimentResult {
	if !IsValid(text) {
		return models.SentimentResult{
			Label:        models.LabelNeutral,
			Polarity:     0,
			AnalyzedText: unanalyzableText,
			Method:       unanalyzableMethod,
		}
	}

	isKorean := IsKoreanScript(text)

	var ko LexiconMatch
	if isKorean {
		ko = ScoreKorean(e.lexicon, text)
	}

	enText, translated := text, false
	if isKorean || language != models.LanguageEnglish {
		enText, translated = e.translate(ctx, text)
	}

	var classifierScore float64
	var boost KeywordBoost
	if translated || !isKorean {
		classifierScore = e.polarity(enText)
		boost = BoostEnglish(e.lexicon, enText)
	}

	c := selectCase(isKorean, translated)
	final, method := fuse(c, signals{
		korean:     ko.Score(),
		classifier: classifierScore,
		keyword:    boost.Boost,
	})
	final = clamp(final)

	display := text
	if translated {
		display = enText
	}

	slog.Debug("[SentimentEngine] Analyzed text",
		slog.String("case", c.String()),
		slog.Int("ko_positive", ko.Positive),
		slog.Int("ko_negative", ko.Negative),
		slog.Bool("translated", translated),
		slog.Float64("classifier", classifierScore),
		slog.Int("en_positive", boost.Positive),
		slog.Int("en_negative", boost.Negative),
		slog.Float64("final", final))

	return models.SentimentResult{
		Label:        labelFor(final),
		Polarity:     round4(final),
		AnalyzedText: truncateRunes(display, maxAnalyzedRunes),
		Method:       method,
	}
}

func (e *Engine) translate(ctx context.Context, text string) (result string, ok bool) {
	if e.translator == nil {
		return text, false
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("[SentimentEngine] Translator panicked, using original text",
				slog.String("panic", fmt.Sprint(r)))
			result, ok = text, false
		}
	}()

	result, ok = e.translator.Translate(ctx, text)
	if !ok || result == "" {
		return text, false
	}
	return result, true
}

func (e *Engine) polarity(text string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("[SentimentEngine] Classifier panicked, using zero polarity",
				slog.String("panic", fmt.Sprint(r)))
			score = 0
		}
	}()
	return clamp(e.classifier.Polarity(text))
}
