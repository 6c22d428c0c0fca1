// Package summarizer produces extractive summaries: it ranks the sentences of
// a text with TextRank over word-overlap similarity and keeps the best ones
// in their original order.
//
// Supported locales are English, Japanese, German, French and Spanish. Any
// other language, including Korean, is tokenized with the English rules and
// stop words.
//
// All functions are safe for concurrent use.
package summarizer

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spacesedan/newslens/internal/models"
)

const (
	DefaultSentenceCount = 3

	NoContent   = "(no content)"
	Unavailable = "(summary unavailable)"

	maxInputBytes = 1 << 20 // 1 MiB input guard
	minTokens     = 10      // shorter texts are returned as-is
)

// Summarizer is the method-value form of Summarize, for callers that take an
// interface.
type Summarizer struct{}

func New() Summarizer { return Summarizer{} }

func (Summarizer) Summarize(text string, sentenceCount int, language models.Language) string {
	return Summarize(text, sentenceCount, language)
}

// Summarize returns the sentenceCount highest ranked sentences of text joined
// by single spaces. It never fails: empty input, short input and internal
// errors each map to a fixed placeholder or to the input itself. Only the
// empty string gets NoContent; whitespace-only text counts as short input.
func Summarize(text string, sentenceCount int, language models.Language) (summary string) {
	if text == "" {
		return NoContent
	}
	if len(strings.Fields(text)) < minTokens {
		return text
	}
	if sentenceCount < 1 {
		sentenceCount = 1
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Warn("[Summarizer] Recovered from panic", slog.Any("panic", r))
			summary = errorSummary(fmt.Errorf("%v", r))
		}
	}()

	out, err := summarize(text, sentenceCount, localeFor(language))
	if err != nil {
		slog.Warn("[Summarizer] Summarization failed", slog.String("error", err.Error()))
		return errorSummary(err)
	}
	if out == "" {
		return Unavailable
	}
	return out
}

func errorSummary(err error) string {
	return "(summarization error: " + err.Error() + ")"
}

func summarize(text string, n int, loc locale) (string, error) {
	if len(text) > maxInputBytes {
		return "", fmt.Errorf("input exceeds %d bytes", maxInputBytes)
	}

	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return "", nil
	}
	if n >= len(sentences) {
		return strings.Join(sentences, " "), nil
	}

	words := make([][]string, len(sentences))
	for i, s := range sentences {
		words[i] = loc.words(s)
	}
	scores := rankSentences(words)

	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(scores[b], scores[a])
	})

	picked := order[:n]
	slices.Sort(picked)

	out := make([]string, len(picked))
	for i, idx := range picked {
		out[i] = sentences[idx]
	}
	return strings.Join(out, " "), nil
}
