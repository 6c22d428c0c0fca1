// Package lexicon holds the word lists used for dictionary-based sentiment
// scoring.
//
// A Lexicon is built once and never mutated, so a single instance can be
// shared by any number of goroutines. The production lists are embedded as a
// YAML document; Load and Parse accept the same format for overrides and
// tests.
package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"iter"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	defaultLexicon *Lexicon
	defaultOnce    sync.Once
)

// Lexicon is an immutable pair of Korean and English polarity word lists.
type Lexicon struct {
	koPositive []string
	koNegative []string
	enPositive map[string]struct{}
	enNegative map[string]struct{}
}

// document is the on-disk shape of a lexicon file.
type document struct {
	Korean  wordLists `yaml:"korean"`
	English wordLists `yaml:"english"`
}

type wordLists struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// Default returns the embedded production lexicon. It panics if the embedded
// document is invalid, which can only happen through a bad edit of
// default.yaml.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lex, err := Parse(defaultYAML)
		if err != nil {
			panic(fmt.Errorf("[Lexicon] embedded lexicon is invalid: %w", err))
		}
		defaultLexicon = lex
	})
	return defaultLexicon
}

// Load reads and validates a YAML lexicon file.
func Load(path string) (*Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	lex, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lex, nil
}

// Parse decodes a YAML lexicon document and validates it.
func Parse(raw []byte) (*Lexicon, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	return New(doc.Korean.Positive, doc.Korean.Negative, doc.English.Positive, doc.English.Negative)
}

// New builds a Lexicon from explicit word lists. English words are
// lowercased; Korean entries are kept as written. The input slices are
// copied.
func New(koPositive, koNegative, enPositive, enNegative []string) (*Lexicon, error) {
	lex := &Lexicon{
		koPositive: slices.Clone(koPositive),
		koNegative: slices.Clone(koNegative),
		enPositive: make(map[string]struct{}, len(enPositive)),
		enNegative: make(map[string]struct{}, len(enNegative)),
	}
	for _, w := range enPositive {
		lex.enPositive[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range enNegative {
		lex.enNegative[strings.ToLower(w)] = struct{}{}
	}

	if err := validate(koPositive, koNegative, enPositive, enNegative); err != nil {
		return nil, err
	}
	return lex, nil
}

// MustNew is like New but panics on an invalid lexicon. Intended for tests
// and package-level fixtures.
func MustNew(koPositive, koNegative, enPositive, enNegative []string) *Lexicon {
	lex, err := New(koPositive, koNegative, enPositive, enNegative)
	if err != nil {
		panic(err)
	}
	return lex
}

// KoreanPositive yields the Korean positive entries in declaration order.
func (l *Lexicon) KoreanPositive() iter.Seq[string] { return slices.Values(l.koPositive) }

// KoreanNegative yields the Korean negative entries in declaration order.
func (l *Lexicon) KoreanNegative() iter.Seq[string] { return slices.Values(l.koNegative) }

// IsEnglishPositive reports whether word (already lowercased) is a positive keyword.
func (l *Lexicon) IsEnglishPositive(word string) bool {
	_, ok := l.enPositive[word]
	return ok
}

// IsEnglishNegative reports whether word (already lowercased) is a negative keyword.
func (l *Lexicon) IsEnglishNegative(word string) bool {
	_, ok := l.enNegative[word]
	return ok
}

// Size returns the number of entries in each list.
func (l *Lexicon) Size() (koPositive, koNegative, enPositive, enNegative int) {
	return len(l.koPositive), len(l.koNegative), len(l.enPositive), len(l.enNegative)
}

func validate(koPositive, koNegative, enPositive, enNegative []string) error {
	var errs []error

	for name, words := range map[string][]string{
		"korean.positive":  koPositive,
		"korean.negative":  koNegative,
		"english.positive": lowerAll(enPositive),
		"english.negative": lowerAll(enNegative),
	} {
		if err := checkList(name, words); err != nil {
			errs = append(errs, err)
		}
	}

	// Korean matching is substring based, so an entry hidden inside an entry
	// of the opposite polarity would always cancel it out.
	for _, p := range koPositive {
		for _, n := range koNegative {
			if p == "" || n == "" {
				continue
			}
			if strings.Contains(n, p) || strings.Contains(p, n) {
				errs = append(errs, fmt.Errorf("korean entries %q and %q overlap across polarities", p, n))
			}
		}
	}

	negative := make(map[string]struct{}, len(enNegative))
	for _, w := range lowerAll(enNegative) {
		negative[w] = struct{}{}
	}
	for _, w := range lowerAll(enPositive) {
		if _, ok := negative[w]; ok {
			errs = append(errs, fmt.Errorf("english entry %q is both positive and negative", w))
		}
	}

	return errors.Join(errs...)
}

func checkList(name string, words []string) error {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("%s contains an empty entry", name)
		}
		if _, dup := seen[w]; dup {
			return fmt.Errorf("%s contains duplicate entry %q", name, w)
		}
		seen[w] = struct{}{}
	}
	return nil
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
