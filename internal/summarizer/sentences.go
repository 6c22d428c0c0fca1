package summarizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations suppress a sentence break after the listed words
// (lowercase, with trailing dot).
var abbreviations = map[string]bool{
	"mr.": true, "mrs.": true, "ms.": true, "dr.": true, "prof.": true, "sr.": true, "jr.": true,
	"st.": true, "vs.": true, "etc.": true, "e.g.": true, "i.e.": true, "no.": true,
	"inc.": true, "ltd.": true, "co.": true, "corp.": true, "gov.": true,
	"jan.": true, "feb.": true, "mar.": true, "apr.": true, "jun.": true, "jul.": true,
	"aug.": true, "sep.": true, "sept.": true, "oct.": true, "nov.": true, "dec.": true,
	"z.b.": true, "bzw.": true, "usw.": true, "nr.": true, "mme.": true, "mlle.": true, "sra.": true,
}

// splitSentences breaks text at terminal punctuation followed by whitespace
// and a non-lowercase rune, after CJK full stops, and at blank lines.
// Whitespace inside a sentence is collapsed; sentences without letters or
// digits are dropped.
func splitSentences(text string) []string {
	var out []string
	add := func(s string) {
		s = strings.Join(strings.Fields(s), " ")
		if hasWordRune(s) {
			out = append(out, s)
		}
	}

	start := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case r == '\n':
			j := skipInlineSpace(text, i+size)
			if j < len(text) && text[j] == '\n' {
				add(text[start:i])
				for j < len(text) && (text[j] == '\n' || isInlineSpace(text[j])) {
					j++
				}
				start = j
				i = j
				continue
			}
			i += size

		case isCJKTerminator(r):
			j := consumeCluster(text, i+size)
			add(text[start:j])
			start = j
			i = j

		case isTerminator(r):
			j := consumeCluster(text, i+size)
			if r == '.' && j == i+size && isAbbreviation(text[start:i]) {
				i = j
				continue
			}
			if boundaryAfter(text, j) {
				add(text[start:j])
				start = j
			}
			i = j

		default:
			i += size
		}
	}
	add(text[start:])

	return out
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

func isCJKTerminator(r rune) bool {
	return r == '。' || r == '！' || r == '？'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’', '」', '』', '）':
		return true
	}
	return false
}

// consumeCluster skips trailing terminators and closing quotes or brackets,
// so "?!" and `."` stay with their sentence.
func consumeCluster(s string, j int) int {
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !isTerminator(r) && !isCJKTerminator(r) && !isCloser(r) {
			break
		}
		j += size
	}
	return j
}

func isInlineSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

func skipInlineSpace(s string, j int) int {
	for j < len(s) && isInlineSpace(s[j]) {
		j++
	}
	return j
}

// boundaryAfter reports whether a sentence may end at byte offset j.
func boundaryAfter(s string, j int) bool {
	if j >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[j:])
	if !unicode.IsSpace(r) {
		return false
	}
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !unicode.IsSpace(r) {
			return !unicode.IsLower(r)
		}
		j += size
	}
	return true
}

// isAbbreviation reports whether the word ending right before a dot is an
// abbreviation or an initial.
func isAbbreviation(prefix string) bool {
	word := prefix
	if idx := strings.LastIndexFunc(prefix, unicode.IsSpace); idx >= 0 {
		word = prefix[idx+1:]
	}
	word = strings.TrimLeft(word, "(\"'“")
	if word == "" {
		return false
	}
	if abbreviations[strings.ToLower(word)+"."] {
		return true
	}
	// Initials: "J".
	if utf8.RuneCountInString(word) == 1 {
		r, _ := utf8.DecodeRuneInString(word)
		return unicode.IsUpper(r)
	}
	return isDottedAcronym(word)
}

// isDottedAcronym matches "U.S" or "a.m": single letters joined by dots.
// Decimals like "3.5" and hosts like "example.com" do not match.
func isDottedAcronym(word string) bool {
	parts := strings.Split(word, ".")
	if len(parts) < 2 {
		return false
	}
	for _, p := range parts {
		if utf8.RuneCountInString(p) != 1 {
			return false
		}
		r, _ := utf8.DecodeRuneInString(p)
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func hasWordRune(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	}) >= 0
}
