package summarizer

import (
	"strings"
	"unicode"

	"github.com/spacesedan/newslens/internal/models"
)

// locale holds the tokenization rules for one summarizer language.
type locale struct {
	name      string
	stopwords map[string]struct{}
	bigrams   bool // no word spacing; tokenize by character bigrams
}

var (
	english  = locale{name: "english", stopwords: setOf(englishStopwords)}
	german   = locale{name: "german", stopwords: setOf(germanStopwords)}
	french   = locale{name: "french", stopwords: setOf(frenchStopwords)}
	spanish  = locale{name: "spanish", stopwords: setOf(spanishStopwords)}
	japanese = locale{name: "japanese", bigrams: true}
)

func localeFor(lang models.Language) locale {
	switch lang {
	case models.LanguageJapanese:
		return japanese
	case models.LanguageGerman:
		return german
	case models.LanguageFrench:
		return french
	case models.LanguageSpanish:
		return spanish
	default:
		return english
	}
}

// words returns the distinct content words of sentence in first-seen order.
func (l locale) words(sentence string) []string {
	var tokens []string
	if l.bigrams {
		tokens = charBigrams(sentence)
	} else {
		tokens = l.wordTokens(sentence)
	}

	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, t := range tokens {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (l locale) wordTokens(sentence string) []string {
	fields := strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 2 {
			continue
		}
		if _, stop := l.stopwords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}

// charBigrams splits sentence into runs of letters and digits and emits the
// overlapping two-rune windows of each run. Windows made only of hiragana are
// skipped; they are mostly particles and inflections.
func charBigrams(sentence string) []string {
	var out []string
	var run []rune
	flush := func() {
		switch {
		case len(run) == 1:
			if !unicode.Is(unicode.Hiragana, run[0]) {
				out = append(out, string(run))
			}
		case len(run) > 1:
			for i := 0; i+1 < len(run); i++ {
				if unicode.Is(unicode.Hiragana, run[i]) && unicode.Is(unicode.Hiragana, run[i+1]) {
					continue
				}
				out = append(out, string(run[i:i+2]))
			}
		}
		run = run[:0]
	}

	for _, r := range strings.ToLower(sentence) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			run = append(run, r)
			continue
		}
		flush()
	}
	flush()
	return out
}

func setOf(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var englishStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any",
	"are", "as", "at", "be", "because", "been", "before", "being", "below", "between", "both",
	"but", "by", "can", "could", "did", "do", "does", "doing", "down", "during", "each", "few",
	"for", "from", "further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "if", "in", "into", "is", "it", "its", "itself",
	"just", "me", "more", "most", "my", "myself", "no", "nor", "not", "now", "of", "off", "on",
	"once", "only", "or", "other", "our", "ours", "ourselves", "out", "over", "own", "said",
	"same", "she", "should", "so", "some", "such", "than", "that", "the", "their", "theirs",
	"them", "themselves", "then", "there", "these", "they", "this", "those", "through", "to",
	"too", "under", "until", "up", "very", "was", "we", "were", "what", "when", "where",
	"which", "while", "who", "whom", "why", "will", "with", "would", "you", "your", "yours",
	"yourself", "yourselves",
}

var germanStopwords = []string{
	"aber", "alle", "allem", "allen", "aller", "alles", "als", "also", "am", "an", "ander",
	"andere", "auch", "auf", "aus", "bei", "bin", "bis", "bist", "da", "damit", "dann", "das",
	"dass", "dein", "dem", "den", "der", "des", "dich", "die", "dies", "diese", "dieser",
	"dieses", "dir", "doch", "dort", "du", "durch", "ein", "eine", "einem", "einen", "einer",
	"eines", "er", "es", "etwas", "euch", "für", "gegen", "hat", "hatte", "hier", "hin",
	"ich", "ihm", "ihn", "ihr", "ihre", "im", "in", "ist", "jede", "jeder", "jetzt", "kann",
	"kein", "keine", "man", "mein", "mit", "muss", "nach", "nicht", "noch", "nun", "nur",
	"ob", "oder", "ohne", "sehr", "sein", "seine", "sich", "sie", "sind", "so", "über", "um",
	"und", "uns", "unter", "vom", "von", "vor", "war", "waren", "was", "weil", "wenn", "wer",
	"wie", "wir", "wird", "wo", "zu", "zum", "zur", "zwischen",
}

var frenchStopwords = []string{
	"au", "aux", "avec", "ce", "ces", "cette", "dans", "de", "des", "du", "elle", "elles",
	"en", "est", "et", "été", "être", "eu", "il", "ils", "je", "la", "le", "les", "leur",
	"leurs", "lui", "ma", "mais", "me", "même", "mes", "moi", "mon", "ne", "nos", "notre",
	"nous", "on", "ont", "ou", "où", "par", "pas", "plus", "pour", "qu", "que", "qui", "sa",
	"se", "ses", "son", "sont", "sur", "ta", "te", "tes", "toi", "ton", "tous", "tout", "très",
	"tu", "un", "une", "vos", "votre", "vous", "était", "avait", "comme", "aussi", "fait",
}

var spanishStopwords = []string{
	"al", "algo", "como", "con", "contra", "cual", "cuando", "de", "del", "desde", "donde",
	"el", "ella", "ellas", "ellos", "en", "entre", "era", "es", "esa", "ese", "eso", "esta",
	"está", "este", "esto", "fue", "ha", "han", "hay", "la", "las", "le", "les", "lo", "los",
	"más", "me", "mi", "muy", "nada", "ni", "no", "nos", "nosotros", "o", "otra", "otro",
	"para", "pero", "por", "porque", "que", "qué", "se", "ser", "si", "sí", "sin", "sobre",
	"son", "su", "sus", "también", "te", "tiene", "todo", "tu", "un", "una", "uno", "unos",
	"y", "ya", "yo",
}
