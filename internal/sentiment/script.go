package sentiment

const (
	hangulSyllablesFirst = '가'
	hangulSyllablesLast  = '힣'
	hangulJamoFirst      = 'ㄱ'
	hangulJamoLast       = 'ㅣ'
)

// IsKoreanScript reports whether text contains at least one Hangul syllable
// or Hangul compatibility jamo.
func IsKoreanScript(text string) bool {
	for _, r := range text {
		if (r >= hangulSyllablesFirst && r <= hangulSyllablesLast) ||
			(r >= hangulJamoFirst && r <= hangulJamoLast) {
			return true
		}
	}
	return false
}
