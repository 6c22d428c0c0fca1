package sentiment

import "strings"

// NoTitlePlaceholder stands in for articles that arrive without a title.
const NoTitlePlaceholder = "(제목 없음)"

// invalidMarkers are placeholders upstream providers put in place of
// withdrawn or missing content.
var invalidMarkers = []string{"[removed]", "[Removed]", NoTitlePlaceholder}

// IsValid reports whether text carries anything worth scoring.
func IsValid(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	for _, marker := range invalidMarkers {
		if strings.Contains(text, marker) {
			return false
		}
	}
	return true
}
