package news

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText reduces an HTML fragment to its visible text with whitespace
// collapsed. Text without markup or entities is returned unchanged.
func PlainText(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return fragment
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
