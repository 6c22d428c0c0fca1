package sentiment

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// Classifier scores English text on a continuous [-1, 1] polarity scale.
type Classifier interface {
	Polarity(text string) float64
}

// VaderClassifier is the production Classifier, backed by the VADER compound
// score.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderClassifier) Polarity(text string) float64 {
	plainText := ConvertMarkdownToText(text)
	if plainText == "" {
		return 0
	}
	return v.analyzer.PolarityScores(plainText).Compound
}

func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and keeps only the visible text, so
// markup never reaches the classifier as part of a token.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())

	text := string(output)
	if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(output)); err == nil {
		text = doc.Text()
	}
	return strings.Join(strings.Fields(RemoveLinks(text)), " ")
}
