package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertMarkdownToText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"emphasis stripped", "**joy** and _hope_", "joy and hope"},
		{"markdown link keeps text", "read [the report](https://example.com/r) today", "read the report today"},
		{"bare url removed", "visit https://example.com now", "visit now"},
		{"www url removed", "see www.example.com", "see"},
		{"whitespace collapsed", "a   b\n\nc", "a b c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertMarkdownToText(tt.input))
		})
	}
}

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "text", RemoveLinks("[text](https://example.com)"))
	assert.Equal(t, "go ", RemoveLinks("go http://example.com/x?y=1"))
}

func TestVaderClassifier_Polarity(t *testing.T) {
	v := NewVaderClassifier()

	assert.Greater(t, v.Polarity("This is a great and wonderful achievement"), 0.3)
	assert.Less(t, v.Polarity("This is terrible and horrible news"), -0.3)
	assert.Equal(t, 0.0, v.Polarity(""))
	assert.Equal(t, 0.0, v.Polarity("https://example.com"))

	for _, text := range []string{"joy", "love", "sadness", "war and crisis"} {
		p := v.Polarity(text)
		assert.GreaterOrEqual(t, p, -1.0, text)
		assert.LessOrEqual(t, p, 1.0, text)
	}
}
