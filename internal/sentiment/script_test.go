package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKoreanScript(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"korean word", "기쁨", true},
		{"korean sentence", "오늘 날씨가 좋다", true},
		{"mixed with english", "Hello 안녕", true},
		{"compatibility jamo", "ㅋㅋㅋ", true},
		{"first syllable", "가", true},
		{"last syllable", "힣", true},
		{"first jamo", "ㄱ", true},
		{"last jamo", "ㅣ", true},
		{"english only", "Hello world", false},
		{"numbers only", "12345", false},
		{"empty", "", false},
		{"japanese kana", "こんにちは", false},
		{"special characters", "!@#$%^&*()", false},
		{"hangul jamo block outside compatibility range", "ᄀ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsKoreanScript(tt.input))
		})
	}
}
