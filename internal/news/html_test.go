package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Markets  rose today.", "Markets  rose today."},
		{"tags stripped", "<p>Investors <b>celebrate</b> gains</p>", "Investors celebrate gains"},
		{"entities decoded", "Profits &amp; sales", "Profits & sales"},
		{"nested list", "<ul><li>one</li><li>two</li></ul>", "one two"},
		{"script removed", "<p>Hello</p><script>alert(1)</script>", "Hello"},
		{"empty", "", ""},
		{"truncation marker kept", "Body text… [+1234 chars]", "Body text… [+1234 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.input))
		})
	}
}
