// Package translate turns arbitrary text into English by trying a chain of
// translation backends in order.
package translate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// MaxInputBytes caps the text sent upstream.
const MaxInputBytes = 4000

// Backend is a single upstream translation service. Implementations translate
// into English with the source language auto-detected.
type Backend interface {
	Name() string
	Translate(ctx context.Context, text string) (string, error)
}

// Gateway tries each backend in order and returns the first usable result.
// A result that only echoes the input counts as a failure.
type Gateway struct {
	backends []Backend
}

func NewGateway(backends ...Backend) *Gateway {
	var bs []Backend
	for _, b := range backends {
		if b != nil {
			bs = append(bs, b)
		}
	}
	return &Gateway{backends: bs}
}

// Backends returns the names of the configured backends in call order.
func (g *Gateway) Backends() []string {
	names := make([]string, 0, len(g.backends))
	for _, b := range g.backends {
		names = append(names, b.Name())
	}
	return names
}

// Translate never fails loudly. When no backend produces a usable result it
// returns text unchanged and false.
func (g *Gateway) Translate(ctx context.Context, text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return text, false
	}

	input := Truncate(text, MaxInputBytes)
	for _, b := range g.backends {
		if ctx.Err() != nil {
			slog.Warn("[TranslateGateway] Context done, giving up",
				slog.String("error", ctx.Err().Error()))
			break
		}

		result, err := call(ctx, b, input)
		if err != nil {
			slog.Warn("[TranslateGateway] Backend failed",
				slog.String("backend", b.Name()),
				slog.String("error", err.Error()))
			continue
		}
		if isEcho(input, result) {
			slog.Debug("[TranslateGateway] Backend echoed input",
				slog.String("backend", b.Name()))
			continue
		}

		slog.Debug("[TranslateGateway] Translated text",
			slog.String("backend", b.Name()),
			slog.Int("input_bytes", len(input)))
		return strings.TrimSpace(result), true
	}

	return text, false
}

func call(ctx context.Context, b Backend, text string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend panicked: %v", r)
		}
	}()
	return b.Translate(ctx, text)
}

func isEcho(input, result string) bool {
	r := strings.TrimSpace(result)
	return r == "" || strings.EqualFold(r, strings.TrimSpace(input))
}

// Truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
