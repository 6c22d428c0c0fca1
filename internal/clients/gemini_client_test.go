package clients

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiResponseText(t *testing.T) {
	candidate := func(parts ...genai.Part) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
		}
	}

	got, err := geminiResponseText(candidate(genai.Text(" The economy "), genai.Text("grew.\n")))
	require.NoError(t, err)
	assert.Equal(t, "The economy grew.", got)

	got, err = geminiResponseText(candidate(genai.Blob{MIMEType: "image/png"}, genai.Text("joy")))
	require.NoError(t, err)
	assert.Equal(t, "joy", got)

	_, err = geminiResponseText(nil)
	assert.Error(t, err)

	_, err = geminiResponseText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = geminiResponseText(candidate(genai.Text("   ")))
	assert.Error(t, err)
}

func TestNewGeminiTranslateClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiTranslateClient(context.Background(), GeminiOptions{})
	assert.Error(t, err)
}

type fakeGenerator struct {
	block  bool
	prompt string
	resp   *genai.GenerateContentResponse
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		if t, ok := parts[0].(genai.Text); ok {
			f.prompt = string(t)
		}
	}
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.resp, nil
}

func TestGeminiTranslateClient_Translate(t *testing.T) {
	gen := &fakeGenerator{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Text("Joy")}}}},
	}}
	g := &GeminiTranslateClient{model: gen, timeout: time.Second}

	got, err := g.Translate(context.Background(), "기쁨")
	require.NoError(t, err)
	assert.Equal(t, "Joy", got)
	assert.Contains(t, gen.prompt, "기쁨")
}

func TestGeminiTranslateClient_TimesOut(t *testing.T) {
	g := &GeminiTranslateClient{model: &fakeGenerator{block: true}, timeout: 50 * time.Millisecond}

	done := make(chan error, 1)
	go func() {
		_, err := g.Translate(context.Background(), "기쁨")
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	case <-time.After(2 * time.Second):
		t.Fatal("Translate did not return after its timeout")
	}
}
