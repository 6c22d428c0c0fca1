package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DEFAULT_GEMINI_MODEL = "gemini-2.5-flash"

const geminiTranslatePrompt = `Translate the following text into English.
Keep names, numbers and tone. Reply with the translation only, without comments.

Text:
%s`

type GeminiOptions struct {
	APIKey string
	Model  string
	// Timeout bounds each GenerateContent call. Zero falls back to
	// DEFAULT_TIMEOUT.
	Timeout time.Duration
}

// geminiGenerator is the subset of *genai.GenerativeModel the backend uses.
type geminiGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiTranslateClient translates through the Gemini generative API.
type GeminiTranslateClient struct {
	client  *genai.Client
	model   geminiGenerator
	timeout time.Duration
}

func NewGeminiTranslateClient(ctx context.Context, opts GeminiOptions) (*GeminiTranslateClient, error) {
	if opts.APIKey == "" {
		return nil, errors.New("[GeminiClient] missing Gemini API key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("[GeminiClient] failed to create client: %w", err)
	}

	name := opts.Model
	if name == "" {
		name = DEFAULT_GEMINI_MODEL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}

	model := client.GenerativeModel(name)
	model.SetTemperature(0)

	slog.Info("[GeminiClient] Gemini translation client initialized",
		slog.String("model", name),
		slog.Duration("timeout", timeout))
	return &GeminiTranslateClient{client: client, model: model, timeout: timeout}, nil
}

func (g *GeminiTranslateClient) Name() string { return "gemini" }

func (g *GeminiTranslateClient) Translate(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(geminiTranslatePrompt, text)))
	if err != nil {
		return "", fmt.Errorf("[GeminiClient] generate content: %w", err)
	}
	return geminiResponseText(resp)
}

func (g *GeminiTranslateClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

// geminiResponseText joins the text parts of the first candidate.
func geminiResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("[GeminiClient] no candidates in response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", errors.New("[GeminiClient] empty response")
	}
	return out, nil
}
