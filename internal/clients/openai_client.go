package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DEFAULT_OPENAI_MODEL = openai.GPT4oMini

	openAITranslatePrompt = "Translate the user's text into English. " +
		"Keep names, numbers and tone. Reply with the translation only, without comments or quotes."
	openAIMaxCompletionTokens = 1024
)

type OpenAIOptions struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for proxies and tests
	HTTP    HTTPOptions
}

// OpenAITranslateClient translates through the chat completions API.
type OpenAITranslateClient struct {
	Client *openai.Client
	Model  string
}

func NewOpenAITranslateClient(opts OpenAIOptions) (*OpenAITranslateClient, error) {
	if opts.APIKey == "" {
		return nil, errors.New("[OpenAIClient] missing OpenAI API key")
	}

	httpClient := NewHTTPClient("OpenAIClient", opts.HTTP)
	config := openai.DefaultConfig(opts.APIKey)
	config.HTTPClient = httpClient
	if opts.BaseURL != "" {
		config.BaseURL = opts.BaseURL
	}

	model := opts.Model
	if model == "" {
		model = DEFAULT_OPENAI_MODEL
	}

	slog.Info("[OpenAIClient] OpenAI translation client initialized",
		slog.String("model", model),
		slog.Duration("timeout", httpClient.Timeout))
	return &OpenAITranslateClient{
		Client: openai.NewClientWithConfig(config),
		Model:  model,
	}, nil
}

func (o *OpenAITranslateClient) Name() string { return "openai" }

func (o *OpenAITranslateClient) Translate(ctx context.Context, text string) (string, error) {
	resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAITranslatePrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxCompletionTokens: openAIMaxCompletionTokens,
	})
	if err != nil {
		return "", fmt.Errorf("[OpenAIClient] chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("[OpenAIClient] no choices in response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
