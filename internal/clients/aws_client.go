package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/translate"
)

const DEFAULT_AWS_REGION = "us-west-2"

// translateAPI is the subset of *translate.Client the backend uses.
type translateAPI interface {
	TranslateText(ctx context.Context, params *translate.TranslateTextInput, optFns ...func(*translate.Options)) (*translate.TranslateTextOutput, error)
}

// AWSTranslateClient translates through Amazon Translate. Credentials come
// from the default AWS provider chain.
type AWSTranslateClient struct {
	api translateAPI
}

func GetAWSConfig(ctx context.Context, region string, opts HTTPOptions) (aws.Config, error) {
	if region == "" {
		region = DEFAULT_AWS_REGION
	}

	slog.Info("[AWSClient] Initializing AWS Config...", slog.String("region", region))
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithHTTPClient(NewHTTPClient("AWSClient", opts)))
	if err != nil {
		return aws.Config{}, fmt.Errorf("[AWSClient] failed to load AWS config: %w", err)
	}
	slog.Info("[AWSClient] AWS Config Initialized")
	return cfg, nil
}

func NewAWSTranslateClient(cfg aws.Config) *AWSTranslateClient {
	return &AWSTranslateClient{api: translate.NewFromConfig(cfg)}
}

func (a *AWSTranslateClient) Name() string { return "aws" }

func (a *AWSTranslateClient) Translate(ctx context.Context, text string) (string, error) {
	out, err := a.api.TranslateText(ctx, &translate.TranslateTextInput{
		SourceLanguageCode: aws.String("auto"),
		TargetLanguageCode: aws.String("en"),
		Text:               aws.String(text),
	})
	if err != nil {
		return "", fmt.Errorf("[AWSClient] translate text: %w", err)
	}
	if out == nil || out.TranslatedText == nil {
		return "", errors.New("[AWSClient] empty translation")
	}
	return aws.ToString(out.TranslatedText), nil
}
