// Package news fetches articles from the news provider and enriches each one
// with a sentiment result and an extractive summary.
package news

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/newslens/internal/clients"
	"github.com/spacesedan/newslens/internal/models"
	"github.com/spacesedan/newslens/internal/sentiment"
)

const (
	defaultURL     = "#"
	publishedChars = 10 // YYYY-MM-DD prefix of publishedAt
)

// ErrFetchFailed wraps every failure to obtain articles from the provider.
var ErrFetchFailed = errors.New("news fetch failed")

type Fetcher interface {
	GetEverything(ctx context.Context, q clients.EverythingQuery) (*models.NewsAPIEverythingResponse, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, text string, language models.Language) models.SentimentResult
}

type Summarizer interface {
	Summarize(text string, sentenceCount int, language models.Language) string
}

type Request struct {
	APIKey           string
	Query            string
	Language         string
	PageSize         int
	SummarySentences int
}

type Service struct {
	fetcher    Fetcher
	analyzer   Analyzer
	summarizer Summarizer
}

func NewService(fetcher Fetcher, analyzer Analyzer, summarizer Summarizer) *Service {
	return &Service{fetcher: fetcher, analyzer: analyzer, summarizer: summarizer}
}

// Fetch retrieves the newest articles for req and analyzes them in provider
// order. Only the provider call can fail; its error wraps ErrFetchFailed.
func (s *Service) Fetch(ctx context.Context, req Request) (models.NewsResponse, error) {
	start := time.Now()

	resp, err := s.fetcher.GetEverything(ctx, clients.EverythingQuery{
		APIKey:   req.APIKey,
		Query:    req.Query,
		Language: req.Language,
		PageSize: req.PageSize,
	})
	if err != nil {
		slog.Warn("[NewsService] Failed to fetch articles", slog.String("error", err.Error()))
		return models.NewsResponse{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	if resp == nil || len(resp.Articles) == 0 {
		slog.Info("[NewsService] No articles found", slog.String("query", req.Query))
		return models.NewsResponse{
			Total:            0,
			SentimentSummary: map[models.Label]int{},
			Articles:         []models.ArticleResult{},
		}, nil
	}

	lang := models.ParseLanguage(req.Language)
	counts := make(map[models.Label]int, len(models.Labels))
	for _, l := range models.Labels {
		counts[l] = 0
	}

	results := make([]models.ArticleResult, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		result := s.processArticle(ctx, a, lang, req.SummarySentences)
		counts[result.Sentiment.Label]++
		results = append(results, result)
	}

	slog.Info("[NewsService] Analyzed articles",
		slog.String("query", req.Query),
		slog.Int("articles", len(results)),
		slog.Int("positive", counts[models.LabelPositive]),
		slog.Int("neutral", counts[models.LabelNeutral]),
		slog.Int("negative", counts[models.LabelNegative]),
		slog.Duration("duration", time.Since(start)))

	return models.NewsResponse{
		Total:            len(results),
		SentimentSummary: counts,
		Articles:         results,
	}, nil
}

func (s *Service) processArticle(ctx context.Context, a models.NewsAPIArticle, lang models.Language, summarySentences int) models.ArticleResult {
	title := a.Title
	if title == "" {
		title = sentiment.NoTitlePlaceholder
	}
	desc := PlainText(a.Description)
	content := PlainText(a.Content)
	if content == "" {
		content = desc
	}

	analysis := title
	if desc != "" && sentiment.IsValid(desc) {
		analysis = title + ". " + desc
	}

	url := a.URL
	if url == "" {
		url = defaultURL
	}

	return models.ArticleResult{
		Title:       title,
		Description: desc,
		Content:     content,
		URL:         url,
		Source:      a.Source.Name,
		Published:   prefix(a.PublishedAt, publishedChars),
		ImageURL:    a.URLToImage,
		Sentiment:   s.analyzer.Analyze(ctx, analysis, lang),
		Summary:     s.summarizer.Summarize(content, summarySentences, lang),
	}
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
