// Package app wires configuration into the running service.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/newslens/config"
	"github.com/spacesedan/newslens/internal/api"
	"github.com/spacesedan/newslens/internal/clients"
	"github.com/spacesedan/newslens/internal/lexicon"
	"github.com/spacesedan/newslens/internal/news"
	"github.com/spacesedan/newslens/internal/sentiment"
	"github.com/spacesedan/newslens/internal/summarizer"
	"github.com/spacesedan/newslens/internal/translate"
)

type App struct {
	Config     *config.Config
	Translator *translate.Gateway
	Engine     *sentiment.Engine
	Summarizer summarizer.Summarizer
	News       *news.Service
	Quota      *clients.ValkeyQuota // nil when the quota guard is disabled
	Server     *api.Server

	closers []func()
}

// Build constructs every component from cfg. Optional translation backends
// and the quota guard are skipped with a warning when they cannot be set up;
// an unreadable lexicon file is fatal.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	lex := lexicon.Default()
	if cfg.LexiconPath != "" {
		loaded, err := lexicon.Load(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		lex = loaded
	}
	koPos, koNeg, enPos, enNeg := lex.Size()
	slog.Info("[App] Lexicon ready",
		slog.String("source", lexiconSource(cfg.LexiconPath)),
		slog.Int("ko_positive", koPos),
		slog.Int("ko_negative", koNeg),
		slog.Int("en_positive", enPos),
		slog.Int("en_negative", enNeg))

	httpOpts := clients.HTTPOptions{Timeout: cfg.RequestTimeout, InsecureSkipVerify: cfg.InsecureSkipVerify}
	a.Translator = translate.NewGateway(a.buildBackends(ctx, cfg, httpOpts)...)
	slog.Info("[App] Translation gateway ready", slog.Any("backends", a.Translator.Backends()))

	a.Engine = sentiment.NewEngine(
		sentiment.WithLexicon(lex),
		sentiment.WithTranslator(a.Translator),
	)
	a.Summarizer = summarizer.New()
	a.News = news.NewService(clients.NewNewsAPIClient(cfg.NewsAPIBaseURL, httpOpts), a.Engine, a.Summarizer)

	opts := api.Options{
		Analyzer:          a.Engine,
		Summarizer:        a.Summarizer,
		News:              a.News,
		DefaultNewsAPIKey: cfg.NewsAPIKey,
	}
	if cfg.ValkeyAddress != "" {
		quota, err := clients.NewValkeyQuota(clients.ValkeyOptions{
			Address:  cfg.ValkeyAddress,
			Password: cfg.ValkeyPassword,
			TLS:      cfg.ValkeyTLS,
		}, cfg.NewsQuotaPerDay)
		if err != nil {
			slog.Warn("[App] Quota guard disabled", slog.String("error", err.Error()))
		} else {
			a.Quota = quota
			opts.Quota = quota
			a.closers = append(a.closers, quota.Close)
		}
	}

	a.Server = api.NewServer(opts)
	return a, nil
}

func (a *App) buildBackends(ctx context.Context, cfg *config.Config, httpOpts clients.HTTPOptions) []translate.Backend {
	backends := []translate.Backend{clients.NewGoogleTranslateClient(httpOpts)}

	if cfg.OpenAIAPIKey != "" {
		oc, err := clients.NewOpenAITranslateClient(clients.OpenAIOptions{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
			HTTP:   httpOpts,
		})
		if err != nil {
			slog.Warn("[App] OpenAI translation disabled", slog.String("error", err.Error()))
		} else {
			backends = append(backends, oc)
		}
	}

	if cfg.GeminiAPIKey != "" {
		gc, err := clients.NewGeminiTranslateClient(ctx, clients.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.RequestTimeout,
		})
		if err != nil {
			slog.Warn("[App] Gemini translation disabled", slog.String("error", err.Error()))
		} else {
			backends = append(backends, gc)
			a.closers = append(a.closers, gc.Close)
		}
	}

	if cfg.AWSTranslateEnabled {
		awsCfg, err := clients.GetAWSConfig(ctx, cfg.AWSRegion, httpOpts)
		if err != nil {
			slog.Warn("[App] AWS translation disabled", slog.String("error", err.Error()))
		} else {
			backends = append(backends, clients.NewAWSTranslateClient(awsCfg))
		}
	}

	return backends
}

// Close releases connections held by optional components.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func lexiconSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
