// Package api exposes sentiment analysis, summarization and the news feed
// over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spacesedan/newslens/internal/models"
	"github.com/spacesedan/newslens/internal/news"
)

const (
	Version = "1.4.0"

	shutdownTimeout = 5 * time.Second
	maxBodyBytes    = 1 << 20
)

type NewsFetcher interface {
	Fetch(ctx context.Context, req news.Request) (models.NewsResponse, error)
}

// QuotaGuard limits upstream news fetches per API key.
type QuotaGuard interface {
	Allow(ctx context.Context, apiKey string) (bool, error)
}

type Options struct {
	Analyzer   news.Analyzer
	Summarizer news.Summarizer
	News       NewsFetcher
	Quota      QuotaGuard // optional

	// DefaultNewsAPIKey is used when /news is called without api_key.
	DefaultNewsAPIKey string
}

// Server serves the JSON API and its documentation page.
type Server struct {
	analyzer      news.Analyzer
	summarizer    news.Summarizer
	news          NewsFetcher
	quota         QuotaGuard
	defaultAPIKey string
}

func NewServer(opts Options) *Server {
	return &Server{
		analyzer:      opts.Analyzer,
		summarizer:    opts.Summarizer,
		news:          opts.News,
		quota:         opts.Quota,
		defaultAPIKey: opts.DefaultNewsAPIKey,
	}
}

// Handler returns the routed API wrapped in its middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /docs", s.handleDocs)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /sentiment", s.handleSentiment)
	mux.HandleFunc("POST /summarize", s.handleSummarize)
	mux.HandleFunc("GET /news", s.handleNews)

	return requestID(accessLog(cors(recoverer(mux))))
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("[API] Listening", slog.String("addr", addr))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("[API] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
