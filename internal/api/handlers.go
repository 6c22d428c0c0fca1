package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/spacesedan/newslens/internal/models"
	"github.com/spacesedan/newslens/internal/news"
	"github.com/spacesedan/newslens/internal/summarizer"
)

const (
	defaultNewsQuery        = "technology"
	defaultNewsLanguage     = "en"
	defaultSummaryLanguage  = "en"
	defaultPageSize         = 5
	maxPageSize             = 20
	defaultSummarySentences = summarizer.DefaultSentenceCount
	maxSummarySentences     = 10
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/docs", http.StatusTemporaryRedirect)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok", Version: Version})
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	var req models.SentimentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text must not be empty")
		return
	}

	result := s.analyzer.Analyze(r.Context(), req.Text, models.ParseLanguage(req.Language))
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummarizeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text must not be empty")
		return
	}

	count := summarizer.DefaultSentenceCount
	if req.SentenceCount != nil {
		count = *req.SentenceCount
	}
	lang := req.Language
	if lang == "" {
		lang = defaultSummaryLanguage
	}

	summary := s.summarizer.Summarize(req.Text, count, models.ParseLanguage(lang))
	writeJSON(w, http.StatusOK, models.SummarizeResponse{Summary: summary})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	apiKey := q.Get("api_key")
	if apiKey == "" {
		apiKey = s.defaultAPIKey
	}
	if apiKey == "" {
		writeError(w, http.StatusUnprocessableEntity, "api_key is required")
		return
	}

	pageSize, err := intParam(q.Get("page_size"), defaultPageSize, 1, maxPageSize)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "page_size "+err.Error())
		return
	}
	summarySentences, err := intParam(q.Get("summary_sentences"), defaultSummarySentences, 1, maxSummarySentences)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "summary_sentences "+err.Error())
		return
	}

	req := news.Request{
		APIKey:           apiKey,
		Query:            stringParam(q.Get("query"), defaultNewsQuery),
		Language:         stringParam(q.Get("language"), defaultNewsLanguage),
		PageSize:         pageSize,
		SummarySentences: summarySentences,
	}

	if s.quota != nil {
		allowed, err := s.quota.Allow(r.Context(), apiKey)
		switch {
		case err != nil:
			slog.Warn("[API] Quota check failed, allowing request",
				slog.String("error", err.Error()),
				slog.String("request_id", RequestIDFrom(r.Context())))
		case !allowed:
			writeError(w, http.StatusTooManyRequests, "daily news quota exceeded for this api_key")
			return
		}
	}

	resp, err := s.news.Fetch(r.Context(), req)
	if err != nil {
		if errors.Is(err, news.ErrFetchFailed) {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		slog.Error("[API] News request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeBody decodes a JSON request body into v and writes a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func stringParam(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intParam(raw string, def, lo, hi int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("must be an integer between %d and %d", lo, hi)
	}
	return n, nil
}
