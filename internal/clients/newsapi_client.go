package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/spacesedan/newslens/internal/models"
)

const NEWS_API_BASE_URL = "https://newsapi.org"

// ErrMissingAPIKey is returned before any request is made when the query
// carries no API key.
var ErrMissingAPIKey = errors.New("[NewsAPIClient] API key is missing")

// NewsAPIError is a failure reported by the provider, either through a non-2xx
// status or a non-"ok" status field.
type NewsAPIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *NewsAPIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Code != "" {
		return fmt.Sprintf("newsapi %s (status %d): %s", e.Code, e.StatusCode, msg)
	}
	return fmt.Sprintf("newsapi status %d: %s", e.StatusCode, msg)
}

type EverythingQuery struct {
	APIKey   string
	Query    string
	Language string
	PageSize int
}

type NewsAPIClient struct {
	Client  *http.Client
	BaseURL string
}

func NewNewsAPIClient(baseURL string, opts HTTPOptions) *NewsAPIClient {
	if baseURL == "" {
		baseURL = NEWS_API_BASE_URL
	}
	return &NewsAPIClient{
		Client:  NewHTTPClient("NewsAPIClient", opts),
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetEverything searches /v2/everything, newest articles first. It makes a
// single attempt.
func (n *NewsAPIClient) GetEverything(ctx context.Context, q EverythingQuery) (*models.NewsAPIEverythingResponse, error) {
	if q.APIKey == "" {
		slog.Error("[NewsAPIClient] API key is missing")
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("q", q.Query)
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	params.Set("sortBy", "publishedAt")
	params.Set("apiKey", q.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+"/v2/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("[NewsAPIClient] build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	slog.Info("[NewsAPIClient] Fetching articles",
		slog.String("query", q.Query),
		slog.String("language", q.Language),
		slog.Int("page_size", q.PageSize))

	res, err := n.Client.Do(req)
	if err != nil {
		slog.Error("[NewsAPIClient] Request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("[NewsAPIClient] request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		slog.Error("[NewsAPIClient] Failed to read response body", slog.String("error", err.Error()))
		return nil, fmt.Errorf("[NewsAPIClient] read body: %w", err)
	}

	var response models.NewsAPIEverythingResponse
	decodeErr := json.Unmarshal(body, &response)

	switch {
	case res.StatusCode < 200 || res.StatusCode > 299:
		apiErr := &NewsAPIError{StatusCode: res.StatusCode}
		if decodeErr == nil {
			apiErr.Code, apiErr.Message = response.Code, response.Message
		}
		slog.Warn("[NewsAPIClient] Provider returned an error",
			slog.Int("status", res.StatusCode),
			slog.String("code", apiErr.Code))
		return nil, apiErr
	case decodeErr != nil:
		slog.Error("[NewsAPIClient] Failed to parse JSON response", slog.String("error", decodeErr.Error()))
		return nil, fmt.Errorf("[NewsAPIClient] decode response: %w", decodeErr)
	case response.Status != "ok":
		slog.Warn("[NewsAPIClient] Provider reported failure",
			slog.String("status", response.Status),
			slog.String("code", response.Code))
		return nil, &NewsAPIError{StatusCode: res.StatusCode, Code: response.Code, Message: response.Message}
	}

	slog.Info("[NewsAPIClient] Successfully fetched articles",
		slog.Int("articles", len(response.Articles)),
		slog.Int("total_results", response.TotalResults))
	return &response, nil
}
