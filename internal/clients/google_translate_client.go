package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const GOOGLE_TRANSLATE_BASE_URL = "https://translate.googleapis.com"

// GoogleTranslateClient calls the public "gtx" endpoint of Google Translate.
// It needs no credentials.
type GoogleTranslateClient struct {
	Client  *http.Client
	BaseURL string
}

func NewGoogleTranslateClient(opts HTTPOptions) *GoogleTranslateClient {
	return &GoogleTranslateClient{
		Client:  NewHTTPClient("GoogleTranslateClient", opts),
		BaseURL: GOOGLE_TRANSLATE_BASE_URL,
	}
}

func (g *GoogleTranslateClient) Name() string { return "google" }

// Translate translates text into English with the source auto-detected.
func (g *GoogleTranslateClient) Translate(ctx context.Context, text string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", "en")
	params.Set("dt", "t")
	params.Set("q", text)

	endpoint := strings.TrimRight(g.BaseURL, "/") + "/translate_a/single?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("[GoogleTranslateClient] build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	res, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("[GoogleTranslateClient] request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, res.Body)
		return "", fmt.Errorf("[GoogleTranslateClient] unexpected status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("[GoogleTranslateClient] read body: %w", err)
	}
	return parseGoogleTranslateResponse(body)
}

// parseGoogleTranslateResponse joins the translated segments of a gtx
// response. The payload is an array whose first element lists segments, each
// segment being [translated, original, ...].
func parseGoogleTranslateResponse(body []byte) (string, error) {
	var response []json.RawMessage
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("[GoogleTranslateClient] decode response: %w", err)
	}
	if len(response) == 0 {
		return "", errors.New("[GoogleTranslateClient] empty response")
	}

	var segments []json.RawMessage
	if err := json.Unmarshal(response[0], &segments); err != nil {
		return "", errors.New("[GoogleTranslateClient] unexpected response format")
	}

	var sb strings.Builder
	for _, raw := range segments {
		var segment []any
		if err := json.Unmarshal(raw, &segment); err != nil || len(segment) == 0 {
			continue
		}
		if translated, ok := segment[0].(string); ok {
			sb.WriteString(translated)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("[GoogleTranslateClient] no translated segments")
	}
	return sb.String(), nil
}
