package models

type SentimentRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type SummarizeRequest struct {
	Text          string `json:"text"`
	SentenceCount *int   `json:"sentence_count"`
	Language      string `json:"language"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// ArticleResult is one analyzed article in a NewsResponse.
type ArticleResult struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Content     string          `json:"content"`
	URL         string          `json:"url"`
	Source      string          `json:"source"`
	Published   string          `json:"published"`
	ImageURL    *string         `json:"image_url"`
	Sentiment   SentimentResult `json:"sentiment"`
	Summary     string          `json:"summary"`
}

type NewsResponse struct {
	Total            int             `json:"total"`
	SentimentSummary map[Label]int   `json:"sentiment_summary"`
	Articles         []ArticleResult `json:"articles"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
