package models

type NewsAPIEverythingResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []NewsAPIArticle `json:"articles"`
	Code         string           `json:"code,omitempty"`
	Message      string           `json:"message,omitempty"`
}

type NewsAPIArticle struct {
	Source      NewsAPISource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  *string       `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
	Content     string        `json:"content"`
}

type NewsAPISource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
