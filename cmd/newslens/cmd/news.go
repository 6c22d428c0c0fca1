package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacesedan/newslens/internal/news"
)

var (
	newsAPIKey           string
	newsQuery            string
	newsLanguage         string
	newsPageSize         int
	newsSummarySentences int
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Fetch, score and summarize the newest articles for a query",
	RunE:  runNews,
}

func init() {
	newsCmd.Flags().StringVar(&newsAPIKey, "api-key", "", "NewsAPI key (default $NEWS_API_KEY)")
	newsCmd.Flags().StringVarP(&newsQuery, "query", "q", "technology", "search query")
	newsCmd.Flags().StringVar(&newsLanguage, "language", "en", "article language filter")
	newsCmd.Flags().IntVar(&newsPageSize, "page-size", 5, "number of articles (1-20)")
	newsCmd.Flags().IntVar(&newsSummarySentences, "summary-sentences", 3, "sentences per summary (1-10)")
}

func runNews(cmd *cobra.Command, args []string) error {
	if newsPageSize < 1 || newsPageSize > 20 {
		return fmt.Errorf("--page-size must be between 1 and 20, got %d", newsPageSize)
	}
	if newsSummarySentences < 1 || newsSummarySentences > 10 {
		return fmt.Errorf("--summary-sentences must be between 1 and 10, got %d", newsSummarySentences)
	}

	a, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	apiKey := newsAPIKey
	if apiKey == "" {
		apiKey = cfg.NewsAPIKey
	}
	if apiKey == "" {
		return fmt.Errorf("a NewsAPI key is required: pass --api-key or set NEWS_API_KEY")
	}

	resp, err := a.News.Fetch(cmd.Context(), news.Request{
		APIKey:           apiKey,
		Query:            newsQuery,
		Language:         newsLanguage,
		PageSize:         newsPageSize,
		SummarySentences: newsSummarySentences,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), resp)
}
