package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacesedan/newslens/config"
	"github.com/spacesedan/newslens/internal/app"
	"github.com/spacesedan/newslens/internal/logging"
)

var (
	envFlag      string
	logLevelFlag string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:               "newslens",
	Short:             "newslens: news sentiment and summarization service",
	Long:              "Sentiment analysis for Korean and English text, extractive summaries, and an analyzed NewsAPI feed.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "", "env file suffix under config/envs (default $APP_ENV or dev)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "debug, info, warn or error (default $LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(newsCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	env := envFlag
	if env == "" {
		env = os.Getenv("APP_ENV")
	}
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	if logLevelFlag != "" {
		loaded.LogLevel = logLevelFlag
	}
	logging.InitLogger(loaded.LogLevel)
	cfg = loaded
	return nil
}

func buildApp(ctx context.Context) (*app.App, error) {
	if cfg == nil {
		return nil, errors.New("configuration not loaded")
	}
	return app.Build(ctx, cfg)
}

// readInput joins the positional args, or reads stdin when there are none.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "", errors.New("no input text: pass it as arguments or on stdin")
	}
	return text, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
