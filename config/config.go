package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// App settings
	Env      string
	HTTPAddr string
	LogLevel string

	// NewsAPI settings
	NewsAPIKey     string
	NewsAPIBaseURL string

	// Outbound HTTP
	RequestTimeout     time.Duration
	InsecureSkipVerify bool

	// LexiconPath overrides the built-in lexicon when set.
	LexiconPath string

	// Translation backends
	OpenAIAPIKey        string
	OpenAIModel         string
	GeminiAPIKey        string
	GeminiModel         string
	AWSTranslateEnabled bool
	AWSRegion           string

	// Quota guard, disabled when ValkeyAddress is empty
	ValkeyAddress   string
	ValkeyPassword  string
	ValkeyTLS       bool
	NewsQuotaPerDay int64
}

// Load builds a Config from the environment, applying defaults for unset
// variables. Values that are set but malformed are reported together.
func Load() (*Config, error) {
	cfg := &Config{
		Env:             getEnvOrDefault("APP_ENV", "dev"),
		HTTPAddr:        getEnvOrDefault("HTTP_ADDR", ":8000"),
		LogLevel:        strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
		NewsAPIKey:      os.Getenv("NEWS_API_KEY"),
		NewsAPIBaseURL:  getEnvOrDefault("NEWS_API_BASE_URL", "https://newsapi.org"),
		LexiconPath:     os.Getenv("LEXICON_PATH"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		AWSRegion:       getEnvOrDefault("AWS_REGION", "us-west-2"),
		ValkeyAddress:   os.Getenv("VALKEY_INIT_ADDRESS"),
		ValkeyPassword:  os.Getenv("VALKEY_PASSWORD"),
	}

	var errs []error
	cfg.RequestTimeout = parseDuration("REQUEST_TIMEOUT", 15*time.Second, &errs)
	cfg.InsecureSkipVerify = parseBool("INSECURE_SKIP_VERIFY", false, &errs)
	cfg.AWSTranslateEnabled = parseBool("AWS_TRANSLATE_ENABLED", false, &errs)
	cfg.ValkeyTLS = parseBool("VALKEY_TLS", false, &errs)
	cfg.NewsQuotaPerDay = parseInt("NEWS_QUOTA_PER_DAY", 100, &errs)

	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout))
	}
	if cfg.NewsQuotaPerDay <= 0 {
		errs = append(errs, fmt.Errorf("NEWS_QUOTA_PER_DAY must be positive, got %d", cfg.NewsQuotaPerDay))
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseDuration(key string, def time.Duration, errs *[]error) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func parseBool(key string, def bool, errs *[]error) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func parseInt(key string, def int64, errs *[]error) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}
