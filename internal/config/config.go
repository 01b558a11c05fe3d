// Package config resolves faqbot settings from the environment, an optional
// .env file and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config holds every setting the commands need.
type Config struct {
	KnowledgeBasePath string
	UnansweredLogPath string
	FeedbackLogPath   string

	// DatabaseDSN enables the curation store: a SQLite path or a
	// postgres:// URL. Empty disables it.
	DatabaseDSN string

	// RedisAddr enables the Redis sink. Empty disables it.
	RedisAddr     string
	RedisPassword string
	RedisPrefix   string

	MatchThreshold         int
	ClarificationThreshold int
	BusinessName           string
	FallbackTopics         string

	LogLevel  string
	LogFormat string
	HTTPAddr  string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		KnowledgeBasePath:      "data/faqs.json",
		UnansweredLogPath:      "unanswered_questions.log",
		FeedbackLogPath:        "feedback.log",
		RedisPrefix:            "faqbot:",
		MatchThreshold:         80,
		ClarificationThreshold: 10,
		BusinessName:           "Amaze Africa Fabrics",
		FallbackTopics:         "hours, designs, fabric types, location, or contact",
		LogLevel:               "info",
		LogFormat:              "console",
		HTTPAddr:               ":8080",
	}
}

// Load reads envFiles (".env" when none are given) into the environment
// without overriding variables that are already set, then builds the
// configuration from the environment. Missing env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv(), nil
}

// FromEnv reads configuration from environment variables, falling back to
// defaults for unset or unparsable values.
func FromEnv() Config {
	cfg := DefaultConfig()

	applyString(&cfg.KnowledgeBasePath, "FAQBOT_KB")
	applyString(&cfg.UnansweredLogPath, "FAQBOT_UNANSWERED_LOG")
	applyString(&cfg.FeedbackLogPath, "FAQBOT_FEEDBACK_LOG")
	applyString(&cfg.DatabaseDSN, "FAQBOT_DB")
	applyString(&cfg.RedisAddr, "FAQBOT_REDIS_ADDR")
	applyString(&cfg.RedisPassword, "FAQBOT_REDIS_PASSWORD")
	applyString(&cfg.RedisPrefix, "FAQBOT_REDIS_PREFIX")
	applyString(&cfg.BusinessName, "FAQBOT_BUSINESS_NAME")
	applyString(&cfg.FallbackTopics, "FAQBOT_FALLBACK_TOPICS")
	applyString(&cfg.LogLevel, "FAQBOT_LOG_LEVEL")
	applyString(&cfg.LogFormat, "FAQBOT_LOG_FORMAT")
	applyString(&cfg.HTTPAddr, "FAQBOT_HTTP_ADDR")

	applyScore(&cfg.MatchThreshold, "FAQBOT_MATCH_THRESHOLD")
	applyScore(&cfg.ClarificationThreshold, "FAQBOT_CLARIFICATION_THRESHOLD")

	return cfg
}

// BindFlags registers the persistent flags that override the environment.
// Flag defaults are the values already in cfg.
func (c *Config) BindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.KnowledgeBasePath, "kb", c.KnowledgeBasePath, "knowledge base file (.json, .yaml or .yml)")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error, off)")
	flags.StringVar(&c.DatabaseDSN, "db", c.DatabaseDSN, "curation store: SQLite path or postgres:// URL")
}

// Validate checks values that cannot be repaired by falling back to a
// default.
func (c Config) Validate() error {
	var errs []error
	if c.KnowledgeBasePath == "" {
		errs = append(errs, errors.New("knowledge base path is required"))
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log format %q: expected console or json", c.LogFormat))
	}
	return errors.Join(errs...)
}

func applyString(dst *string, envName string) {
	if v := os.Getenv(envName); v != "" {
		*dst = v
	}
}

// applyScore accepts integers in [0,100] only.
func applyScore(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 100 {
		return
	}
	*dst = n
}
