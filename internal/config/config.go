package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Analyzer AnalyzerConfig
	Intake   IntakeConfig
	Session  SessionConfig
	Matcher  MatcherConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AnalyzerConfig struct {
	BaseURL        string
	DefaultModel   string
	RequestTimeout time.Duration
}

type IntakeConfig struct {
	MaxFileSize int64
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type MatcherConfig struct {
	TopN int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Analyzer: AnalyzerConfig{
			BaseURL:        getEnv("ANALYZER_BASE_URL", "http://localhost:8000"),
			DefaultModel:   getEnv("ANALYZER_MODEL", "llama3"),
			RequestTimeout: getEnvAsDuration("ANALYZER_REQUEST_TIMEOUT", "30s"),
		},
		Intake: IntakeConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Session: SessionConfig{
			TTL:           getEnvAsDuration("SESSION_TTL", "30m"),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", "1m"),
		},
		Matcher: MatcherConfig{
			TopN: getEnvAsInt("MATCHER_TOP_N", 5),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
