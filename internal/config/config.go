package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"paperlens/internal/errors"
)

// Analysis backend identifiers.
const (
	BackendMock   = "mock"
	BackendOpenAI = "openai"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
	Upload   UploadConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AnalysisConfig selects and parameterizes the analysis backend
type AnalysisConfig struct {
	Backend     string // "mock" or "openai"
	OpenAIKey   string
	OpenAIModel string
	MaxTokens   int
	Temperature float64
	MockDelay   time.Duration // stand-in for real-backend latency; 0 by default
}

// UploadConfig holds upload handling settings
type UploadConfig struct {
	MaxFileBytes int64
}

// Load reads configuration from environment variables and validates it.
// A misconfigured analysis backend fails here, before any file is touched.
func Load() (*Config, error) {
	config := &Config{
		Server: loadServerConfig(),
		Upload: loadUploadConfig(),
	}

	analysisConfig, err := loadAnalysisConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load analysis configuration")
	}
	config.Analysis = *analysisConfig

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func loadAnalysisConfig() (*AnalysisConfig, error) {
	backend := getEnvOrDefault("ANALYSIS_BACKEND", BackendMock)
	if backend != BackendMock && backend != BackendOpenAI {
		return nil, errors.ConfigInvalid(fmt.Sprintf("unknown ANALYSIS_BACKEND %q (expected %q or %q)", backend, BackendMock, BackendOpenAI))
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if backend == BackendOpenAI && openaiKey == "" {
		return nil, errors.ConfigInvalid("OPENAI_API_KEY is required when ANALYSIS_BACKEND=openai; set it in .env or switch to ANALYSIS_BACKEND=mock")
	}

	model := getEnvOrDefault("LLM_MODEL", "gpt-4o-mini")

	return &AnalysisConfig{
		Backend:     backend,
		OpenAIKey:   openaiKey,
		OpenAIModel: model,
		MaxTokens:   getEnvIntOrDefault("MAX_TOKENS", 1200),
		Temperature: getEnvFloatOrDefault("TEMPERATURE", 0.2),
		MockDelay:   getEnvDurationOrDefault("MOCK_DELAY", 0),
	}, nil
}

func loadUploadConfig() UploadConfig {
	return UploadConfig{
		MaxFileBytes: int64(getEnvIntOrDefault("MAX_UPLOAD_BYTES", 32<<20)),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
