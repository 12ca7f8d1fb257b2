package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Provider string

const (
	GeminiProvider Provider = "gemini"
	GptProvider    Provider = "gpt"
	MockProvider   Provider = "mock"
)

const (
	DefaultPort              = "8080"
	DefaultGenerationTimeout = 90 * time.Second
	DefaultWorkerPoolSize    = 32
)

type ServerConfig struct {
	Port              string
	Provider          Provider
	GenerationTimeout time.Duration
	WorkerPoolSize    int
}

func GetServerConfig() (*ServerConfig, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}

	provider := Provider(os.Getenv("STORY_PROVIDER"))
	switch provider {
	case "":
		provider = GeminiProvider
	case GeminiProvider, GptProvider, MockProvider:
	default:
		return nil, fmt.Errorf("STORY_PROVIDER must be one of gemini, gpt, mock; got %q", provider)
	}

	timeout := DefaultGenerationTimeout
	if raw := os.Getenv("GENERATION_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse GENERATION_TIMEOUT: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("GENERATION_TIMEOUT must be positive")
		}
		timeout = parsed
	}

	poolSize := DefaultWorkerPoolSize
	if raw := os.Getenv("WORKER_POOL_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse WORKER_POOL_SIZE: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("WORKER_POOL_SIZE must be positive")
		}
		poolSize = parsed
	}

	return &ServerConfig{
		Port:              port,
		Provider:          provider,
		GenerationTimeout: timeout,
		WorkerPoolSize:    poolSize,
	}, nil
}
