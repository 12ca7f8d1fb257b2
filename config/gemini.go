package config

import (
	"fmt"
	"os"
)

const DefaultGeminiModel = "gemini-1.5-flash"

type GeminiConfig struct {
	ApiKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint; empty means the SDK default.
	BaseURL string
}

func GetGeminiConfig() (*GeminiConfig, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY must be set")
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiConfig{
		ApiKey:  apiKey,
		Model:   model,
		BaseURL: os.Getenv("GEMINI_BASE_URL"),
	}, nil
}
