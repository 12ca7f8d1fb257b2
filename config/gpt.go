package config

import (
	"fmt"
	"os"
	"strconv"
)

type GptConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
	Stream bool
}

func GetGptConfig() (*GptConfig, error) {
	model := os.Getenv("GPT_MODEL")
	if model == "" {
		return nil, fmt.Errorf("GPT_MODEL must be set")
	}
	apiUrl := os.Getenv("GPT_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("GPT_API_URL must be set")
	}
	apiKey := os.Getenv("GPT_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GPT_API_KEY must be set")
	}
	stream := true
	if raw := os.Getenv("GPT_STREAM"); raw != "" {
		val, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse GPT_STREAM: %w", err)
		}
		stream = val
	}
	return &GptConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
		Model:  model,
		Stream: stream,
	}, nil
}
