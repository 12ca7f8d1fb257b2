package config

import (
	"fmt"
	"github.com/rs/zerolog"
	"os"
	"strings"
)

type LogConfig struct {
	Level   zerolog.Level
	Console bool
}

func GetLogConfig() (*LogConfig, error) {
	level := zerolog.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to parse LOG_LEVEL: %w", err)
		}
		level = parsed
	}
	return &LogConfig{
		Level:   level,
		Console: strings.EqualFold(os.Getenv("LOG_FORMAT"), "console"),
	}, nil
}
