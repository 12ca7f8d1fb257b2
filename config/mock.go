package config

import "os"

const DefaultMockStoriesFile = "mock/stories.json"

type MockConfig struct {
	StoriesFile string
}

func GetMockConfig() *MockConfig {
	file := os.Getenv("MOCK_STORIES_FILE")
	if file == "" {
		file = DefaultMockStoriesFile
	}
	return &MockConfig{StoriesFile: file}
}
