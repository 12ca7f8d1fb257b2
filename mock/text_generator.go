package mock_generator

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/deanjroach84/DreamTales/application/ports/outbound"
	"sync/atomic"
	"time"
)

// FileTextGenerator replays canned replies from a JSON file in a loop. It
// stands in for a hosted provider during local development.
type FileTextGenerator struct {
	logger  outbound.LoggerPort
	stories []MockStory
	next    atomic.Uint64
}

func NewFileTextGenerator(fileName string, reader StoryReader, logger outbound.LoggerPort) (*FileTextGenerator, error) {
	stories, err := reader.Read(fileName)
	if err != nil {
		return nil, err
	}

	return &FileTextGenerator{
		logger:  logger,
		stories: stories,
	}, nil
}

func (g *FileTextGenerator) Name() string {
	return "mock"
}

func (g *FileTextGenerator) Complete(ctx context.Context, _ outbound.Prompt) (string, error) {
	idx := (g.next.Add(1) - 1) % uint64(len(g.stories))
	story := g.stories[idx]

	if story.Delay > 0 {
		timer := time.NewTimer(time.Duration(story.Delay * float64(time.Second)))
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	g.logger.DebugWithFields("Replaying mock story", map[string]interface{}{
		"index": idx,
	})

	if story.Error != "" {
		return "", errors.New(story.Error)
	}
	if story.Raw != "" {
		return story.Raw, nil
	}

	payload, err := json.Marshal(map[string]string{
		"title":   story.Title,
		"content": story.Content,
	})
	if err != nil {
		return "", err
	}

	return "```json\n" + string(payload) + "\n```", nil
}
