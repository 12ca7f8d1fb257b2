package services

import (
	"context"
	"github.com/deanjroach84/DreamTales/application/ports/inbound"
	"github.com/deanjroach84/DreamTales/application/ports/outbound"
	"github.com/deanjroach84/DreamTales/domain"
	"strings"
)

type storyPipeline struct {
	logger    outbound.LoggerPort
	validator inbound.StoryRequestValidatorPort
	generator inbound.StoryGeneratorPort
	store     outbound.StoryStorePort
}

func NewStoryPipeline(logger outbound.LoggerPort, validator inbound.StoryRequestValidatorPort,
	generator inbound.StoryGeneratorPort, store outbound.StoryStorePort) inbound.StoryPipelinePort {
	return &storyPipeline{
		logger:    logger,
		validator: validator,
		generator: generator,
		store:     store,
	}
}

func (s *storyPipeline) GenerateStory(ctx context.Context, input inbound.StoryRequestInput) (domain.Story, error) {
	req, err := s.validator.Validate(input)
	if err != nil {
		return domain.Story{}, err
	}

	generated, err := s.generator.Generate(ctx, req)
	if err != nil {
		return domain.Story{}, err
	}

	story := s.store.CreateStory(ctx, domain.NewStory{
		StoryRequest:   req,
		GeneratedStory: generated,
	})

	s.logger.InfoWithFields("Story created", map[string]interface{}{
		"story_id": story.ID,
		"animal":   story.Animal,
		"theme":    story.Theme,
		"words":    wordCount(story.Content),
	})

	return story, nil
}

func (s *storyPipeline) GetStory(ctx context.Context, id int) (domain.Story, error) {
	return s.store.GetStory(ctx, id)
}

func (s *storyPipeline) GetStoriesByChild(ctx context.Context, childName string) []domain.Story {
	return s.store.GetStoriesByChild(ctx, childName)
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
