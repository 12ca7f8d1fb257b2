package inbound

import (
	"context"
	"github.com/deanjroach84/DreamTales/domain"
)

type StoryPipelinePort interface {
	GenerateStory(ctx context.Context, input StoryRequestInput) (domain.Story, error)
	GetStory(ctx context.Context, id int) (domain.Story, error)
	GetStoriesByChild(ctx context.Context, childName string) []domain.Story
}
