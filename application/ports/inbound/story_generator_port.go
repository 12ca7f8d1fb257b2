package inbound

import (
	"context"
	"github.com/deanjroach84/DreamTales/domain"
)

type StoryGeneratorPort interface {
	Generate(ctx context.Context, req domain.StoryRequest) (domain.GeneratedStory, error)
}
