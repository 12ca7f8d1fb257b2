package outbound

import (
	"context"
	"github.com/deanjroach84/DreamTales/domain"
)

type StoryStorePort interface {
	CreateStory(ctx context.Context, story domain.NewStory) domain.Story
	GetStory(ctx context.Context, id int) (domain.Story, error)
	GetStoriesByChild(ctx context.Context, childName string) []domain.Story
}

type UserStorePort interface {
	CreateUser(ctx context.Context, user domain.NewUser) (domain.User, error)
	GetUser(ctx context.Context, id int) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}
