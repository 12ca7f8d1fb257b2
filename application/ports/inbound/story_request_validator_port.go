package inbound

import "github.com/deanjroach84/DreamTales/domain"

type StoryRequestInput struct {
	ChildName string `json:"childName" validate:"required,max=50"`
	Animal    string `json:"animal" validate:"animal"`
	Theme     string `json:"theme" validate:"theme"`
}

type StoryRequestValidatorPort interface {
	Validate(input StoryRequestInput) (domain.StoryRequest, error)
}
