package services

import (
	"errors"
	"github.com/deanjroach84/DreamTales/application/ports/inbound"
	"github.com/deanjroach84/DreamTales/domain"
	"github.com/go-playground/validator/v10"
	"reflect"
	"strings"
)

var fieldMessages = map[string]map[string]string{
	"childName": {
		"required": "Child's name is required",
		"max":      "Name too long",
	},
	"animal": {
		"animal": "Please select an animal",
	},
	"theme": {
		"theme": "Please select a theme",
	},
}

type storyRequestValidator struct {
	validate *validator.Validate
}

func NewStoryRequestValidator() inbound.StoryRequestValidatorPort {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("animal", func(fl validator.FieldLevel) bool {
		return domain.Animal(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
		return domain.Theme(fl.Field().String()).IsValid()
	})

	return &storyRequestValidator{validate: v}
}

func (s *storyRequestValidator) Validate(input inbound.StoryRequestInput) (domain.StoryRequest, error) {
	err := s.validate.Struct(input)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return domain.StoryRequest{}, err
		}
		fields := make([]domain.FieldError, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, domain.FieldError{
				Field:   fe.Field(),
				Message: fieldMessage(fe.Field(), fe.Tag()),
			})
		}
		return domain.StoryRequest{}, &domain.ValidationError{Fields: fields}
	}

	return domain.StoryRequest{
		ChildName: input.ChildName,
		Animal:    domain.Animal(input.Animal),
		Theme:     domain.Theme(input.Theme),
	}, nil
}

func fieldMessage(field, tag string) string {
	if msg, ok := fieldMessages[field][tag]; ok {
		return msg
	}
	return "failed the " + tag + " check"
}
