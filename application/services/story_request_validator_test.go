package services

import (
	"github.com/deanjroach84/DreamTales/application/ports/inbound"
	"github.com/deanjroach84/DreamTales/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestStoryRequestValidator_Valid(t *testing.T) {
	validator := NewStoryRequestValidator()

	req, err := validator.Validate(inbound.StoryRequestInput{ChildName: "Ava", Animal: "owl", Theme: "courage"})
	require.NoError(t, err)
	assert.Equal(t, domain.StoryRequest{ChildName: "Ava", Animal: domain.Owl, Theme: domain.Courage}, req)
}

func TestStoryRequestValidator_AcceptsEveryEnumValue(t *testing.T) {
	validator := NewStoryRequestValidator()

	for _, animal := range domain.Animals {
		for _, theme := range domain.Themes {
			_, err := validator.Validate(inbound.StoryRequestInput{ChildName: "Leo", Animal: string(animal), Theme: string(theme)})
			assert.NoError(t, err, "%s/%s", animal, theme)
		}
	}
}

func TestStoryRequestValidator_NameLengthCountsCharacters(t *testing.T) {
	validator := NewStoryRequestValidator()

	_, err := validator.Validate(inbound.StoryRequestInput{ChildName: strings.Repeat("é", 50), Animal: "fox", Theme: "honesty"})
	assert.NoError(t, err)
}

func TestStoryRequestValidator_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		input  inbound.StoryRequestInput
		fields []domain.FieldError
	}{
		{
			name:   "empty name",
			input:  inbound.StoryRequestInput{ChildName: "", Animal: "lion", Theme: "sharing"},
			fields: []domain.FieldError{{Field: "childName", Message: "Child's name is required"}},
		},
		{
			name:   "name too long",
			input:  inbound.StoryRequestInput{ChildName: strings.Repeat("a", 51), Animal: "lion", Theme: "sharing"},
			fields: []domain.FieldError{{Field: "childName", Message: "Name too long"}},
		},
		{
			name:   "unknown animal",
			input:  inbound.StoryRequestInput{ChildName: "Ava", Animal: "dragon", Theme: "sharing"},
			fields: []domain.FieldError{{Field: "animal", Message: "Please select an animal"}},
		},
		{
			name:   "animal is case sensitive",
			input:  inbound.StoryRequestInput{ChildName: "Ava", Animal: "Lion", Theme: "sharing"},
			fields: []domain.FieldError{{Field: "animal", Message: "Please select an animal"}},
		},
		{
			name:   "unknown theme",
			input:  inbound.StoryRequestInput{ChildName: "Ava", Animal: "lion", Theme: "greed"},
			fields: []domain.FieldError{{Field: "theme", Message: "Please select a theme"}},
		},
		{
			name:  "everything missing",
			input: inbound.StoryRequestInput{},
			fields: []domain.FieldError{
				{Field: "childName", Message: "Child's name is required"},
				{Field: "animal", Message: "Please select an animal"},
				{Field: "theme", Message: "Please select a theme"},
			},
		},
	}

	validator := NewStoryRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validator.Validate(tt.input)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.fields, validationErr.Fields)
		})
	}
}
