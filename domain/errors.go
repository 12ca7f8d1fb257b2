package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStoryNotFound = errors.New("story not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")

	// ErrGeneration matches every failure of the story generator, whether the
	// provider call failed or its reply could not be used.
	ErrGeneration = errors.New("story generation failed")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid story request: " + strings.Join(parts, "; ")
}

// HasField reports whether the named field failed validation.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

type ProviderCallError struct {
	Provider string
	Err      error
}

func (e *ProviderCallError) Error() string {
	return fmt.Sprintf("provider call failed (%s): %v", e.Provider, e.Err)
}

func (e *ProviderCallError) Unwrap() error { return e.Err }

func (e *ProviderCallError) Is(target error) bool { return target == ErrGeneration }

type ResponseParseError struct {
	Reason string
	Err    error
}

func (e *ResponseParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("response was not valid structured output: %s: %v", e.Reason, e.Err)
	}
	return "response was not valid structured output: " + e.Reason
}

func (e *ResponseParseError) Unwrap() error { return e.Err }

func (e *ResponseParseError) Is(target error) bool { return target == ErrGeneration }
