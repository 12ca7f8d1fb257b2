package dto

import "github.com/deanjroach84/DreamTales/domain"

type GenerateStoryRequest struct {
	ChildName string `json:"childName"`
	Animal    string `json:"animal"`
	Theme     string `json:"theme"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
