package controllers

import (
	"errors"
	"github.com/deanjroach84/DreamTales/application/ports/inbound"
	"github.com/deanjroach84/DreamTales/application/ports/outbound"
	"github.com/deanjroach84/DreamTales/domain"
	"github.com/deanjroach84/DreamTales/infrastructure/gin_interface/dto"
	"github.com/deanjroach84/DreamTales/middleware"
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
)

const (
	invalidRequestMessage   = "Invalid story request"
	providerFailedMessage   = "Story provider call failed. Please try again."
	invalidReplyMessage     = "Story provider returned an invalid story. Please try again."
	generateFailedMessage   = "Failed to generate story. Please try again."
	storyNotFoundMessage    = "Story not found"
	childNameMissingMessage = "Child name is required"
)

type StoriesController interface {
	GenerateStory(c *gin.Context)
	GetStory(c *gin.Context)
	GetStoriesByChild(c *gin.Context)
	GetOptions(c *gin.Context)
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type storiesController struct {
	logger        outbound.LoggerPort
	storyPipeline inbound.StoryPipelinePort
}

func NewStoriesController(
	logger outbound.LoggerPort,
	storyPipeline inbound.StoryPipelinePort,
) StoriesController {
	return &storiesController{
		logger:        logger,
		storyPipeline: storyPipeline,
	}
}

func (s *storiesController) GenerateStory(c *gin.Context) {
	var generateStoryRequest dto.GenerateStoryRequest
	if err := c.ShouldBindJSON(&generateStoryRequest); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Message: invalidRequestMessage,
			Errors:  []domain.FieldError{{Field: "body", Message: err.Error()}},
		})
		return
	}

	story, err := s.storyPipeline.GenerateStory(c.Request.Context(), inbound.StoryRequestInput{
		ChildName: generateStoryRequest.ChildName,
		Animal:    generateStoryRequest.Animal,
		Theme:     generateStoryRequest.Theme,
	})
	if err != nil {
		s.respondGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, story)
}

func (s *storiesController) respondGenerationError(c *gin.Context, err error) {
	fields := map[string]interface{}{
		"request_id": c.GetString(middleware.ContextRequestIDKey),
	}

	var validationErr *domain.ValidationError
	var parseErr *domain.ResponseParseError
	var providerErr *domain.ProviderCallError
	switch {
	case errors.As(err, &validationErr):
		s.logger.InfoWithFields("Rejected story request", map[string]interface{}{
			"request_id": fields["request_id"],
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Message: invalidRequestMessage,
			Errors:  validationErr.Fields,
		})
	case errors.As(err, &parseErr):
		s.logger.ErrorWithFields(err, "Story provider returned an invalid reply", fields)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: invalidReplyMessage, Error: err.Error()})
	case errors.As(err, &providerErr):
		fields["provider"] = providerErr.Provider
		s.logger.ErrorWithFields(err, "Story provider call failed", fields)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: providerFailedMessage, Error: err.Error()})
	default:
		s.logger.ErrorWithFields(err, "Error generating story", fields)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: generateFailedMessage, Error: err.Error()})
	}
}

func (s *storiesController) GetStory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: storyNotFoundMessage})
		return
	}

	story, err := s.storyPipeline.GetStory(c.Request.Context(), id)
	if errors.Is(err, domain.ErrStoryNotFound) {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: storyNotFoundMessage})
		return
	}
	if err != nil {
		s.logger.ErrorWithFields(err, "Error fetching story", map[string]interface{}{
			"request_id": c.GetString(middleware.ContextRequestIDKey),
			"story_id":   id,
		})
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to fetch story"})
		return
	}

	c.JSON(http.StatusOK, story)
}

func (s *storiesController) GetStoriesByChild(c *gin.Context) {
	childName := c.Query("childName")
	if childName == "" {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: childNameMissingMessage})
		return
	}

	c.JSON(http.StatusOK, s.storyPipeline.GetStoriesByChild(c.Request.Context(), childName))
}

func (s *storiesController) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Options())
}

func (s *storiesController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func (s *storiesController) RegisterRoutes(g *gin.Engine) {
	g.GET("/health", s.Health)

	api := g.Group("/api")
	api.GET("/options", s.GetOptions)
	api.POST("/stories/generate", s.GenerateStory)
	api.GET("/stories/:id", s.GetStory)
	api.GET("/stories", s.GetStoriesByChild)
}
