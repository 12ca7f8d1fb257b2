package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"github.com/deanjroach84/DreamTales/application/ports/outbound"
	"github.com/deanjroach84/DreamTales/application/services"
	"github.com/deanjroach84/DreamTales/domain"
	"github.com/deanjroach84/DreamTales/infrastructure/adapters"
	"github.com/deanjroach84/DreamTales/infrastructure/gin_interface/dto"
	"github.com/deanjroach84/DreamTales/middleware"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type stubTextGenerator struct {
	reply string
	err   error
	calls atomic.Int32
}

func (s *stubTextGenerator) Name() string { return "stub" }

func (s *stubTextGenerator) Complete(context.Context, outbound.Prompt) (string, error) {
	s.calls.Add(1)
	return s.reply, s.err
}

func newTestRouter(t *testing.T, provider outbound.TextGeneratorPort) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pool, err := ants.NewPool(4)
	require.NoError(t, err)
	t.Cleanup(pool.Release)

	logger := adapters.NewZerologWrapperWithWriter(io.Discard, zerolog.Disabled)
	generator := services.NewStoryGenerator(logger, provider, pool, time.Second)
	pipeline := services.NewStoryPipeline(logger, services.NewStoryRequestValidator(), generator, adapters.NewMemoryStore())

	router := gin.New()
	router.Use(middleware.RequestID())
	NewStoriesController(logger, pipeline).RegisterRoutes(router)
	return router
}

func serve(router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, _ := json.Marshal(b)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGenerateStory_Success(t *testing.T) {
	router := newTestRouter(t, &stubTextGenerator{reply: "```json\n{\"title\":\"T\",\"content\":\"C\"}\n```"})

	w := serve(router, http.MethodPost, "/api/stories/generate", dto.GenerateStoryRequest{ChildName: "Ava", Animal: "fox", Theme: "curiosity"})
	require.Equal(t, http.StatusOK, w.Code)

	story := decode[domain.Story](t, w)
	assert.Equal(t, 1, story.ID)
	assert.Equal(t, "T", story.Title)
	assert.Equal(t, "C", story.Content)
	assert.Equal(t, domain.Fox, story.Animal)
	assert.False(t, story.CreatedAt.IsZero())

	w = serve(router, http.MethodGet, "/api/stories/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, story, decode[domain.Story](t, w))
}

func TestGenerateStory_ValidationError(t *testing.T) {
	provider := &stubTextGenerator{reply: `{"title":"T","content":"C"}`}
	router := newTestRouter(t, provider)

	w := serve(router, http.MethodPost, "/api/stories/generate", dto.GenerateStoryRequest{ChildName: "", Animal: "dragon", Theme: "courage"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[dto.ValidationErrorResponse](t, w)
	assert.Equal(t, invalidRequestMessage, resp.Message)
	assert.Equal(t, []domain.FieldError{
		{Field: "childName", Message: "Child's name is required"},
		{Field: "animal", Message: "Please select an animal"},
	}, resp.Errors)
	assert.Equal(t, int32(0), provider.calls.Load())
}

func TestGenerateStory_MalformedBody(t *testing.T) {
	provider := &stubTextGenerator{}
	router := newTestRouter(t, provider)

	w := serve(router, http.MethodPost, "/api/stories/generate", `{"childName": 5`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[dto.ValidationErrorResponse](t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "body", resp.Errors[0].Field)
	assert.Equal(t, int32(0), provider.calls.Load())
}

func TestGenerateStory_GenerationErrors(t *testing.T) {
	valid := dto.GenerateStoryRequest{ChildName: "Ava", Animal: "bear", Theme: "empathy"}

	t.Run("provider failure", func(t *testing.T) {
		router := newTestRouter(t, &stubTextGenerator{err: errors.New("dial tcp: connection refused")})

		w := serve(router, http.MethodPost, "/api/stories/generate", valid)
		require.Equal(t, http.StatusInternalServerError, w.Code)

		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, providerFailedMessage, resp.Message)
		assert.Contains(t, resp.Error, "connection refused")
	})

	t.Run("unparseable reply", func(t *testing.T) {
		router := newTestRouter(t, &stubTextGenerator{reply: "I'm sorry, I can't do that."})

		w := serve(router, http.MethodPost, "/api/stories/generate", valid)
		require.Equal(t, http.StatusInternalServerError, w.Code)

		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, invalidReplyMessage, resp.Message)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("nothing stored", func(t *testing.T) {
		router := newTestRouter(t, &stubTextGenerator{reply: `{"title":"T"}`})

		serve(router, http.MethodPost, "/api/stories/generate", valid)
		w := serve(router, http.MethodGet, "/api/stories?childName=Ava", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestGetStory_NotFound(t *testing.T) {
	router := newTestRouter(t, &stubTextGenerator{})

	for _, target := range []string{"/api/stories/999999", "/api/stories/abc", "/api/stories/-1"} {
		w := serve(router, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, target)
		assert.Equal(t, storyNotFoundMessage, decode[dto.MessageResponse](t, w).Message)
	}
}

func TestGetStoriesByChild(t *testing.T) {
	router := newTestRouter(t, &stubTextGenerator{reply: `{"title":"T","content":"C"}`})

	for _, name := range []string{"Ava", "Leo", "ava"} {
		w := serve(router, http.MethodPost, "/api/stories/generate", dto.GenerateStoryRequest{ChildName: name, Animal: "lion", Theme: "courage"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(router, http.MethodGet, "/api/stories?childName=AVA", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stories := decode[[]domain.Story](t, w)
	require.Len(t, stories, 2)
	assert.Equal(t, 1, stories[0].ID)
	assert.Equal(t, 3, stories[1].ID)

	w = serve(router, http.MethodGet, "/api/stories", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, childNameMissingMessage, decode[dto.MessageResponse](t, w).Message)
}

func TestOptionsAndHealth(t *testing.T) {
	router := newTestRouter(t, &stubTextGenerator{})

	w := serve(router, http.MethodGet, "/api/options", nil)
	require.Equal(t, http.StatusOK, w.Code)
	opts := decode[domain.StoryOptions](t, w)
	assert.Len(t, opts.Animals, len(domain.Animals))
	assert.Len(t, opts.Themes, len(domain.Themes))

	w = serve(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[dto.HealthResponse](t, w).Status)
}
