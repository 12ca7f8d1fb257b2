package main

import (
	"context"
	"fmt"
	"github.com/deanjroach84/DreamTales/application/ports/inbound"
	"github.com/deanjroach84/DreamTales/application/ports/outbound"
	"github.com/deanjroach84/DreamTales/application/services"
	"github.com/deanjroach84/DreamTales/config"
	"github.com/deanjroach84/DreamTales/infrastructure/adapters"
	mockgenerator "github.com/deanjroach84/DreamTales/mock"
	"github.com/panjf2000/ants/v2"
	"net/http"
)

type app struct {
	logger       outbound.LoggerPort
	serverConfig *config.ServerConfig
	workerPool   *ants.Pool
	pipeline     inbound.StoryPipelinePort
}

// newApp wires the story pipeline. Missing provider credentials fail here,
// before anything is served.
func newApp(ctx context.Context) (*app, error) {
	logConfig, err := config.GetLogConfig()
	if err != nil {
		return nil, err
	}
	logger := adapters.NewZerologWrapper(logConfig)

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		return nil, err
	}

	textGenerator, err := newTextGenerator(ctx, serverConfig.Provider, logger)
	if err != nil {
		return nil, err
	}

	panicHandler := func(p interface{}) {
		logger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(serverConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	storyGenerator := services.NewStoryGenerator(logger, textGenerator, workerPool, serverConfig.GenerationTimeout)

	pipeline := services.NewStoryPipeline(logger, services.NewStoryRequestValidator(), storyGenerator, adapters.NewMemoryStore())

	logger.InfoWithFields("Story pipeline ready", map[string]interface{}{
		"provider":           textGenerator.Name(),
		"worker_pool_size":   serverConfig.WorkerPoolSize,
		"generation_timeout": serverConfig.GenerationTimeout.String(),
	})

	return &app{
		logger:       logger,
		serverConfig: serverConfig,
		workerPool:   workerPool,
		pipeline:     pipeline,
	}, nil
}

func (a *app) Close() {
	a.workerPool.Release()
}

func newTextGenerator(ctx context.Context, provider config.Provider, logger outbound.LoggerPort) (outbound.TextGeneratorPort, error) {
	switch provider {
	case config.GptProvider:
		gptConfig, err := config.GetGptConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewGptTextGenerator(gptConfig, adapters.NewContentFetcher(&http.Client{}, logger), logger), nil
	case config.MockProvider:
		mockConfig := config.GetMockConfig()
		mockGenerator, err := mockgenerator.NewFileTextGenerator(mockConfig.StoriesFile, mockgenerator.NewFileStoryReader(logger), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load mock stories: %w", err)
		}
		return mockGenerator, nil
	default:
		geminiConfig, err := config.GetGeminiConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewGeminiTextGenerator(ctx, geminiConfig, logger)
	}
}
