package services

import (
	"context"
	"fmt"
	"github.com/deanjroach84/DreamTales/application/ports/inbound"
	"github.com/deanjroach84/DreamTales/application/ports/outbound"
	"github.com/deanjroach84/DreamTales/domain"
	"time"
)

type completionResult struct {
	text string
	err  error
}

type storyGenerator struct {
	logger        outbound.LoggerPort
	textGenerator outbound.TextGeneratorPort
	workerPool    outbound.TaskDispatcher
	timeout       time.Duration
}

func NewStoryGenerator(logger outbound.LoggerPort, textGenerator outbound.TextGeneratorPort,
	workerPool outbound.TaskDispatcher, timeout time.Duration) inbound.StoryGeneratorPort {
	return &storyGenerator{
		logger:        logger,
		textGenerator: textGenerator,
		workerPool:    workerPool,
		timeout:       timeout,
	}
}

func (s *storyGenerator) Generate(ctx context.Context, req domain.StoryRequest) (domain.GeneratedStory, error) {
	prompt, err := BuildStoryPrompt(req)
	if err != nil {
		return domain.GeneratedStory{}, fmt.Errorf("failed to build story prompt: %w", err)
	}

	started := time.Now()
	raw, err := s.complete(ctx, prompt)
	if err != nil {
		return domain.GeneratedStory{}, &domain.ProviderCallError{Provider: s.textGenerator.Name(), Err: err}
	}

	s.logger.DebugWithFields("Provider replied", map[string]interface{}{
		"provider":    s.textGenerator.Name(),
		"duration_ms": time.Since(started).Milliseconds(),
		"reply_bytes": len(raw),
	})

	story, err := ParseStoryReply(raw)
	if err != nil {
		s.logger.WarnWithFields("Provider reply could not be parsed", map[string]interface{}{
			"provider": s.textGenerator.Name(),
			"error":    err.Error(),
		})
		return domain.GeneratedStory{}, err
	}

	return story, nil
}

// complete runs the provider call on the worker pool and waits for it or for
// the generation deadline, whichever comes first.
func (s *storyGenerator) complete(ctx context.Context, prompt outbound.Prompt) (string, error) {
	newCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resultCh := make(chan completionResult, 1)
	err := s.workerPool.Submit(func() {
		text, err := s.textGenerator.Complete(newCtx, prompt)
		resultCh <- completionResult{text: text, err: err}
	})
	if err != nil {
		return "", fmt.Errorf("failed to submit provider call: %w", err)
	}

	select {
	case res := <-resultCh:
		return res.text, res.err
	case <-newCtx.Done():
		return "", newCtx.Err()
	}
}
