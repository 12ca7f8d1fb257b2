package adapters

import (
	"context"
	"fmt"
	"github.com/deanjroach84/DreamTales/application/ports/outbound"
	"github.com/deanjroach84/DreamTales/config"
	"google.golang.org/genai"
)

type geminiTextGenerator struct {
	logger outbound.LoggerPort
	client *genai.Client
	model  string
}

func NewGeminiTextGenerator(ctx context.Context, geminiConfig *config.GeminiConfig, logger outbound.LoggerPort) (outbound.TextGeneratorPort, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      geminiConfig.ApiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: geminiConfig.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiTextGenerator{
		logger: logger,
		client: client,
		model:  geminiConfig.Model,
	}, nil
}

func (g *geminiTextGenerator) Name() string {
	return "gemini:" + g.model
}

func (g *geminiTextGenerator) Complete(ctx context.Context, prompt outbound.Prompt) (string, error) {
	var generateConfig *genai.GenerateContentConfig
	if prompt.System != "" {
		generateConfig = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt.User), generateConfig)
	if err != nil {
		g.logger.ErrorWithFields(err, "Gemini generate content failed", map[string]interface{}{
			"model": g.model,
		})
		return "", err
	}

	return result.Text(), nil
}
