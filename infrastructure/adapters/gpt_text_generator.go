package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/deanjroach84/DreamTales/application/ports/outbound"
	"github.com/deanjroach84/DreamTales/config"
	"github.com/donovanhide/eventsource"
	"io"
	"net/http"
	"strings"
)

const DoneSignal = "[DONE]"

var errStreamEnded = errors.New("completion stream ended before the done signal")

type chatGptRequest struct {
	Stream   bool             `json:"stream"`
	Model    string           `json:"model"`
	Messages []chatGptMessage `json:"messages"`
}

type chatGptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatGptChunkBody struct {
	Choices []struct {
		Index int `json:"index"`
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

type chatGptResponseBody struct {
	Choices []struct {
		Index   int            `json:"index"`
		Message chatGptMessage `json:"message"`
	} `json:"choices"`
}

type gptTextGenerator struct {
	logger         outbound.LoggerPort
	gptConfig      *config.GptConfig
	contentFetcher ContentFetcher
}

func NewGptTextGenerator(gptConfig *config.GptConfig, contentFetcher ContentFetcher, logger outbound.LoggerPort) outbound.TextGeneratorPort {
	return &gptTextGenerator{
		logger:         logger,
		gptConfig:      gptConfig,
		contentFetcher: contentFetcher,
	}
}

func (g *gptTextGenerator) Name() string {
	return "gpt:" + g.gptConfig.Model
}

func (g *gptTextGenerator) Complete(ctx context.Context, prompt outbound.Prompt) (string, error) {
	req, err := g.createRequest(ctx, prompt)
	if err != nil {
		return "", err
	}

	if g.gptConfig.Stream {
		return g.completeStreaming(ctx, req)
	}
	return g.completeOnce(req)
}

// completeStreaming collects the delta chunks of a server-sent completion
// stream into the full reply text. The body is decoded on the calling
// goroutine; cancelling ctx aborts the pending read.
func (g *gptTextGenerator) completeStreaming(ctx context.Context, req *http.Request) (string, error) {
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	body, err := g.contentFetcher.OpenStream(req)
	if err != nil {
		g.logger.Error(err, "Failed to open completion stream")
		return "", err
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			g.logger.Error(err, "Failed to close completion stream")
		}
	}(body)

	decoder := eventsource.NewDecoder(body)
	var builder strings.Builder
	for {
		ev, err := decoder.Decode()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return "", errStreamEnded
			}
			g.logger.Error(err, "Error occurred during completion stream")
			return "", fmt.Errorf("completion stream failed: %w", err)
		}

		data := ev.Data()
		if data == "" {
			continue
		}
		if data == DoneSignal {
			return builder.String(), nil
		}
		payload, err := g.extractDelta(data)
		if err != nil {
			return "", err
		}
		builder.WriteString(payload)
	}
}

func (g *gptTextGenerator) completeOnce(req *http.Request) (string, error) {
	payload, err := g.contentFetcher.FetchContent(req)
	if err != nil {
		return "", err
	}

	var body chatGptResponseBody
	if err := json.Unmarshal(payload, &body); err != nil {
		g.logger.Error(err, "Failed to unmarshal completion response")
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(body.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}

	return body.Choices[0].Message.Content, nil
}

func (g *gptTextGenerator) extractDelta(data string) (string, error) {
	var chunkBody chatGptChunkBody
	err := json.Unmarshal([]byte(data), &chunkBody)
	if err != nil {
		g.logger.Error(err, "Failed to unmarshal event data")
		return "", fmt.Errorf("failed to decode completion chunk: %w", err)
	}
	if len(chunkBody.Choices) == 0 {
		return "", nil
	}

	return chunkBody.Choices[0].Delta.Content, nil
}

func (g *gptTextGenerator) createRequest(ctx context.Context, prompt outbound.Prompt) (*http.Request, error) {
	messages := make([]chatGptMessage, 0, 2)
	if prompt.System != "" {
		messages = append(messages, chatGptMessage{Role: "system", Content: prompt.System})
	}
	messages = append(messages, chatGptMessage{Role: "user", Content: prompt.User})

	promptReq := chatGptRequest{
		Stream:   g.gptConfig.Stream,
		Model:    g.gptConfig.Model,
		Messages: messages,
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		g.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.gptConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+g.gptConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
