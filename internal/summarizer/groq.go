package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/minutes"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// groqBackend talks to Groq's OpenAI-compatible chat completion API with
// JSON response mode. Rotates API keys on rate-limit responses.
type groqBackend struct {
	clients []*openai.Client
	model   string
	timeout time.Duration
	logger  logger.Logger

	mu      sync.Mutex
	current int
}

func newGroq(apiKeys []string, model string, timeout time.Duration, log logger.Logger) *groqBackend {
	clients := make([]*openai.Client, len(apiKeys))
	for i, key := range apiKeys {
		cfg := openai.DefaultConfig(key)
		cfg.BaseURL = groqBaseURL
		clients[i] = openai.NewClientWithConfig(cfg)
	}
	return &groqBackend{
		clients: clients,
		model:   model,
		timeout: timeout,
		logger:  log,
	}
}

func (g *groqBackend) Summarize(ctx context.Context, chunkText string) ([]minutes.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "Return ONLY valid JSON."},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(chunkText)},
		},
	}

	var lastErr error
	for range g.clients {
		client, slot := g.pickClient()

		resp, err := client.CreateChatCompletion(ctx, req)
		if err != nil {
			var apiErr *openai.APIError
			if errors.As(err, &apiErr) {
				if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
					g.logger.Warn(ctx, "Groq key %d rate limited, rotating...", slot+1)
					lastErr = err
					g.rotateFrom(slot)
					continue
				}
				return nil, fmt.Errorf("HTTP %d: %s: %s",
					apiErr.HTTPStatusCode, strings.ToUpper(errType(apiErr)), apiErr.Message)
			}
			return nil, fmt.Errorf("Network error calling Groq: %v", err)
		}

		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("empty response from Groq")
		}
		return parseTopics(resp.Choices[0].Message.Content)
	}

	return nil, fmt.Errorf("all API keys exhausted: %v", lastErr)
}

func (g *groqBackend) pickClient() (*openai.Client, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.clients[g.current], g.current
}

// rotateFrom advances past slot unless another request already did.
func (g *groqBackend) rotateFrom(slot int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == slot {
		g.current = (g.current + 1) % len(g.clients)
	}
}

func errType(apiErr *openai.APIError) string {
	if apiErr.Type == "" {
		return "error"
	}
	return apiErr.Type
}
