package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/minutes"
)

// geminiBackend sends windows to the Gemini API. Rotates API keys on
// 429 / quota errors.
type geminiBackend struct {
	apiKeys []string
	model   string
	timeout time.Duration
	logger  logger.Logger

	mu      sync.Mutex
	current int
}

func newGemini(apiKeys []string, model string, timeout time.Duration, log logger.Logger) *geminiBackend {
	return &geminiBackend{
		apiKeys: apiKeys,
		model:   model,
		timeout: timeout,
		logger:  log,
	}
}

func (g *geminiBackend) Summarize(ctx context.Context, chunkText string) ([]minutes.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := "Return ONLY valid JSON.\n\n" + buildPrompt(chunkText)

	var lastErr error
	for range g.apiKeys {
		key, slot := g.pickKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateFrom(slot)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", slot+1)
				lastErr = err
				g.rotateFrom(slot)
				continue
			}
			return nil, fmt.Errorf("Network error calling Gemini: %v", err)
		}

		if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
			return nil, fmt.Errorf("empty response from Gemini")
		}

		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return parseTopics(stripCodeFence(text))
	}

	return nil, fmt.Errorf("all API keys exhausted: %v", lastErr)
}

func (g *geminiBackend) pickKey() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.current], g.current
}

func (g *geminiBackend) rotateFrom(slot int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == slot {
		g.current = (g.current + 1) % len(g.apiKeys)
	}
}

// stripCodeFence removes a surrounding ```json fence; Gemini wraps JSON
// replies in one even when asked not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
