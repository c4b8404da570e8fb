package summarizer

import (
	"fmt"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

// New creates the Summarizer backend selected by configuration.
func New(cfg config.SummarizerConfig, log logger.Logger) (Summarizer, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("no API keys configured for %s backend", cfg.Backend)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	switch cfg.Backend {
	case "groq":
		return newGroq(cfg.APIKeys, cfg.Model, timeout, log), nil
	case "gemini":
		return newGemini(cfg.APIKeys, cfg.Model, timeout, log), nil
	default:
		return nil, fmt.Errorf("unknown summarizer backend %q", cfg.Backend)
	}
}
