package generator

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
)

type implGenerator struct {
	cfg    *config.Config
	summ   summarizer.Summarizer
	logger logger.Logger
}

// New creates a new Generator instance
func New(cfg *config.Config, summ summarizer.Summarizer, log logger.Logger) Generator {
	return &implGenerator{
		cfg:    cfg,
		summ:   summ,
		logger: log,
	}
}
