package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/generator"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/watcher"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Minutes of Meeting Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Summarizer: %s (%s)", cfg.Summarizer.Backend, cfg.Summarizer.Model)
	log.Info(ctx, "Windows: %vs with %vs overlap, merge gap %vs",
		cfg.Pipeline.WindowSeconds, cfg.Pipeline.OverlapSeconds, cfg.Pipeline.MergeGapSeconds)
	log.Info(ctx, "Max concurrent requests: %d", cfg.Performance.MaxConcurrent)

	summ, err := summarizer.New(cfg.Summarizer, log)
	if err != nil {
		log.Error(ctx, "Failed to create summarizer: %v", err)
		os.Exit(1)
	}
	gen := generator.New(cfg, summ, log)

	// With file arguments, process them one-shot; otherwise watch the
	// input directory for dropped transcripts.
	if files := flag.Args(); len(files) > 0 {
		failed := 0
		for _, f := range files {
			if _, err := gen.Process(ctx, f); err != nil {
				log.Error(ctx, "%v", err)
				failed++
			}
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		log.Error(ctx, "Failed to create input directory: %v", err)
		os.Exit(1)
	}

	handler := func(ctx context.Context, filePath string) error {
		_, err := gen.Process(ctx, filePath)
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for .vtt transcripts", cfg.Paths.Input)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	log.Info(ctx, "Pipeline stopped")
}
