package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/minutes"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcript"
)

// ErrNoCues is returned when no cues were recognized in the input file.
// There is nothing to chunk, so the run terminates before any
// summarization request is made.
var ErrNoCues = errors.New("no cues found in file")

// Process orchestrates the whole minutes pipeline for one transcript:
// parse, merge, chunk, concurrent summarization, aggregation, and
// artifact writing.
func (g *implGenerator) Process(ctx context.Context, vttPath string) (*minutes.Document, error) {
	startTime := time.Now()

	g.logger.Info(ctx, "Generating minutes for: %s", vttPath)

	data, err := os.ReadFile(vttPath)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	raw := strings.ToValidUTF8(string(data), "")

	segs := transcript.ParseVTT(raw)
	merged := transcript.MergeAdjacent(segs, g.cfg.Pipeline.MergeGapSeconds)
	if len(merged) == 0 {
		return nil, fmt.Errorf("%s: %w", vttPath, ErrNoCues)
	}
	g.logger.Info(ctx, "Parsed %d cues, %d after merging", len(segs), len(merged))

	firstStart := merged[0].Start.Seconds()
	lastEnd := merged[len(merged)-1].End.Seconds()

	windows, err := transcript.Chunk(merged, g.cfg.Pipeline.WindowSeconds, g.cfg.Pipeline.OverlapSeconds)
	if err != nil {
		return nil, fmt.Errorf("chunk transcript: %w", err)
	}
	g.logger.Info(ctx, "Summarizing %d windows (max %d concurrent)", len(windows), g.cfg.Performance.MaxConcurrent)

	topics, errs := g.extractTopics(ctx, windows)
	if len(errs) > 0 {
		g.logger.Warn(ctx, "%d of %d windows failed to summarize", len(errs), len(windows))
	}

	title := g.cfg.Meeting.Title
	if title == "" {
		title = baseName(vttPath)
	}

	doc := &minutes.Document{
		MeetingTitle: title,
		DurationMin:  minutes.DurationMinutes(firstStart, lastEnd),
		Topics:       topics,
		EmailDraft:   minutes.EmailDraft(title, topics, errs),
		Errors:       errs,
	}

	if err := g.writeArtifacts(ctx, doc, vttPath); err != nil {
		return nil, err
	}

	g.logger.Info(ctx, "Minutes generated: %d topics, %d errors, took %s",
		len(doc.Topics), len(doc.Errors), time.Since(startTime))
	return doc, nil
}

// extractTopics fans out one summarization request per window through the
// semaphore and waits for all of them. Topics and errors are collected in
// window order; a failing window contributes no topics and never cancels
// its siblings.
func (g *implGenerator) extractTopics(ctx context.Context, windows []transcript.Window) ([]minutes.Topic, []string) {
	results := make([][]minutes.Topic, len(windows))
	failures := make([]string, len(windows))

	sem := newSemaphore(g.cfg.Performance.MaxConcurrent)
	var wg sync.WaitGroup
	for i, w := range windows {
		wg.Add(1)
		go func(i int, w transcript.Window) {
			defer wg.Done()

			if err := sem.acquire(ctx); err != nil {
				failures[i] = err.Error()
				return
			}
			defer sem.release()

			topics, err := g.summ.Summarize(ctx, transcript.FormatWindow(w))
			if err != nil {
				g.logger.Error(ctx, "Window %d [%s-%s] failed: %v",
					i+1, transcript.FormatSeconds(w.Start), transcript.FormatSeconds(w.End), err)
				failures[i] = err.Error()
				return
			}
			results[i] = topics
		}(i, w)
	}
	wg.Wait()

	topics := make([]minutes.Topic, 0)
	errs := make([]string, 0)
	for i := range windows {
		topics = append(topics, results[i]...)
		if failures[i] != "" {
			errs = append(errs, failures[i])
		}
	}
	return topics, errs
}

func baseName(vttPath string) string {
	name := filepath.Base(vttPath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
