package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/minutes-flow/internal/minutes"
)

// writeArtifacts renders the minutes document into the output folder:
// a JSON document, a markdown review file, and a styled DOCX.
func (g *implGenerator) writeArtifacts(ctx context.Context, doc *minutes.Document, vttPath string) error {
	if err := os.MkdirAll(g.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	base := filepath.Join(g.cfg.Paths.Output, baseName(vttPath))

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal minutes: %w", err)
	}
	jsonPath := base + ".minutes.json"
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return fmt.Errorf("write minutes JSON: %w", err)
	}
	g.logger.Info(ctx, "Wrote %s", jsonPath)

	mdPath := base + ".minutes.md"
	if err := os.WriteFile(mdPath, []byte(minutes.ReviewMarkdown(doc)), 0644); err != nil {
		return fmt.Errorf("write review markdown: %w", err)
	}
	g.logger.Info(ctx, "Wrote %s", mdPath)

	docxPath := base + ".minutes.docx"
	if err := writeMinutesDocx(doc, docxPath); err != nil {
		// The DOCX is a convenience copy of the review file; its failure
		// does not invalidate the run.
		g.logger.Warn(ctx, "Failed to write DOCX %s: %v", docxPath, err)
	} else {
		g.logger.Info(ctx, "Wrote %s", docxPath)
	}

	return nil
}
