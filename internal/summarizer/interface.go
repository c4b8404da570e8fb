package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/minutes"
)

// Summarizer converts one formatted transcript window into structured
// discussion topics. An empty topic list with a nil error is a valid
// result; a non-nil error describes why no structure was produced and is
// collected by the caller rather than aborting the run.
type Summarizer interface {
	Summarize(ctx context.Context, chunkText string) ([]minutes.Topic, error)
}
