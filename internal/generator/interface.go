package generator

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/minutes"
)

// Generator turns one VTT transcript file into minutes artifacts.
type Generator interface {
	Process(ctx context.Context, vttPath string) (*minutes.Document, error)
}
