package transcript

import (
	"fmt"
	"math"
)

// Defaults for window chunking: 6-minute windows keep each summarization
// request well inside token limits, with a 20-second overlap so content
// near a boundary is seen whole by at least one window.
const (
	DefaultWindowSeconds  = 360
	DefaultOverlapSeconds = 20
)

// Window is one slice of the meeting timeline, bounded in seconds since
// the start of the recording. Items holds the segments whose time range
// intersects [Start, End).
type Window struct {
	Start float64
	End   float64
	Items []Segment
}

// Chunk partitions merged segments (assumed sorted by start time) into
// overlapping windows covering the span from the first segment's start to
// the last segment's end. Each window is windowSeconds wide (the final one
// is clipped to the overall end) and successive window starts advance by
// windowSeconds-overlapSeconds. A segment belongs to a window iff
// seg.start < win.end && seg.end > win.start, so a segment straddling a
// boundary appears in both adjacent windows.
//
// overlapSeconds must be shorter than windowSeconds, otherwise the window
// start would not advance and chunking would never terminate.
func Chunk(segs []Segment, windowSeconds, overlapSeconds float64) ([]Window, error) {
	if windowSeconds <= 0 {
		return nil, fmt.Errorf("window duration must be positive, got %v", windowSeconds)
	}
	if overlapSeconds < 0 || overlapSeconds >= windowSeconds {
		return nil, fmt.Errorf("overlap %v must be in [0, window %v)", overlapSeconds, windowSeconds)
	}
	if len(segs) == 0 {
		return nil, nil
	}

	startAll := segs[0].Start.Seconds()
	endAll := segs[len(segs)-1].End.Seconds()

	var out []Window
	for cur := startAll; cur < endAll; cur += windowSeconds - overlapSeconds {
		wend := cur + windowSeconds
		var items []Segment
		for _, s := range segs {
			if s.Start.Seconds() < wend && s.End.Seconds() > cur {
				items = append(items, s)
			}
		}
		out = append(out, Window{Start: cur, End: math.Min(wend, endAll), Items: items})
	}

	return out, nil
}
