package transcript

import (
	"fmt"
	"strings"
)

// FormatWindow renders a window's segments as the line-oriented text
// block handed to the summarizer: one "[start] Speaker: text" line per
// segment, in item order. Segments without a detected speaker are
// attributed to "Unknown".
func FormatWindow(w Window) string {
	lines := make([]string, 0, len(w.Items))
	for _, s := range w.Items {
		speaker := s.Speaker
		if speaker == "" {
			speaker = "Unknown"
		}
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", s.Start, speaker, s.Text))
	}
	return strings.Join(lines, "\n")
}
