package transcript

import (
	"regexp"
	"strings"
)

// cueTimingRe matches a cue-timing marker line such as
// "00:00:01.234 --> 00:00:03.456". Timestamps with wrong digit counts
// never match, so their cue is skipped silently.
var cueTimingRe = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2}\.\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2}\.\d{3})`)

// speakerRe matches a "Speaker: utterance" payload. The prefix counts as
// a speaker name only when it starts with an uppercase letter, is at most
// 41 characters, and contains only letters, digits, spaces, apostrophes,
// hyphens, periods or underscores.
var speakerRe = regexp.MustCompile(`^([A-Z][A-Za-z0-9_ .'\-]{0,40}):\s*(.*)$`)

// ParseVTT scans the raw text of a WebVTT file and returns one Segment
// per detected cue, in file order.
//
// The parser follows a skip-unknown-line policy: any line that is neither
// a cue-timing marker nor part of the current cue's payload (the WEBVTT
// header, NOTE blocks, cue identifiers, blank separators, arbitrary
// metadata) is skipped. This makes the parser tolerant of VTT dialect
// variation without an explicit header-recognition step.
func ParseVTT(raw string) []Segment {
	lines := strings.Split(raw, "\n")

	var segs []Segment
	i := 0
	for i < len(lines) {
		m := cueTimingRe.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			i++
			continue
		}

		// Collect payload: non-blank lines up to the next marker or EOF.
		j := i + 1
		var texts []string
		for j < len(lines) {
			line := strings.TrimSpace(lines[j])
			if line == "" || cueTimingRe.MatchString(line) {
				break
			}
			texts = append(texts, line)
			j++
		}

		text := strings.Join(texts, " ")
		speaker := ""
		if sm := speakerRe.FindStringSubmatch(text); sm != nil {
			speaker, text = sm[1], sm[2]
		}

		segs = append(segs, Segment{
			Start:   Timestamp(m[1]),
			End:     Timestamp(m[2]),
			Speaker: speaker,
			Text:    text,
		})
		i = j
	}

	return segs
}
