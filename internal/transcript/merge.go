package transcript

// DefaultGapSeconds is the default maximum silence between two
// same-speaker segments for them to merge.
const DefaultGapSeconds = 3

// MergeAdjacent coalesces consecutive same-speaker segments separated by
// a gap of at most gapSeconds into single segments. The retained
// segment's end is extended and the texts are space-joined. Merging
// chains along a same-speaker run but never reaches across a
// non-matching intermediate segment, and order is preserved.
//
// A negative gap (overlapping cues) never merges; only gaps in
// [0, gapSeconds] qualify.
func MergeAdjacent(segs []Segment, gapSeconds float64) []Segment {
	var merged []Segment
	for _, s := range segs {
		if len(merged) > 0 {
			last := &merged[len(merged)-1]
			if s.Speaker == last.Speaker {
				gap := s.Start.Seconds() - last.End.Seconds()
				if gap >= 0 && gap <= gapSeconds {
					last.End = s.End
					last.Text += " " + s.Text
					continue
				}
			}
		}
		merged = append(merged, s)
	}
	return merged
}
