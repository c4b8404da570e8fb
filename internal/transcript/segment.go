package transcript

// Segment is one unit of spoken content: a cue as parsed from the VTT
// file, or the result of merging consecutive same-speaker cues.
// Speaker is empty when the cue text did not match the "Name: utterance"
// convention.
type Segment struct {
	Start   Timestamp
	End     Timestamp
	Speaker string
	Text    string
}
