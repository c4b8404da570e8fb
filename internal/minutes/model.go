package minutes

import "math"

// Action is one follow-up task extracted from a discussion topic.
type Action struct {
	Task  string `json:"task"`
	Owner string `json:"owner"`
	Due   string `json:"due,omitempty"`
}

// Topic is one structured discussion topic returned by the summarizer.
type Topic struct {
	Title      string   `json:"title"`
	Discussion []string `json:"discussion"`
	Actions    []Action `json:"actions"`
}

// Document is the downloadable minutes artifact for one meeting.
type Document struct {
	MeetingTitle string   `json:"meeting_title"`
	DurationMin  int      `json:"duration_min"`
	Topics       []Topic  `json:"topics"`
	EmailDraft   string   `json:"email_draft"`
	Errors       []string `json:"errors"`
}

// DurationMinutes computes the meeting duration in whole minutes from the
// first segment's start and the last segment's end, both in seconds.
func DurationMinutes(firstStart, lastEnd float64) int {
	return int(math.Round((lastEnd - firstStart) / 60))
}
