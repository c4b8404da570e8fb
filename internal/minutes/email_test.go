package minutes

import (
	"strings"
	"testing"
)

func TestEmailDraftWithTopics(t *testing.T) {
	topics := []Topic{
		{
			Title:      "Roadmap",
			Discussion: []string{"Alice proposed shipping in Q3.", "Bob raised staffing concerns."},
			Actions: []Action{
				{Task: "Draft Q3 plan", Owner: "Alice", Due: "2026-09-15"},
				{Task: "Review headcount", Owner: ""},
			},
		},
		{Title: "", Discussion: []string{"Misc notes."}},
	}

	draft := EmailDraft("Project Discussion", topics, nil)

	for _, want := range []string{
		"Subject: Minutes of Meeting – Project Discussion",
		"**Key Discussion Points, Actions & Decisions -**",
		"**Roadmap**",
		"*   Alice proposed shipping in Q3.",
		"*   **[Action] Draft Q3 plan — Owner: Alice, Due: 2026-09-15.**",
		"*   **[Action] Review headcount — Owner: Unassigned, Due: -.**",
		"**(untitled)**",
		"Regards,\nAutomated MoM Assistant",
	} {
		if !strings.Contains(draft, want) {
			t.Errorf("draft missing %q\n%s", want, draft)
		}
	}
}

func TestEmailDraftFallback(t *testing.T) {
	tests := []struct {
		name       string
		errs       []string
		wantReason string
	}{
		{"first error named", []string{"HTTP 500: SERVER_ERROR: upstream died", "later"}, "HTTP 500: SERVER_ERROR: upstream died"},
		{"generic note without errors", nil, "No extractable content detected or input too large."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := EmailDraft("Sync", nil, tt.errs)
			want := "_Note: No topics could be extracted. Reason: " + tt.wantReason + "_"
			if !strings.Contains(draft, want) {
				t.Errorf("draft missing %q\n%s", want, draft)
			}
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		want       int
	}{
		{"exact hour", 0, 3600, 60},
		{"rounds up", 0, 630, 11},
		{"rounds down", 0, 620, 10},
		{"offset start", 120, 720, 10},
		{"zero length", 50, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationMinutes(tt.start, tt.end); got != tt.want {
				t.Errorf("DurationMinutes(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestReviewMarkdown(t *testing.T) {
	doc := &Document{
		MeetingTitle: "Sync",
		DurationMin:  30,
		Topics: []Topic{
			{Title: "Budget", Discussion: []string{"Numbers reviewed."}, Actions: []Action{{Task: "Send sheet", Owner: "Bob"}}},
		},
		EmailDraft: "Subject: Minutes of Meeting – Sync",
		Errors:     []string{"HTTP 429: RATE_LIMIT: slow down"},
	}

	md := ReviewMarkdown(doc)
	for _, want := range []string{
		"# Minutes of Meeting – Sync",
		"Duration: 30 min",
		"### 1. Budget",
		"- Numbers reviewed.",
		"- **Send sheet** — Owner: *Bob* (Due: -)",
		"## Issues",
		"- HTTP 429: RATE_LIMIT: slow down",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("review missing %q", want)
		}
	}
}
