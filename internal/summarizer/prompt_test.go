package summarizer

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("[00:00:01.000] Alice: hello")

	if !strings.Contains(prompt, "[00:00:01.000] Alice: hello") {
		t.Error("prompt must embed the transcript block")
	}
	if !strings.Contains(prompt, `"topics"`) {
		t.Error("prompt must describe the topics JSON shape")
	}
}

func TestParseTopics(t *testing.T) {
	raw := `{
	  "topics": [
	    {
	      "title": "Roadmap",
	      "discussion": ["Alice proposed Q3."],
	      "actions": [{"task": "Draft plan", "owner": "Alice", "due": "2026-09-15"}]
	    },
	    {"title": "AOB", "discussion": [], "actions": []}
	  ]
	}`

	topics, err := parseTopics(raw)
	if err != nil {
		t.Fatalf("parseTopics() error = %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("got %d topics, want 2", len(topics))
	}
	if topics[0].Title != "Roadmap" || len(topics[0].Actions) != 1 {
		t.Errorf("topic 0 = %+v", topics[0])
	}
	if topics[0].Actions[0].Due != "2026-09-15" {
		t.Errorf("due = %q, want 2026-09-15", topics[0].Actions[0].Due)
	}
}

func TestParseTopicsTolerance(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"zero topics", `{"topics": []}`, 0, false},
		{"missing topics key", `{}`, 0, false},
		{"null due", `{"topics":[{"title":"T","discussion":["d"],"actions":[{"task":"t","owner":"Unassigned","due":null}]}]}`, 1, false},
		{"non-JSON", "Sure! Here are the minutes:", 0, true},
		{"truncated", `{"topics": [{"title": "Road`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topics, err := parseTopics(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTopics() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(topics) != tt.want {
				t.Errorf("got %d topics, want %d", len(topics), tt.want)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"topics": []}`, `{"topics": []}`},
		{"json fence", "```json\n{\"topics\": []}\n```", `{"topics": []}`},
		{"plain fence", "```\n{\"topics\": []}\n```", `{"topics": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFence(tt.in); got != tt.want {
				t.Errorf("stripCodeFence() = %q, want %q", got, tt.want)
			}
		})
	}
}
