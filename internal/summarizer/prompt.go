package summarizer

import (
	"encoding/json"
	"fmt"

	"github.com/nguyentantai21042004/minutes-flow/internal/minutes"
)

const promptTemplate = `You are a professional business meeting summarizer.

Your goal is to generate structured minutes of meeting in detailed yet clear form.

Return JSON in this structure:
{
  "topics": [
    {
      "title": "string",
      "discussion": [
        "Detailed bullet capturing what was said, the reasoning, decisions, and relevant context."
      ],
      "actions": [
        {"task": "short imperative action <= 20 words", "owner": "person/team or Unassigned", "due": "date if given or null"}
      ]
    }
  ]
}

Guidelines:
- Discussion bullets should be rich and explanatory (who said what, why, context, decisions).
- Actions must be crisp, imperative, and omit rationale (keep rationale in discussion).
- Only include owners/dates when explicitly stated; otherwise owner="Unassigned", due=null.
- Do not invent facts.

Transcript:
%s
`

func buildPrompt(chunkText string) string {
	return fmt.Sprintf(promptTemplate, chunkText)
}

type topicsEnvelope struct {
	Topics []minutes.Topic `json:"topics"`
}

// parseTopics decodes the model's JSON reply. Parsing is best-effort: the
// envelope shape is required but missing fields decode to their zero
// values, and a valid reply with zero topics is not an error.
func parseTopics(raw string) ([]minutes.Topic, error) {
	var env topicsEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, fmt.Errorf("Parse error: %v (model returned non-JSON?)", err)
	}
	return env.Topics, nil
}
