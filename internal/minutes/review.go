package minutes

import (
	"fmt"
	"strings"
)

// ReviewMarkdown renders the minutes document as a markdown review file:
// numbered topics with discussion bullets and actions, the email draft,
// and any collected summarization errors.
func ReviewMarkdown(doc *Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Minutes of Meeting – %s\n\n", doc.MeetingTitle)
	fmt.Fprintf(&b, "Duration: %d min\n\n", doc.DurationMin)

	b.WriteString("## Structured Summary\n\n")
	if len(doc.Topics) == 0 {
		b.WriteString("No topics were extracted. See error details below.\n\n")
	}
	for i, t := range doc.Topics {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, orUntitled(t.Title))
		for _, d := range t.Discussion {
			fmt.Fprintf(&b, "- %s\n", d)
		}
		if len(t.Actions) > 0 {
			b.WriteString("\n**Actions**\n\n")
			for _, a := range t.Actions {
				fmt.Fprintf(&b, "- **%s** — Owner: *%s* (Due: %s)\n",
					a.Task, orUnassigned(a.Owner), orDash(a.Due))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## Email Draft\n\n```\n")
	b.WriteString(doc.EmailDraft)
	b.WriteString("\n```\n")

	if len(doc.Errors) > 0 {
		b.WriteString("\n## Issues\n\n")
		for _, e := range doc.Errors {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}

	return b.String()
}
