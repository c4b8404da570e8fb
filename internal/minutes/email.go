package minutes

import (
	"fmt"
	"strings"
)

// genericEmptyReason explains an empty result when no summarization error
// was collected either.
const genericEmptyReason = "No extractable content detected or input too large."

// EmailDraft composes the plain-text email draft for the meeting minutes.
// Every topic's discussion bullets and actions are embedded; when no
// topics were extracted the draft instead carries a note naming the first
// collected error, or a generic explanation if there is none.
func EmailDraft(title string, topics []Topic, errs []string) string {
	lines := []string{
		"Subject: Minutes of Meeting – " + title,
		"",
		"Please find the meeting minutes below:",
		"",
		"**Key Discussion Points, Actions & Decisions -**",
		"",
	}

	if len(topics) > 0 {
		for _, t := range topics {
			lines = append(lines, "**"+orUntitled(t.Title)+"**")
			for _, d := range t.Discussion {
				lines = append(lines, "*   "+d)
			}
			for _, a := range t.Actions {
				lines = append(lines, fmt.Sprintf("*   **[Action] %s — Owner: %s, Due: %s.**",
					a.Task, orUnassigned(a.Owner), orDash(a.Due)))
			}
			lines = append(lines, "")
		}
	} else {
		reason := genericEmptyReason
		if len(errs) > 0 {
			reason = errs[0]
		}
		lines = append(lines, "_Note: No topics could be extracted. Reason: "+reason+"_", "")
	}

	lines = append(lines, "Regards,", "Automated MoM Assistant")
	return strings.Join(lines, "\n")
}

func orUntitled(title string) string {
	if title == "" {
		return "(untitled)"
	}
	return title
}

func orUnassigned(owner string) string {
	if owner == "" {
		return "Unassigned"
	}
	return owner
}

func orDash(due string) string {
	if due == "" {
		return "-"
	}
	return due
}
