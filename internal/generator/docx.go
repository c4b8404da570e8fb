package generator

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/minutes-flow/internal/minutes"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// writeMinutesDocx renders the minutes document as a styled docx file.
func writeMinutesDocx(m *minutes.Document, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), "Minutes of Meeting – "+m.MeetingTitle, true, 16)
	addStyledRun(doc.AddParagraph(""), fmt.Sprintf("Duration: %d min", m.DurationMin), false, fontSize)
	doc.AddParagraph("")

	if len(m.Topics) == 0 {
		addStyledRun(doc.AddParagraph(""), "No topics were extracted.", false, fontSize)
	}
	for i, t := range m.Topics {
		title := t.Title
		if title == "" {
			title = "(untitled)"
		}
		addStyledRun(doc.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, title), true, 15)

		for _, d := range t.Discussion {
			addStyledRun(doc.AddParagraph(""), "• "+d, false, fontSize)
		}
		if len(t.Actions) > 0 {
			addStyledRun(doc.AddParagraph(""), "Actions", true, fontSize)
			for _, a := range t.Actions {
				owner := a.Owner
				if owner == "" {
					owner = "Unassigned"
				}
				due := a.Due
				if due == "" {
					due = "-"
				}
				addStyledRun(doc.AddParagraph(""),
					fmt.Sprintf("• %s — Owner: %s (Due: %s)", a.Task, owner, due), false, fontSize)
			}
		}
		doc.AddParagraph("")
	}

	if len(m.Errors) > 0 {
		addStyledRun(doc.AddParagraph(""), "Issues", true, 15)
		for _, e := range m.Errors {
			addStyledRun(doc.AddParagraph(""), "• "+e, false, fontSize)
		}
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
