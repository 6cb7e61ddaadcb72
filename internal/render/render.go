package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/verse/internal/verse"
)

const maxWidth = 80

// Verse formats a record for the terminal. source is the display name of
// the provider that answered.
func Verse(rec verse.Record, source string) string {
	body := bodyStyle.Width(maxWidth).Render(rec.Body)
	lines := []string{
		referenceStyle.Render(rec.Reference),
		body,
		courtesyStyle.Render("Verse courtesy: " + source),
	}
	return trimPadding(lipgloss.JoinVertical(lipgloss.Left, lines...)) + "\n"
}

func Snippet(s string) string { return snippetStyle.Render(s) }

func Success(s string) string { return successStyle.Render(s) }

func Notice(s string) string { return noticeStyle.Render(s) }

// trimPadding drops the trailing spaces lipgloss pads wrapped lines with.
func trimPadding(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
