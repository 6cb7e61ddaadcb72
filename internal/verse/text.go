package verse

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText decodes HTML entities, drops tags and collapses whitespace.
// Feeds sometimes double-escape their markup, so a second pass runs when the
// first one still leaves something that looks like a tag.
func PlainText(s string) string {
	out := textContent(s)
	if strings.Contains(out, "<") && strings.Contains(out, ">") {
		out = textContent(out)
	}
	return strings.Join(strings.Fields(out), " ")
}

func textContent(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way keep what was read.
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			// Block-level breaks keep words from running together.
			name, _ := z.TagName()
			switch string(name) {
			case "br", "p", "div", "li":
				b.WriteByte(' ')
			}
		}
	}
}
