package richtext

import "strings"

// ruleText is the plain-text rendering of a horizontal rule.
const ruleText = "---"

// PlainText renders the line without markup. Links render as "text (href)"
// unless the text already is the href.
func (l Line) PlainText() string {
	var sb strings.Builder
	for _, e := range l {
		switch e.Tag {
		case TagLink:
			sb.WriteString(e.Text)
			if e.Href != "" && e.Href != e.Text {
				sb.WriteString(" (")
				sb.WriteString(e.Href)
				sb.WriteString(")")
			}
		case TagCodeBlock:
			sb.WriteString("```")
			sb.WriteString(e.Language)
			sb.WriteString("\n")
			sb.WriteString(e.Text)
			sb.WriteString("\n```")
		case TagRule:
			sb.WriteString(ruleText)
		default:
			sb.WriteString(e.Text)
		}
	}
	return sb.String()
}

// IsCodeBlock reports whether the line is a single code block, which
// renderers must not re-wrap.
func (l Line) IsCodeBlock() bool {
	return len(l) == 1 && l[0].Tag == TagCodeBlock
}

// PlainText renders every line of the document, one per row.
func (d Document) PlainText() string {
	rows := make([]string, len(d))
	for i, line := range d {
		rows[i] = line.PlainText()
	}
	return strings.Join(rows, "\n")
}
