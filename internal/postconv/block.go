package postconv

import (
	"strconv"
	"strings"

	"github.com/alnah/go-md2post/internal/richtext"
	"github.com/alnah/go-md2post/internal/token"
)

// heading renders a heading as one bold line and records it in the outline.
func (c *converter) heading(start int) (int, richtext.Line, error) {
	inline, err := c.inlineRegion(start, token.HeadingClose)
	if err != nil {
		return 0, nil, err
	}

	elems, err := c.inline(inline)
	if err != nil {
		return 0, nil, err
	}

	line := make(richtext.Line, len(elems))
	for i, e := range elems {
		if e.Tag == richtext.TagText {
			e = e.WithStyle(richtext.Bold)
		}
		line[i] = e
	}

	c.outline = append(c.outline, Heading{
		Level: headingLevel(c.tokens[start].Tag),
		Text:  line.PlainText(),
	})

	return start + 3, line, nil
}

// headingLevel extracts N from an "hN" tag, returning 0 outside 1-6.
func headingLevel(tag string) int {
	if len(tag) < 2 || tag[0] != 'h' {
		return 0
	}
	level, err := strconv.Atoi(tag[1:])
	if err != nil || level < 1 || level > 6 {
		return 0
	}
	return level
}

// paragraph renders a paragraph, starting a new line at every break.
func (c *converter) paragraph(start int) (int, richtext.Document, error) {
	inline, err := c.inlineRegion(start, token.ParagraphClose)
	if err != nil {
		return 0, nil, err
	}

	elems, err := c.inline(inline)
	if err != nil {
		return 0, nil, err
	}

	lines := reflow(elems)
	if len(lines) == 0 {
		lines = richtext.Document{richtext.EmptyLine(c.opts.Symbols.EmptyText)}
	}
	return start + 3, lines, nil
}

// reflow splits text elements on "\n" and distributes the parts over lines.
// Empty parts are dropped, and so are lines left without elements.
func reflow(elems []richtext.Element) richtext.Document {
	var (
		lines   richtext.Document
		current richtext.Line
	)

	for _, e := range elems {
		if e.Tag != richtext.TagText || !strings.Contains(e.Text, "\n") {
			current = append(current, e)
			continue
		}

		parts := strings.Split(e.Text, "\n")
		for i, part := range parts {
			if part != "" {
				current = append(current, e.WithText(part))
			}
			if i < len(parts)-1 {
				if len(current) > 0 {
					lines = append(lines, current)
				}
				current = nil
			}
		}
	}

	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// codeBlock renders a fenced or indented code block.
func (c *converter) codeBlock(tok token.Token) richtext.Line {
	language := tok.Info
	if language == "" {
		language = c.opts.Symbols.EmptyLanguage
	}
	code := strings.TrimSuffix(tok.Content, "\n")
	return richtext.Line{richtext.NewCodeBlock(code, language)}
}
