package postconv

import (
	"strconv"
	"strings"

	"github.com/alnah/go-md2post/internal/richtext"
	"github.com/alnah/go-md2post/internal/token"
)

// list renders the list opened at start. Items are numbered from 1 whatever
// the source numbering; depth counts enclosing lists.
func (c *converter) list(start, depth int) (int, richtext.Document, error) {
	open := c.tokens[start]
	ordered := open.Type == token.OrderedListOpen
	closeType := open.Type.Close()

	var lines richtext.Document
	n := 1
	for i := start + 1; i < len(c.tokens); {
		switch c.tokens[i].Type {
		case closeType:
			return i + 1, lines, nil

		case token.ListItemOpen:
			next, item, err := c.listItem(i, c.listPrefix(ordered, n, depth), depth)
			if err != nil {
				return 0, nil, err
			}
			lines = append(lines, item...)
			n++
			i = next

		default:
			i++
		}
	}

	return 0, nil, malformed("unclosed %s at token %d", open.Type, start)
}

// listPrefix returns "N. " for ordered items and the bullet glyph otherwise,
// indented once per nesting level.
func (c *converter) listPrefix(ordered bool, n, depth int) string {
	marker := c.opts.Symbols.BulletGlyph + " "
	if ordered {
		marker = strconv.Itoa(n) + ". "
	}
	return strings.Repeat(c.opts.NestedIndent, depth) + marker
}

// listItem renders each paragraph of the item as one prefixed line. Nested
// lists are rendered in place with their own numbering.
func (c *converter) listItem(start int, prefix string, depth int) (int, richtext.Document, error) {
	var lines richtext.Document

	for i := start + 1; i < len(c.tokens); {
		switch c.tokens[i].Type {
		case token.ListItemClose:
			return i + 1, lines, nil

		case token.ParagraphOpen:
			inline, err := c.inlineRegion(i, token.ParagraphClose)
			if err != nil {
				return 0, nil, err
			}
			elems, err := c.inline(inline)
			if err != nil {
				return 0, nil, err
			}
			lines = append(lines, withPrefix(elems, prefix))
			i += 3

		case token.BulletListOpen, token.OrderedListOpen:
			next, nested, err := c.list(i, depth+1)
			if err != nil {
				return 0, nil, err
			}
			lines = append(lines, nested...)
			i = next

		default:
			i++
		}
	}

	return 0, nil, malformed("unclosed %s at token %d", token.ListItemOpen, start)
}

// withPrefix merges prefix into a leading text element, or inserts it as a
// text element of its own.
func withPrefix(elems []richtext.Element, prefix string) richtext.Line {
	if len(elems) > 0 && elems[0].Tag == richtext.TagText {
		line := make(richtext.Line, len(elems))
		copy(line, elems)
		line[0] = elems[0].WithText(prefix + elems[0].Text)
		return line
	}

	line := make(richtext.Line, 0, len(elems)+1)
	line = append(line, richtext.NewText(prefix))
	return append(line, elems...)
}
