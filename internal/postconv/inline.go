package postconv

import (
	"strings"

	"github.com/alnah/go-md2post/internal/richtext"
	"github.com/alnah/go-md2post/internal/token"
)

// lineBreak is the text a soft or hard break turns into. Paragraphs re-flow on
// it; other regions keep it as is.
const lineBreak = "\n"

// spanStyles maps styled-span openers to the style they apply.
var spanStyles = map[token.Type]richtext.Style{
	token.StrongOpen: richtext.Bold,
	token.EmOpen:     richtext.Italic,
	token.StrikeOpen: richtext.LineThrough,
}

// inline converts the children of an inline container. It never returns an
// empty slice.
func (c *converter) inline(container token.Token) ([]richtext.Element, error) {
	children := container.Children
	if len(children) == 0 {
		return []richtext.Element{richtext.NewText(c.opts.Symbols.EmptyText)}, nil
	}

	var elems []richtext.Element
	for i := 0; i < len(children); {
		child := children[i]

		switch child.Type {
		case token.Text:
			elems = append(elems, richtext.NewText(child.Content))
			i++

		case token.CodeInline:
			elems = append(elems, richtext.NewText(child.Content, richtext.Code))
			i++

		case token.StrongOpen, token.EmOpen, token.StrikeOpen:
			next, e, err := styledSpan(children, i)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			i = next

		case token.LinkOpen:
			next, e, err := c.link(children, i)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			i = next

		case token.SoftBreak, token.HardBreak:
			elems = append(elems, richtext.NewText(lineBreak))
			i++

		default:
			i++
		}
	}

	if len(elems) == 0 {
		return []richtext.Element{richtext.NewText(c.opts.Symbols.EmptyText)}, nil
	}
	return elems, nil
}

// styledSpan flattens the span opened at start into one text element carrying
// the span's style. Literal text and code leaves up to the first close of the
// same kind are concatenated; nested span markers are skipped, so their
// styles are lost.
func styledSpan(children []token.Token, start int) (int, richtext.Element, error) {
	open := children[start].Type
	closeType := open.Close()

	var sb strings.Builder
	i := start + 1
	for ; i < len(children) && children[i].Type != closeType; i++ {
		switch children[i].Type {
		case token.Text, token.CodeInline:
			sb.WriteString(children[i].Content)
		}
	}
	if i >= len(children) {
		return 0, richtext.Element{}, malformed("unclosed %s at inline token %d", open, start)
	}

	return i + 1, richtext.NewText(sb.String(), spanStyles[open]), nil
}

// link converts the link opened at start. Without text leaves the href
// doubles as the display text.
func (c *converter) link(children []token.Token, start int) (int, richtext.Element, error) {
	href, ok := children[start].AttrGet("href")
	if !ok {
		href = c.opts.Symbols.EmptyHref
	}

	var sb strings.Builder
	i := start + 1
	for ; i < len(children) && children[i].Type != token.LinkClose; i++ {
		if children[i].Type == token.Text {
			sb.WriteString(children[i].Content)
		}
	}
	if i >= len(children) {
		return 0, richtext.Element{}, malformed("unclosed %s at inline token %d", token.LinkOpen, start)
	}

	text := sb.String()
	if text == "" {
		text = href
	}
	return i + 1, richtext.NewLink(text, href), nil
}
