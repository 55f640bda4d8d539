// Package postconv turns a flat markdown token stream into post lines.
//
// The converter walks the stream with a single cursor. Each block handler
// consumes its own region, including the matching close token, and returns the
// index at which the caller resumes. Inline content is handled by one walker
// per inline container.
package postconv

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2post/internal/richtext"
	"github.com/alnah/go-md2post/internal/token"
)

// ErrMalformedInput indicates the token stream violates the open/close
// pairing contract or runs past its bounds.
var ErrMalformedInput = errors.New("malformed token stream")

// Symbols holds the literals the converter falls back to.
type Symbols struct {
	BulletGlyph   string // prefix glyph of unordered list items
	EmptyText     string // text of the placeholder element for empty regions
	EmptyHref     string // href of links without a destination
	EmptyLanguage string // language of code blocks without an info string
}

// DefaultSymbols returns the literals used by the chat client.
func DefaultSymbols() Symbols {
	return Symbols{
		BulletGlyph:   "•",
		EmptyText:     "",
		EmptyHref:     "",
		EmptyLanguage: "",
	}
}

// DefaultNestedIndent precedes list prefixes once per nesting level.
const DefaultNestedIndent = "  "

// Options configures a conversion.
type Options struct {
	Symbols      Symbols
	NestedIndent string
}

// DefaultOptions returns the default symbols and nested indent.
func DefaultOptions() Options {
	return Options{
		Symbols:      DefaultSymbols(),
		NestedIndent: DefaultNestedIndent,
	}
}

// Heading is one entry of the document outline.
type Heading struct {
	Level int    // 1-6, or 0 when the tag carries no usable level
	Text  string // plain text of the heading line
}

// Result is the outcome of a conversion.
type Result struct {
	Document richtext.Document
	Outline  []Heading
}

// converter holds the state of a single Convert call.
type converter struct {
	tokens  []token.Token
	opts    Options
	outline []Heading
}

// Convert produces the lines of tokens. The returned document is never empty.
// A stream violating the pairing contract yields ErrMalformedInput and no
// document.
func Convert(tokens []token.Token, opts Options) (*Result, error) {
	c := &converter{tokens: tokens, opts: opts}
	doc, err := c.blocks()
	if err != nil {
		return nil, err
	}
	return &Result{Document: doc, Outline: c.outline}, nil
}

// blocks is the top-level dispatcher over block tokens.
func (c *converter) blocks() (richtext.Document, error) {
	var lines richtext.Document

	for i := 0; i < len(c.tokens); {
		tok := c.tokens[i]

		switch tok.Type {
		case token.HeadingOpen:
			next, line, err := c.heading(i)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
			i = next

		case token.ParagraphOpen:
			next, paragraph, err := c.paragraph(i)
			if err != nil {
				return nil, err
			}
			lines = append(lines, paragraph...)
			i = next

		case token.BulletListOpen, token.OrderedListOpen:
			next, list, err := c.list(i, 0)
			if err != nil {
				return nil, err
			}
			lines = append(lines, list...)
			i = next

		case token.Fence, token.CodeBlock:
			lines = append(lines, c.codeBlock(tok))
			i++

		case token.HR:
			lines = append(lines, richtext.Line{richtext.NewRule()})
			i++

		default:
			i++
		}
	}

	if len(lines) == 0 {
		lines = richtext.Document{richtext.EmptyLine(c.opts.Symbols.EmptyText)}
	}
	return lines, nil
}

// inlineRegion returns the inline container following the block open token at
// start, after checking that the block is closed by want right behind it.
func (c *converter) inlineRegion(start int, want token.Type) (token.Token, error) {
	if start+2 >= len(c.tokens) {
		return token.Token{}, malformed("%s at token %d runs past end of stream", c.tokens[start].Type, start)
	}
	inline := c.tokens[start+1]
	if inline.Type != token.Inline {
		return token.Token{}, malformed("%s at token %d is followed by %s, want inline", c.tokens[start].Type, start, inline.Type)
	}
	if got := c.tokens[start+2].Type; got != want {
		return token.Token{}, malformed("%s at token %d is closed by %s, want %s", c.tokens[start].Type, start, got, want)
	}
	return inline, nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
