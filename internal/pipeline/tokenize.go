package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-md2post/internal/token"
)

// ErrTokenize indicates the markdown could not be tokenized.
var ErrTokenize = errors.New("markdown tokenization failed")

// Tokenizer abstracts Markdown to token stream conversion.
type Tokenizer interface {
	Tokenize(ctx context.Context, content string) ([]token.Token, error)
}

// GoldmarkTokenizer parses Markdown with goldmark and flattens the syntax
// tree into a token stream.
type GoldmarkTokenizer struct {
	md goldmark.Markdown
}

// NewGoldmarkTokenizer creates a GoldmarkTokenizer with strikethrough support.
// With linkify, bare URLs and emails become links.
func NewGoldmarkTokenizer(linkify bool) *GoldmarkTokenizer {
	extensions := []goldmark.Extender{
		extension.Strikethrough, // ~~text~~
	}
	if linkify {
		extensions = append(extensions, extension.Linkify)
	}
	return &GoldmarkTokenizer{md: goldmark.New(goldmark.WithExtensions(extensions...))}
}

// Tokenize parses content and returns its flat token stream.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (t *GoldmarkTokenizer) Tokenize(ctx context.Context, content string) ([]token.Token, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		tokens []token.Token
		err    error
	}

	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrTokenize, r)}
			}
		}()

		source := []byte(content)
		doc := t.md.Parser().Parse(text.NewReader(source))
		f := &flattener{source: source}
		f.blockChildren(doc)
		done <- result{tokens: f.tokens}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.tokens, r.err
	}
}

// flattener emits block tokens in document order.
type flattener struct {
	source []byte
	tokens []token.Token
}

func (f *flattener) emit(tok token.Token) {
	f.tokens = append(f.tokens, tok)
}

func (f *flattener) blockChildren(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		f.block(c)
	}
}

// wrap emits open, the children of n as blocks, then the closing token.
func (f *flattener) wrap(n ast.Node, open token.Token) {
	f.emit(open)
	f.blockChildren(n)
	f.emit(token.Token{Type: open.Type.Close(), Tag: open.Tag})
}

// textBlock emits open, one inline container for the children of n, then
// the closing token.
func (f *flattener) textBlock(n ast.Node, open token.Token) {
	f.emit(open)
	f.emit(token.Token{Type: token.Inline, Children: f.inline(n)})
	f.emit(token.Token{Type: open.Type.Close(), Tag: open.Tag})
}

func (f *flattener) block(n ast.Node) {
	switch n := n.(type) {
	case *ast.Heading:
		f.textBlock(n, token.Token{Type: token.HeadingOpen, Tag: "h" + strconv.Itoa(n.Level)})

	case *ast.Paragraph, *ast.TextBlock:
		// Tight list items hold TextBlocks; they still read as paragraphs.
		f.textBlock(n, token.Token{Type: token.ParagraphOpen, Tag: "p"})

	case *ast.List:
		open := token.Token{Type: token.BulletListOpen, Tag: "ul"}
		if n.IsOrdered() {
			open = token.Token{Type: token.OrderedListOpen, Tag: "ol"}
			if n.Start != 1 {
				open.Attrs = []token.Attr{{Key: "start", Value: strconv.Itoa(n.Start)}}
			}
		}
		f.wrap(n, open)

	case *ast.ListItem:
		f.wrap(n, token.Token{Type: token.ListItemOpen, Tag: "li"})

	case *ast.Blockquote:
		f.wrap(n, token.Token{Type: token.BlockquoteOpen, Tag: "blockquote"})

	case *ast.FencedCodeBlock:
		var info string
		if n.Info != nil {
			info = strings.TrimSpace(string(unescape(n.Info.Segment.Value(f.source))))
		}
		f.emit(token.Token{Type: token.Fence, Tag: "code", Info: info, Content: f.lines(n)})

	case *ast.CodeBlock:
		f.emit(token.Token{Type: token.CodeBlock, Tag: "code", Content: f.lines(n)})

	case *ast.ThematicBreak:
		f.emit(token.Token{Type: token.HR, Tag: "hr"})

	case *ast.HTMLBlock:
		content := f.lines(n)
		if n.HasClosure() {
			content += string(n.ClosureLine.Value(f.source))
		}
		f.emit(token.Token{Type: token.HTMLBlock, Content: content})

	default:
		// Blocks from extensions this tokenizer does not model (tables, ...)
		// still contribute the blocks they contain.
		if n.Type() == ast.TypeBlock {
			f.blockChildren(n)
		}
	}
}

// lines concatenates the raw source lines of a block.
func (f *flattener) lines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(f.source))
	}
	return buf.String()
}

// inline flattens the inline children of n.
func (f *flattener) inline(n ast.Node) []token.Token {
	var out []token.Token
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = f.inlineNode(c, out)
	}
	return out
}

func (f *flattener) inlineNode(n ast.Node, out []token.Token) []token.Token {
	switch n := n.(type) {
	case *ast.Text:
		value := n.Segment.Value(f.source)
		if !n.IsRaw() {
			value = unescape(value)
		}
		out = appendText(out, string(value))
		switch {
		case n.HardLineBreak():
			out = append(out, token.Token{Type: token.HardBreak, Tag: "br"})
		case n.SoftLineBreak():
			out = append(out, token.Token{Type: token.SoftBreak, Tag: "br"})
		}

	case *ast.String:
		out = appendText(out, string(n.Value))

	case *ast.CodeSpan:
		out = append(out, token.Token{Type: token.CodeInline, Tag: "code", Content: f.codeSpan(n)})

	case *ast.Emphasis:
		open := token.Token{Type: token.EmOpen, Tag: "em"}
		if n.Level >= 2 {
			open = token.Token{Type: token.StrongOpen, Tag: "strong"}
		}
		out = f.inlineWrap(n, open, out)

	case *extast.Strikethrough:
		out = f.inlineWrap(n, token.Token{Type: token.StrikeOpen, Tag: "s"}, out)

	case *ast.Link:
		open := token.Token{
			Type:  token.LinkOpen,
			Tag:   "a",
			Attrs: []token.Attr{{Key: "href", Value: string(unescape(n.Destination))}},
		}
		if len(n.Title) > 0 {
			open.Attrs = append(open.Attrs, token.Attr{Key: "title", Value: string(unescape(n.Title))})
		}
		out = f.inlineWrap(n, open, out)

	case *ast.AutoLink:
		href := string(n.URL(f.source))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(href), "mailto:") {
			href = "mailto:" + href
		}
		out = append(out,
			token.Token{Type: token.LinkOpen, Tag: "a", Attrs: []token.Attr{{Key: "href", Value: href}}},
			token.Token{Type: token.Text, Content: string(n.Label(f.source))},
			token.Token{Type: token.LinkClose, Tag: "a"},
		)

	case *ast.Image:
		out = append(out, token.Token{
			Type:    token.Image,
			Tag:     "img",
			Content: plainText(f.inline(n)),
			Attrs:   []token.Attr{{Key: "src", Value: string(unescape(n.Destination))}},
		})

	case *ast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(f.source))
		}
		out = append(out, token.Token{Type: token.HTMLInline, Content: buf.String()})

	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			out = f.inlineNode(c, out)
		}
	}
	return out
}

// inlineWrap appends open, the flattened children of n, and the closing token.
func (f *flattener) inlineWrap(n ast.Node, open token.Token, out []token.Token) []token.Token {
	out = append(out, open)
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = f.inlineNode(c, out)
	}
	return append(out, token.Token{Type: open.Type.Close(), Tag: open.Tag})
}

// codeSpan returns the literal of a code span; line endings become spaces.
func (f *flattener) codeSpan(n *ast.CodeSpan) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		var value []byte
		switch c := c.(type) {
		case *ast.Text:
			value = c.Segment.Value(f.source)
		case *ast.String:
			value = c.Value
		default:
			continue
		}
		if bytes.HasSuffix(value, []byte("\n")) {
			sb.Write(value[:len(value)-1])
			sb.WriteByte(' ')
			continue
		}
		sb.Write(value)
	}
	return sb.String()
}

// appendText merges s into a directly preceding text token, so runs split by
// the parser read as one leaf.
func appendText(out []token.Token, s string) []token.Token {
	if n := len(out); n > 0 && out[n-1].Type == token.Text {
		out[n-1].Content += s
		return out
	}
	return append(out, token.Token{Type: token.Text, Content: s})
}

// plainText concatenates the text and code leaves of an inline stream.
func plainText(tokens []token.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		switch t.Type {
		case token.Text, token.CodeInline:
			sb.WriteString(t.Content)
		case token.Image:
			sb.WriteString(t.Content)
		}
	}
	return sb.String()
}

// unescape resolves backslash escapes and character references.
func unescape(v []byte) []byte {
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	v = util.ResolveEntityNames(v)
	return v
}
