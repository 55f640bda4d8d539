package md2post

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2post/internal/postconv"
	"github.com/alnah/go-md2post/internal/richtext"
	"github.com/alnah/go-md2post/internal/token"
)

// Post model.
type (
	// Element is one inline or block element of a post line.
	Element = richtext.Element
	// Line is one display line.
	Line = richtext.Line
	// Document is the ordered list of lines of a post.
	Document = richtext.Document
	// Post is the locale-keyed message content.
	Post = richtext.Post
	// Style is an inline text style.
	Style = richtext.Style
	// Tag identifies the kind of an Element.
	Tag = richtext.Tag
	// Heading is one entry of the document outline.
	Heading = postconv.Heading
)

// Token model, for callers running their own tokenizer.
type (
	Token     = token.Token
	TokenType = token.Type
	Attr      = token.Attr
)

// Token types.
const (
	TokenHeadingOpen      = token.HeadingOpen
	TokenHeadingClose     = token.HeadingClose
	TokenParagraphOpen    = token.ParagraphOpen
	TokenParagraphClose   = token.ParagraphClose
	TokenBulletListOpen   = token.BulletListOpen
	TokenBulletListClose  = token.BulletListClose
	TokenOrderedListOpen  = token.OrderedListOpen
	TokenOrderedListClose = token.OrderedListClose
	TokenListItemOpen     = token.ListItemOpen
	TokenListItemClose    = token.ListItemClose
	TokenInline           = token.Inline
	TokenFence            = token.Fence
	TokenCodeBlock        = token.CodeBlock
	TokenHR               = token.HR
	TokenText             = token.Text
	TokenCodeInline       = token.CodeInline
	TokenStrongOpen       = token.StrongOpen
	TokenStrongClose      = token.StrongClose
	TokenEmOpen           = token.EmOpen
	TokenEmClose          = token.EmClose
	TokenStrikeOpen       = token.StrikeOpen
	TokenStrikeClose      = token.StrikeClose
	TokenLinkOpen         = token.LinkOpen
	TokenLinkClose        = token.LinkClose
	TokenSoftBreak        = token.SoftBreak
	TokenHardBreak        = token.HardBreak
)

// Element tags.
const (
	TagText      = richtext.TagText
	TagLink      = richtext.TagLink
	TagCodeBlock = richtext.TagCodeBlock
	TagRule      = richtext.TagRule
)

// Text styles.
const (
	StyleBold        = richtext.Bold
	StyleItalic      = richtext.Italic
	StyleLineThrough = richtext.LineThrough
	StyleCode        = richtext.Code
)

// Locales.
const (
	LocaleZhCN    = "zh_cn"
	LocaleEnUS    = "en_us"
	LocaleJaJP    = "ja_jp"
	DefaultLocale = richtext.DefaultLocale
)

// Input contains the data for a single conversion.
type Input struct {
	Markdown string
}

// ConvertResult contains the output of a successful conversion.
type ConvertResult struct {
	Post        Post           // locale-keyed post, ready for json.Marshal
	Outline     []Heading      // headings in document order
	FrontMatter map[string]any // nil unless front matter extraction is enabled and present
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	locale            string
	bulletGlyph       string
	nestedIndent      string
	linkify           bool
	frontMatter       bool
	normalizeLanguage bool
}

func defaultConverterConfig() converterConfig {
	return converterConfig{
		locale:       DefaultLocale,
		bulletGlyph:  postconv.DefaultSymbols().BulletGlyph,
		nestedIndent: postconv.DefaultNestedIndent,
	}
}

func (c converterConfig) postOptions() postconv.Options {
	opts := postconv.DefaultOptions()
	opts.Symbols.BulletGlyph = c.bulletGlyph
	opts.NestedIndent = c.nestedIndent
	return opts
}

func (c converterConfig) validate() error {
	if err := richtext.ValidateLocale(c.locale); err != nil {
		return err
	}
	if strings.Trim(c.nestedIndent, " \t") != "" {
		return fmt.Errorf("%w: %q (spaces and tabs only)", ErrInvalidIndent, c.nestedIndent)
	}
	return nil
}

// WithLocale sets the locale key of the post container (default "zh_cn").
func WithLocale(locale string) Option {
	return func(c *Converter) {
		c.cfg.locale = locale
	}
}

// WithBulletGlyph sets the glyph prefixed to unordered list items.
// An empty glyph keeps the default "•".
func WithBulletGlyph(glyph string) Option {
	return func(c *Converter) {
		if glyph != "" {
			c.cfg.bulletGlyph = glyph
		}
	}
}

// WithNestedIndent sets the indent repeated once per list nesting level.
// An empty indent gives every item the bare "{n}. " or bullet prefix,
// whatever its depth.
func WithNestedIndent(indent string) Option {
	return func(c *Converter) {
		c.cfg.nestedIndent = indent
	}
}

// WithLinkify turns bare URLs and email addresses into links.
func WithLinkify(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.linkify = enabled
	}
}

// WithFrontMatter strips a leading YAML front matter block and returns its
// fields in ConvertResult.FrontMatter.
func WithFrontMatter(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.frontMatter = enabled
	}
}

// WithLanguageNormalization maps code block languages to canonical lexer
// names ("py" becomes "python").
func WithLanguageNormalization(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.normalizeLanguage = enabled
	}
}
