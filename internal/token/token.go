// Package token defines the flat markdown token stream consumed by the post
// converter.
//
// The stream follows the markdown-it shape: block constructs are delimited by
// open/close token pairs, and the inline content of a block lives in the
// Children of a single Inline token, itself a flat stream of leaves and
// open/close pairs.
package token

// Type discriminates tokens in the stream.
type Type uint8

// Token types. Names returned by String match the markdown-it vocabulary.
const (
	Unknown Type = iota

	// Block-level.
	HeadingOpen
	HeadingClose
	ParagraphOpen
	ParagraphClose
	BulletListOpen
	BulletListClose
	OrderedListOpen
	OrderedListClose
	ListItemOpen
	ListItemClose
	BlockquoteOpen
	BlockquoteClose
	Inline
	Fence
	CodeBlock
	HR
	HTMLBlock

	// Inline-level.
	Text
	CodeInline
	StrongOpen
	StrongClose
	EmOpen
	EmClose
	StrikeOpen
	StrikeClose
	LinkOpen
	LinkClose
	SoftBreak
	HardBreak
	Image
	HTMLInline
)

var typeNames = [...]string{
	Unknown:          "unknown",
	HeadingOpen:      "heading_open",
	HeadingClose:     "heading_close",
	ParagraphOpen:    "paragraph_open",
	ParagraphClose:   "paragraph_close",
	BulletListOpen:   "bullet_list_open",
	BulletListClose:  "bullet_list_close",
	OrderedListOpen:  "ordered_list_open",
	OrderedListClose: "ordered_list_close",
	ListItemOpen:     "list_item_open",
	ListItemClose:    "list_item_close",
	BlockquoteOpen:   "blockquote_open",
	BlockquoteClose:  "blockquote_close",
	Inline:           "inline",
	Fence:            "fence",
	CodeBlock:        "code_block",
	HR:               "hr",
	HTMLBlock:        "html_block",
	Text:             "text",
	CodeInline:       "code_inline",
	StrongOpen:       "strong_open",
	StrongClose:      "strong_close",
	EmOpen:           "em_open",
	EmClose:          "em_close",
	StrikeOpen:       "s_open",
	StrikeClose:      "s_close",
	LinkOpen:         "link_open",
	LinkClose:        "link_close",
	SoftBreak:        "softbreak",
	HardBreak:        "hardbreak",
	Image:            "image",
	HTMLInline:       "html_inline",
}

// String returns the markdown-it name of the type.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return typeNames[Unknown]
}

// Close returns the closing counterpart of an opening type, or Unknown when
// t does not open a region.
func (t Type) Close() Type {
	switch t {
	case HeadingOpen:
		return HeadingClose
	case ParagraphOpen:
		return ParagraphClose
	case BulletListOpen:
		return BulletListClose
	case OrderedListOpen:
		return OrderedListClose
	case ListItemOpen:
		return ListItemClose
	case BlockquoteOpen:
		return BlockquoteClose
	case StrongOpen:
		return StrongClose
	case EmOpen:
		return EmClose
	case StrikeOpen:
		return StrikeClose
	case LinkOpen:
		return LinkClose
	default:
		return Unknown
	}
}

// Attr is a single key/value attribute of a token.
type Attr struct {
	Key   string
	Value string
}

// Token is one node of the flat stream.
type Token struct {
	Type     Type
	Tag      string  // "h1".."h6", "p", "ul", "ol", "li", "a", ...
	Content  string  // literal text for leaves and code blocks
	Info     string  // fence info string
	Attrs    []Attr  // only set on link_open and list open tokens
	Children []Token // only set on Inline tokens
}

// AttrGet returns the value of the named attribute.
func (t Token) AttrGet(key string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
