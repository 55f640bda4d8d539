// Package md2post converts Markdown documents into rich-text "post" message
// content for Feishu/Lark chat APIs.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2post.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2post.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	body, _ := json.Marshal(result.Post)
//	// {"zh_cn":{"title":"","content":[[{"tag":"text","text":"Hello","style":["bold"]}],[{"tag":"text","text":"World"}]]}}
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (byte order mark, line endings, optional front matter)
//  2. Tokenizing via Goldmark into a flat stream of open/close tokens
//  3. Line building: headings, paragraphs, list items, code blocks and rules
//     become display lines of styled elements
//  4. Optional code language normalization via chroma
//
// # Output Model
//
// A post is a list of lines; a line is a list of elements. Elements are text
// (with bold, italic, lineThrough and code styles), links, code blocks and
// horizontal rules. Headings become bold lines, list items get "1. " or "• "
// prefixes, and paragraphs split at hard and soft breaks. Everything the chat
// client cannot display (images, raw HTML, tables) is dropped.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2post.NewConverter(
//	    md2post.WithLocale(md2post.LocaleEnUS),
//	    md2post.WithBulletGlyph("-"),
//	    md2post.WithLinkify(true),
//	)
//
// # Custom Tokenizers
//
// ConvertTokens accepts a markdown-it style token stream directly, for callers
// that tokenize Markdown themselves. A stream with unmatched open/close tokens
// yields ErrMalformedInput and no document.
package md2post
