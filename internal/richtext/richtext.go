// Package richtext models the "post" rich-text payload of the chat-message API:
// a document of lines, each line a sequence of tagged elements.
package richtext

import (
	"encoding/json"
	"slices"
)

// Tag discriminates element kinds. Values are the API's "tag" discriminants.
type Tag string

// Element tags.
const (
	TagText      Tag = "text"
	TagLink      Tag = "a"
	TagCodeBlock Tag = "code_block"
	TagRule      Tag = "hr"
)

// Style is a text style understood by the API.
type Style string

// Text styles.
const (
	Bold        Style = "bold"
	Italic      Style = "italic"
	LineThrough Style = "lineThrough"
	Code        Style = "code"
)

// Element is one tagged element of a line. Only the fields meaningful for
// Tag are serialized.
type Element struct {
	Tag      Tag
	Text     string
	Style    []Style
	Href     string
	Language string
}

// Line is a sequence of elements rendered on one visual row.
type Line []Element

// Document is an ordered sequence of lines.
type Document []Line

// NewText returns a text element. Duplicate styles are dropped.
func NewText(text string, styles ...Style) Element {
	e := Element{Tag: TagText, Text: text}
	for _, s := range styles {
		e = e.WithStyle(s)
	}
	return e
}

// NewLink returns a hyperlink element.
func NewLink(text, href string) Element {
	return Element{Tag: TagLink, Text: text, Href: href}
}

// NewCodeBlock returns a code block element.
func NewCodeBlock(text, language string) Element {
	return Element{Tag: TagCodeBlock, Text: text, Language: language}
}

// NewRule returns a horizontal rule element.
func NewRule() Element {
	return Element{Tag: TagRule}
}

// EmptyLine returns the line used wherever a region produced no content.
func EmptyLine(text string) Line {
	return Line{NewText(text)}
}

// HasStyle reports whether s is in the element's style set.
func (e Element) HasStyle(s Style) bool {
	return slices.Contains(e.Style, s)
}

// WithStyle returns a copy of e with s added to its style set.
// The receiver's style slice is never shared with the result.
func (e Element) WithStyle(s Style) Element {
	if e.HasStyle(s) {
		e.Style = slices.Clone(e.Style)
		return e
	}
	styles := make([]Style, 0, len(e.Style)+1)
	styles = append(styles, e.Style...)
	e.Style = append(styles, s)
	return e
}

// WithText returns a copy of e carrying text.
func (e Element) WithText(text string) Element {
	e.Text = text
	e.Style = slices.Clone(e.Style)
	return e
}

type textJSON struct {
	Tag   Tag     `json:"tag"`
	Text  string  `json:"text"`
	Style []Style `json:"style,omitempty"`
}

type linkJSON struct {
	Tag  Tag    `json:"tag"`
	Text string `json:"text"`
	Href string `json:"href"`
}

type codeBlockJSON struct {
	Tag      Tag    `json:"tag"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

type ruleJSON struct {
	Tag Tag `json:"tag"`
}

// MarshalJSON encodes the element with the keys its tag defines.
func (e Element) MarshalJSON() ([]byte, error) {
	switch e.Tag {
	case TagLink:
		return json.Marshal(linkJSON{Tag: e.Tag, Text: e.Text, Href: e.Href})
	case TagCodeBlock:
		return json.Marshal(codeBlockJSON{Tag: e.Tag, Language: e.Language, Text: e.Text})
	case TagRule:
		return json.Marshal(ruleJSON{Tag: e.Tag})
	default:
		return json.Marshal(textJSON{Tag: TagText, Text: e.Text, Style: e.Style})
	}
}

// UnmarshalJSON decodes an element produced by MarshalJSON.
func (e *Element) UnmarshalJSON(data []byte) error {
	var raw struct {
		Tag      Tag     `json:"tag"`
		Text     string  `json:"text"`
		Style    []Style `json:"style"`
		Href     string  `json:"href"`
		Language string  `json:"language"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Element(raw)
	return nil
}
