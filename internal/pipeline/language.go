package pipeline

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/alnah/go-md2post/internal/richtext"
)

// NormalizeLanguage maps the first word of a code block info string to the
// canonical, lower-cased name of the matching chroma lexer ("py" -> "python").
// Info strings naming no known language are returned unchanged.
func NormalizeLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return info
	}
	lexer := lexers.Get(fields[0])
	if lexer == nil {
		return info
	}
	return strings.ToLower(lexer.Config().Name)
}

// NormalizeLanguages returns doc with the language of every code block
// normalized. doc is not modified.
func NormalizeLanguages(doc richtext.Document) richtext.Document {
	out := make(richtext.Document, len(doc))
	for i, line := range doc {
		out[i] = make(richtext.Line, len(line))
		for j, e := range line {
			if e.Tag == richtext.TagCodeBlock {
				e.Language = NormalizeLanguage(e.Language)
			}
			out[i][j] = e
		}
	}
	return out
}
