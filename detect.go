package md2post

import "strings"

// markdownIndicators are substrings whose presence suggests Markdown syntax.
var markdownIndicators = []string{
	"```", // code fence
	"**",  // strong
	"__",  // strong
	"*",   // emphasis, bullet
	"_",   // emphasis
	"[",   // link
	"#",   // heading
	"-",   // bullet, rule
	"1.",  // ordered list
	">",   // blockquote
	"`",   // code span
}

// LooksLikeMarkdown reports whether text contains any Markdown indicator.
// The scan is a cheap substring test: it favors false positives, so plain
// text with a hyphen or an underscore is reported as Markdown.
func LooksLikeMarkdown(text string) bool {
	for _, indicator := range markdownIndicators {
		if strings.Contains(text, indicator) {
			return true
		}
	}
	return false
}
