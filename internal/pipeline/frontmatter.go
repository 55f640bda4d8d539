package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-md2post/internal/yamlutil"
)

// ErrFrontMatter indicates a front matter block holds invalid YAML.
var ErrFrontMatter = errors.New("invalid front matter")

const frontMatterDelimiter = "---"

// ExtractFrontMatter splits a leading YAML front matter block from content.
// The block must open on the first line with "---" and close with "---" or
// "...". Content without a closed block is returned unchanged with nil meta.
// Expects LF line endings (see CommonMarkPreprocessor).
func ExtractFrontMatter(content string) (body string, meta map[string]any, err error) {
	first, rest, ok := strings.Cut(content, "\n")
	if !ok || strings.TrimRight(first, " \t") != frontMatterDelimiter {
		return content, nil, nil
	}

	var block []string
	for {
		line, next, more := strings.Cut(rest, "\n")
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == frontMatterDelimiter || trimmed == "..." {
			body = next
			break
		}
		if !more {
			return content, nil, nil
		}
		block = append(block, line)
		rest = next
	}

	meta, err = yamlutil.UnmarshalMap([]byte(strings.Join(block, "\n")))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return body, meta, nil
}
