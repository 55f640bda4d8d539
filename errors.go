package md2post

import (
	"errors"

	"github.com/alnah/go-md2post/internal/pipeline"
	"github.com/alnah/go-md2post/internal/postconv"
	"github.com/alnah/go-md2post/internal/richtext"
)

// Sentinel errors for library operations.
var (
	// ErrMalformedInput indicates a token stream with unmatched open/close
	// tokens, a missing inline container, or a region running past the end.
	ErrMalformedInput = postconv.ErrMalformedInput

	ErrTokenize      = pipeline.ErrTokenize
	ErrFrontMatter   = pipeline.ErrFrontMatter
	ErrInvalidLocale = richtext.ErrInvalidLocale

	// ErrInvalidIndent indicates a nested indent containing characters other
	// than spaces and tabs.
	ErrInvalidIndent = errors.New("invalid nested indent")
)
