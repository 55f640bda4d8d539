package md2post

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2post/internal/pipeline"
	"github.com/alnah/go-md2post/internal/postconv"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.Tokenizer            = (*pipeline.GoldmarkTokenizer)(nil)
)

// Converter orchestrates the Markdown to post pipeline.
// A Converter holds no per-call state and may be shared between goroutines.
type Converter struct {
	cfg          converterConfig
	preprocessor pipeline.MarkdownPreprocessor
	tokenizer    pipeline.Tokenizer
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithLocale, WithBulletGlyph).
// Returns an error if an option value is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          defaultConverterConfig(),
		preprocessor: &pipeline.CommonMarkPreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.validate(); err != nil {
		return nil, err
	}

	// Create tokenizer if not injected (e.g., by tests)
	if c.tokenizer == nil {
		c.tokenizer = pipeline.NewGoldmarkTokenizer(c.cfg.linkify)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the post.
// Empty Markdown yields a post with a single empty text line.
// The context is checked between stages; the line conversion itself is not
// interruptible.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var meta map[string]any
	if c.cfg.frontMatter {
		mdContent, meta, err = pipeline.ExtractFrontMatter(mdContent)
		if err != nil {
			return nil, err
		}
	}

	tokens, err := c.tokenizer.Tokenize(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("tokenizing markdown: %w", err)
	}

	res, err := postconv.Convert(tokens, c.cfg.postOptions())
	if err != nil {
		return nil, fmt.Errorf("building post: %w", err)
	}

	doc := res.Document
	if c.cfg.normalizeLanguage {
		doc = pipeline.NormalizeLanguages(doc)
	}

	return &ConvertResult{
		Post:        Post{Locale: c.cfg.locale, Content: doc},
		Outline:     res.Outline,
		FrontMatter: meta,
	}, nil
}

// ConvertTokens converts a token stream produced by another tokenizer.
// Only the post-shaping options apply (bullet glyph, nested indent, language
// normalization); Markdown options are ignored.
func ConvertTokens(tokens []Token, opts ...Option) (Document, error) {
	c := &Converter{cfg: defaultConverterConfig()}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.cfg.validate(); err != nil {
		return nil, err
	}

	res, err := postconv.Convert(tokens, c.cfg.postOptions())
	if err != nil {
		return nil, err
	}
	if c.cfg.normalizeLanguage {
		return pipeline.NormalizeLanguages(res.Document), nil
	}
	return res.Document, nil
}
