package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	flag "github.com/spf13/pflag"

	md2post "github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/config"
	"github.com/alnah/go-md2post/internal/yamlutil"
)

// minWrapWidth keeps deeply indented lines readable on narrow terminals.
const minWrapWidth = 20

// runPreview converts one input and prints the post as wrapped plain text.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printPreviewUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	warnUnknownEnvVars(logger)

	inputPath, err := resolveInputArg(positional)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, loadEnvConfig(), logger)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyPostFlags(&flags.post, flags.changed, cfg)
	cfg.Message = config.MessageConfig{}

	if err := checkConfig(cfg); err != nil {
		return err
	}
	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	content, err := readInput(inputPath, env.Stdin)
	if err != nil {
		return err
	}
	converted, err := conv.Convert(ctx, md2post.Input{Markdown: string(content)})
	if err != nil {
		return convertError(err)
	}

	width := flags.width
	if width == 0 {
		width = env.TerminalWidth()
	}
	logger.Debug("rendering preview", "width", width, "lines", len(converted.Post.Content))

	if len(converted.FrontMatter) > 0 {
		meta, err := yamlutil.Marshal(converted.FrontMatter)
		if err != nil {
			return fmt.Errorf("rendering front matter: %w", err)
		}
		fmt.Fprintf(env.Stdout, "---\n%s\n---\n", bytes.TrimRight(meta, "\n"))
	}
	fmt.Fprint(env.Stdout, renderPreview(converted.Post, width))
	return nil
}

// renderPreview renders post as plain text, one row per line, each wrapped
// to width. Code blocks are printed unwrapped.
func renderPreview(post md2post.Post, width int) string {
	var sb strings.Builder
	if post.Title != "" {
		sb.WriteString(wrapLine(post.Title, width))
		sb.WriteString("\n\n")
	}
	for _, line := range post.Content {
		text := line.PlainText()
		if !line.IsCodeBlock() {
			text = wrapLine(text, width)
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// wrapLine word-wraps text to width. Continuation rows keep the leading
// indentation of the first row so nested list items stay aligned.
func wrapLine(text string, width int) string {
	body := strings.TrimLeft(text, " \t")
	lead := text[:len(text)-len(body)]
	pad := ansi.PrintableRuneWidth(lead)

	limit := max(width-pad, minWrapWidth)
	wrapped := wordwrap.String(body, limit)
	if pad == 0 {
		return wrapped
	}

	first, rest, found := strings.Cut(wrapped, "\n")
	if !found {
		return lead + first
	}
	return lead + first + "\n" + indent.String(rest, uint(pad))
}
