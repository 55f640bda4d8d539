package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps invalid command lines.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// postFlags holds flags shaping the generated post.
type postFlags struct {
	locale        string
	bullet        string
	nestedIndent  string
	linkify       bool
	frontMatter   bool
	normalizeLang bool
}

// messageFlags holds send-message envelope flags.
type messageFlags struct {
	envelope  bool
	receiveID string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	post    postFlags
	message messageFlags
	output  string
	workers int
	compact bool

	// changed reports whether a flag was set on the command line.
	changed func(name string) bool
}

// previewFlags holds all flags for the preview command.
type previewFlags struct {
	common commonFlags
	post   postFlags
	width  int

	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addPostFlags adds post shaping flags to a FlagSet.
func addPostFlags(fs *flag.FlagSet, f *postFlags) {
	fs.StringVar(&f.locale, "locale", "", "post locale: zh_cn, en_us, ja_jp")
	fs.StringVar(&f.bullet, "bullet", "", "bullet list glyph")
	fs.StringVar(&f.nestedIndent, "nested-indent", "", "indent repeated per nested list level")
	fs.BoolVar(&f.linkify, "linkify", false, "turn bare URLs into links")
	fs.BoolVar(&f.frontMatter, "front-matter", false, "strip and parse YAML front matter")
	fs.BoolVar(&f.normalizeLang, "normalize-lang", false, "canonicalize code block languages")
}

// addMessageFlags adds envelope flags to a FlagSet.
func addMessageFlags(fs *flag.FlagSet, f *messageFlags) {
	fs.BoolVar(&f.envelope, "envelope", false, "wrap the post in a send-message request body")
	fs.StringVar(&f.receiveID, "receive-id", "", "recipient of the envelope")
}

// newConvertFlagSet registers convert flags on a new FlagSet bound to f.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.compact, "compact", false, "write compact JSON")
	addCommonFlags(fs, &f.common)
	addPostFlags(fs, &f.post)
	addMessageFlags(fs, &f.message)
	return fs
}

// newPreviewFlagSet registers preview flags on a new FlagSet bound to f.
func newPreviewFlagSet(f *previewFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.IntVar(&f.width, "width", 0, "wrap width (0 = terminal width)")
	addCommonFlags(fs, &f.common)
	addPostFlags(fs, &f.post)
	return fs
}

// parseConvertFlags parses convert arguments and returns flags and positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	f.changed = fs.Changed
	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview arguments and returns flags and positional args.
func parsePreviewFlags(args []string) (*previewFlags, []string, error) {
	f := &previewFlags{}
	fs := newPreviewFlagSet(f)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	if f.width < 0 {
		return nil, nil, fmt.Errorf("%w: --width must be >= 0, got %d", ErrUsage, f.width)
	}
	f.changed = fs.Changed
	return f, fs.Args(), nil
}

// parseFlagSet parses args silently; callers report the returned error.
// flag.ErrHelp is returned unwrapped.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}
