package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	md2post "github.com/alnah/go-md2post"
)

// Detection results printed by the detect command.
const (
	detectMarkdown = "markdown"
	detectPlain    = "plain"
)

// runDetect prints whether an input looks like Markdown.
func runDetect(args []string, env *Environment) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	err := parseFlagSet(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		printDetectUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	inputPath, err := resolveInputArg(fs.Args())
	if err != nil {
		return err
	}
	content, err := readInput(inputPath, env.Stdin)
	if err != nil {
		return err
	}

	result := detectPlain
	if md2post.LooksLikeMarkdown(string(content)) {
		result = detectMarkdown
	}
	fmt.Fprintln(env.Stdout, result)
	return nil
}
