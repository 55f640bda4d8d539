package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	md2post "github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/config"
	"github.com/alnah/go-md2post/internal/fileutil"
	"github.com/alnah/go-md2post/internal/hints"
)

// stdinOutputName names the output file of stdin conversions written to a directory.
const stdinOutputName = "stdin" + outputExt

// runConvert converts one file, a directory tree, or stdin into post JSON.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printConvertUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	warnUnknownEnvVars(logger)

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	inputPath, err := resolveInputArg(positional)
	if err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg, logger)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Merge CLI flags into config (CLI wins)
	applyPostFlags(&flags.post, flags.changed, cfg)
	mergeConvertFlags(flags, cfg)

	if err := checkConfig(cfg); err != nil {
		return err
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	params := &outputParams{
		compact:   cfg.Output.Compact,
		envelope:  cfg.Message.Envelope,
		receiveID: cfg.Message.ReceiveID,
	}

	if inputPath == stdinArg {
		// Piped output stays compact unless indentation was asked for.
		if flags.output == "" && !flags.changed("compact") && !env.StdoutIsTerminal() {
			params.compact = true
		}
		return convertStdin(ctx, conv, flags.output, flags.common.quiet, params, env)
	}

	outputDir := resolveOutputDir(flags.output, cfg)
	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	workers = md2post.ResolveWorkers(workers)
	logger.Debug("converting", "files", len(files), "workers", workers)

	results := convertBatch(ctx, conv, workers, files, params)
	if len(results) == 1 && results[0].Err != nil {
		return fmt.Errorf("%s: %w", results[0].InputPath, results[0].Err)
	}

	failedCount := printResults(results, flags.common.quiet, env, logger)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// mergeConvertFlags merges convert-only CLI flags into config.
func mergeConvertFlags(flags *convertFlags, cfg *config.Config) {
	if flags.changed("compact") {
		cfg.Output.Compact = flags.compact
	}
	if flags.changed("envelope") {
		cfg.Message.Envelope = flags.message.envelope
	}
	if flags.changed("receive-id") {
		cfg.Message.ReceiveID = flags.message.receiveID
	}
}

// resolveInputArg returns the single positional input argument.
func resolveInputArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(args))
	}
}

// resolveOutputDir returns the output location: flag, then config, then none.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// convertStdin converts Markdown read from stdin. Without an output path the
// result goes to stdout.
func convertStdin(ctx context.Context, conv PostConverter, output string, quiet bool, params *outputParams, env *Environment) error {
	content, err := readInput(stdinArg, env.Stdin)
	if err != nil {
		return err
	}

	converted, err := conv.Convert(ctx, md2post.Input{Markdown: string(content)})
	if err != nil {
		return convertError(err)
	}

	data, err := params.encode(converted.Post)
	if err != nil {
		return err
	}

	if output == "" {
		if _, err := env.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	outPath := output
	if !strings.HasSuffix(output, outputExt) {
		outPath = filepath.Join(output, stdinOutputName)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating output directory: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	if err := fileutil.WriteFileAtomic(outPath, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outPath)
	}
	return nil
}

// readInput reads a whole file, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	var (
		content []byte
		err     error
	)
	if path == stdinArg {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path) // #nosec G304 -- user-provided input
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return content, nil
}
