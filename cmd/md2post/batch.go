package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2post "github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/fileutil"
	"github.com/alnah/go-md2post/internal/hints"
	"github.com/alnah/go-md2post/internal/message"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteOutput  = errors.New("failed to write output file")
)

// PostConverter is the interface for the conversion service.
type PostConverter interface {
	Convert(ctx context.Context, input md2post.Input) (*md2post.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ PostConverter = (*md2post.Converter)(nil)

// outputParams controls how converted posts are serialized.
type outputParams struct {
	compact   bool
	envelope  bool
	receiveID string
	builder   message.Builder
}

// encode serializes a post, wrapped in an envelope when requested.
func (p *outputParams) encode(post md2post.Post) ([]byte, error) {
	var v any = post
	if p.envelope {
		env, err := p.builder.Build(p.receiveID, post)
		if err != nil {
			return nil, err
		}
		v = env
	}

	var (
		data []byte
		err  error
	)
	if p.compact {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("encoding output: %w", err)
	}
	return append(data, '\n'), nil
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently with a bounded worker pool.
// The converter is shared: it holds no per-call state.
func convertBatch(ctx context.Context, conv PostConverter, workers int, files []FileToConvert, params *outputParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(workers, len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv PostConverter, f FileToConvert, params *outputParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	converted, err := conv.Convert(ctx, md2post.Input{Markdown: string(content)})
	if err != nil {
		return fail(convertError(err))
	}

	data, err := params.encode(converted.Post)
	if err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: creating output directory: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory()))
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, data, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results to the environment writers and
// returns the number of failures.
func printResults(results []ConversionResult, quiet bool, env *Environment, logger *slog.Logger) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		logger.Debug("converted", "input", r.InputPath, "output", r.OutputPath, "duration", r.Duration.Round(time.Millisecond))
		if !quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
