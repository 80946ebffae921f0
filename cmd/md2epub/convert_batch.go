package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	md2epub "github.com/alnah/go-md2epub"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2epub.Input) (*md2epub.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2epub.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Size       int // EPUB size in bytes
	Chapters   int
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently. A Converter holds no per-run
// state, so every worker shares the same one.
func convertBatch(ctx context.Context, conv CLIConverter, workers int, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := max(1, min(workers, len(files)))

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
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrCreateOutputDir, err)
		result.Duration = time.Since(start)
		return result
	}

	convResult, err := conv.Convert(ctx, params.input(string(content), f.InputPath))
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Chapters = len(convResult.Chapters)

	// Write chapter documents if requested (--xhtml)
	if params.xhtml {
		if err := writeChapters(xhtmlOutputDir(f.OutputPath), convResult.Chapters); err != nil {
			result.Err = err
			result.Duration = time.Since(start)
			return result
		}
	}

	// #nosec G306 -- books are meant to be readable
	if err := os.WriteFile(f.OutputPath, convResult.EPUB, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrWriteEPUB, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Size = len(convResult.EPUB)
	result.Duration = time.Since(start)
	return result
}

// writeChapters writes each standalone chapter document into dir.
func writeChapters(dir string, chapters []md2epub.ChapterResult) error {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateOutputDir, err)
	}
	for _, ch := range chapters {
		path := filepath.Join(dir, ch.FileName)
		// #nosec G306 -- chapter documents are meant to be readable
		if err := os.WriteFile(path, []byte(ch.XHTML), filePermissions); err != nil {
			return fmt.Errorf("writing chapter %s: %w", ch.FileName, err)
		}
	}
	return nil
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

// printResultsWithWriter outputs conversion results using the provided writers.
// Byte counts are grouped by thousands. Returns the number of failures.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)
	p := message.NewPrinter(language.English)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, withHint(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			p.Fprintf(env.Stdout, "%s -> %s (%d chapters, %d bytes, %v)\n",
				r.InputPath, r.OutputPath, r.Chapters, r.Size, r.Duration.Round(time.Millisecond))
		} else {
			p.Fprintf(env.Stdout, "Created %s (%d bytes)\n", r.OutputPath, r.Size)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
