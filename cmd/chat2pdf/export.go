package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	chat2pdf "github.com/alnah/go-chat2pdf"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadSnapshot       = errors.New("failed to read snapshot file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("file must have .html or .htm extension")
	ErrUnknownPlatform    = errors.New("unknown platform")
	ErrPlatformRequired   = errors.New("a --url or --platform is required")
	ErrURLWithDirectory   = errors.New("--url applies to a single file; use --platform for directories")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// PageExporter is the interface for the export library.
type PageExporter interface {
	ExtractMarkdown(ctx context.Context, page chat2pdf.Page) (*chat2pdf.ExtractionResult, string, error)
	ExportPDF(ctx context.Context, page chat2pdf.Page) ([]byte, error)
	SuggestedFilename(page chat2pdf.Page) string
}

// Compile-time interface implementation check.
var _ PageExporter = (*chat2pdf.Exporter)(nil)

// Pool abstracts exporter pool operations for testability.
type Pool interface {
	Acquire() PageExporter
	Release(PageExporter)
	Size() int
}

// FileToExport represents a single snapshot file to process.
type FileToExport struct {
	InputPath  string
	OutputPath string
	Page       chat2pdf.Page
}

// ExportResult holds the outcome of a single export.
type ExportResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runExport orchestrates the export pipeline: discover snapshot files,
// export them through the pool, and report results.
func runExport(ctx context.Context, positional []string, flags *exportFlags, pool Pool, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(positional) == 0 {
		return ErrNoInput
	}

	inputPath := positional[0]
	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadSnapshot, err)
	}

	if info.IsDir() && flags.url != "" {
		return ErrURLWithDirectory
	}

	pageURL, err := resolvePageURL(flags)
	if err != nil {
		return err
	}

	// Borrow one exporter for filename derivation; the browser stays cold
	// until a PDF is actually rendered.
	namer := pool.Acquire()
	files, err := discoverFiles(inputPath, flags, pageURL, namer)
	pool.Release(namer)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no .html files under %s", ErrNoInput, inputPath)
	}

	results := exportBatch(ctx, pool, files, flags.markdownOnly)
	return reportResults(results, flags, env)
}

// resolvePageURL determines the conversation URL used for platform
// detection: an explicit --url wins, otherwise --platform maps to the
// platform's canonical URL.
func resolvePageURL(flags *exportFlags) (string, error) {
	if flags.url != "" {
		return flags.url, nil
	}

	switch strings.ToLower(flags.platform) {
	case "chatgpt":
		return "https://chatgpt.com/", nil
	case "claude":
		return "https://claude.ai/", nil
	case "gemini":
		return "https://gemini.google.com/", nil
	case "":
		return "", ErrPlatformRequired
	}
	return "", fmt.Errorf("%w: %q (must be chatgpt, claude, or gemini)", ErrUnknownPlatform, flags.platform)
}

// discoverFiles expands the input path into the list of snapshot files to
// export, each with its page content and resolved output path.
func discoverFiles(inputPath string, flags *exportFlags, pageURL string, namer PageExporter) ([]FileToExport, error) {
	paths, err := collectSnapshotPaths(inputPath)
	if err != nil {
		return nil, err
	}

	files := make([]FileToExport, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path) // #nosec G304 -- path comes from user-supplied input directory
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadSnapshot, err)
		}

		page := chat2pdf.Page{
			HTML:  string(content),
			URL:   pageURL,
			Title: resolveTitle(flags.title, path, len(paths)),
		}

		outputPath, err := resolveOutputPath(flags, path, outputFilename(namer, page, flags.markdownOnly), len(paths))
		if err != nil {
			return nil, err
		}

		files = append(files, FileToExport{
			InputPath:  path,
			OutputPath: outputPath,
			Page:       page,
		})
	}
	return files, nil
}

// collectSnapshotPaths returns the snapshot files under the input path:
// the file itself, or every .html/.htm file in a directory tree.
func collectSnapshotPaths(inputPath string) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSnapshot, err)
	}

	if !info.IsDir() {
		if err := validateSnapshotExtension(inputPath); err != nil {
			return nil, err
		}
		return []string{inputPath}, nil
	}

	var paths []string
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && validateSnapshotExtension(path) == nil {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSnapshot, err)
	}
	return paths, nil
}

// validateSnapshotExtension checks that the file has a .html or .htm extension.
func validateSnapshotExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".html" && ext != ".htm" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// resolveTitle picks the document title: --title wins for a single file,
// otherwise the filename stem with underscores and dashes spaced out.
func resolveTitle(flagTitle, path string, fileCount int) string {
	if flagTitle != "" && fileCount == 1 {
		return flagTitle
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	return strings.TrimSpace(stem)
}

// resolveOutputPath determines where a file's output goes. An explicit
// --output names the file directly for a single input, or the directory
// for a batch; otherwise output lands next to the input.
func resolveOutputPath(flags *exportFlags, inputPath, name string, fileCount int) (string, error) {
	if flags.output == "" {
		return filepath.Join(filepath.Dir(inputPath), name), nil
	}

	if fileCount == 1 && !isDirectoryPath(flags.output) {
		return flags.output, nil
	}

	if err := os.MkdirAll(flags.output, dirPermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return filepath.Join(flags.output, name), nil
}

// outputFilename derives the output filename from the page title.
func outputFilename(namer PageExporter, page chat2pdf.Page, markdownOnly bool) string {
	name := namer.SuggestedFilename(page)
	if markdownOnly {
		name = strings.TrimSuffix(name, ".pdf") + ".md"
	}
	return name
}

// isDirectoryPath reports whether the output flag names a directory:
// either an existing one or a path with a trailing separator.
func isDirectoryPath(path string) bool {
	if strings.HasSuffix(path, string(os.PathSeparator)) || strings.HasSuffix(path, "/") {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// validateWorkers rejects negative worker counts.
func validateWorkers(workers int) error {
	if workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, workers)
	}
	return nil
}

// reportResults prints the batch outcome and returns the first error.
func reportResults(results []ExportResult, flags *exportFlags, env *Environment) error {
	var firstErr error
	failures := 0

	for _, r := range results {
		if r.Err != nil {
			failures++
			if firstErr == nil {
				firstErr = r.Err
			}
			fmt.Fprintf(env.Stderr, "Failed %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if flags.verbose {
			fmt.Fprintf(env.Stdout, "Created %s (%s)\n", r.OutputPath, r.Duration.Round(time.Millisecond))
		} else if !flags.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if len(results) > 1 && !flags.quiet {
		fmt.Fprintf(env.Stdout, "%d succeeded, %d failed\n", len(results)-failures, failures)
	}
	return firstErr
}
