package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

// exportBatch processes snapshot files concurrently using the exporter pool.
func exportBatch(ctx context.Context, pool Pool, files []FileToExport, markdownOnly bool) []ExportResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ExportResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			exp := pool.Acquire()
			defer pool.Release(exp)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ExportResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = exportFile(ctx, exp, files[idx], markdownOnly)
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

// exportFile processes a single snapshot file and returns the result.
func exportFile(ctx context.Context, exp PageExporter, f FileToExport, markdownOnly bool) ExportResult {
	start := time.Now()
	result := ExportResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	var output []byte
	var err error
	if markdownOnly {
		var markdown string
		_, markdown, err = exp.ExtractMarkdown(ctx, f.Page)
		output = []byte(markdown)
	} else {
		output, err = exp.ExportPDF(ctx, f.Page)
	}
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := os.WriteFile(f.OutputPath, output, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	result.Duration = time.Since(start)
	return result
}
