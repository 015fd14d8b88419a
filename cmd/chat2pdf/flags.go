package main

import (
	"os"
	"time"

	flag "github.com/spf13/pflag"
)

// exportFlags holds all flags for the export command.
type exportFlags struct {
	output       string
	url          string
	platform     string
	title        string
	workers      int
	timeout      time.Duration
	markdownOnly bool
	settingsPath string
	noTOC        bool
	noHighlight  bool
	quiet        bool
	verbose      bool
}

// parseExportFlags parses export command flags and returns positional args.
func parseExportFlags(args []string) (*exportFlags, []string, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	f := &exportFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.url, "url", "u", "", "conversation URL the snapshot was saved from")
	fs.StringVarP(&f.platform, "platform", "p", "", "platform when no URL: chatgpt, claude, gemini")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = derive from filename)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "PDF generation timeout (e.g., 30s, 2m)")

	// Output mode
	fs.BoolVarP(&f.markdownOnly, "markdown", "m", false, "write transcript Markdown instead of PDF")

	// Rendering
	fs.StringVarP(&f.settingsPath, "settings", "s", "", "settings file name or path")
	fs.BoolVar(&f.noTOC, "no-toc", false, "disable table of contents")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable syntax highlighting")

	// Verbosity
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing")

	fs.Usage = func() { printExportUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
