package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	chat2pdf "github.com/alnah/go-chat2pdf"
	"github.com/alnah/go-chat2pdf/internal/settings"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(realMain(os.Args))
}

// realMain dispatches on the first argument and returns an exit code.
func realMain(args []string) int {
	if len(args) < 2 {
		printUsage(os.Stderr)
		return ExitUsage
	}

	switch args[1] {
	case "version", "--version":
		fmt.Printf("chat2pdf %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		runHelp(os.Stdout, args[2:])
		return ExitSuccess
	case "export":
		return runExportCommand(args[2:])
	default:
		// Bare invocation with a snapshot path behaves like export.
		return runExportCommand(args[1:])
	}
}

// runExportCommand parses flags, builds the exporter pool, and runs the
// export pipeline.
func runExportCommand(args []string) int {
	flags, positional, err := parseExportFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsage
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	opts, err := exporterOptions(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsage
	}

	poolSize := chat2pdf.ResolvePoolSize(flags.workers)
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := &exporterPool{inner: chat2pdf.NewExporterPool(poolSize, opts...)}
	defer pool.Close()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runExport(ctx, positional, flags, pool, DefaultEnv()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// exporterOptions translates CLI flags into library options. Settings are
// loaded once here so the --no-toc and --no-highlight overrides apply to
// every exporter in the pool.
func exporterOptions(flags *exportFlags) ([]chat2pdf.Option, error) {
	var rec *settings.Record
	if flags.settingsPath != "" {
		// An explicitly named settings file must load.
		loaded, err := (&settings.FileStore{Path: flags.settingsPath}).Load()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		rec = loaded
	} else {
		rec, _ = settings.LoadOrDefaults(&settings.FileStore{})
	}
	if flags.noTOC {
		rec.TOCEnabled = false
	}
	if flags.noHighlight {
		rec.SyntaxHighlight = false
	}

	opts := []chat2pdf.Option{chat2pdf.WithSettings(rec)}
	if flags.timeout > 0 {
		opts = append(opts, chat2pdf.WithTimeout(flags.timeout))
	}
	return opts, nil
}
