package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chat2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  export     Export saved chat page snapshots to PDF or Markdown")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'chat2pdf help export' for details.")
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chat2pdf export <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export saved HTML snapshots of ChatGPT, Claude, or Gemini")
	fmt.Fprintln(w, "conversations to styled PDF or transcript Markdown.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Snapshot file (.html) or directory of snapshots")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file or directory")
	fmt.Fprintln(w, "  -u, --url <s>           Conversation URL the snapshot was saved from")
	fmt.Fprintln(w, "  -p, --platform <s>      Platform when no URL: chatgpt, claude, gemini")
	fmt.Fprintln(w, "      --title <s>         Document title (\"\" = derive from filename)")
	fmt.Fprintln(w, "  -w, --workers <n>       Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>       PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -m, --markdown          Write transcript Markdown instead of PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -s, --settings <path>   Settings file name or path")
	fmt.Fprintln(w, "      --no-toc            Disable table of contents")
	fmt.Fprintln(w, "      --no-highlight      Disable syntax highlighting")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Verbosity:")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show per-file timing")
}

// runHelp shows help for a specific command.
func runHelp(w io.Writer, args []string) {
	if len(args) == 0 {
		printUsage(w)
		return
	}
	switch args[0] {
	case "export":
		printExportUsage(w)
	default:
		printUsage(w)
	}
}
