package main

import (
	"errors"
	"os"

	chat2pdf "github.com/alnah/go-chat2pdf"
)

// Exit codes for the chat2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful export
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or arguments
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, chat2pdf.ErrBrowserConnect) ||
		errors.Is(err, chat2pdf.ErrPageCreate) ||
		errors.Is(err, chat2pdf.ErrPageLoad) ||
		errors.Is(err, chat2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadSnapshot) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/validation errors (exit 2)
	if errors.Is(err, chat2pdf.ErrUnsupportedURL) ||
		errors.Is(err, chat2pdf.ErrEmptySnapshot) ||
		errors.Is(err, chat2pdf.ErrEmptyPage) ||
		errors.Is(err, chat2pdf.ErrEmptyMarkdown) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrUnknownPlatform) ||
		errors.Is(err, ErrPlatformRequired) ||
		errors.Is(err, ErrURLWithDirectory) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}
