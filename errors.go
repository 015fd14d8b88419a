package chat2pdf

import (
	"errors"

	"github.com/alnah/go-chat2pdf/internal/snapshot"
)

// Sentinel errors for library operations.
var (
	// Re-exported extraction errors.
	ErrUnsupportedURL = snapshot.ErrUnsupportedURL
	ErrEmptySnapshot  = snapshot.ErrEmptySnapshot

	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrEmptyPage      = errors.New("page HTML cannot be empty")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
