// Package snapshot normalizes serialized page snapshots into one canonical
// parsed representation. Every extraction step downstream operates on a
// Snapshot, never on a live DOM or a bare string: the two input shapes the
// host can produce collapse into one code path here.
package snapshot

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Platform identifies which chat application produced a snapshot.
type Platform string

// Supported platforms.
const (
	PlatformChatGPT Platform = "chatgpt"
	PlatformClaude  Platform = "claude"
	PlatformGemini  Platform = "gemini"
)

// Sentinel errors for snapshot operations.
var (
	ErrUnsupportedURL = errors.New("unsupported URL")
	ErrEmptySnapshot  = errors.New("snapshot HTML cannot be empty")
	ErrParseSnapshot  = errors.New("failed to parse snapshot HTML")
)

// Platform URL allowlist. Extraction is refused for anything else.
var platformPatterns = []struct {
	pattern  *regexp.Regexp
	platform Platform
}{
	{regexp.MustCompile(`^https?://chatgpt\.com/`), PlatformChatGPT},
	{regexp.MustCompile(`^https?://claude\.ai/`), PlatformClaude},
	{regexp.MustCompile(`^https?://gemini\.google\.com/`), PlatformGemini},
}

// DetectPlatform maps a page URL to its platform.
func DetectPlatform(url string) (Platform, error) {
	for _, p := range platformPatterns {
		if p.pattern.MatchString(url) {
			return p.platform, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedURL, url)
}

// Snapshot is a parsed page snapshot. It carries both the parsed document
// (for selector-based extraction) and the raw serialized HTML (for the
// regex fallback paths that scan embedded script payloads).
type Snapshot struct {
	URL      string
	Title    string
	Platform Platform

	raw string
	doc *goquery.Document
}

// New parses serialized HTML into a Snapshot. The URL determines the
// platform; unsupported URLs are rejected before any parsing happens.
func New(html, url, title string) (*Snapshot, error) {
	platform, err := DetectPlatform(url)
	if err != nil {
		return nil, err
	}
	return NewForPlatform(html, platform, url, title)
}

// NewForPlatform parses serialized HTML for an already-known platform.
func NewForPlatform(html string, platform Platform, url, title string) (*Snapshot, error) {
	if strings.TrimSpace(html) == "" {
		return nil, ErrEmptySnapshot
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseSnapshot, err)
	}

	return &Snapshot{
		URL:      url,
		Title:    title,
		Platform: platform,
		raw:      html,
		doc:      doc,
	}, nil
}

// Raw returns the serialized HTML the snapshot was built from.
func (s *Snapshot) Raw() string {
	return s.raw
}

// Doc returns the parsed document.
func (s *Snapshot) Doc() *goquery.Document {
	return s.doc
}

// Find runs a selector against the parsed document.
func (s *Snapshot) Find(selector string) *goquery.Selection {
	return s.doc.Find(selector)
}
