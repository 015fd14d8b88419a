package chat2pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-chat2pdf/internal/blocks"
	"github.com/alnah/go-chat2pdf/internal/fileutil"
	"github.com/alnah/go-chat2pdf/internal/settings"
	"github.com/alnah/go-chat2pdf/internal/snapshot"
	"github.com/alnah/go-chat2pdf/internal/sniff"
	"github.com/alnah/go-chat2pdf/internal/transcript"
)

// Exporter orchestrates the extraction and rendering pipeline: page
// snapshot to transcript Markdown, and Markdown to a paginated PDF.
type Exporter struct {
	cfg exporterConfig
	pdf pdfConverter
}

// New creates an Exporter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithSettings).
func New(opts ...Option) *Exporter {
	e := &Exporter{
		cfg: exporterConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(e)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if e.pdf == nil {
		e.pdf = newRodConverter(e.cfg.timeout)
	}

	return e
}

// ExtractMarkdown parses a page snapshot into a transcript. It returns
// the structured extraction result and the enveloped Markdown document
// (metadata header, page-break marker, transcript body).
func (e *Exporter) ExtractMarkdown(ctx context.Context, page Page) (*ExtractionResult, string, error) {
	if page.HTML == "" {
		return nil, "", ErrEmptyPage
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	snap, err := snapshot.New(page.HTML, page.URL, page.Title)
	if err != nil {
		return nil, "", err
	}

	modelName := sniff.ModelName(snap)
	userName := sniff.UserName(snap)
	turns := transcript.Turns(snap, modelName)
	body := transcript.Assemble(turns, snap.Platform, modelName)

	title := page.Title
	if title == "" {
		// Gemini snapshots often carry no page title; the first user
		// query stands in for it.
		title = firstUserTitle(turns)
	}
	if title == "" {
		title = defaultDocumentTitle
	}

	meta := DocumentMeta{
		Title:  title,
		Author: fmt.Sprintf("%s - %s & %s", companyName(snap.Platform), modelName, userName),
		Date:   time.Now().Format("2006-01-02"),
		TOC:    e.resolveSettings().TOCEnabled,
	}

	result := &ExtractionResult{
		Platform:  Platform(snap.Platform),
		ModelName: modelName,
		UserName:  userName,
		PageTitle: title,
		Turns:     toConversationTurns(turns),
	}

	return result, BuildEnvelope(meta) + body, nil
}

// ExportPDF extracts the page's transcript and renders it to PDF bytes.
func (e *Exporter) ExportPDF(ctx context.Context, page Page) ([]byte, error) {
	_, markdown, err := e.ExtractMarkdown(ctx, page)
	if err != nil {
		return nil, err
	}
	return e.RenderPDF(ctx, markdown)
}

// RenderPDF renders enveloped transcript Markdown to PDF bytes. The
// metadata header supplies the title page; the body is parsed into
// layout blocks and printed through headless Chrome.
func (e *Exporter) RenderPDF(ctx context.Context, markdown string) ([]byte, error) {
	if markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec := e.resolveSettings()
	meta, body := ParseEnvelope(markdown)
	content := blocks.Parse(body)
	htmlContent := renderDocumentHTML(meta, content, rec)

	pdfBytes, err := e.pdf.ToPDF(ctx, htmlContent, rec)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return pdfBytes, nil
}

// SuggestedFilename derives a PDF filename from the page title.
func (e *Exporter) SuggestedFilename(page Page) string {
	return fileutil.Slugify(page.Title) + ".pdf"
}

// Close releases resources (headless Chrome browser).
func (e *Exporter) Close() error {
	if e.pdf != nil {
		return e.pdf.Close()
	}
	return nil
}

// resolveSettings returns the fixed settings record when one was
// injected, otherwise loads from the store and degrades to defaults on
// any failure.
func (e *Exporter) resolveSettings() *settings.Record {
	if e.cfg.settings != nil {
		return e.cfg.settings
	}
	rec, _ := settings.LoadOrDefaults(&settings.FileStore{Path: e.cfg.settingsPath})
	return rec
}

// companyName maps a platform to its vendor for the envelope author line.
func companyName(p snapshot.Platform) string {
	switch p {
	case snapshot.PlatformChatGPT:
		return "OpenAI"
	case snapshot.PlatformClaude:
		return "Anthropic"
	case snapshot.PlatformGemini:
		return "Google"
	}
	return "Unknown AI"
}

func firstUserTitle(turns []transcript.Turn) string {
	for _, t := range turns {
		if t.Role == transcript.RoleUser && t.Title != "" {
			return t.Title
		}
	}
	return ""
}

func toConversationTurns(turns []transcript.Turn) []ConversationTurn {
	out := make([]ConversationTurn, len(turns))
	for i, t := range turns {
		out[i] = ConversationTurn{
			Role:         Role(t.Role),
			TitleText:    t.Title,
			BodyMarkdown: t.Body,
		}
	}
	return out
}
