package chat2pdf

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-chat2pdf/internal/yamlutil"
)

// PageBreakMarker separates the metadata header from the transcript body.
const PageBreakMarker = `\newpage`

// Fallbacks when the envelope is absent or a field is missing.
const (
	defaultDocumentTitle  = "Chat Export"
	defaultDocumentAuthor = "chat2pdf"
)

// DocumentMeta is the metadata carried by the Markdown envelope.
type DocumentMeta struct {
	Title  string
	Author string
	Date   string // ISO date, YYYY-MM-DD
	TOC    bool
}

// envelopeHeader is the YAML front-matter shape.
type envelopeHeader struct {
	Title  string `yaml:"title"`
	Date   string `yaml:"date"`
	Author string `yaml:"author"`
	Format struct {
		PDF struct {
			// Pointer distinguishes an absent key from an explicit false.
			TOC            *bool  `yaml:"toc"`
			NumberSections bool   `yaml:"number-sections"`
			MainFont       string `yaml:"mainfont"`
		} `yaml:"pdf"`
	} `yaml:"format"`
}

var envelopeRe = regexp.MustCompile(`(?s)^---\n(.*?)\n---`)

// BuildEnvelope renders the metadata header placed in front of every
// extraction result, followed by a page-break marker line. Double quotes
// embedded in the title, author, or date are backslash-escaped.
func BuildEnvelope(meta DocumentMeta) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", meta.Title)
	fmt.Fprintf(&b, "date: %q\n", meta.Date)
	fmt.Fprintf(&b, "author: %q\n", meta.Author)
	b.WriteString("format:\n  pdf:\n")
	fmt.Fprintf(&b, "    toc: %t\n", meta.TOC)
	b.WriteString("    number-sections: true\n")
	b.WriteString("    mainfont: \"Avenir\"\n")
	b.WriteString("---\n\n")
	b.WriteString(PageBreakMarker + "\n\n")
	return b.String()
}

// ParseEnvelope splits exported Markdown into its metadata and body. A
// missing or unparseable header yields defaults: title "Chat Export",
// today's date, the tool name as author. Page-break markers are removed
// from the body.
func ParseEnvelope(markdown string) (DocumentMeta, string) {
	meta := DocumentMeta{
		Title:  defaultDocumentTitle,
		Author: defaultDocumentAuthor,
		Date:   time.Now().Format("2006-01-02"),
		TOC:    true,
	}

	body := markdown
	if m := envelopeRe.FindStringSubmatch(markdown); m != nil {
		var header envelopeHeader
		if err := yamlutil.Unmarshal([]byte(m[1]), &header); err == nil {
			if header.Title != "" {
				meta.Title = header.Title
			}
			if header.Author != "" {
				meta.Author = header.Author
			}
			if header.Date != "" {
				meta.Date = header.Date
			}
			if header.Format.PDF.TOC != nil {
				meta.TOC = *header.Format.PDF.TOC
			}
		}
		body = markdown[len(m[0]):]
	}

	body = strings.ReplaceAll(body, PageBreakMarker, "")
	return meta, strings.TrimSpace(body)
}
