// Package chat2pdf exports chat conversations from saved page snapshots
// to Markdown and styled, paginated PDF documents.
//
// Three chat applications are supported, ChatGPT, Claude, and Gemini,
// each with its own DOM shape. Extraction is tolerant by design: every
// selector has an ordered fallback chain ending in a hardcoded default,
// so a renamed element degrades the output instead of failing it.
//
// The pipeline has two stages. Extraction reconstructs a document from
// serialized HTML, sniffs the user and model display names, converts
// each conversation turn to Markdown, and wraps the result in a YAML
// metadata envelope. Rendering parses that Markdown into a tree of
// typed layout blocks (headings, lists, tables, fenced code, quotes,
// rules), assembles a title page and table of contents, and prints the
// document to PDF through headless Chrome with syntax-highlighted code.
//
// Basic usage:
//
//	exporter := chat2pdf.New(chat2pdf.WithTimeout(60 * time.Second))
//	defer exporter.Close()
//
//	page := chat2pdf.Page{HTML: serialized, URL: url, Title: title}
//	pdf, err := exporter.ExportPDF(ctx, page)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile(exporter.SuggestedFilename(page), pdf, 0o644)
//
// For Markdown-only export, ExtractMarkdown returns the enveloped
// transcript without touching a browser. Batch workloads can share an
// ExporterPool, which reuses browser instances across exports.
//
// Rendering parameters (page size, margins, fonts, colors, table
// styling, TOC and highlighting toggles) come from a Settings record,
// loaded from a YAML settings file or fixed with WithSettings.
package chat2pdf
