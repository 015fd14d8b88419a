package chat2pdf

import (
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-chat2pdf/internal/blocks"
	"github.com/alnah/go-chat2pdf/internal/highlight"
	"github.com/alnah/go-chat2pdf/internal/settings"
)

// indentPointsPerUnit converts indentation depth (leading whitespace
// characters) into a left margin.
const indentPointsPerUnit = 4

// renderDocumentHTML assembles a complete HTML document: a centered
// title block, an optional table of contents over the level-1 headings,
// a page break, then the content blocks. All styling derives from the
// settings record.
func renderDocumentHTML(meta DocumentMeta, content []blocks.Block, s *settings.Record) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>")
	b.WriteString(buildDocumentCSS(s))
	b.WriteString("</style>\n</head>\n<body>\n")

	b.WriteString(`<div class="report-title">` + html.EscapeString(meta.Title) + "</div>\n")
	b.WriteString(`<div class="report-author">` + html.EscapeString(meta.Author) + "</div>\n")
	b.WriteString(`<div class="report-date">` + html.EscapeString(meta.Date) + "</div>\n")

	if s.TOCEnabled {
		b.WriteString(renderTOC(content))
	}

	b.WriteString("<div class=\"page-break\"></div>\n")

	for i, block := range content {
		b.WriteString(renderBlock(block, i, s))
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// renderTOC lists the TOC-eligible headings with anchors into the body.
func renderTOC(content []blocks.Block) string {
	var entries []string
	for i, block := range content {
		if h, ok := block.(blocks.Heading); ok && h.TOCEligible {
			entries = append(entries,
				fmt.Sprintf(`<li><a href="#b%d">%s</a></li>`, i, html.EscapeString(h.Text)))
		}
	}
	if len(entries) == 0 {
		return ""
	}
	return "<div class=\"toc-title\">Table of Contents</div>\n<ul class=\"toc\">\n" +
		strings.Join(entries, "\n") + "\n</ul>\n"
}

func renderBlock(block blocks.Block, index int, s *settings.Record) string {
	switch blk := block.(type) {
	case blocks.Heading:
		return renderHeading(blk, index)
	case blocks.Paragraph:
		return "<p>" + renderRuns(blk.Runs) + "</p>\n"
	case blocks.List:
		return renderList(blk)
	case blocks.CodeBlock:
		return renderCodeBlock(blk, s)
	case blocks.Table:
		return renderTable(blk)
	case blocks.Quote:
		return "<blockquote>" + renderRuns(blk.Runs) + "</blockquote>\n"
	case blocks.Rule:
		return "<hr>\n"
	}
	return ""
}

// renderHeading emits an h1..h6 element; levels beyond 6 keep their named
// style class on an h6 tag.
func renderHeading(h blocks.Heading, index int) string {
	tagLevel := h.Level
	if tagLevel > 6 {
		tagLevel = 6
	}
	return fmt.Sprintf("<h%d id=\"b%d\" class=\"%s\">%s</h%d>\n",
		tagLevel, index, h.StyleName(), html.EscapeString(h.Text), tagLevel)
}

func renderList(l blocks.List) string {
	tag := "ul"
	if l.Kind == blocks.ListOrdered {
		tag = "ol"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<%s>\n", tag)
	for _, item := range l.Items {
		fmt.Fprintf(&b, `<li style="margin-left: %dpt">%s</li>`+"\n",
			item.IndentUnits*indentPointsPerUnit, renderRuns(item.Runs))
	}
	fmt.Fprintf(&b, "</%s>\n", tag)
	return b.String()
}

// renderCodeBlock widens code indentation for display and colors it via
// the highlighter unless highlighting is disabled in settings.
func renderCodeBlock(c blocks.CodeBlock, s *settings.Record) string {
	code := c.DisplayText()
	spans := highlight.Plain(code)
	if s.SyntaxHighlight {
		spans = highlight.Spans(code, c.Language)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<pre class="code-block" style="margin-left: %dpt"><code>`,
		c.IndentUnits*indentPointsPerUnit)
	for _, span := range spans {
		fmt.Fprintf(&b, `<span style="color: %s">%s</span>`,
			escapeCSSColor(span.Color), html.EscapeString(span.Text))
	}
	b.WriteString("</code></pre>\n")
	return b.String()
}

func renderTable(t blocks.Table) string {
	var b strings.Builder
	b.WriteString("<table>\n")
	for i, row := range t.Rows {
		cell := "td"
		if i == t.HeaderRowIndex {
			cell = "th"
		}
		b.WriteString("<tr>")
		for _, text := range row {
			fmt.Fprintf(&b, "<%s>%s</%s>", cell, html.EscapeString(text), cell)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
	return b.String()
}

func renderRuns(runs []blocks.InlineRun) string {
	var b strings.Builder
	for _, run := range runs {
		switch run.Kind {
		case blocks.RunBold:
			b.WriteString("<strong>" + html.EscapeString(run.Text) + "</strong>")
		case blocks.RunCode:
			b.WriteString(`<code class="inline-code">` + html.EscapeString(run.Text) + "</code>")
		case blocks.RunLink:
			fmt.Fprintf(&b, `<a href="%s">%s</a>`,
				html.EscapeString(run.URL), html.EscapeString(run.Text))
		default:
			b.WriteString(html.EscapeString(run.Text))
		}
	}
	return b.String()
}
