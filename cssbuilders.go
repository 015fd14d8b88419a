package chat2pdf

import (
	"fmt"
	"strings"

	"github.com/alnah/go-chat2pdf/internal/settings"
)

// defaultFontFamily is the standard font stack for generated content.
const defaultFontFamily = "sans-serif"

// codeFontFamily is the monospace stack for code blocks and inline code.
const codeFontFamily = `"Courier New", Courier, monospace`

// buildDocumentCSS generates the full stylesheet for a rendered export.
// Every style parameter comes from the settings record.
func buildDocumentCSS(s *settings.Record) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, `
body {
  font-family: %s;
  font-size: %dpt;
  color: %s;
  line-height: 1.4;
}
a { color: %s; text-decoration: underline; }
`, defaultFontFamily, s.FontBody, s.ColorBody, s.ColorLink)

	buf.WriteString(buildTitlePageCSS(s))
	buf.WriteString(buildHeadingCSS(s))
	buf.WriteString(buildCodeCSS(s))
	buf.WriteString(buildTableCSS(s))

	buf.WriteString(`
/* Quotes and rules */
blockquote {
  font-style: italic;
  color: #555555;
  background: #fafafa;
  margin: 5pt 0 10pt 20pt;
  padding: 2pt 6pt;
}
hr { border: none; border-top: 1px solid #cccccc; margin: 10pt 0; }

/* Page breaks: prevent heading alone at page bottom */
h1, h2, h3, h4, h5, h6 {
  break-after: avoid;
  page-break-after: avoid;
  break-inside: avoid;
  page-break-inside: avoid;
}
.page-break {
  break-after: page;
  page-break-after: always;
}
`)

	return buf.String()
}

// buildTitlePageCSS styles the centered title block and the table of
// contents placed before the first page break.
func buildTitlePageCSS(s *settings.Record) string {
	return fmt.Sprintf(`
/* Title page */
.report-title {
  font-size: %dpt;
  font-weight: bold;
  color: %s;
  text-align: center;
  margin: 60pt 0 10pt 0;
}
.report-author { font-size: 14pt; color: #555555; text-align: center; margin: 0 0 5pt 0; }
.report-date { font-size: 12pt; font-style: italic; color: #7f8c8d; text-align: center; margin: 0 0 40pt 0; }
.toc-title { font-size: %dpt; font-weight: bold; color: %s; margin: 20pt 0 10pt 0; }
.toc { list-style: none; padding-left: 0; }
.toc li { font-size: 12pt; margin: 5pt 0 0 0; }
`, s.FontTitle, escapeCSSColor(s.ColorTitle), s.FontH3, escapeCSSColor(s.ColorH1))
}

func buildHeadingCSS(s *settings.Record) string {
	return fmt.Sprintf(`
/* Headings */
.header { font-size: %dpt; font-weight: bold; color: %s; margin: 15pt 0 10pt 0; }
.subheader { font-size: %dpt; font-weight: bold; color: %s; margin: 12pt 0 8pt 0; }
.h3 { font-size: %dpt; font-weight: bold; color: %s; margin: 10pt 0 5pt 0; }
.h4 { font-size: 13pt; font-weight: bold; color: #444444; margin: 8pt 0 5pt 0; }
.h5 { font-size: 12pt; font-weight: bold; font-style: italic; color: #555555; margin: 5pt 0; }
.h6 { font-size: 11pt; font-weight: bold; color: #7f8c8d; margin: 5pt 0; }
.h7 { font-size: 10pt; font-weight: bold; font-style: italic; color: #95a5a6; margin: 5pt 0; }
`, s.FontH1, escapeCSSColor(s.ColorH1),
		s.FontH2, escapeCSSColor(s.ColorH2),
		s.FontH3, escapeCSSColor(s.ColorH1))
}

func buildCodeCSS(s *settings.Record) string {
	return fmt.Sprintf(`
/* Code */
pre.code-block {
  font-family: %s;
  font-size: %dpt;
  background: %s;
  color: #333333;
  padding: 5pt;
  margin: 5pt 0 10pt 0;
  white-space: pre-wrap;
}
code.inline-code {
  font-family: %s;
  font-size: %dpt;
  color: #d63384;
  background: #f8f9fa;
}
`, codeFontFamily, s.FontCode, escapeCSSColor(s.CodeBg),
		codeFontFamily, s.FontCode)
}

// buildTableCSS styles pipe tables: configurable line width, a distinct
// header/body divider color, and a header fill.
func buildTableCSS(s *settings.Record) string {
	return fmt.Sprintf(`
/* Tables */
table { border-collapse: collapse; margin: 5pt 0 10pt 0; }
td, th { border: %.2fpt solid %s; padding: 2pt 6pt; }
th {
  background: %s;
  border-bottom: %.2fpt solid %s;
  font-weight: bold;
  text-align: left;
}
`, s.TableLineWidth, escapeCSSColor(s.TableLineColor),
		escapeCSSColor(s.TableHeaderFillColor),
		s.TableLineWidth, escapeCSSColor(s.TableHeaderLineColor))
}

// escapeCSSColor keeps only characters valid in a CSS color token,
// preventing stylesheet injection through a malformed settings file.
func escapeCSSColor(color string) string {
	var b strings.Builder
	for _, r := range color {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '#', r == '(', r == ')',
			r == ',', r == '.', r == ' ', r == '%':
			b.WriteRune(r)
		}
	}
	return b.String()
}
