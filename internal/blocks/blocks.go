// Package blocks parses normalized Markdown into a flat ordered sequence
// of typed layout blocks for document rendering. The grammar is a fixed,
// small Markdown subset: headings, paragraphs, bullet/ordered lists,
// fenced code, pipe tables, blockquotes, and horizontal rules.
package blocks

import (
	"fmt"
	"strings"
)

// Block is one self-contained layout element. The sequence is flat:
// lists and tables carry their own line items instead of nesting.
type Block interface {
	block()
}

// Heading is a #-prefixed line. Level 1 headings feed the table of
// contents.
type Heading struct {
	Level       int // 1..7
	Text        string
	TOCEligible bool
}

// Paragraph is a plain text line with inline formatting runs.
type Paragraph struct {
	Runs []InlineRun
}

// ListKind distinguishes bullet from ordered lists. The two kinds never
// mix within one List; a kind switch starts a new block.
type ListKind int

const (
	ListBullet ListKind = iota
	ListOrdered
)

// ListItem is one list entry with its indentation depth in leading
// whitespace characters.
type ListItem struct {
	Runs        []InlineRun
	IndentUnits int
}

// List is a run of same-kind list items.
type List struct {
	Kind  ListKind
	Items []ListItem
}

// CodeBlock is a fenced code region. RawText holds the verbatim lines
// between the fences; Language is empty when the fence carried no tag.
type CodeBlock struct {
	Language    string
	RawText     string
	IndentUnits int
}

// Table is a pipe table. Rows[HeaderRowIndex] is the bold header row;
// ragged rows are kept as-is.
type Table struct {
	Rows           [][]string
	HeaderRowIndex int
}

// Quote is a >-prefixed line.
type Quote struct {
	Runs []InlineRun
}

// Rule is a horizontal separator line.
type Rule struct{}

func (Heading) block()   {}
func (Paragraph) block() {}
func (List) block()      {}
func (CodeBlock) block() {}
func (Table) block()     {}
func (Quote) block()     {}
func (Rule) block()      {}

// StyleName maps a heading level to its named render style.
func (h Heading) StyleName() string {
	switch h.Level {
	case 1:
		return "header"
	case 2:
		return "subheader"
	default:
		return fmt.Sprintf("h%d", h.Level)
	}
}

// DisplayText returns the code text with every leading 2-space indent
// run widened to 4 spaces. RawText stays verbatim.
func (c CodeBlock) DisplayText() string {
	lines := strings.Split(c.RawText, "\n")
	for i, line := range lines {
		j := 0
		for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
			j++
		}
		lines[i] = strings.ReplaceAll(line[:j], " ", "  ") + line[j:]
	}
	return strings.Join(lines, "\n")
}
