package blocks

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	headingRe       = regexp.MustCompile(`^\s*(#{1,7})\s+(.*)`)
	bulletItemRe    = regexp.MustCompile(`^\s*[-*]\s+(.*)`)
	orderedItemRe   = regexp.MustCompile(`^\s*\d+\.\s+(.*)`)
	quoteRe         = regexp.MustCompile(`^\s*>\s+(.*)`)
	fenceLanguageRe = regexp.MustCompile("^```\\{?(\\w+)\\}?")
	delimiterCellRe = regexp.MustCompile(`^:?-{3,}:?$`)
)

// parserState is the scanner's explicit per-line state. Exactly one
// variant is live at a time; transitions happen only in parseLine.
type parserState interface {
	state()
}

type stateIdle struct{}

type stateCode struct {
	language    string
	indentUnits int
	lines       []string
}

type stateList struct {
	kind  ListKind
	items []ListItem
}

type stateTable struct {
	rows [][]string
}

func (stateIdle) state()  {}
func (stateCode) state()  {}
func (stateList) state()  {}
func (stateTable) state() {}

// Parse scans normalized Markdown line by line into a flat block
// sequence. Open lists and tables are flushed at end of input; an
// unterminated code fence is discarded.
func Parse(markdown string) []Block {
	lines := strings.Split(markdown, "\n")

	var out []Block
	var st parserState = stateIdle{}

	for i := 0; i < len(lines); i++ {
		next, hasNext := "", false
		if i+1 < len(lines) {
			next, hasNext = lines[i+1], true
		}
		var skipNext bool
		st, out, skipNext = parseLine(st, out, lines[i], next, hasNext)
		if skipNext {
			i++
		}
	}

	return flush(st, out)
}

// parseLine advances the scanner by one line. Each check short-circuits
// the rest; the returned bool reports that the following line was
// consumed as a table delimiter.
func parseLine(st parserState, out []Block, line, next string, hasNext bool) (parserState, []Block, bool) {
	trimmed := strings.TrimSpace(line)

	// Fence lines toggle code-block state.
	if strings.HasPrefix(trimmed, "```") {
		if code, open := st.(stateCode); open {
			out = append(out, CodeBlock{
				Language:    code.language,
				RawText:     strings.Join(code.lines, "\n"),
				IndentUnits: code.indentUnits,
			})
			return stateIdle{}, out, false
		}
		out = flush(st, out)
		language := ""
		if m := fenceLanguageRe.FindStringSubmatch(trimmed); m != nil {
			language = strings.ToLower(m[1])
		}
		return stateCode{language: language, indentUnits: leadingWhitespace(line)}, out, false
	}

	// Inside a code block every line is content, blank lines included.
	if code, open := st.(stateCode); open {
		code.lines = append(code.lines, line)
		return code, out, false
	}

	// Table start: current line holds pipes and the next line is a
	// delimiter row. The current line becomes the bold header row and
	// the delimiter line is skipped.
	if _, open := st.(stateTable); !open {
		if strings.Contains(line, "|") && hasNext && isTableDelimiter(next) {
			out = flush(st, out)
			return stateTable{rows: [][]string{splitTableRow(line)}}, out, true
		}
	}

	// Inside a table: pipe lines accumulate as body rows; the first
	// line without a pipe flushes the table and is re-evaluated below.
	if table, open := st.(stateTable); open {
		if strings.Contains(line, "|") {
			table.rows = append(table.rows, splitTableRow(line))
			return table, out, false
		}
		out = flush(table, out)
		st = stateIdle{}
	}

	if kind, text, ok := matchListItem(line); ok {
		list, open := st.(stateList)
		if open && list.kind != kind {
			out = flush(list, out)
			open = false
		}
		if !open {
			list = stateList{kind: kind}
		}
		list.items = append(list.items, ListItem{
			Runs:        ParseInline(text),
			IndentUnits: leadingWhitespace(line),
		})
		return list, out, false
	}

	// Blank lines are ignored; in particular they keep an open list
	// open. Only non-matching, non-blank content closes a list.
	if trimmed == "" {
		return st, out, false
	}

	out = flush(st, out)

	if m := headingRe.FindStringSubmatch(line); m != nil {
		level := len(m[1])
		out = append(out, Heading{Level: level, Text: m[2], TOCEligible: level == 1})
		return stateIdle{}, out, false
	}

	if m := quoteRe.FindStringSubmatch(line); m != nil {
		out = append(out, Quote{Runs: ParseInline(m[1])})
		return stateIdle{}, out, false
	}

	if trimmed == "---" || trimmed == "***" {
		out = append(out, Rule{})
		return stateIdle{}, out, false
	}

	out = append(out, Paragraph{Runs: ParseInline(trimmed)})
	return stateIdle{}, out, false
}

// flush emits any open list or table. Code state is not flushed here: a
// fence left open at end of input produces no block.
func flush(st parserState, out []Block) []Block {
	switch s := st.(type) {
	case stateList:
		if len(s.items) > 0 {
			out = append(out, List{Kind: s.kind, Items: s.items})
		}
	case stateTable:
		if len(s.rows) > 0 {
			out = append(out, Table{Rows: s.rows})
		}
	}
	return out
}

func matchListItem(line string) (ListKind, string, bool) {
	if m := bulletItemRe.FindStringSubmatch(line); m != nil {
		return ListBullet, m[1], true
	}
	if m := orderedItemRe.FindStringSubmatch(line); m != nil {
		return ListOrdered, m[1], true
	}
	return 0, "", false
}

// isTableDelimiter reports whether a line separates a table header from
// its body: after stripping one optional outer pipe pair, every cell is
// optional colons around three or more hyphens.
func isTableDelimiter(line string) bool {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	cells := strings.Split(s, "|")
	for _, cell := range cells {
		if !delimiterCellRe.MatchString(strings.TrimSpace(cell)) {
			return false
		}
	}
	return len(cells) > 0
}

// splitTableRow splits a pipe row into trimmed cells, tolerating one
// optional leading and trailing pipe. Cell counts are not validated
// against the header; ragged rows pass through.
func splitTableRow(line string) []string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	cells := strings.Split(s, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

func leadingWhitespace(line string) int {
	count := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		count++
	}
	return count
}
