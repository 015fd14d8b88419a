package blocks

import (
	"reflect"
	"testing"
)

func TestParseHeadings(t *testing.T) {
	t.Parallel()

	got := Parse("# Title\n## Section\n### Deep\n####### Deepest")
	expected := []Block{
		Heading{Level: 1, Text: "Title", TOCEligible: true},
		Heading{Level: 2, Text: "Section"},
		Heading{Level: 3, Text: "Deep"},
		Heading{Level: 7, Text: "Deepest"},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("got %+v, expected %+v", got, expected)
	}
}

func TestHeadingStyleNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    int
		expected string
	}{
		{1, "header"},
		{2, "subheader"},
		{3, "h3"},
		{7, "h7"},
	}
	for _, tt := range tests {
		tt := tt
		if got := (Heading{Level: tt.level}).StyleName(); got != tt.expected {
			t.Errorf("level %d: got %q, expected %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseCodeBlock(t *testing.T) {
	t.Parallel()

	got := Parse("```{python}\nprint(1)\n\nprint(2)\n```")
	if len(got) != 1 {
		t.Fatalf("got %d blocks, expected 1", len(got))
	}
	code, ok := got[0].(CodeBlock)
	if !ok {
		t.Fatalf("got %T, expected CodeBlock", got[0])
	}
	if code.Language != "python" {
		t.Errorf("got language %q, expected %q", code.Language, "python")
	}
	if code.RawText != "print(1)\n\nprint(2)" {
		t.Errorf("got raw text %q", code.RawText)
	}
}

func TestParseCodeBlockBareLanguage(t *testing.T) {
	t.Parallel()

	got := Parse("```Go\nx := 1\n```")
	code := got[0].(CodeBlock)
	if code.Language != "go" {
		t.Errorf("got language %q, expected %q", code.Language, "go")
	}
}

func TestParseCodeBlockIndented(t *testing.T) {
	t.Parallel()

	got := Parse("    ```{sh}\n    ls\n    ```")
	code := got[0].(CodeBlock)
	if code.IndentUnits != 4 {
		t.Errorf("got indent %d, expected 4", code.IndentUnits)
	}
	if code.RawText != "    ls" {
		t.Errorf("got raw text %q", code.RawText)
	}
}

func TestCodeBlockDisplayTextWidensIndent(t *testing.T) {
	t.Parallel()

	code := CodeBlock{RawText: "if x:\n  y()\n    z()"}
	expected := "if x:\n    y()\n        z()"
	if got := code.DisplayText(); got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
}

func TestParseUnterminatedFenceDropped(t *testing.T) {
	t.Parallel()

	if got := Parse("```{go}\nx := 1"); len(got) != 0 {
		t.Errorf("got %d blocks, expected none", len(got))
	}
}

func TestParseTable(t *testing.T) {
	t.Parallel()

	got := Parse("| a | b |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |\nafter")
	if len(got) != 2 {
		t.Fatalf("got %d blocks, expected table and paragraph", len(got))
	}
	table, ok := got[0].(Table)
	if !ok {
		t.Fatalf("got %T, expected Table", got[0])
	}
	expectedRows := [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}}
	if !reflect.DeepEqual(table.Rows, expectedRows) {
		t.Errorf("got rows %v, expected %v", table.Rows, expectedRows)
	}
	if table.HeaderRowIndex != 0 {
		t.Errorf("got header row %d, expected 0", table.HeaderRowIndex)
	}
	if _, ok := got[1].(Paragraph); !ok {
		t.Errorf("closing line should re-evaluate as paragraph, got %T", got[1])
	}
}

func TestParseTableRaggedRowsKept(t *testing.T) {
	t.Parallel()

	got := Parse("| a | b |\n|---|---|\n| only |")
	table := got[0].(Table)
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(table.Rows))
	}
	if !reflect.DeepEqual(table.Rows[1], []string{"only"}) {
		t.Errorf("got %v, expected ragged row kept as-is", table.Rows[1])
	}
}

func TestParsePipeLineWithoutDelimiterIsParagraph(t *testing.T) {
	t.Parallel()

	got := Parse("a | b\nplain")
	if len(got) != 2 {
		t.Fatalf("got %d blocks, expected 2", len(got))
	}
	if _, ok := got[0].(Paragraph); !ok {
		t.Errorf("got %T, expected Paragraph", got[0])
	}
}

func TestTableDelimiterDetection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		expected bool
	}{
		{"|---|---|", true},
		{"--- | ---", true},
		{"|:---|---:|", true},
		{"| :---: |", true},
		{"|--|--|", false},
		{"|---|x|", false},
		{"plain text", false},
		{"", false},
	}
	for _, tt := range tests {
		tt := tt
		if got := isTableDelimiter(tt.line); got != tt.expected {
			t.Errorf("%q: got %v, expected %v", tt.line, got, tt.expected)
		}
	}
}

func TestParseLists(t *testing.T) {
	t.Parallel()

	got := Parse("- one\n- two\n    - nested")
	if len(got) != 1 {
		t.Fatalf("got %d blocks, expected 1", len(got))
	}
	list := got[0].(List)
	if list.Kind != ListBullet {
		t.Errorf("got kind %v, expected bullet", list.Kind)
	}
	if len(list.Items) != 3 {
		t.Fatalf("got %d items, expected 3", len(list.Items))
	}
	if list.Items[2].IndentUnits != 4 {
		t.Errorf("got indent %d, expected 4", list.Items[2].IndentUnits)
	}
}

func TestParseListKindSwitchFlushes(t *testing.T) {
	t.Parallel()

	got := Parse("- bullet\n1. ordered")
	if len(got) != 2 {
		t.Fatalf("got %d blocks, expected 2 lists", len(got))
	}
	if got[0].(List).Kind != ListBullet || got[1].(List).Kind != ListOrdered {
		t.Errorf("kind switch should start a new list block: %+v", got)
	}
}

func TestParseBlankLineKeepsListOpen(t *testing.T) {
	t.Parallel()

	got := Parse("- one\n\n- two")
	if len(got) != 1 {
		t.Fatalf("got %d blocks, expected single list", len(got))
	}
	if items := got[0].(List).Items; len(items) != 2 {
		t.Errorf("got %d items, expected 2", len(items))
	}
}

func TestParseListClosedByParagraph(t *testing.T) {
	t.Parallel()

	got := Parse("- one\ntext after")
	if len(got) != 2 {
		t.Fatalf("got %d blocks, expected list then paragraph", len(got))
	}
	if _, ok := got[0].(List); !ok {
		t.Errorf("got %T, expected List", got[0])
	}
	if _, ok := got[1].(Paragraph); !ok {
		t.Errorf("got %T, expected Paragraph", got[1])
	}
}

func TestParseQuoteAndRule(t *testing.T) {
	t.Parallel()

	got := Parse("> wise words\n---\n***")
	expected := []Block{
		Quote{Runs: []InlineRun{{Kind: RunText, Text: "wise words"}}},
		Rule{},
		Rule{},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("got %+v, expected %+v", got, expected)
	}
}

func TestParseOpenStateFlushedAtEOF(t *testing.T) {
	t.Parallel()

	got := Parse("| a |\n|---|\n| 1 |")
	if len(got) != 1 {
		t.Fatalf("got %d blocks, expected 1", len(got))
	}
	if table := got[0].(Table); len(table.Rows) != 2 {
		t.Errorf("got %d rows, expected 2", len(table.Rows))
	}
}
