package htmlmd

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func fragmentToMarkdown(t *testing.T, fragment string) string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	return FromSelection(doc.Find("body").Children())
}

func TestNodeToMarkdownInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{
			name:     "paragraph with bold",
			fragment: "<p>Use <strong>bold</strong> here</p>",
			expected: "Use **bold** here\n\n",
		},
		{
			name:     "italic variants",
			fragment: "<p><em>a</em> and <i>b</i></p>",
			expected: "*a* and *b*\n\n",
		},
		{
			name:     "link",
			fragment: `<p>See <a href="http://x">text</a></p>`,
			expected: "See [text](http://x)\n\n",
		},
		{
			name:     "link without href",
			fragment: "<p><a>bare</a></p>",
			expected: "[bare]()\n\n",
		},
		{
			name:     "inline code",
			fragment: "<p>run <code>ls</code></p>",
			expected: "run `ls`\n\n",
		},
		{
			name:     "line break",
			fragment: "<p>a<br>b</p>",
			expected: "a\nb\n\n",
		},
		{
			name:     "stripped tags vanish",
			fragment: "<p>hi<button>Copy</button><img src=\"x\"></p>",
			expected: "hi\n\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fragmentToMarkdown(t, tt.fragment)
			if got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestNodeToMarkdownHeadings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{"h1 shifts to h3", "<h1>Title</h1>", "### Title\n\n"},
		{"h2 shifts to h4", "<h2>Sub</h2>", "#### Sub\n\n"},
		{"h4 shifts to h6", "<h4>Deep</h4>", "###### Deep\n\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fragmentToMarkdown(t, tt.fragment)
			if got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestNodeToMarkdownLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{
			name:     "flat bullet list",
			fragment: "<ul><li>one</li><li>two</li></ul>",
			expected: "- one\n- two\n\n",
		},
		{
			name:     "ordered list",
			fragment: "<ol><li>first</li><li>second</li></ol>",
			expected: "1. first\n1. second\n\n",
		},
		{
			name:     "nested list indents four spaces",
			fragment: "<ul><li>a<ul><li>b</li></ul></li></ul>",
			expected: "- a\n    - b\n\n",
		},
		{
			name:     "code block inside list item",
			fragment: `<ul><li>run<pre><code class="language-sh">ls</code></pre></li></ul>`,
			expected: "- run\n\n    ```{sh}\n    ls\n    ```\n\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fragmentToMarkdown(t, tt.fragment)
			if got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestNodeToMarkdownCodeBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{
			name:     "language from class",
			fragment: `<pre><code class="language-Go">x := 1</code></pre>`,
			expected: "\n```{go}\nx := 1\n```\n",
		},
		{
			name:     "language from toolbar header",
			fragment: `<pre><div class="flex bg-token-main-surface-secondary">python<button>Copy code</button></div><code>print(1)</code></pre>`,
			expected: "\n```{python}\nprint(1)\n```\n",
		},
		{
			name:     "no language falls back to text",
			fragment: "<pre><code>plain</code></pre>",
			expected: "\n```{text}\nplain\n```\n",
		},
		{
			name:     "pre without code element",
			fragment: "<pre>raw stuff</pre>",
			expected: "\n```\nraw stuff\n```\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fragmentToMarkdown(t, tt.fragment)
			if got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestNodeToMarkdownTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		expected string
	}{
		{
			name: "thead and tbody",
			fragment: `<table><thead><tr><th>a</th><th>b</th></tr></thead>` +
				`<tbody><tr><td>1</td><td>2</td></tr></tbody></table>`,
			expected: "\n| a | b |\n|---|---|\n| 1 | 2 |\n\n",
		},
		{
			name:     "rows without header get no divider",
			fragment: "<table><tr><td>x</td><td>y</td></tr></table>",
			expected: "\n| x | y |\n\n",
		},
		{
			name: "ragged rows pass through",
			fragment: `<table><thead><tr><th>a</th><th>b</th></tr></thead>` +
				`<tbody><tr><td>only</td></tr></tbody></table>`,
			expected: "\n| a | b |\n|---|---|\n| only |\n\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fragmentToMarkdown(t, tt.fragment)
			if got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}
