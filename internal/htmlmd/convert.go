// Package htmlmd converts chat-application DOM subtrees into normalized
// Markdown. The converter is a recursive, depth-first walker over parsed
// HTML nodes; children are rendered before the parent wraps them.
package htmlmd

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DefaultStripTags are pruned wholesale during conversion: interactive
// chrome and imagery carry no transcript text.
var DefaultStripTags = map[string]bool{
	"button": true,
	"img":    true,
	"svg":    true,
}

// defaultCodeLanguage is the fence tag used when no language can be
// detected on a code block.
const defaultCodeLanguage = "text"

// codeToolbarClassFragment marks the toolbar element some chat UIs render
// above a code block; its text holds the language plus copy buttons.
const codeToolbarClassFragment = "bg-token-main-surface-secondary"

// nestedIndent is prepended to every line of a nested list or code block
// inside a list item.
const nestedIndent = "    "

// FromSelection renders every node of a selection to Markdown with the
// default strip set.
func FromSelection(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		b.WriteString(NodeToMarkdown(n, DefaultStripTags))
	}
	return b.String()
}

// NodeToMarkdown renders one DOM node and its subtree to Markdown.
// Tags in stripTags are pruned. Text nodes pass through verbatim; any
// other non-element node renders empty.
func NodeToMarkdown(n *html.Node, stripTags map[string]bool) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	if n.Type != html.ElementNode {
		// Document nodes still need their children rendered.
		if n.Type == html.DocumentNode {
			return childrenToMarkdown(n, stripTags)
		}
		return ""
	}

	tag := strings.ToLower(n.Data)
	if stripTags[tag] {
		return ""
	}

	switch tag {
	case "pre":
		return codeBlockToMarkdown(n)
	case "table":
		return tableToMarkdown(n)
	case "ul", "ol":
		return childrenToMarkdown(n, stripTags) + "\n"
	case "li":
		return listItemToMarkdown(n, stripTags)
	}

	content := childrenToMarkdown(n, stripTags)

	switch tag {
	case "h1", "h2", "h3", "h4":
		// Shift down two levels so extracted headings nest under the
		// turn's own document heading.
		level := int(tag[1]-'0') + 2
		return strings.Repeat("#", level) + " " + content + "\n\n"
	case "p":
		return strings.TrimSpace(content) + "\n\n"
	case "a":
		return "[" + content + "](" + attrValue(n, "href") + ")"
	case "strong", "b":
		return "**" + content + "**"
	case "em", "i":
		return "*" + content + "*"
	case "code":
		return "`" + content + "`"
	case "br":
		return "\n"
	}

	return content
}

// childrenToMarkdown concatenates the rendered Markdown of every child.
func childrenToMarkdown(n *html.Node, stripTags map[string]bool) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(NodeToMarkdown(c, stripTags))
	}
	return b.String()
}

// codeBlockToMarkdown renders a <pre> element as a fenced code block.
// The language comes from the inner code element's language-* class, then
// from the toolbar element's text with copy-button boilerplate stripped,
// then defaults to "text".
func codeBlockToMarkdown(pre *html.Node) string {
	codeTag := findDescendant(pre, "code")
	if codeTag == nil {
		return "\n```\n" + textContent(pre) + "\n```\n"
	}

	language := defaultCodeLanguage
	for _, cls := range strings.Fields(attrValue(codeTag, "class")) {
		if lang, ok := strings.CutPrefix(cls, "language-"); ok {
			language = strings.ToLower(lang)
			break
		}
	}

	if language == defaultCodeLanguage {
		if toolbar := findDivWithClassFragment(pre, codeToolbarClassFragment); toolbar != nil {
			headerText := textContent(toolbar)
			headerText = strings.ReplaceAll(headerText, "Copy code", "")
			headerText = strings.ReplaceAll(headerText, "Copy", "")
			headerText = strings.TrimSpace(headerText)
			if headerText != "" {
				language = strings.ToLower(headerText)
			}
		}
	}

	return "\n```{" + language + "}\n" + textContent(codeTag) + "\n```\n"
}

// tableToMarkdown renders a <table> element as pipe-delimited rows.
// Header rows come from an explicit <thead> and get a --- divider row
// directly beneath; body rows come from <tbody>. Only when neither
// section exists are all rows scanned, and then no divider is emitted.
func tableToMarkdown(table *html.Node) string {
	var rows []string

	appendRow := func(tr *html.Node, withDivider bool) {
		var cells []string
		walkDescendants(tr, func(n *html.Node) bool {
			if n.Type == html.ElementNode && (n.Data == "th" || n.Data == "td") {
				cells = append(cells, " "+strings.TrimSpace(textContent(n))+" ")
				return false
			}
			return true
		})
		if len(cells) == 0 {
			return
		}
		rows = append(rows, "|"+strings.Join(cells, "|")+"|")
		if withDivider {
			dividers := make([]string, len(cells))
			for i := range dividers {
				dividers[i] = "---"
			}
			rows = append(rows, "|"+strings.Join(dividers, "|")+"|")
		}
	}

	thead := findDescendant(table, "thead")
	if thead != nil {
		forEachDescendant(thead, "tr", func(tr *html.Node) { appendRow(tr, true) })
	}

	tbody := findDescendant(table, "tbody")
	switch {
	case tbody != nil:
		forEachDescendant(tbody, "tr", func(tr *html.Node) { appendRow(tr, false) })
	case thead == nil:
		forEachDescendant(table, "tr", func(tr *html.Node) { appendRow(tr, false) })
	}

	return "\n" + strings.Join(rows, "\n") + "\n\n"
}

// listItemToMarkdown renders an <li>, indenting nested lists and code
// blocks by four spaces so they stay attached to the item.
func listItemToMarkdown(li *html.Node, stripTags map[string]bool) string {
	var itemText strings.Builder

	for c := li.FirstChild; c != nil; c = c.NextSibling {
		childMd := NodeToMarkdown(c, stripTags)

		if c.Type == html.ElementNode {
			switch strings.ToLower(c.Data) {
			case "ul", "ol", "pre":
				if s := itemText.String(); s != "" && !strings.HasSuffix(s, "\n") {
					itemText.WriteByte('\n')
				}
				childMd = indentLines(childMd, nestedIndent)
			}
		}

		itemText.WriteString(childMd)
	}

	bullet := "-"
	if li.Parent != nil && strings.ToLower(li.Parent.Data) == "ol" {
		bullet = "1."
	}

	return bullet + " " + strings.TrimSpace(itemText.String()) + "\n"
}

// indentLines prefixes every non-empty line with the given indent.
func indentLines(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

// textContent returns the concatenated text of a subtree.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// findDescendant returns the first descendant element with the given tag.
func findDescendant(n *html.Node, tag string) *html.Node {
	var found *html.Node
	walkDescendants(n, func(c *html.Node) bool {
		if found == nil && c.Type == html.ElementNode && strings.ToLower(c.Data) == tag {
			found = c
			return false
		}
		return found == nil
	})
	return found
}

// forEachDescendant invokes fn for every descendant element with the
// given tag, without descending into matches.
func forEachDescendant(n *html.Node, tag string, fn func(*html.Node)) {
	walkDescendants(n, func(c *html.Node) bool {
		if c.Type == html.ElementNode && strings.ToLower(c.Data) == tag {
			fn(c)
			return false
		}
		return true
	})
}

// findDivWithClassFragment returns the first descendant div whose class
// attribute contains the fragment.
func findDivWithClassFragment(n *html.Node, fragment string) *html.Node {
	var found *html.Node
	walkDescendants(n, func(c *html.Node) bool {
		if found == nil && c.Type == html.ElementNode && c.Data == "div" &&
			strings.Contains(attrValue(c, "class"), fragment) {
			found = c
			return false
		}
		return found == nil
	})
	return found
}

// walkDescendants visits every descendant of n in document order.
// Returning false from fn skips that node's subtree.
func walkDescendants(n *html.Node, fn func(*html.Node) bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if fn(c) {
			walkDescendants(c, fn)
		}
	}
}
