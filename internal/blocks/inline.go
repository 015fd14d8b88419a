package blocks

import (
	"regexp"
	"strings"
)

// RunKind classifies an inline formatting run.
type RunKind int

const (
	RunText RunKind = iota
	RunBold
	RunCode
	RunLink
)

// InlineRun is one formatted span of a logical line. URL is set for
// RunLink only. Runs never nest: bold inside a link is not supported.
type InlineRun struct {
	Kind RunKind
	Text string
	URL  string
}

// inlineRe matches **bold**, `code`, or [text](url) spans, shortest
// match first, non-nested.
var (
	inlineRe = regexp.MustCompile("(\\*\\*.*?\\*\\*)|(`.*?`)|(\\[.*?\\]\\(.*?\\))")
	linkRe   = regexp.MustCompile(`^\[(.*?)\]\((.*?)\)$`)
)

// ParseInline splits a single logical line into formatting runs.
// Unmatched segments become Text runs verbatim; empty segments are
// dropped.
func ParseInline(text string) []InlineRun {
	if text == "" {
		return nil
	}

	var runs []InlineRun
	last := 0

	for _, loc := range inlineRe.FindAllStringIndex(text, -1) {
		if seg := text[last:loc[0]]; seg != "" {
			runs = append(runs, InlineRun{Kind: RunText, Text: seg})
		}

		token := text[loc[0]:loc[1]]
		switch {
		case strings.HasPrefix(token, "**"):
			runs = append(runs, InlineRun{Kind: RunBold, Text: token[2 : len(token)-2]})
		case strings.HasPrefix(token, "`"):
			runs = append(runs, InlineRun{Kind: RunCode, Text: token[1 : len(token)-1]})
		default:
			m := linkRe.FindStringSubmatch(token)
			runs = append(runs, InlineRun{Kind: RunLink, Text: m[1], URL: m[2]})
		}

		last = loc[1]
	}

	if seg := text[last:]; seg != "" {
		runs = append(runs, InlineRun{Kind: RunText, Text: seg})
	}

	return runs
}
