package htmlmd

import (
	"regexp"
	"strings"
)

var (
	// Bare language token alone on a line, e.g. "Python" above a fence.
	languageHeaderRe = regexp.MustCompile(`^([ \t]*)([A-Za-z0-9_+]+)[ \t]*$`)

	// Bare fence line with no language tag.
	bareFenceRe = regexp.MustCompile("^([ \t]*)```[ \t]*$")

	// Standard fence line with an unbracketed language tag.
	taggedFenceRe = regexp.MustCompile("^([ \t]*)```([A-Za-z0-9_+.\\-]+)[ \t]*$")

	// Fence line with a bracketed language tag, the normalized form.
	bracketedFenceRe = regexp.MustCompile("^[ \t]*```\\{")

	// Any fence line, bracketed or not, used for open/close parity.
	anyFenceRe = regexp.MustCompile("^[ \t]*```")
)

// languageAliases folds equivalent tags into the one the document engine
// recognizes.
var languageAliases = map[string]string{
	"markdown": "md",
	"c++":      "cpp",
}

// NormalizeCodeFences makes fenced-code syntax consistent: merges
// "language on the line above a bare fence" into a bracketed fence,
// rewrites ```lang into ```{lang}, and fixes blank-line spacing around
// fences. Pure string transform; idempotent.
func NormalizeCodeFences(markdown string) string {
	lines := strings.Split(markdown, "\n")
	lines = mergeFenceHeaders(lines)
	lines = bracketFenceLanguages(lines)
	lines = spaceFences(lines)
	return strings.Join(lines, "\n")
}

// mergeFenceHeaders collapses a bare language token immediately above a
// bare fence with the same indentation into a single bracketed fence.
// Fence parity is tracked so a lone-word code line is never merged with
// the closing fence below it.
func mergeFenceHeaders(lines []string) []string {
	inFence := false
	for i := 0; i < len(lines); i++ {
		if anyFenceRe.MatchString(lines[i]) {
			inFence = !inFence
			continue
		}
		if inFence || i+1 >= len(lines) {
			continue
		}
		header := languageHeaderRe.FindStringSubmatch(lines[i])
		if header == nil {
			continue
		}
		fence := bareFenceRe.FindStringSubmatch(lines[i+1])
		if fence == nil || fence[1] != header[1] {
			continue
		}
		lines[i] = ""
		lines[i+1] = header[1] + "```{" + normalizeLanguage(header[2]) + "}"
		// The merged line opens the block the token headed.
		inFence = true
		i++
	}
	return lines
}

// bracketFenceLanguages rewrites every opening ```lang fence line to
// ```{lang}. Lines inside an open fence are code and left untouched.
func bracketFenceLanguages(lines []string) []string {
	inFence := false
	for i, line := range lines {
		if !anyFenceRe.MatchString(line) {
			continue
		}
		if !inFence {
			if m := taggedFenceRe.FindStringSubmatch(line); m != nil {
				lines[i] = m[1] + "```{" + normalizeLanguage(m[2]) + "}"
			}
		}
		inFence = !inFence
	}
	return lines
}

// spaceFences ensures exactly one blank line precedes every bracketed
// opening fence and strips blank lines immediately before a closing
// fence. Open/close state is tracked by fence parity so code content is
// otherwise left untouched.
func spaceFences(lines []string) []string {
	out := make([]string, 0, len(lines))
	inFence := false

	for _, line := range lines {
		if !anyFenceRe.MatchString(line) {
			out = append(out, line)
			continue
		}

		if inFence {
			// Closing fence: drop blank lines accumulated before it.
			for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
				out = out[:len(out)-1]
			}
			out = append(out, line)
			inFence = false
			continue
		}

		if bracketedFenceRe.MatchString(line) {
			for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
				out = out[:len(out)-1]
			}
			if len(out) > 0 {
				out = append(out, "")
			}
		}
		out = append(out, line)
		inFence = true
	}

	return out
}

func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if alias, ok := languageAliases[lang]; ok {
		return alias
	}
	return lang
}
