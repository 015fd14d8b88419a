// Package sniff heuristically extracts display names from page snapshots.
//
// Every extraction is an ordered chain of independent steps tried in
// sequence: specific UI selectors first, then regex equivalents over the
// raw HTML, then broad fallbacks, terminating in a hardcoded default.
// Chains never fail - a panic anywhere inside a step degrades to the
// default value.
package sniff

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/go-chat2pdf/internal/snapshot"
)

// Hardcoded chain defaults.
const (
	DefaultUserName = "User"

	defaultChatGPTModel = "ChatGPT"
	defaultClaudeModel  = "Claude"
	defaultGeminiModel  = "Gemini"
)

// geminiModelNameMaxLen rejects serialized-array matches that are too long
// to be a model label.
const geminiModelNameMaxLen = 40

var (
	emailPattern = regexp.MustCompile(`([a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9_-]+)`)

	chatgptUserMenuPattern = regexp.MustCompile(`data-testid="user-menu-button"[^>]*>([^<]+)<`)
	chatgptUserDivPattern  = regexp.MustCompile(`(?i)<div[^>]*class="[^"]*user-name[^"]*"[^>]*>([^<]+)<`)
	chatgptAriaPattern     = regexp.MustCompile(`(?i)aria-label="[^"]*Model selector, current model is ([^"]+)"`)
	chatgptSlugPattern     = regexp.MustCompile(`(?i)data-message-model-slug="([^"]+)"`)
	chatgptModelPrefix     = regexp.MustCompile(`(?i)^gpt-`)
	ariaModelPattern       = regexp.MustCompile(`current model is (.*)`)

	claudeFullNamePattern = regexp.MustCompile(`\\"full_name\\":\\"([^"\\]+)\\"`)
	claudeAccountPattern  = regexp.MustCompile(`(?is)<div[^>]*class="[^"]*font-semibold[^"]*"[^>]*>(.*?)</div>`)
	claudeModelPattern    = regexp.MustCompile(`(?i)data-testid="model-selector-dropdown"[^>]*>(.*?)</[^>]+>`)

	geminiUserDivPattern = regexp.MustCompile(`(?is)<div[^>]*class="[^"]*gb_g[^"]*"[^>]*>(.*?)</div>`)
	geminiMetaPattern1   = regexp.MustCompile(`(?i)<meta[^>]*name="og-profile-acct"[^>]*content="([^"]+)"[^>]*>`)
	geminiMetaPattern2   = regexp.MustCompile(`(?i)<meta[^>]*content="([^"]+)"[^>]*name="og-profile-acct"[^>]*>`)
	geminiModelPattern   = regexp.MustCompile(`\[\d+,null,null,null,[\\"]*?(Gemini[^\\"]+?)[\\"]*?,null`)
	anyTagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespaceRunPattern = regexp.MustCompile(`\s+`)
)

// step is one heuristic attempt. It reports whether it produced a value.
type step func(*snapshot.Snapshot) (string, bool)

// runChain tries each step in order and returns the first hit, or the
// fallback. A panic in any step short-circuits to the fallback.
func runChain(snap *snapshot.Snapshot, fallback string, steps ...step) (result string) {
	result = fallback
	defer func() {
		if r := recover(); r != nil {
			result = fallback
		}
	}()

	for _, s := range steps {
		if v, ok := s(snap); ok {
			return v
		}
	}
	return fallback
}

// UserName extracts the human user's display name for the snapshot's
// platform. Never fails; the final default is "User".
func UserName(snap *snapshot.Snapshot) string {
	switch snap.Platform {
	case snapshot.PlatformChatGPT:
		return runChain(snap, DefaultUserName,
			selectorText(`[data-testid="user-menu-button"]`),
			selectorText(`div[class^="user-name"]`),
			rawMatch(chatgptUserMenuPattern),
			rawMatch(chatgptUserDivPattern),
			emailLocalPart,
		)
	case snapshot.PlatformClaude:
		return runChain(snap, DefaultUserName,
			rawMatch(claudeFullNamePattern),
			claudeAccountName,
		)
	case snapshot.PlatformGemini:
		return runChain(snap, DefaultUserName,
			selectorText(`div.gb_g`),
			metaContent(`meta[name="og-profile-acct"]`),
			rawTagStripped(geminiUserDivPattern),
			rawMatch(geminiMetaPattern1),
			rawMatch(geminiMetaPattern2),
		)
	}
	return DefaultUserName
}

// ModelName extracts the AI model's display name for the snapshot's
// platform. Never fails; defaults to the platform's product name.
func ModelName(snap *snapshot.Snapshot) string {
	switch snap.Platform {
	case snapshot.PlatformChatGPT:
		return runChain(snap, defaultChatGPTModel,
			chatgptModelSelector,
			chatgptModelSlug,
			chatgptModelSelectorRaw,
			chatgptModelSlugRaw,
		)
	case snapshot.PlatformClaude:
		return runChain(snap, defaultClaudeModel,
			claudeModelDropdown,
			claudeModelDropdownRaw,
		)
	case snapshot.PlatformGemini:
		return geminiModelName(snap.Raw())
	}
	return defaultChatGPTModel
}

// selectorText returns a step yielding the trimmed text of the first
// element matching the selector.
func selectorText(selector string) step {
	return func(snap *snapshot.Snapshot) (string, bool) {
		text := strings.TrimSpace(snap.Find(selector).First().Text())
		return text, text != ""
	}
}

// metaContent returns a step yielding the content attribute of the first
// element matching the selector.
func metaContent(selector string) step {
	return func(snap *snapshot.Snapshot) (string, bool) {
		content, ok := snap.Find(selector).First().Attr("content")
		return content, ok && content != ""
	}
}

// rawMatch returns a step yielding the first capture group of the pattern
// applied to the raw HTML.
func rawMatch(pattern *regexp.Regexp) step {
	return func(snap *snapshot.Snapshot) (string, bool) {
		m := pattern.FindStringSubmatch(snap.Raw())
		if m == nil {
			return "", false
		}
		v := strings.TrimSpace(m[1])
		return v, v != ""
	}
}

// rawTagStripped is rawMatch with embedded tags removed from the capture.
func rawTagStripped(pattern *regexp.Regexp) step {
	return func(snap *snapshot.Snapshot) (string, bool) {
		m := pattern.FindStringSubmatch(snap.Raw())
		if m == nil {
			return "", false
		}
		v := strings.TrimSpace(anyTagPattern.ReplaceAllString(m[1], ""))
		return v, v != ""
	}
}

// emailLocalPart finds an email-like substring and title-cases its local
// part.
func emailLocalPart(snap *snapshot.Snapshot) (string, bool) {
	m := emailPattern.FindStringSubmatch(snap.Raw())
	if m == nil {
		return "", false
	}
	local, _, _ := strings.Cut(m[1], "@")
	if local == "" {
		return "", false
	}
	return titleCaseWord(local), true
}

// claudeAccountName reads the account name div, skipping product branding.
func claudeAccountName(snap *snapshot.Snapshot) (string, bool) {
	var name string
	snap.Find("div.font-semibold").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text != "" && !strings.Contains(text, "Claude") {
			name = text
			return false
		}
		return true
	})
	if name != "" {
		return name, true
	}

	// Raw fallback for the same element.
	m := claudeAccountPattern.FindStringSubmatch(snap.Raw())
	if m == nil {
		return "", false
	}
	text := strings.TrimSpace(anyTagPattern.ReplaceAllString(m[1], ""))
	if text == "" || strings.Contains(text, "Claude") {
		return "", false
	}
	return text, true
}

// chatgptModelSelector reads the model name from the model selector's
// aria-label.
func chatgptModelSelector(snap *snapshot.Snapshot) (string, bool) {
	label, ok := snap.Find(`[aria-label*="Model selector, current model is"]`).First().Attr("aria-label")
	if !ok {
		return "", false
	}
	m := ariaModelPattern.FindStringSubmatch(label)
	if m == nil {
		return "", false
	}
	return "GPT-" + m[1], true
}

// chatgptModelSelectorRaw is the regex equivalent of chatgptModelSelector.
func chatgptModelSelectorRaw(snap *snapshot.Snapshot) (string, bool) {
	m := chatgptAriaPattern.FindStringSubmatch(snap.Raw())
	if m == nil {
		return "", false
	}
	return "GPT-" + m[1], true
}

// chatgptModelSlug derives a display name from the message model slug
// attribute, e.g. "gpt-4o-mini" -> "Gpt 4o Mini".
func chatgptModelSlug(snap *snapshot.Snapshot) (string, bool) {
	slug, ok := snap.Find(`[data-message-model-slug]`).First().Attr("data-message-model-slug")
	if !ok || slug == "" {
		return "", false
	}
	return slugToDisplayName(slug), true
}

// chatgptModelSlugRaw is the regex equivalent of chatgptModelSlug.
func chatgptModelSlugRaw(snap *snapshot.Snapshot) (string, bool) {
	m := chatgptSlugPattern.FindStringSubmatch(snap.Raw())
	if m == nil {
		return "", false
	}
	return slugToDisplayName(m[1]), true
}

// claudeModelDropdown reads the model selector dropdown text.
func claudeModelDropdown(snap *snapshot.Snapshot) (string, bool) {
	text := strings.TrimSpace(snap.Find(`[data-testid="model-selector-dropdown"]`).First().Text())
	if text == "" {
		return "", false
	}
	return "Claude " + text, true
}

// claudeModelDropdownRaw is the regex equivalent of claudeModelDropdown.
func claudeModelDropdownRaw(snap *snapshot.Snapshot) (string, bool) {
	m := claudeModelPattern.FindStringSubmatch(snap.Raw())
	if m == nil {
		return "", false
	}
	text := strings.TrimSpace(whitespaceRunPattern.ReplaceAllString(anyTagPattern.ReplaceAllString(m[1], " "), " "))
	if text == "" {
		return "", false
	}
	return "Claude " + text, true
}

// geminiModelName scans the raw content for the serialized model-list
// pattern Gemini embeds in script payloads. All candidates under 40
// characters with no markup are collected and the longest one wins, as it
// is the most specific label. Falls back to the "Gemini Advanced" literal,
// then the bare product name.
func geminiModelName(raw string) string {
	var candidates []string
	for _, m := range geminiModelPattern.FindAllStringSubmatch(raw, -1) {
		name := strings.TrimSpace(m[1])
		if len(name) < geminiModelNameMaxLen && !strings.ContainsAny(name, "<>") {
			candidates = append(candidates, name)
		}
	}

	if len(candidates) > 0 {
		longest := candidates[0]
		for _, c := range candidates[1:] {
			if len(c) > len(longest) {
				longest = c
			}
		}
		return longest
	}

	if strings.Contains(raw, "Gemini Advanced") {
		return "Gemini Advanced"
	}
	return defaultGeminiModel
}

// slugToDisplayName converts a model slug to a readable label:
// the "gpt-" prefix is uppercased, dashes become spaces, and each word is
// title-cased.
func slugToDisplayName(slug string) string {
	s := chatgptModelPrefix.ReplaceAllString(slug, "GPT-")
	s = strings.ReplaceAll(s, "-", " ")
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = titleCaseWord(w)
	}
	return strings.Join(words, " ")
}

// titleCaseWord uppercases the first byte and lowercases the rest.
func titleCaseWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
