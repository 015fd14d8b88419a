// Package transcript turns a parsed page snapshot into an ordered
// conversation transcript and its Markdown rendition. One collector per
// platform locates turn containers and classifies each turn; a shared
// assembler emits the Markdown sections and runs them through the fence
// normalizer.
package transcript

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/go-chat2pdf/internal/htmlmd"
	"github.com/alnah/go-chat2pdf/internal/snapshot"
)

// Role classifies a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one conversation turn in source-DOM order.
type Turn struct {
	Role  Role
	Title string // derived first-sentence heading, user turns only
	Body  string // plain text for user turns, Markdown for assistant turns
	Note  string // trailing caveat text, assistant turns only
	Rule  bool   // a --- separator follows this turn
}

const maxTitleLength = 100

var (
	headingShiftRe   = regexp.MustCompile(`(?m)^(#{1,6}) `)
	blankCollapseRe  = regexp.MustCompile(`\n\s*\n`)
	chatgptUserSel   = `div[data-message-author-role="user"]`
	chatgptAsstSel   = `div[data-message-author-role="assistant"]`
	claudeMessageSel = `div[data-testid="user-message"], div.font-claude-response`
)

// Markdown renders the snapshot's conversation as normalized Markdown.
// A snapshot with no recognizable turns yields an empty string.
func Markdown(snap *snapshot.Snapshot, modelName string) string {
	return Assemble(Turns(snap, modelName), snap.Platform, modelName)
}

// Turns collects the conversation turns for the snapshot's platform.
func Turns(snap *snapshot.Snapshot, modelName string) []Turn {
	switch snap.Platform {
	case snapshot.PlatformChatGPT:
		return collectChatGPT(snap.Doc())
	case snapshot.PlatformClaude:
		return collectClaude(snap.Doc())
	case snapshot.PlatformGemini:
		return collectGemini(snap.Doc())
	}
	return nil
}

// Assemble joins turns into Markdown sections and normalizes fences.
func Assemble(turns []Turn, platform snapshot.Platform, modelName string) string {
	var parts []string
	for _, t := range turns {
		switch t.Role {
		case RoleUser:
			parts = append(parts, "# "+t.Title+"\n\n"+t.Body+"\n")
		case RoleAssistant:
			parts = append(parts, sectionHeader(platform, modelName)+"\n")
			parts = append(parts, t.Body+"\n")
			if t.Note != "" {
				parts = append(parts, "\n> *Note: "+t.Note+"*\n")
			}
		}
		if t.Rule {
			parts = append(parts, "\n---\n")
		}
	}
	return htmlmd.NormalizeCodeFences(strings.Join(parts, "\n"))
}

// sectionHeader is the heading-2 line placed above an assistant turn.
func sectionHeader(platform snapshot.Platform, modelName string) string {
	if platform == snapshot.PlatformChatGPT {
		return fmt.Sprintf("## Answer (%s)", modelName)
	}
	return "## " + modelName
}

func collectChatGPT(doc *goquery.Document) []Turn {
	var turns []Turn
	doc.Find("article").Each(func(_ int, art *goquery.Selection) {
		switch chatgptRole(art) {
		case RoleUser:
			text := chatgptUserText(art)
			turns = append(turns, Turn{
				Role:  RoleUser,
				Title: FirstSentenceTitle(text),
				Body:  text,
			})
		case RoleAssistant:
			body := ""
			if md := art.Find("div.markdown").First(); md.Length() > 0 {
				body = htmlmd.FromSelection(md)
			} else {
				body = art.Text()
			}
			turns = append(turns, Turn{
				Role: RoleAssistant,
				Body: subordinateHeadings(body),
				Rule: true,
			})
		}
	})
	return turns
}

// chatgptRole resolves a turn's role: explicit role attribute first, then
// a nested author-role marker, then a markdown-content marker. Turns with
// none of these are skipped.
func chatgptRole(art *goquery.Selection) Role {
	attr := art.AttrOr("data-role", art.AttrOr("role", ""))
	if attr != "" {
		return Role(attr)
	}
	if art.Find(chatgptUserSel).Length() > 0 {
		return RoleUser
	}
	if art.Find(".markdown").Length() > 0 || art.Find(chatgptAsstSel).Length() > 0 {
		return RoleAssistant
	}
	return ""
}

func chatgptUserText(art *goquery.Selection) string {
	if div := art.Find(chatgptUserSel).First(); div.Length() > 0 {
		return strings.TrimSpace(div.Text())
	}
	if div := art.Find(".whitespace-pre-wrap").First(); div.Length() > 0 {
		return strings.TrimSpace(div.Text())
	}
	return strings.TrimSpace(art.Text())
}

func collectClaude(doc *goquery.Document) []Turn {
	var turns []Turn
	doc.Find(claudeMessageSel).Each(func(_ int, msg *goquery.Selection) {
		if msg.AttrOr("data-testid", "") == "user-message" {
			text := strings.TrimSpace(msg.Text())
			turns = append(turns, Turn{
				Role:  RoleUser,
				Title: FirstSentenceTitle(text),
				Body:  text,
			})
			return
		}
		turns = append(turns, Turn{
			Role: RoleAssistant,
			Body: subordinateHeadings(htmlmd.FromSelection(msg)),
			Rule: true,
		})
	})
	return turns
}

func collectGemini(doc *goquery.Document) []Turn {
	var turns []Turn
	doc.Find(".conversation-container").Each(func(_ int, container *goquery.Selection) {
		query := container.Find("user-query, query-text, query-text-line").First()
		if query.Length() == 0 {
			return
		}

		text := strings.TrimSpace(query.Text())
		if qDiv := query.Find(".query-text, .query-text-line").First(); qDiv.Length() > 0 {
			text = strings.TrimSpace(qDiv.Text())
		}
		turns = append(turns, Turn{
			Role:  RoleUser,
			Title: FirstSentenceTitle(text),
			Body:  text,
		})

		response := container.Find("model-response, model-response-container").First()
		if response.Length() == 0 {
			// The separator still closes the container.
			turns[len(turns)-1].Rule = true
			return
		}

		body := "_No text response found._"
		if md := response.Find(".markdown").First(); md.Length() > 0 {
			injectCodeHeaderLanguages(md)
			body = subordinateHeadings(htmlmd.FromSelection(md))
		}

		note := ""
		if footer := response.Find(".response-container-footer").First(); footer.Length() > 0 {
			note = strings.TrimSpace(footer.Text())
		}

		turns = append(turns, Turn{
			Role: RoleAssistant,
			Body: body,
			Note: note,
			Rule: true,
		})
	})
	return turns
}

// injectCodeHeaderLanguages consumes the language-announcing header
// element above each code block: its text is attached to the following
// pre's code element as a language-* class and the header is removed,
// before Markdown conversion. Headers with no following pre sibling are
// left in place.
func injectCodeHeaderLanguages(md *goquery.Selection) {
	md.Find(".code-block-header").Each(func(_ int, header *goquery.Selection) {
		lang := strings.ToLower(strings.TrimSpace(header.Text()))
		pre := header.NextAllFiltered("pre").First()
		if pre.Length() == 0 {
			return
		}
		if code := pre.Find("code").First(); code.Length() > 0 {
			cls := code.AttrOr("class", "")
			code.SetAttr("class", strings.TrimSpace(cls+" language-"+lang))
		}
		header.Remove()
	})
}

// subordinateHeadings shifts every heading one level down so converted
// content nests under the turn's own heading-2, then collapses redundant
// blank lines.
func subordinateHeadings(markdown string) string {
	shifted := headingShiftRe.ReplaceAllString(markdown, "##$1 ")
	return blankCollapseRe.ReplaceAllString(shifted, "\n\n")
}

// FirstSentenceTitle derives a single-line heading from a user turn: the
// first sentence (split on ./!/? followed by whitespace), truncated to
// 100 characters with a ... suffix, newlines collapsed to spaces.
func FirstSentenceTitle(text string) string {
	title := firstSentence(text)
	if title == "" {
		title = text
	}
	runes := []rune(title)
	if len(runes) > maxTitleLength {
		title = string(runes[:maxTitleLength]) + "..."
	}
	return strings.ReplaceAll(title, "\n", " ")
}

// firstSentence returns text up to and including the first sentence-final
// punctuation mark that is followed by whitespace, or the whole text when
// no such boundary exists.
func firstSentence(text string) string {
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		switch runes[i] {
		case '.', '!', '?':
			if unicode.IsSpace(runes[i+1]) {
				return string(runes[:i+1])
			}
		}
	}
	return text
}
