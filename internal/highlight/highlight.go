// Package highlight tokenizes code strings into colored spans for
// document rendering, backed by chroma. Unknown languages degrade to a
// single default-colored span instead of failing.
package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultColor is used for plain text and for tokens the style does not
// color.
const DefaultColor = "#333333"

const styleName = "github"

// Span is one run of code with its display color.
type Span struct {
	Text  string
	Color string
}

// Plain wraps code in a single default-colored span.
func Plain(code string) []Span {
	return []Span{{Text: code, Color: DefaultColor}}
}

// Spans tokenizes code with the given language hint. The spans
// concatenate back to the input text. An empty, unknown, or
// untokenizable hint yields a single plain span.
func Spans(code, language string) []Span {
	if language == "" || language == "text" {
		return Plain(code)
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return Plain(code)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return Plain(code)
	}

	style := styles.Get(styleName)
	var spans []Span
	for token := iterator(); token != chroma.EOF; token = iterator() {
		color := DefaultColor
		if entry := style.Get(token.Type); entry.Colour.IsSet() {
			color = entry.Colour.String()
		}
		spans = append(spans, Span{Text: token.Value, Color: color})
	}
	if len(spans) == 0 {
		return Plain(code)
	}
	return spans
}
