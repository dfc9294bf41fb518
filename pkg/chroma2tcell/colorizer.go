// Package chroma2tcell renders chroma tokens as tview color tags.
package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

// DefaultStyle is the chroma style used by the file preview pane.
const DefaultStyle = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		color := style.Get(token.Type)
		if color.IsZero() {
			sb.WriteString(tview.Escape(token.Value))
			continue
		}

		// Map the chroma colour to a tview [color] tag via its hex form.
		sb.WriteString("[" + color.Colour.String() + "]")
		sb.WriteString(tview.Escape(token.Value))
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

// HighlightByFileName colorizes with the lexer matched to the file
// name. ok == false means no lexer matched and the text is returned
// escaped but unstyled.
func HighlightByFileName(name, text string) (colorized string, ok bool, err error) {
	lexer := lexers.Match(name)
	if lexer == nil {
		return tview.Escape(text), false, nil
	}
	colorized, err = Colorize(text, DefaultStyle, lexer)
	return colorized, err == nil, err
}
