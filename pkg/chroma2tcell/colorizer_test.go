package chroma2tcell

import (
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

func TestColorize(t *testing.T) {
	// No t.Parallel(): subtests swap the global style seams.

	t.Run("with_lexer", func(t *testing.T) {
		lexer := lexers.Get("go")
		s, err := Colorize("package main", DefaultStyle, lexer)
		assert.NoError(t, err)
		assert.Contains(t, s, "package")
		assert.Contains(t, s, "[")
	})

	t.Run("unknown_style_falls_back", func(t *testing.T) {
		lexer := lexers.Get("go")
		getStyleCalls := 0
		fallbackCalls := 0
		oldGetStyle := getStyle
		oldGetFallbackStyle := getFallbackStyle
		defer func() {
			getStyle = oldGetStyle
			getFallbackStyle = oldGetFallbackStyle
		}()
		getStyle = func(name string) *chroma.Style {
			getStyleCalls++
			return nil
		}
		getFallbackStyle = func() *chroma.Style {
			fallbackCalls++
			return styles.Fallback
		}
		s, err := Colorize("", "no_such_style", lexer)
		assert.NoError(t, err)
		assert.Equal(t, 1, getStyleCalls)
		assert.Equal(t, 1, fallbackCalls)
		assert.Equal(t, "", s)
	})

	t.Run("tokenise_error", func(t *testing.T) {
		lexer := &mockLexer{err: fmt.Errorf("tokenise error")}
		_, err := Colorize("text", DefaultStyle, lexer)
		assert.Error(t, err)
	})

	t.Run("zero_color_token_passes_through", func(t *testing.T) {
		lexer := &mockLexer{
			tokens: []chroma.Token{
				{Type: chroma.TokenType(-1), Value: "plain text"},
			},
		}
		oldGetStyle := getStyle
		defer func() { getStyle = oldGetStyle }()
		getStyle = func(name string) *chroma.Style {
			return &chroma.Style{Name: "zero"}
		}

		s, err := Colorize("plain text", "zero", lexer)
		assert.NoError(t, err)
		assert.Equal(t, "plain text", s)
	})
}

func TestHighlightByFileName(t *testing.T) {
	t.Run("matched", func(t *testing.T) {
		s, ok, err := HighlightByFileName("main.go", "package main")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Contains(t, s, "package")
	})

	t.Run("unmatched", func(t *testing.T) {
		s, ok, err := HighlightByFileName("data.bin", "hello")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "hello", s)
	})

	t.Run("escapes_tview_tags", func(t *testing.T) {
		s, ok, err := HighlightByFileName("data.bin", "a [red]b")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, s, "[red[]")
	})
}

type mockLexer struct {
	tokens []chroma.Token
	err    error
}

func (m *mockLexer) Tokenise(options *chroma.TokeniseOptions, text string) (chroma.Iterator, error) {
	_, _ = options, text
	if m.err != nil {
		return nil, m.err
	}
	return chroma.Literator(m.tokens...), nil
}

func (m *mockLexer) Config() *chroma.Config {
	return nil
}

func (m *mockLexer) SetRegistry(_ *chroma.LexerRegistry) chroma.Lexer {
	return m
}

func (m *mockLexer) SetAnalyser(analyser func(text string) float32) chroma.Lexer {
	_ = analyser
	return m
}

func (m *mockLexer) AnalyseText(_ string) float32 {
	return 0
}
