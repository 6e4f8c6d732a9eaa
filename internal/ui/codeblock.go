package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

var codeBlockStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var langBadgeStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("245")).
	Bold(true)

// renderCodeBlock highlights a snippet and frames it with a language badge.
func renderCodeBlock(language, code string, maxWidth int) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	header := ""
	if language != "" {
		header = langBadgeStyle.Render(language) + "\n"
	}
	if maxWidth < 20 {
		maxWidth = 20
	}
	return codeBlockStyle.MaxWidth(maxWidth).Render(header + highlightCode(code, language))
}

// highlightCode runs chroma over the snippet; on any failure the plain text
// comes back unchanged.
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}
