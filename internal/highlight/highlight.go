// Package highlight renders document text with terminal syntax coloring.
package highlight

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// LanguageForPath returns the display name of the language chroma matches
// for the file name, or "Plain Text" when nothing matches. The status bar
// shows this verbatim.
func LanguageForPath(path string) string {
	if path == "" {
		return "Plain Text"
	}
	lexer := lexers.Match(path)
	if lexer == nil {
		return "Plain Text"
	}
	return lexer.Config().Name
}

// Highlight applies syntax highlighting to code using chroma. The lexer is
// chosen from the file name; unknown extensions fall back to plain text.
// Any tokenizing or formatting failure returns the input unchanged.
func Highlight(code, path string) string {
	lexer := lexers.Match(path)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// HighlightLines highlights code and returns it split into lines, keeping
// the line count identical to the input so editors can overlay the result
// row by row.
func HighlightLines(code, path string) []string {
	plain := strings.Split(code, "\n")
	colored := strings.Split(strings.TrimSuffix(Highlight(code, path), "\n"), "\n")
	if len(colored) != len(plain) {
		// The formatter merged or split lines; plain text is safer than a
		// misaligned overlay.
		return plain
	}
	return colored
}
