// Package search implements find and replace over document text. Matching
// is case-insensitive and literal: the query is quoted before compiling so
// regex metacharacters in user input match themselves.
package search

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// Match is a located occurrence as a byte range into the text.
type Match struct {
	Start int
	End   int
}

func compile(query string) (*regexp.Regexp, bool) {
	if query == "" {
		return nil, false
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return nil, false
	}
	return re, true
}

// FindNext returns the first occurrence of query at or after the byte
// offset from, wrapping around to the start of text when nothing follows.
// Returns false when the query does not occur at all.
func FindNext(text, query string, from int) (Match, bool) {
	re, ok := compile(query)
	if !ok {
		return Match{}, false
	}
	if from < 0 {
		from = 0
	}
	if from <= len(text) {
		if loc := re.FindStringIndex(text[from:]); loc != nil {
			return Match{Start: from + loc[0], End: from + loc[1]}, true
		}
	}
	// Wrap around
	if loc := re.FindStringIndex(text); loc != nil {
		return Match{Start: loc[0], End: loc[1]}, true
	}
	return Match{}, false
}

// Count returns the number of occurrences of query in text.
func Count(text, query string) int {
	re, ok := compile(query)
	if !ok {
		return 0
	}
	return len(re.FindAllStringIndex(text, -1))
}

// Replace substitutes the first occurrence at or after from (with wrap)
// and returns the new text, the match that was replaced, and whether a
// replacement happened.
func Replace(text, query, replacement string, from int) (string, Match, bool) {
	m, ok := FindNext(text, query, from)
	if !ok {
		return text, Match{}, false
	}
	return text[:m.Start] + replacement + text[m.End:], m, true
}

// ReplaceAll substitutes every occurrence of query and returns the new
// text with the replacement count. Replacement text is inserted literally.
func ReplaceAll(text, query, replacement string) (string, int) {
	re, ok := compile(query)
	if !ok {
		return text, 0
	}
	count := len(re.FindAllStringIndex(text, -1))
	if count == 0 {
		return text, 0
	}
	return re.ReplaceAllLiteralString(text, replacement), count
}

// LineColumn converts a byte offset into 1-based line and column numbers,
// as shown in the status bar. Columns count grapheme clusters, not bytes,
// so multi-byte runes and combining sequences advance the column by one.
func LineColumn(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	before := text[:offset]
	line = strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	return line, uniseg.GraphemeClusterCount(before) + 1
}
