// Package markup implements the note buffer format: selection-aware marker
// toggles, per-line alignment tags and the decoder that turns a buffer into
// styled runs.
//
// A buffer is a single string. Its first line is the title and the rest is the
// body. Offsets are rune offsets.
package markup

import (
	"strings"
	"unicode/utf8"
)

const (
	// Placeholder is the content of a fresh document.
	Placeholder = PlaceholderTitle + "\n\nStart writing here..."
	// PlaceholderTitle is never used as a store key.
	PlaceholderTitle = "Write your title here..."
	// PageBreak is appended when a page is added.
	PageBreak = "\n\n--- New Page ---\n\n"
)

// TitleOf derives the title: the first line without its alignment tag,
// trimmed.
func TitleOf(buffer string) string {
	first, _, _ := strings.Cut(buffer, "\n")
	_, _, rest := AlignmentOf(first)
	return strings.TrimSpace(rest)
}

// BodyOf returns everything after the title line.
func BodyOf(buffer string) string {
	_, body, _ := strings.Cut(buffer, "\n")
	return body
}

// WordCount counts whitespace-separated words in the body.
func WordCount(buffer string) int {
	return len(strings.Fields(BodyOf(buffer)))
}

// CharCount counts the runes of the body with surrounding whitespace trimmed.
func CharCount(buffer string) int {
	return utf8.RuneCountInString(strings.TrimSpace(BodyOf(buffer)))
}

// IsPlaceholder reports whether buffer is empty or still the fresh-document text.
func IsPlaceholder(buffer string) bool {
	return strings.TrimSpace(buffer) == "" || buffer == Placeholder
}
