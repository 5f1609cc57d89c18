package util

import (
    "marknote/internal/markup"
    "marknote/internal/tui/state"
)

// ComputeTags calculates the status chips for the document in s. saved is the
// stored content for the current title and hasSaved reports whether one exists.
//
// The returned slice preserves a stable order:
//   Favorite, Modified, Pages, Words, Chars, Selected
//
// Rules:
// - Favorite appears only when the document is marked.
// - Modified means the buffer differs from what is stored under its title; a
//   placeholder document is never reported as modified.
// - Pages, Words and Chars are always included (counters). Chars counts the
//   runes of the trimmed body.
// - Selected appears only for a non-empty selection and counts runes.
func ComputeTags(s state.EditorState, saved string, hasSaved bool) []state.Tag {
    tags := make([]state.Tag, 0, 6)

    if s.Favorite {
        tags = append(tags, state.Tag{Kind: state.FAVORITE})
    }

    if !markup.IsPlaceholder(s.Buffer) && (!hasSaved || saved != s.Buffer) {
        tags = append(tags, state.Tag{Kind: state.MODIFIED})
    }

    tags = append(tags, state.Tag{Kind: state.PAGES, Value: s.PageCount})
    tags = append(tags, state.Tag{Kind: state.WORDS, Value: markup.WordCount(s.Buffer)})
    tags = append(tags, state.Tag{Kind: state.CHARS, Value: markup.CharCount(s.Buffer)})

    if n := s.Selection.Len(); n > 0 {
        tags = append(tags, state.Tag{Kind: state.SELECTED, Value: n})
    }
    return tags
}

// Truncate cuts s to at most limit runes, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
    r := []rune(s)
    if limit <= 0 || len(r) <= limit {
        return s
    }
    if limit == 1 {
        return "…"
    }
    return string(r[:limit-1]) + "…"
}

// runeLen returns the length of s in runes (Unicode code points).
func runeLen(s string) int {
    return len([]rune(s))
}

// PadRight pads s with spaces to width runes.
func PadRight(s string, width int) string {
    for n := runeLen(s); n < width; n++ {
        s += " "
    }
    return s
}
