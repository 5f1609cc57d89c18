package state

// TagKind enumerates the document status chips.
type TagKind int

const (
    // Stable ordering for display: Favorite, Modified, Pages, Words, Chars, Selected
    FAVORITE TagKind = iota
    MODIFIED
    PAGES
    WORDS
    CHARS
    SELECTED
)

// Tag represents a single status chip. Value is used for numeric counters
// (page count, word count, body characters, selected runes). Non-numeric tags use Value = 0.
type Tag struct {
    Kind  TagKind
    Value int
}
