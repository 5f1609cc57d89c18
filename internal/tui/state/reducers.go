package state

import (
    "fmt"

    "marknote/internal/markup"
    "marknote/internal/store"
)

// SetBuffer replaces the buffer after typing and moves the caret.
func SetBuffer(s EditorState, buf string, caret int) EditorState {
    s.Buffer = buf
    return MoveCaret(s, caret)
}

// MoveCaret updates the caret and re-derives the selection from the mark.
func MoveCaret(s EditorState, caret int) EditorState {
    s.Caret = caret
    if !s.HasMark() {
        s.Selection = markup.Caret(caret)
        return s
    }
    if s.Mark <= caret {
        s.Selection = markup.Selection{Start: s.Mark, End: caret}
    } else {
        s.Selection = markup.Selection{Start: caret, End: s.Mark}
    }
    return s
}

// SetMark anchors the selection at the caret.
func SetMark(s EditorState) EditorState {
    s.Mark = s.Caret
    s.Notice = "Mark set"
    return MoveCaret(s, s.Caret)
}

// ClearMark collapses the selection to the caret.
func ClearMark(s EditorState) EditorState {
    s.Mark = -1
    s.Notice = ""
    return MoveCaret(s, s.Caret)
}

type mutation func(buffer string, sel markup.Selection) (string, markup.Selection)

// apply runs a markup mutation and keeps the returned selection active so the
// same key toggles the style back off.
func apply(s EditorState, fn mutation) EditorState {
    buf, sel := fn(s.Buffer, s.Selection)
    s.Buffer = buf
    sel = fitSelection(buf, sel)
    if sel.IsEmpty() {
        s.Mark = -1
        return MoveCaret(s, sel.Start)
    }
    s.Mark = sel.Start
    return MoveCaret(s, sel.End)
}

// fitSelection keeps the selection inside the buffer. The alignment engine can
// report offsets past a boundary line when a tag is removed under the caret,
// and the text widget cannot show those.
func fitSelection(buf string, sel markup.Selection) markup.Selection {
    n := len([]rune(buf))
    clamp := func(v int) int {
        if v < 0 {
            return 0
        }
        if v > n {
            return n
        }
        return v
    }
    sel.Start, sel.End = clamp(sel.Start), clamp(sel.End)
    if sel.Start > sel.End {
        sel.Start = sel.End
    }
    return sel
}

func ApplyBold(s EditorState) EditorState      { return apply(s, markup.ToggleBold) }
func ApplyItalic(s EditorState) EditorState    { return apply(s, markup.ToggleItalic) }
func ApplyUnderline(s EditorState) EditorState { return apply(s, markup.ToggleUnderline) }

// ApplyColor toggles a color span; an invalid hex only sets a notice.
func ApplyColor(s EditorState, hex string) EditorState {
    if _, _, err := markup.ColorMarkers(hex); err != nil {
        s.Notice = err.Error()
        return s
    }
    s = apply(s, func(b string, sel markup.Selection) (string, markup.Selection) {
        out, next, _ := markup.ApplyColor(b, sel, hex)
        return out, next
    })
    s.Modal = NoModal
    return s
}

// ApplySize toggles a font size span.
func ApplySize(s EditorState, size int) EditorState {
    if _, _, err := markup.SizeMarkers(size); err != nil {
        s.Notice = err.Error()
        return s
    }
    s = apply(s, func(b string, sel markup.Selection) (string, markup.Selection) {
        out, next, _ := markup.ApplyFontSize(b, sel, size)
        return out, next
    })
    s.Modal = NoModal
    return s
}

// Align sets the alignment of every line the selection touches.
func Align(s EditorState, a markup.Alignment) EditorState {
    return apply(s, func(b string, sel markup.Selection) (string, markup.Selection) {
        return markup.SetAlignment(b, sel, a)
    })
}

// AddPage appends a page break and bumps the page count.
func AddPage(s EditorState) EditorState {
    s.PageCount++
    s.Buffer += markup.PageBreak
    s.Mark = -1
    s = MoveCaret(s, len([]rune(s.Buffer)))
    s.Notice = fmt.Sprintf("Page added: %d pages", s.PageCount)
    return s
}

// ToggleFavorite flips the favorite flag and mirrors it into favs.
func ToggleFavorite(s EditorState, favs *store.Favorites) EditorState {
    s.Favorite = !s.Favorite
    if s.Favorite {
        favs.Add(s.Title())
        s.Notice = "Added to favorites"
    } else {
        favs.Remove(s.Title())
        s.Notice = "Removed from favorites"
    }
    return s
}

// NewDocument resets to the placeholder document.
func NewDocument(s EditorState) EditorState {
    next := NewEditorState()
    next.Width = s.Width
    next.Notice = "New document created"
    return next
}

// LoadDocument replaces the current document with a stored one.
func LoadDocument(s EditorState, st *store.Store, title string) EditorState {
    e, err := st.Get(title)
    if err != nil {
        s.Notice = "Document not found"
        return s
    }
    next := NewEditorState()
    next.Width = s.Width
    next.Buffer = e.Content
    next.PageCount = e.PageCount
    next.Favorite = e.IsFavorite
    next.Notice = fmt.Sprintf("Loaded %q", title)
    return next
}

// Saved records an explicit save.
func Saved(s EditorState) EditorState {
    s.Notice = "Document saved"
    return s
}

func OpenModal(s EditorState, m Modal) EditorState {
    s.Modal = m
    s.Cursor = 0
    return s
}

func CloseModal(s EditorState) EditorState {
    s.Modal = NoModal
    return s
}

func ShowFavorites(s EditorState) EditorState {
    s.View = FavoritesView
    s.Modal = NoModal
    s.Cursor = 0
    return s
}

func ShowEditor(s EditorState) EditorState {
    s.View = EditorView
    return s
}

// MoveCursor moves the list highlight within [0, n).
func MoveCursor(s EditorState, delta, n int) EditorState {
    s.Cursor += delta
    if s.Cursor >= n {
        s.Cursor = n - 1
    }
    if s.Cursor < 0 {
        s.Cursor = 0
    }
    return s
}

// Resize records the terminal width.
func Resize(s EditorState, width int) EditorState {
    s.Width = width
    return s
}
