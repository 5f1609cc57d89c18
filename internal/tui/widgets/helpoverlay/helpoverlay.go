package helpoverlay

import (
    "fmt"
    "strings"

    "marknote/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current view indicated.
func (HelpOverlay) View(s state.EditorState) string {
    view := "Editor"
    if s.View == state.FavoritesView {
        view = "Favorites"
    }
    sections := []struct {
        title string
        keys  []string
    }{
        {"Selection", []string{"ctrl+space: set mark", "esc: clear mark"}},
        {"Style", []string{"ctrl+b: bold", "ctrl+t: italic", "ctrl+u: underline", "ctrl+k: color", "ctrl+z: size"}},
        {"Alignment", []string{"alt+l: left", "alt+e: center", "alt+r: right"}},
        {"Document", []string{"ctrl+s: save", "ctrl+p: add page", "ctrl+o: open", "ctrl+n: new", "ctrl+d: changes since save", "ctrl+y: copy"}},
        {"Favorites", []string{"ctrl+f: toggle favorite", "ctrl+g: favorites list", "/: search"}},
        {"App", []string{"f1: help", "ctrl+c: quit"}},
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (View: %s)\n", view)
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.title)
        for _, k := range sec.keys {
            fmt.Fprintf(&b, "  %s\n", k)
        }
    }
    return b.String()
}
