package statusbar

import (
    "fmt"
    "strings"

    "marknote/internal/tui/state"
    "marknote/internal/tui/util"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting the editor state.
func (StatusBar) View(s state.EditorState) string {
    title := util.Truncate(s.Title(), 32)
    pos := fmt.Sprintf("Sel:%d-%d", s.Selection.Start, s.Selection.End)
    if !s.HasMark() {
        pos = fmt.Sprintf("Pos:%d", s.Caret)
    }
    view := "Editor"
    if s.View == state.FavoritesView {
        view = "Favorites"
    }

    parts := []string{"[" + view + "]", title, pos}
    if s.Favorite {
        parts = append(parts, "★")
    }
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
