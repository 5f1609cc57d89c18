package statusbar

import (
    "strings"
    "testing"

    "marknote/internal/tui/state"
)

func TestStatusShowsTitleAndCaret(t *testing.T) {
    s := state.SetBuffer(state.NewEditorState(), "{{align:center}}Notes\nbody", 4)
    out := NewStatusBar().View(s)
    if !strings.HasPrefix(out, "[Editor]  Notes  Pos:4") {
        t.Fatalf("unexpected status: %q", out)
    }
}

func TestStatusShowsSelectionAndNotice(t *testing.T) {
    s := state.SetBuffer(state.NewEditorState(), "Notes\nbody", 6)
    s = state.SetMark(s)
    s = state.MoveCaret(s, 10)
    s.Favorite = true
    out := NewStatusBar().View(s)
    for _, w := range []string{"Sel:6-10", "★", "Mark set"} {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in %q", w, out)
        }
    }
}
