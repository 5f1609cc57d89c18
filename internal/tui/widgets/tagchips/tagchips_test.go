package tagchips

import (
    "strings"
    "testing"

    "marknote/internal/tui/state"
    "marknote/internal/tui/util"
)

func TestRenderTagsNoColor(t *testing.T) {
    s := state.SetBuffer(state.NewEditorState(), "Notes\none two three", 0)
    s.Favorite = true
    tags := util.ComputeTags(s, "", false)
    out := View(tags, true)

    wants := []string{"[★ Favorite]", "[Modified]", "[Pages 1]", "[Words 3]", "[Chars 13]"}
    for _, w := range wants {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in output: %s", w, out)
        }
    }
    if strings.Contains(out, "Sel") {
        t.Fatalf("no selection chip expected: %s", out)
    }
}

func TestEmptyTags(t *testing.T) {
    if View(nil, true) != "" {
        t.Fatalf("expected empty output")
    }
}
