package documents

import (
    "strings"
    "testing"

    "marknote/internal/store"
)

func TestRenderRowIntegration(t *testing.T) {
    out := RenderRow("Groceries", store.Entry{Content: "Groceries\nmilk", PageCount: 2, IsFavorite: true}, true) // noColor

    wants := []string{"Groceries", "[★ Favorite]", "[Pages 2]"}
    for _, w := range wants {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in output: %s", w, out)
        }
    }
    if strings.Index(out, "[") != titleWidth+1 {
        t.Fatalf("expected chips after a %d rune title column: %q", titleWidth, out)
    }
}

func TestRenderRowTruncatesLongTitles(t *testing.T) {
    long := strings.Repeat("x", 40)
    out := RenderRow(long, store.Entry{PageCount: 1}, true)
    if strings.Contains(out, long) || !strings.Contains(out, "…") {
        t.Fatalf("expected truncated title: %q", out)
    }
    if strings.Contains(out, "Favorite") {
        t.Fatalf("unexpected favorite chip: %q", out)
    }
}
