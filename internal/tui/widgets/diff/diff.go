package diff

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "marknote/internal/tui/util"
)

var (
    delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
    addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
    addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
    faint   = lipgloss.NewStyle().Faint(true)
)

type DiffView struct {
    NoColor bool
}

func NewDiffView(noColor bool) DiffView { return DiffView{NoColor: util.NoColor(noColor)} }

// View renders what changed between the saved content and the live buffer.
// When both have the same number of lines each changed pair gets intraline
// highlights; otherwise a line-level diff is shown. Markup is shown raw.
func (v DiffView) View(saved, current string) string {
    var b strings.Builder
    b.WriteString("SAVED vs CURRENT\n")
    if saved == current {
        b.WriteString("No changes\n")
        return b.String()
    }
    sLines := strings.Split(saved, "\n")
    cLines := strings.Split(current, "\n")
    if len(sLines) == len(cLines) {
        for i := range sLines {
            v.pair(&b, sLines[i], cLines[i])
        }
        return b.String()
    }
    v.lines(&b, saved, current)
    return b.String()
}

func (v DiffView) pair(b *strings.Builder, before, after string) {
    if before == after {
        if strings.TrimSpace(before) != "" {
            b.WriteString("  " + v.paint(faint, before) + "\n")
        }
        return
    }
    d := dmp.New()
    diffs := d.DiffMain(before, after, false)
    diffs = d.DiffCleanupSemantic(diffs)

    b.WriteString(v.paint(delLine, "- "))
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            b.WriteString(v.mark(delChar, "[-", df.Text, "-]"))
        case dmp.DiffEqual:
            b.WriteString(v.paint(delLine, df.Text))
        }
    }
    b.WriteString("\n")
    b.WriteString(v.paint(addLine, "+ "))
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffInsert:
            b.WriteString(v.mark(addChar, "{+", df.Text, "+}"))
        case dmp.DiffEqual:
            b.WriteString(v.paint(addLine, df.Text))
        }
    }
    b.WriteString("\n")
}

func (v DiffView) lines(b *strings.Builder, saved, current string) {
    d := dmp.New()
    a, c, arr := d.DiffLinesToChars(saved, current)
    diffs := d.DiffCharsToLines(d.DiffMain(a, c, false), arr)
    for _, df := range diffs {
        text := strings.TrimSuffix(df.Text, "\n")
        for _, l := range strings.Split(text, "\n") {
            switch df.Type {
            case dmp.DiffDelete:
                b.WriteString(v.paint(delLine, "- "+l) + "\n")
            case dmp.DiffInsert:
                b.WriteString(v.paint(addLine, "+ "+l) + "\n")
            case dmp.DiffEqual:
                b.WriteString("  " + v.paint(faint, l) + "\n")
            }
        }
    }
}

func (v DiffView) paint(st lipgloss.Style, s string) string {
    if v.NoColor {
        return s
    }
    return st.Render(s)
}

// mark highlights changed characters; without color they get bracketed.
func (v DiffView) mark(st lipgloss.Style, open, s, close string) string {
    if v.NoColor {
        return open + s + close
    }
    return st.Render(s)
}
