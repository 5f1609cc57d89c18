package preview

import (
    "strings"

    "github.com/charmbracelet/lipgloss"

    "marknote/internal/markup"
)

// Terminal cells have one font size, so sizes map onto weight instead.
const (
    largeSize = 24
    smallSize = 12
)

var (
    titleBase = lipgloss.NewStyle().Bold(true)
    bodyBase  = lipgloss.NewStyle()
)

type Preview struct {
    NoColor bool
}

func New(noColor bool) Preview { return Preview{NoColor: noColor} }

// View renders the decoded buffer. Lines are padded to width so alignment
// shows; width <= 0 leaves every line flush left.
func (p Preview) View(buf string, width int) string {
    doc := markup.Parse(buf)
    lines := make([]string, 0, len(doc.Body)+1)
    lines = append(lines, p.line(doc.Title, width, titleBase))
    for _, l := range doc.Body {
        lines = append(lines, p.line(l, width, bodyBase))
    }
    return strings.Join(lines, "\n")
}

func (p Preview) line(l markup.Line, width int, base lipgloss.Style) string {
    var b strings.Builder
    for _, r := range l.Runs {
        if p.NoColor {
            b.WriteString(r.Text)
            continue
        }
        b.WriteString(RunStyle(base, r.Style).Render(r.Text))
    }
    out := b.String()
    if width <= 0 {
        return out
    }
    return lipgloss.NewStyle().Width(width).Align(Position(l.Alignment)).Render(out)
}

// RunStyle layers a run's attributes over base.
func RunStyle(base lipgloss.Style, st markup.Style) lipgloss.Style {
    s := base
    if st.Bold {
        s = s.Bold(true)
    }
    if st.Italic {
        s = s.Italic(true)
    }
    if st.Underline {
        s = s.Underline(true)
    }
    if st.Color != "" {
        s = s.Foreground(lipgloss.Color(st.Color))
    }
    switch {
    case st.FontSize >= largeSize:
        s = s.Bold(true)
    case st.FontSize > 0 && st.FontSize <= smallSize:
        s = s.Faint(true)
    }
    return s
}

// Position maps an alignment onto lipgloss.
func Position(a markup.Alignment) lipgloss.Position {
    switch a {
    case markup.AlignCenter:
        return lipgloss.Center
    case markup.AlignRight:
        return lipgloss.Right
    default:
        return lipgloss.Left
    }
}
