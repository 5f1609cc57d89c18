package tagchips

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "marknote/internal/tui/state"
    "marknote/internal/tui/util"
)

// View renders document tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    noColor = util.NoColor(noColor)

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    style := chipStyle(t)
    return style.Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.FAVORITE:
        return "★ Favorite"
    case state.MODIFIED:
        return "Modified"
    case state.PAGES:
        return fmt.Sprintf("Pages %d", t.Value)
    case state.WORDS:
        return fmt.Sprintf("Words %d", t.Value)
    case state.CHARS:
        return fmt.Sprintf("Chars %d", t.Value)
    case state.SELECTED:
        return fmt.Sprintf("Sel %d", t.Value)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    p := util.DefaultPalette()
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
    switch t.Kind {
    case state.FAVORITE:
        return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
    case state.MODIFIED:
        return base.Background(p.Danger).Foreground(lipgloss.Color("#FFFFFF"))
    case state.PAGES:
        return base.Background(p.Muted).Foreground(lipgloss.Color("#FFFFFF"))
    case state.WORDS, state.CHARS:
        return base.Background(p.MutedDark).Foreground(lipgloss.Color("#FFFFFF"))
    case state.SELECTED:
        return base.Background(p.Primary).Foreground(lipgloss.Color("#FFFFFF"))
    default:
        return base
    }
}
