package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
    Primary   lipgloss.Color
    Success   lipgloss.Color
    Danger    lipgloss.Color
    Warning   lipgloss.Color
    Muted     lipgloss.Color
    MutedDark lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Primary:   lipgloss.Color("#3D6DFF"),
        Success:   lipgloss.Color("#2AA876"),
        Danger:    lipgloss.Color("#D9534F"),
        Warning:   lipgloss.Color("#F0AD4E"),
        Muted:     lipgloss.Color("#6C757D"),
        MutedDark: lipgloss.Color("#5A5A5A"),
    }
}

// Swatch renders a color picker entry on its own background. Light colors get
// dark text so the name stays readable.
func Swatch(name, hex string, noColor bool) string {
    if NoColor(noColor) {
        return "[" + name + " " + hex + "]"
    }
    fg := lipgloss.Color("#FFFFFF")
    if isLight(hex) {
        fg = lipgloss.Color("#111111")
    }
    return lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color(hex)).Foreground(fg).Render(name)
}

func isLight(hex string) bool {
    if len(hex) != 7 {
        return false
    }
    var sum int
    for i := 1; i < 7; i += 2 {
        sum += hexByte(hex[i])*16 + hexByte(hex[i+1])
    }
    return sum > 3*160
}

func hexByte(c byte) int {
    switch {
    case c >= '0' && c <= '9':
        return int(c - '0')
    case c >= 'a' && c <= 'f':
        return int(c-'a') + 10
    case c >= 'A' && c <= 'F':
        return int(c-'A') + 10
    }
    return 0
}
