package pickers

import (
    "fmt"

    "marknote/internal/config"
    "marknote/internal/tui/util"
)

// ColorOptions returns the color picker rows as swatches.
func ColorOptions(colors []config.NamedColor, noColor bool) []string {
    out := make([]string, 0, len(colors))
    for _, c := range colors {
        out = append(out, util.Swatch(c.Name, c.Hex, noColor))
    }
    return out
}

// SizeOptions returns the size picker rows, e.g. "Large (24px)".
func SizeOptions(sizes []config.NamedSize) []string {
    out := make([]string, 0, len(sizes))
    for _, s := range sizes {
        out = append(out, fmt.Sprintf("%s (%dpx)", s.Name, s.Value))
    }
    return out
}
