package pickers

import (
    "testing"

    "marknote/internal/config"
)

func TestColorOptionsNoColor(t *testing.T) {
    got := ColorOptions([]config.NamedColor{{Name: "Red", Hex: "#FF0000"}}, true)
    if len(got) != 1 || got[0] != "[Red #FF0000]" {
        t.Fatalf("unexpected options %q", got)
    }
}

func TestSizeOptionsFollowConfigOrder(t *testing.T) {
    got := SizeOptions(config.Default().Sizes)
    if len(got) != 5 || got[0] != "Small (12px)" || got[4] != "Huge (30px)" {
        t.Fatalf("unexpected options %q", got)
    }
}
