package markup

import (
	"fmt"
	"strconv"
)

// Fixed inline markers.
const (
	BoldMarker      = "**"
	ItalicMarker    = "*"
	UnderlineMarker = "__"

	colorEnd = "[/color]"
	sizeEnd  = "[/size]"
)

// Toggle wraps the selection in startMarker/endMarker, or unwraps it when the
// markers sit immediately around it. An empty selection seeds an empty span
// and parks the caret inside it.
//
// The "already wrapped" check only looks at the text directly adjacent to the
// selection, so unrelated text that happens to equal the markers is treated
// as a wrapper too.
func Toggle(buffer string, sel Selection, startMarker, endMarker string) (string, Selection) {
	r := []rune(buffer)
	mustFit(r, sel)
	sm, em := []rune(startMarker), []rune(endMarker)

	if sel.IsEmpty() {
		out := splice(r[:sel.Start], sm, em, r[sel.End:])
		return string(out), Caret(sel.Start + len(sm))
	}

	selected := r[sel.Start:sel.End]
	before, after := r[:sel.Start], r[sel.End:]
	if hasSuffix(before, sm) && hasPrefix(after, em) {
		out := splice(before[:len(before)-len(sm)], selected, after[len(em):])
		return string(out), Selection{Start: sel.Start - len(sm), End: sel.End - len(sm)}
	}

	out := splice(before, sm, selected, em, after)
	return string(out), Selection{Start: sel.Start + len(sm), End: sel.End + len(sm)}
}

func ToggleBold(buffer string, sel Selection) (string, Selection) {
	return Toggle(buffer, sel, BoldMarker, BoldMarker)
}

func ToggleItalic(buffer string, sel Selection) (string, Selection) {
	return Toggle(buffer, sel, ItalicMarker, ItalicMarker)
}

func ToggleUnderline(buffer string, sel Selection) (string, Selection) {
	return Toggle(buffer, sel, UnderlineMarker, UnderlineMarker)
}

// ColorMarkers builds the marker pair for a #RRGGBB color.
func ColorMarkers(hex string) (string, string, error) {
	if !isHexColor([]rune(hex)) {
		return "", "", fmt.Errorf("%w: color %q", ErrInvalidMarker, hex)
	}
	return "[color:" + hex + "]", colorEnd, nil
}

// SizeMarkers builds the marker pair for a font size.
func SizeMarkers(size int) (string, string, error) {
	if size <= 0 {
		return "", "", fmt.Errorf("%w: size %d", ErrInvalidMarker, size)
	}
	return "[size:" + strconv.Itoa(size) + "]", sizeEnd, nil
}

// ApplyColor toggles a color span around the selection.
func ApplyColor(buffer string, sel Selection, hex string) (string, Selection, error) {
	sm, em, err := ColorMarkers(hex)
	if err != nil {
		return buffer, sel, err
	}
	b, s := Toggle(buffer, sel, sm, em)
	return b, s, nil
}

// ApplyFontSize toggles a size span around the selection.
func ApplyFontSize(buffer string, sel Selection, size int) (string, Selection, error) {
	sm, em, err := SizeMarkers(size)
	if err != nil {
		return buffer, sel, err
	}
	b, s := Toggle(buffer, sel, sm, em)
	return b, s, nil
}

func splice(parts ...[]rune) []rune {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]rune, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

func hasSuffix(s, suffix []rune) bool {
	if len(suffix) > len(s) {
		return false
	}
	return hasPrefix(s[len(s)-len(suffix):], suffix)
}
