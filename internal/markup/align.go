package markup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlignment is returned by ParseAlignment for unsupported values.
var ErrUnknownAlignment = errors.New("unknown alignment")

// Alignment is a paragraph alignment. The zero value is AlignLeft.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment maps "left", "center" and "right" to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

const (
	alignOpen  = "{{align:"
	alignClose = "}}"
)

// AlignTag returns the line prefix for a; left has none.
func AlignTag(a Alignment) string {
	if a == AlignLeft {
		return ""
	}
	return alignOpen + a.String() + alignClose
}

// AlignmentOf strips a leading {{align:...}} tag from line. It returns the
// alignment, the tag as written and the remaining text.
func AlignmentOf(line string) (Alignment, string, string) {
	if !strings.HasPrefix(line, alignOpen) {
		return AlignLeft, "", line
	}
	rest := line[len(alignOpen):]
	for _, a := range []Alignment{AlignLeft, AlignCenter, AlignRight} {
		name := a.String() + alignClose
		if strings.HasPrefix(rest, name) {
			n := len(alignOpen) + len(name)
			return a, line[:n], line[n:]
		}
	}
	return AlignLeft, "", line
}

// SetAlignment applies a to every line touched by sel.
//
// Only the boundary lines correct the selection, each by its own length
// change. Interior lines that grow or shrink do not push sel.End along, so a
// selection spanning three or more lines can drift by the interior tag
// lengths. Callers rely on these exact offsets; keep the adjustment
// line-local until that is revisited.
func SetAlignment(buffer string, sel Selection, a Alignment) (string, Selection) {
	mustFit([]rune(buffer), sel)
	lines := strings.Split(buffer, "\n")
	startLine := LineIndexAt(buffer, sel.Start)
	endLine := LineIndexAt(buffer, sel.End)

	out := sel
	for i := startLine; i <= endLine; i++ {
		orig := lines[i]
		_, _, text := AlignmentOf(orig)
		next := AlignTag(a) + text
		if next == orig {
			continue
		}
		delta := runeLen(next) - runeLen(orig)
		if i == startLine {
			out.Start += delta
		}
		if i == endLine {
			out.End += delta
		}
		lines[i] = next
	}
	return strings.Join(lines, "\n"), out
}

func (a Alignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Alignment) UnmarshalText(b []byte) error {
	v, err := ParseAlignment(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
