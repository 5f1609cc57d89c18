package markup

import (
	"errors"
	"fmt"
)

var (
	// ErrSelectionOutOfRange marks a selection that does not fit its buffer.
	ErrSelectionOutOfRange = errors.New("selection out of range")
	// ErrInvalidMarker is returned when a marker parameter would never parse back.
	ErrInvalidMarker = errors.New("invalid marker parameter")
)

// Selection is a rune-offset range into a buffer. Start == End is a caret.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Caret returns a collapsed selection at off.
func Caret(off int) Selection { return Selection{Start: off, End: off} }

func (s Selection) IsEmpty() bool { return s.Start == s.End }

func (s Selection) Len() int { return s.End - s.Start }

// Validate reports whether s fits a buffer of n runes.
func (s Selection) Validate(n int) error {
	if s.Start < 0 || s.Start > s.End || s.End > n {
		return fmt.Errorf("%w: {%d,%d} in buffer of %d", ErrSelectionOutOfRange, s.Start, s.End, n)
	}
	return nil
}

// mustFit panics when sel is invalid for r. Out-of-range selections are a
// caller bug and must not be clamped away.
func mustFit(r []rune, sel Selection) {
	if err := sel.Validate(len(r)); err != nil {
		panic(err)
	}
}

// InsertAt replaces the selected text with text and collapses the caret right
// after the insertion.
func InsertAt(buffer, text string, sel Selection) (string, Selection) {
	r := []rune(buffer)
	mustFit(r, sel)
	ins := []rune(text)
	out := make([]rune, 0, len(r)-sel.Len()+len(ins))
	out = append(out, r[:sel.Start]...)
	out = append(out, ins...)
	out = append(out, r[sel.End:]...)
	return string(out), Caret(sel.Start + len(ins))
}

// LineIndexAt returns the 0-based line holding offset: the count of line
// breaks before it.
func LineIndexAt(buffer string, offset int) int {
	r := []rune(buffer)
	if offset < 0 || offset > len(r) {
		panic(fmt.Errorf("%w: offset %d in buffer of %d", ErrSelectionOutOfRange, offset, len(r)))
	}
	n := 0
	for _, c := range r[:offset] {
		if c == '\n' {
			n++
		}
	}
	return n
}

// LineStart returns the rune offset of the first character of line, or -1
// when the buffer has fewer lines.
func LineStart(buffer string, line int) int {
	if line == 0 {
		return 0
	}
	n := 0
	for i, c := range []rune(buffer) {
		if c == '\n' {
			n++
			if n == line {
				return i + 1
			}
		}
	}
	return -1
}

func runeLen(s string) int { return len([]rune(s)) }
