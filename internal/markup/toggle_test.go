package markup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleBoldWrapsAndUnwraps(t *testing.T) {
	buf, sel := ToggleBold("Hello\n\nWorld", Selection{Start: 0, End: 5})
	assert.Equal(t, "**Hello**\n\nWorld", buf)
	assert.Equal(t, Selection{Start: 2, End: 7}, sel)

	buf, sel = ToggleBold(buf, sel)
	assert.Equal(t, "Hello\n\nWorld", buf)
	assert.Equal(t, Selection{Start: 0, End: 5}, sel)
}

func TestToggleCaretSeedsEmptySpan(t *testing.T) {
	buf, sel := ToggleBold("ab", Caret(1))
	assert.Equal(t, "a****b", buf)
	assert.Equal(t, Caret(3), sel)

	buf, sel = ToggleUnderline("", Caret(0))
	assert.Equal(t, "____", buf)
	assert.Equal(t, Caret(2), sel)
}

func TestToggleRoundTrip(t *testing.T) {
	cases := []struct {
		buf    string
		sel    Selection
		sm, em string
	}{
		{"one two three", Selection{Start: 4, End: 7}, "**", "**"},
		{"one two three", Selection{Start: 0, End: 13}, "*", "*"},
		{"title\nbody line", Selection{Start: 6, End: 10}, "__", "__"},
		{"héllo wörld", Selection{Start: 6, End: 11}, "[color:#00FF00]", "[/color]"},
		{"x", Selection{Start: 0, End: 1}, "[size:30]", "[/size]"},
	}
	for _, c := range cases {
		wrapped, sel := Toggle(c.buf, c.sel, c.sm, c.em)
		selected := string([]rune(c.buf)[c.sel.Start:c.sel.End])
		assert.Contains(t, wrapped, c.sm+selected+c.em)
		assert.Equal(t, selected, string([]rune(wrapped)[sel.Start:sel.End]))

		back, sel2 := Toggle(wrapped, sel, c.sm, c.em)
		assert.Equal(t, c.buf, back)
		assert.Equal(t, c.sel, sel2)
	}
}

func TestToggleCountsRunes(t *testing.T) {
	buf, sel := ToggleItalic("héllo wörld", Selection{Start: 6, End: 11})
	assert.Equal(t, "héllo *wörld*", buf)
	assert.Equal(t, Selection{Start: 7, End: 12}, sel)
}

func TestToggleAdjacencyIsLiteral(t *testing.T) {
	// The surrounding '*' are unrelated text but still count as a wrapper.
	buf, sel := ToggleItalic("a*b*c", Selection{Start: 2, End: 3})
	assert.Equal(t, "abc", buf)
	assert.Equal(t, Selection{Start: 1, End: 2}, sel)
}

func TestToggleOnlyRemovesAdjacentMarkers(t *testing.T) {
	buf, sel := ToggleBold("**x** **y**", Selection{Start: 8, End: 9})
	assert.Equal(t, "**x** y", buf)
	assert.Equal(t, Selection{Start: 6, End: 7}, sel)
}

func TestApplyColorAndSize(t *testing.T) {
	buf, sel, err := ApplyColor("Hi", Selection{Start: 0, End: 2}, "#FF0000")
	require.NoError(t, err)
	assert.Equal(t, "[color:#FF0000]Hi[/color]", buf)
	assert.Equal(t, Selection{Start: 15, End: 17}, sel)

	buf, sel, err = ApplyFontSize("Hi", Selection{Start: 0, End: 2}, 24)
	require.NoError(t, err)
	assert.Equal(t, "[size:24]Hi[/size]", buf)
	assert.Equal(t, Selection{Start: 9, End: 11}, sel)

	buf, sel, err = ApplyFontSize(buf, sel, 24)
	require.NoError(t, err)
	assert.Equal(t, "Hi", buf)
	assert.Equal(t, Selection{Start: 0, End: 2}, sel)
}

func TestApplyRejectsBadParameters(t *testing.T) {
	buf, sel, err := ApplyColor("Hi", Selection{Start: 0, End: 2}, "#12345G")
	assert.True(t, errors.Is(err, ErrInvalidMarker))
	assert.Equal(t, "Hi", buf)
	assert.Equal(t, Selection{Start: 0, End: 2}, sel)

	_, _, err = ApplyColor("Hi", Selection{Start: 0, End: 2}, "red")
	assert.ErrorIs(t, err, ErrInvalidMarker)

	_, _, err = ApplyFontSize("Hi", Selection{Start: 0, End: 2}, 0)
	assert.ErrorIs(t, err, ErrInvalidMarker)
}

func TestInsertAt(t *testing.T) {
	buf, sel := InsertAt("Hello World", "Go", Selection{Start: 6, End: 11})
	assert.Equal(t, "Hello Go", buf)
	assert.Equal(t, Caret(8), sel)

	buf, sel = InsertAt("ab", "ñ", Caret(1))
	assert.Equal(t, "añb", buf)
	assert.Equal(t, Caret(2), sel)
}

func TestSelectionPreconditions(t *testing.T) {
	assert.ErrorIs(t, Selection{Start: 3, End: 2}.Validate(5), ErrSelectionOutOfRange)
	assert.ErrorIs(t, Selection{Start: 0, End: 6}.Validate(5), ErrSelectionOutOfRange)
	assert.ErrorIs(t, Selection{Start: -1, End: 0}.Validate(5), ErrSelectionOutOfRange)
	assert.NoError(t, Caret(5).Validate(5))

	assert.Panics(t, func() { ToggleBold("abc", Selection{Start: 0, End: 4}) })
	assert.Panics(t, func() { InsertAt("abc", "x", Selection{Start: 2, End: 1}) })
	assert.Panics(t, func() { SetAlignment("abc", Caret(9), AlignCenter) })
}

func TestLineIndexAndStart(t *testing.T) {
	buf := "Title\nLine one\nLine two"
	assert.Equal(t, 0, LineIndexAt(buf, 5))
	assert.Equal(t, 1, LineIndexAt(buf, 6))
	assert.Equal(t, 2, LineIndexAt(buf, 23))
	assert.Equal(t, 0, LineStart(buf, 0))
	assert.Equal(t, 6, LineStart(buf, 1))
	assert.Equal(t, 15, LineStart(buf, 2))
	assert.Equal(t, -1, LineStart(buf, 3))
}
