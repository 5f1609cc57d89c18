package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"marknote/internal/config"
	"marknote/internal/markup"
	"marknote/internal/store"
	"marknote/internal/tui/state"
	"marknote/internal/tui/util"
)

func testModel(t *testing.T) model {
	t.Helper()
	cfg := config.Default()
	cfg.SplashDelayMS = 0
	cfg.NoColor = true
	return newModel(Options{Config: cfg, Store: store.New(), Favorites: &store.Favorites{}})
}

func press(t *testing.T, m model, msgs ...tea.KeyMsg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func selectRange(m model, buf string, start, end int) model {
	m.st = state.SetBuffer(m.st, buf, start)
	m.st = state.SetMark(m.st)
	m.st = state.MoveCaret(m.st, end)
	m.syncWidget()
	return m
}

func TestCursorRoundTrip(t *testing.T) {
	ta := textarea.New()
	ta.SetValue("ab\ncd\nef")
	for _, off := range []int{0, 2, 3, 4, 8} {
		moveCursor(&ta, off)
		if got := caretOffset(ta); got != off {
			t.Fatalf("offset %d came back as %d", off, got)
		}
	}
}

func TestRowCol(t *testing.T) {
	if r, c := rowCol("ab\ncd", 4); r != 1 || c != 1 { t.Fatalf("got %d,%d", r, c) }
	if r, c := rowCol("ab", 9); r != 0 || c != 2 { t.Fatalf("expected clamp to end, got %d,%d", r, c) }
}

func TestSplashSkippedWhenDisabled(t *testing.T) {
	m := testModel(t)
	if m.splash { t.Fatalf("splash should be off with a zero delay") }
	if m.ta.Value() != markup.Placeholder { t.Fatalf("expected placeholder in widget, got %q", m.ta.Value()) }
}

func TestBoldKeyTogglesAndAutosaves(t *testing.T) {
	m := selectRange(testModel(t), "Hello\nworld", 6, 11)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	if m.st.Buffer != "Hello\n**world**" { t.Fatalf("unexpected buffer %q", m.st.Buffer) }
	if m.ta.Value() != m.st.Buffer { t.Fatalf("widget out of sync: %q", m.ta.Value()) }
	if caretOffset(m.ta) != m.st.Caret { t.Fatalf("widget caret %d, state caret %d", caretOffset(m.ta), m.st.Caret) }
	e, err := m.store.Get("Hello")
	if err != nil || e.Content != m.st.Buffer { t.Fatalf("expected autosave, got %+v err=%v", e, err) }

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	if m.st.Buffer != "Hello\nworld" { t.Fatalf("expected bold removed, got %q", m.st.Buffer) }
}

func TestTypingClearsMark(t *testing.T) {
	m := selectRange(testModel(t), "Note\nabc", 5, 8)
	m = press(t, m, runes("x"))
	if m.st.HasMark() { t.Fatalf("typing should drop the mark") }
	if !strings.Contains(m.st.Buffer, "x") { t.Fatalf("expected typed rune in %q", m.st.Buffer) }
}

func TestColorPicker(t *testing.T) {
	m := selectRange(testModel(t), "Title\nred", 6, 9)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlK}, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.st.Buffer != "Title\n[color:#FF0000]red[/color]" { t.Fatalf("unexpected buffer %q", m.st.Buffer) }
	if m.st.Modal != state.NoModal { t.Fatalf("picker should close") }
}

func TestAddPageAndConfirmNew(t *testing.T) {
	m := press(t, testModel(t), tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.st.PageCount != 2 || !strings.HasSuffix(m.st.Buffer, markup.PageBreak) {
		t.Fatalf("page not added: %d %q", m.st.PageCount, m.st.Buffer)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.st.Modal != state.ConfirmNewModal { t.Fatalf("expected confirmation") }
	m = press(t, m, runes("n"))
	if m.st.PageCount != 2 { t.Fatalf("cancel should keep the document") }
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN}, runes("y"))
	if m.st.PageCount != 1 || m.st.Buffer != markup.Placeholder { t.Fatalf("expected fresh document") }
}

func TestLoadModalFiltersTitles(t *testing.T) {
	m := testModel(t)
	m.store.Save("Notes", store.Entry{Content: "Notes\nbody", PageCount: 1})
	m.store.Save("Shopping", store.Entry{Content: "Shopping\nmilk", PageCount: 1})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlO}, runes("sho"))
	if items := m.loadItems(); len(items) != 1 || items[0] != "Shopping" { t.Fatalf("unexpected items %q", items) }
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.st.Buffer != "Shopping\nmilk" || m.st.Modal != state.NoModal { t.Fatalf("expected loaded document, got %q", m.st.Buffer) }
}

func TestFavoritesSearch(t *testing.T) {
	m := testModel(t)
	for _, f := range []string{"Alpha", "Beta", "Alphabet"} {
		m.favs.Add(f)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG}, runes("/"), runes("alp"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.st.View != state.FavoritesView || m.st.Cursor != 0 || len(m.searchIdxs) != 2 {
		t.Fatalf("unexpected search state view=%v cursor=%d idxs=%v", m.st.View, m.st.Cursor, m.searchIdxs)
	}
	m = press(t, m, runes("n"))
	if m.st.Cursor != 2 { t.Fatalf("n should jump to Alphabet, cursor=%d", m.st.Cursor) }
	m = press(t, m, runes("N"))
	if m.st.Cursor != 0 { t.Fatalf("N should jump back, cursor=%d", m.st.Cursor) }
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.st.View != state.EditorView { t.Fatalf("esc should return to the editor") }
}

func TestViewsRender(t *testing.T) {
	m := selectRange(testModel(t), "Trip\n**day** one", 5, 8)
	out := m.View()
	if !strings.Contains(out, "Trip") || !strings.Contains(out, "[Pages 1]") { t.Fatalf("unexpected view:\n%s", out) }
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	if !strings.Contains(m.View(), "SAVED vs CURRENT") { t.Fatalf("expected diff modal") }
	m = press(t, m, runes("x"))
	if m.st.Modal != state.NoModal { t.Fatalf("any key should close the diff") }
}

func hasTag(m model, k state.TagKind) bool {
	saved, hasSaved := m.savedContent()
	for _, tag := range util.ComputeTags(m.st, saved, hasSaved) {
		if tag.Kind == k {
			return true
		}
	}
	return false
}

func TestEditAfterSaveShowsChanges(t *testing.T) {
	m := testModel(t)
	m.st = state.SetBuffer(m.st, "Notes\nbody", 10)
	m.syncWidget()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.st.Notice != "Document saved" { t.Fatalf("unexpected notice %q", m.st.Notice) }
	if hasTag(m, state.MODIFIED) { t.Fatalf("saved document should not be modified") }

	m = press(t, m, runes("X"))
	if m.st.Buffer != "Notes\nbodyX" { t.Fatalf("unexpected buffer %q", m.st.Buffer) }
	if e, err := m.store.Get("Notes"); err != nil || e.Content != m.st.Buffer {
		t.Fatalf("expected the edit to be autosaved, got %+v err=%v", e, err)
	}
	if !hasTag(m, state.MODIFIED) { t.Fatalf("autosave must not clear the modified state") }

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	out := m.viewModal()
	if strings.Contains(out, "No changes") || !strings.Contains(out, "+ body{+X+}") {
		t.Fatalf("expected the typed rune in the diff:\n%s", out)
	}

	m = press(t, m, runes("q"), tea.KeyMsg{Type: tea.KeyCtrlS})
	if hasTag(m, state.MODIFIED) { t.Fatalf("saving again should reset the baseline") }
}

func TestLoadSetsBaselineAndNewClearsIt(t *testing.T) {
	m := testModel(t)
	m.store.Save("Notes", store.Entry{Content: "Notes\nbody", PageCount: 1})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlO}, runes("notes"), tea.KeyMsg{Type: tea.KeyEnter})
	if saved, ok := m.savedContent(); !ok || saved != "Notes\nbody" { t.Fatalf("load should set the baseline, got %q %v", saved, ok) }
	if hasTag(m, state.MODIFIED) { t.Fatalf("freshly loaded document should not be modified") }

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN}, runes("y"))
	if _, ok := m.savedContent(); ok { t.Fatalf("new document has no baseline") }
}
