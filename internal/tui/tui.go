package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marknote/internal/config"
	"marknote/internal/logger"
	"marknote/internal/markup"
	"marknote/internal/store"
	"marknote/internal/tui/state"
	"marknote/internal/tui/util"
	"marknote/internal/tui/views/help"
	"marknote/internal/tui/widgets/diff"
	"marknote/internal/tui/widgets/preview"
	"marknote/internal/tui/widgets/statusbar"
	"marknote/internal/tui/widgets/tagchips"
)

const module = "editor"

// Options wires the editor to its collaborators.
type Options struct {
	Config    *config.Config
	Store     *store.Store
	Favorites *store.Favorites
	Log       logger.ILogger
	// Persist writes the store to disk; called on save and on quit.
	Persist func() error
	// Open names a stored document to load instead of the placeholder.
	Open string
}

// Run shows the editor until the user quits.
func Run(opts Options) error {
	m := newModel(opts)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.persist()
}

// ===== Model =====

type splashDoneMsg struct{}

type model struct {
	cfg   *config.Config
	store *store.Store
	favs  *store.Favorites
	log   logger.ILogger
	save  func() error

	st state.EditorState
	ta textarea.Model

	splash  bool
	noColor bool

	// baseline for the diff and the Modified chip; autosave does not move it
	savedBuf string
	hasSaved bool

	// load modal filter
	filter string

	// favorites search state
	searching  bool
	searchBuf  string
	searchIdxs []int
	searchPos  int
}

func newModel(opts Options) model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}
	st, favs := opts.Store, opts.Favorites
	if st == nil {
		st = store.New()
	}
	if favs == nil {
		favs = &store.Favorites{}
	}

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = "│ "
	ta.Focus()

	m := model{
		cfg:     cfg,
		store:   st,
		favs:    favs,
		log:     log,
		save:    opts.Persist,
		st:      state.NewEditorState(),
		ta:      ta,
		splash:  cfg.SplashDelay() > 0,
		noColor: util.NoColor(cfg.NoColor),
	}
	m.syncWidget()
	if opts.Open != "" {
		m.load(opts.Open)
	}
	return m
}

func (m model) Init() tea.Cmd {
	if !m.splash {
		return textarea.Blink
	}
	return tea.Batch(textarea.Blink, tea.Tick(m.cfg.SplashDelay(), func(time.Time) tea.Msg {
		return splashDoneMsg{}
	}))
}

// Update routes keys to the splash, an open modal, the favorites view or the
// editor, in that order.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case splashDoneMsg:
		m.splash = false
		return m, nil
	case tea.WindowSizeMsg:
		m.st = state.Resize(m.st, msg.Width)
		m.ta.SetWidth(msg.Width)
		m.ta.SetHeight(max(3, msg.Height/2-4))
		return m, nil
	case tea.KeyMsg:
		if m.splash {
			// any key skips the splash
			m.splash = false
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.st.Modal != state.NoModal {
			return m.updateModal(msg)
		}
		if m.st.View == state.FavoritesView {
			return m.updateFavorites(msg)
		}
		return m.updateEditor(msg)
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+b":
		return m.mutate("bold", state.ApplyBold)
	case "ctrl+t":
		return m.mutate("italic", state.ApplyItalic)
	case "ctrl+u":
		return m.mutate("underline", state.ApplyUnderline)
	case "alt+l":
		return m.align(markup.AlignLeft)
	case "alt+e":
		return m.align(markup.AlignCenter)
	case "alt+r":
		return m.align(markup.AlignRight)
	case "ctrl+k":
		m.st = state.OpenModal(m.st, state.ColorModal)
		return m, nil
	case "ctrl+z":
		m.st = state.OpenModal(m.st, state.SizeModal)
		return m, nil
	case "ctrl+@", "ctrl+ ":
		m.st = state.SetMark(m.st)
		return m, nil
	case "esc":
		m.st = state.ClearMark(m.st)
		return m, nil
	case "ctrl+s":
		m.saveNow()
		return m, nil
	case "ctrl+p":
		return m.mutate("add page", state.AddPage)
	case "ctrl+o":
		m.filter = ""
		m.st = state.OpenModal(m.st, state.LoadModal)
		return m, nil
	case "ctrl+n":
		m.st = state.OpenModal(m.st, state.ConfirmNewModal)
		return m, nil
	case "ctrl+f":
		m.st = state.ToggleFavorite(m.st, m.favs)
		m.log.Info(module, "favorite toggled", map[string]interface{}{"title": m.st.Title(), "favorite": m.st.Favorite})
		m.autoSave()
		return m, nil
	case "ctrl+g":
		m.resetSearch()
		m.st = state.ShowFavorites(m.st)
		return m, nil
	case "ctrl+d":
		m.st = state.OpenModal(m.st, state.DiffModal)
		return m, nil
	case "ctrl+y":
		if err := clipboard.WriteAll(m.st.Buffer); err != nil {
			m.st.Notice = "Copy failed: " + err.Error()
			m.log.Warn(module, "clipboard write failed", map[string]interface{}{"error": err})
		} else {
			m.st.Notice = "Copied to clipboard"
		}
		return m, nil
	case "f1":
		m.st = state.OpenModal(m.st, state.HelpModal)
		return m, nil
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	buf, caret := m.ta.Value(), caretOffset(m.ta)
	if buf != m.st.Buffer {
		// offsets behind an old mark no longer line up with the text
		m.st.Mark = -1
		m.st = state.SetBuffer(m.st, buf, caret)
		m.autoSave()
	} else {
		m.st = state.MoveCaret(m.st, caret)
	}
	return m, cmd
}

func (m model) mutate(name string, fn func(state.EditorState) state.EditorState) (tea.Model, tea.Cmd) {
	before := m.st.Selection
	m.st = fn(m.st)
	m.log.Debug(module, "apply "+name, map[string]interface{}{
		"before": before,
		"after":  m.st.Selection,
	})
	m.syncWidget()
	m.autoSave()
	return m, nil
}

func (m model) align(a markup.Alignment) (tea.Model, tea.Cmd) {
	return m.mutate("align "+a.String(), func(s state.EditorState) state.EditorState {
		return state.Align(s, a)
	})
}

// syncWidget writes the buffer back into the text area and puts its cursor on
// the state's caret.
func (m *model) syncWidget() {
	m.ta.SetValue(m.st.Buffer)
	// the widget normalises some runes (tabs); keep the buffer identical to it
	if v := m.ta.Value(); v != m.st.Buffer {
		m.st.Buffer = v
	}
	moveCursor(&m.ta, m.st.Caret)
}

// autoSave stores the document under its title whenever it is worth keeping.
func (m *model) autoSave() {
	if title, ok := m.store.AutoSave(m.st.Buffer, m.st.PageCount, m.st.Favorite); ok {
		m.log.Debug(module, "autosaved", map[string]interface{}{"title": title})
	}
}

func (m *model) saveNow() {
	m.autoSave()
	if err := m.persist(); err != nil {
		m.st.Notice = "Save failed: " + err.Error()
		return
	}
	m.markSaved()
	m.st = state.Saved(m.st)
	m.log.Info(module, "document saved", map[string]interface{}{"title": m.st.Title()})
}

func (m *model) persist() error {
	if m.save == nil {
		return nil
	}
	if err := m.save(); err != nil {
		m.log.Error(module, "persist failed", map[string]interface{}{"error": err})
		return err
	}
	return nil
}

// ===== Views =====

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	selStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	previewFrame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	modalFrame   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginTop(1)
)

func (m model) View() string {
	if m.splash {
		return m.viewSplash()
	}
	if m.st.View == state.FavoritesView {
		return m.viewFavorites()
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("marknote · "+m.st.Title()) + "\n")
	b.WriteString(m.ta.View() + "\n")

	if m.st.Modal != state.NoModal {
		b.WriteString(modalFrame.Render(m.viewModal()) + "\n")
	} else {
		b.WriteString(previewFrame.Render(m.viewPreview()) + "\n")
	}

	saved, hasSaved := m.savedContent()
	b.WriteString(tagchips.View(util.ComputeTags(m.st, saved, hasSaved), m.noColor) + "\n")
	b.WriteString(faintStyle.Render(statusbar.NewStatusBar().View(m.st)) + "\n")
	b.WriteString(faintStyle.Render("f1: help   ctrl+space: mark   ctrl+b/t/u: style   ctrl+c: quit") + "\n")
	return b.String()
}

func (m model) viewSplash() string {
	title := lipgloss.NewStyle().Bold(true).Padding(1, 2).Render("marknote")
	return title + "\n" + faintStyle.Render("  Loading... (press any key)") + "\n"
}

func (m model) viewPreview() string {
	if markup.IsPlaceholder(m.st.Buffer) {
		return faintStyle.Render("The formatted preview shows up here.")
	}
	width := m.st.Width - 4
	if width < 20 {
		width = 0
	}
	return preview.New(m.noColor).View(m.st.Buffer, width)
}

func (m model) viewModal() string {
	switch m.st.Modal {
	case state.LoadModal:
		return m.viewLoad()
	case state.ColorModal:
		return m.viewColors()
	case state.SizeModal:
		return m.viewSizes()
	case state.ConfirmNewModal:
		return titleStyle.Render("New document") + "\n\nStart a new document? Unsaved changes to the current one are lost.\n\ny/enter: yes   n/esc: cancel"
	case state.DiffModal:
		saved, _ := m.savedContent()
		return diff.NewDiffView(m.noColor).View(saved, m.st.Buffer) + "\n" + faintStyle.Render("any key: close")
	case state.HelpModal:
		return help.RenderHelp(m.st) + "\n" + faintStyle.Render("any key: close")
	}
	return ""
}

// savedContent returns the buffer as of the last load or explicit save.
func (m model) savedContent() (string, bool) {
	return m.savedBuf, m.hasSaved
}

func (m *model) markSaved() {
	m.savedBuf = m.st.Buffer
	m.hasSaved = true
}

// load opens a stored document and makes it the save baseline.
func (m *model) load(title string) bool {
	if _, err := m.store.Get(title); err != nil {
		m.st.Notice = "Document not found"
		return false
	}
	m.st = state.LoadDocument(m.st, m.store, title)
	m.syncWidget()
	m.markSaved()
	m.log.Info(module, "document loaded", map[string]interface{}{"title": title})
	return true
}

// ===== helpers =====

// caretOffset converts the widget's row/column cursor into a rune offset.
func caretOffset(ta textarea.Model) int {
	lines := strings.Split(ta.Value(), "\n")
	row := ta.Line()
	off := 0
	for i := 0; i < row && i < len(lines); i++ {
		off += len([]rune(lines[i])) + 1
	}
	li := ta.LineInfo()
	return off + li.StartColumn + li.ColumnOffset
}

// moveCursor places the widget cursor on a rune offset. SetValue leaves the
// cursor at the end, so it walks up to the target row and sets the column.
func moveCursor(ta *textarea.Model, offset int) {
	row, col := rowCol(ta.Value(), offset)
	for guard := len(ta.Value()) + 1; ta.Line() > row && guard > 0; guard-- {
		ta.CursorUp()
	}
	for guard := len(ta.Value()) + 1; ta.Line() < row && guard > 0; guard-- {
		ta.CursorDown()
	}
	ta.SetCursor(col)
}

// rowCol splits a rune offset into line and column, clamping to the buffer.
func rowCol(buf string, offset int) (int, int) {
	row, col := 0, 0
	for i, r := range []rune(buf) {
		if i == offset {
			break
		}
		if r == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return row, col
}
