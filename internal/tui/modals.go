package tui

import (
    "fmt"
    "os"
    "path/filepath"
    "strings"

    tea "github.com/charmbracelet/bubbletea"
    "github.com/charmbracelet/lipgloss"

    "marknote/internal/tui/state"
    "marknote/internal/tui/views/documents"
    "marknote/internal/tui/views/pickers"
)

const maxSuggestions = 8

// updateModal handles keys while a dialog is open.
func (m model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
    k := msg.String()
    switch m.st.Modal {
    case state.LoadModal:
        return m.updateLoad(msg)
    case state.ColorModal:
        switch k {
        case "up", "k":
            m.st = state.MoveCursor(m.st, -1, len(m.cfg.Colors))
        case "down", "j":
            m.st = state.MoveCursor(m.st, 1, len(m.cfg.Colors))
        case "enter":
            if m.st.Cursor >= len(m.cfg.Colors) {
                return m, nil
            }
            hex := m.cfg.Colors[m.st.Cursor].Hex
            return m.mutate("color "+hex, func(s state.EditorState) state.EditorState { return state.ApplyColor(s, hex) })
        case "esc", "q":
            m.st = state.CloseModal(m.st)
        }
        return m, nil
    case state.SizeModal:
        switch k {
        case "up", "k":
            m.st = state.MoveCursor(m.st, -1, len(m.cfg.Sizes))
        case "down", "j":
            m.st = state.MoveCursor(m.st, 1, len(m.cfg.Sizes))
        case "enter":
            if m.st.Cursor >= len(m.cfg.Sizes) {
                return m, nil
            }
            size := m.cfg.Sizes[m.st.Cursor].Value
            return m.mutate(fmt.Sprintf("size %d", size), func(s state.EditorState) state.EditorState { return state.ApplySize(s, size) })
        case "esc", "q":
            m.st = state.CloseModal(m.st)
        }
        return m, nil
    case state.ConfirmNewModal:
        switch k {
        case "y", "enter":
            m.st = state.NewDocument(m.st)
            m.log.Info(module, "new document", nil)
            m.syncWidget()
            m.savedBuf, m.hasSaved = "", false
        case "n", "esc":
            m.st = state.CloseModal(m.st)
        }
        return m, nil
    }
    // diff and help close on any key
    m.st = state.CloseModal(m.st)
    return m, nil
}

// ===== Load / import =====

// loadItems lists stored titles matching the filter, or file suggestions when
// the filter looks like a path.
func (m model) loadItems() []string {
    if isPathInput(m.filter) {
        return suggestPaths(m.filter)
    }
    q := strings.ToLower(strings.TrimSpace(m.filter))
    var out []string
    for _, t := range m.store.Titles() {
        if q == "" || strings.Contains(strings.ToLower(t), q) {
            out = append(out, t)
        }
    }
    return out
}

func (m model) updateLoad(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
    items := m.loadItems()
    switch msg.String() {
    case "esc":
        m.st = state.CloseModal(m.st)
        return m, nil
    case "up":
        m.st = state.MoveCursor(m.st, -1, len(items))
        return m, nil
    case "down":
        m.st = state.MoveCursor(m.st, 1, len(items))
        return m, nil
    case "tab":
        if isPathInput(m.filter) && len(items) > 0 {
            m.filter = items[m.st.Cursor]
            m.st.Cursor = 0
        }
        return m, nil
    case "enter":
        if isPathInput(m.filter) {
            return m.importPath(m.filter)
        }
        if len(items) == 0 {
            m.st.Notice = "Document not found"
            return m, nil
        }
        m.load(items[m.st.Cursor])
        return m, nil
    }
    if msg.Type == tea.KeyBackspace || msg.Type == tea.KeyCtrlH {
        if r := []rune(m.filter); len(r) > 0 {
            m.filter = string(r[:len(r)-1])
        }
    } else if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
        m.filter += string(msg.Runes)
    }
    m.st.Cursor = 0
    return m, nil
}

// importPath stores a text file and opens it.
func (m model) importPath(path string) (tea.Model, tea.Cmd) {
    p := expandPath(path)
    title, err := m.store.Import(p)
    if err != nil {
        m.st.Notice = "Import failed: " + err.Error()
        m.log.Warn(module, "import failed", map[string]interface{}{"path": p, "error": err})
        return m, nil
    }
    m.load(title)
    m.st.Notice = fmt.Sprintf("Imported %q", title)
    m.log.Info(module, "document imported", map[string]interface{}{"path": p, "title": title})
    return m, nil
}

func isPathInput(s string) bool {
    return strings.HasPrefix(s, "/") || strings.HasPrefix(s, "./") ||
        strings.HasPrefix(s, "../") || strings.HasPrefix(s, "~")
}

// suggestPaths lists directory entries matching the last path element.
func suggestPaths(in string) []string {
    expanded := expandPath(in)
    dir, base := expanded, ""
    if fi, err := os.Stat(expanded); err != nil || !fi.IsDir() {
        dir = filepath.Dir(expanded)
        base = filepath.Base(expanded)
    }
    entries, err := os.ReadDir(dir)
    if err != nil {
        return nil
    }
    var out []string
    for _, e := range entries {
        name := e.Name()
        if base == "" || strings.Contains(strings.ToLower(name), strings.ToLower(base)) {
            cand := filepath.Join(dir, name)
            if h, _ := os.UserHomeDir(); h != "" && strings.HasPrefix(cand, h) {
                cand = "~" + strings.TrimPrefix(cand, h)
            }
            out = append(out, cand)
        }
        if len(out) >= maxSuggestions {
            break
        }
    }
    return out
}

func expandPath(p string) string {
    p = strings.TrimSpace(p)
    if strings.HasPrefix(p, "~/") || p == "~" {
        if h, err := os.UserHomeDir(); err == nil {
            p = filepath.Join(h, strings.TrimPrefix(p[1:], "/"))
        }
    }
    p = os.ExpandEnv(p)
    if !filepath.IsAbs(p) {
        if abs, err := filepath.Abs(p); err == nil {
            p = abs
        }
    }
    return p
}

// ===== Modal views =====

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})

func (m model) viewLoad() string {
    var b strings.Builder
    b.WriteString(titleStyle.Render("Load document") + "\n\n")
    b.WriteString("Filter: " + m.filter + "\n\n")
    items := m.loadItems()
    if len(items) == 0 {
        b.WriteString(faintStyle.Render("  (no matches)") + "\n")
    }
    path := isPathInput(m.filter)
    for i, it := range items {
        line := it
        if !path {
            if e, err := m.store.Get(it); err == nil {
                line = documents.RenderRow(it, e, m.noColor)
            }
        }
        if i == m.st.Cursor {
            line = selStyle.Render("> ") + line
        } else {
            line = "  " + line
        }
        b.WriteString(line + "\n")
    }
    if m.st.Notice == "Document not found" || strings.HasPrefix(m.st.Notice, "Import failed") {
        b.WriteString(errStyle.Render(m.st.Notice) + "\n")
    }
    b.WriteString("\ntype to filter   /, ./ or ~ to import a file   tab: complete   enter: open   esc: cancel")
    return b.String()
}

func (m model) viewColors() string {
    return m.viewPicker("Text color", pickers.ColorOptions(m.cfg.Colors, m.noColor))
}

func (m model) viewSizes() string {
    return m.viewPicker("Font size", pickers.SizeOptions(m.cfg.Sizes))
}

func (m model) viewPicker(title string, rows []string) string {
    var b strings.Builder
    b.WriteString(titleStyle.Render(title) + "\n\n")
    if m.st.Selection.IsEmpty() {
        b.WriteString(faintStyle.Render("No selection: markers go in at the caret.") + "\n\n")
    }
    for i, r := range rows {
        if i == m.st.Cursor {
            b.WriteString(selStyle.Render("> ") + r + "\n")
        } else {
            b.WriteString("  " + r + "\n")
        }
    }
    b.WriteString("\nj/k: move   enter: apply   esc: cancel")
    return b.String()
}
