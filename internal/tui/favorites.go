package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marknote/internal/store"
	"marknote/internal/tui/state"
	"marknote/internal/tui/views/documents"
)

func (m model) updateFavorites(v tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := v.String()
	list := m.favs.List()
	if m.searching {
		switch k {
		case "enter":
			m.searching = false
			m.computeSearch()
			m.jumpToResult(0)
			return m, nil
		case "esc":
			m.resetSearch()
			return m, nil
		default:
			if v.Type == tea.KeyBackspace || v.Type == tea.KeyCtrlH {
				if n := len([]rune(m.searchBuf)); n > 0 {
					r := []rune(m.searchBuf)
					m.searchBuf = string(r[:n-1])
				}
			} else if v.Type == tea.KeyRunes || v.Type == tea.KeySpace {
				m.searchBuf += string(v.Runes)
			}
			return m, nil
		}
	}
	switch k {
	case "esc", "b", "q", "ctrl+g":
		m.st = state.ShowEditor(m.st)
		return m, nil
	case "j", "down":
		m.st = state.MoveCursor(m.st, 1, len(list))
		return m, nil
	case "k", "up":
		m.st = state.MoveCursor(m.st, -1, len(list))
		return m, nil
	case "G", "end":
		m.st = state.MoveCursor(m.st, len(list), len(list))
		return m, nil
	case "g", "home":
		m.st = state.MoveCursor(m.st, -len(list), len(list))
		return m, nil
	case "/":
		m.searching = true
		m.searchBuf = ""
		return m, nil
	case "n", "N":
		if len(m.searchIdxs) == 0 && strings.TrimSpace(m.searchBuf) != "" {
			m.computeSearch()
		}
		if len(m.searchIdxs) > 0 {
			step := 1
			if k == "N" {
				step = -1
			}
			m.jumpToResult(m.searchPos + step)
		}
		return m, nil
	case "x", "delete":
		if m.st.Cursor < len(list) {
			title := list[m.st.Cursor]
			m.favs.Remove(title)
			if e, err := m.store.Get(title); err == nil {
				e.IsFavorite = false
				m.store.Save(title, e)
			}
			if title == m.st.Title() {
				m.st.Favorite = false
			}
			m.st = state.MoveCursor(m.st, 0, len(list)-1)
			m.st.Notice = "Removed from favorites"
			m.searchIdxs = nil
		}
		return m, nil
	case "enter":
		if m.st.Cursor < len(list) {
			m.load(list[m.st.Cursor])
			m.st = state.ShowEditor(m.st)
			m.resetSearch()
		}
		return m, nil
	}
	return m, nil
}

// computeSearch builds indexes of favorites containing searchBuf (case-insensitive)
func (m *model) computeSearch() {
	m.searchIdxs = nil
	m.searchPos = 0
	q := strings.ToLower(strings.TrimSpace(m.searchBuf))
	if q == "" {
		return
	}
	for i, t := range m.favs.List() {
		if strings.Contains(strings.ToLower(t), q) {
			m.searchIdxs = append(m.searchIdxs, i)
		}
	}
}

func (m *model) jumpToResult(pos int) {
	if len(m.searchIdxs) == 0 {
		return
	}
	if pos < 0 {
		pos = len(m.searchIdxs) - 1
	}
	if pos >= len(m.searchIdxs) {
		pos = 0
	}
	m.searchPos = pos
	m.st.Cursor = m.searchIdxs[pos]
}

func (m *model) resetSearch() {
	m.searching = false
	m.searchBuf = ""
	m.searchIdxs = nil
	m.searchPos = 0
}

var highlightStyle = lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "228", Dark: "94"}).Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"})

func (m model) viewFavorites() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Favorites") + "\n\n")
	list := m.favs.List()
	if len(list) == 0 {
		b.WriteString(faintStyle.Render("  No favorites yet. Press ctrl+f in the editor to add one.") + "\n")
	}
	for i, title := range list {
		e, err := m.store.Get(title)
		if err != nil {
			// favorited but never autosaved
			e = store.Entry{IsFavorite: true}
		}
		row := documents.RenderRow(title, e, m.noColor)
		if containsIndex(m.searchIdxs, i) && !m.noColor && strings.HasPrefix(row, title) {
			row = highlightStyle.Render(title) + strings.TrimPrefix(row, title)
		}
		if i == m.st.Cursor {
			row = selStyle.Render("> ") + row
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
	}

	status := ""
	if m.searching {
		status = fmt.Sprintf("  /%s", m.searchBuf)
	} else if len(m.searchIdxs) > 0 {
		status = fmt.Sprintf("  [%d/%d]", m.searchPos+1, len(m.searchIdxs))
	}
	b.WriteString("\n(j/k select) (enter) open (x) unfavorite (/) search (n/N) next (esc) back" + status + "\n")
	if m.searching {
		sb := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
		b.WriteString(sb.Render("Search: "+m.searchBuf) + "\n")
	}
	if strings.TrimSpace(m.st.Notice) != "" {
		b.WriteString(faintStyle.Render(m.st.Notice) + "\n")
	}
	return b.String()
}

func containsIndex(a []int, x int) bool {
	for _, v := range a {
		if v == x {
			return true
		}
	}
	return false
}
