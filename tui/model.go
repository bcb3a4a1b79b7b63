package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-notemap/debug"
	"go-notemap/notemap"
	"go-notemap/theme"
)

// rows taken by header, column labels, blank line and help
const chromeHeight = 5

// Model browses the entries of a notemap
type Model struct {
	Mapper   *notemap.Mapper
	Theme    *theme.Theme
	Name     string
	entries  []notemap.Entry
	cursor   int
	offset   int
	height   int
	status   string
	quitting bool
}

func NewModel(m *notemap.Mapper, th *theme.Theme, name string) Model {
	return Model{
		Mapper:  m,
		Theme:   th,
		Name:    name,
		entries: m.Entries(),
		height:  24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "j", "down":
			m.move(1)

		case "k", "up":
			m.move(-1)

		case "pgdown", "ctrl+d":
			m.move(m.visible())

		case "pgup", "ctrl+u":
			m.move(-m.visible())

		case "g", "home":
			m.move(-len(m.entries))

		case "G", "end":
			m.move(len(m.entries))

		case "r":
			reverse := !m.Mapper.Reverse()
			if err := m.Mapper.SetReverse(reverse); err != nil {
				m.status = err.Error()
				debug.Log("browse", "reverse: %v", err)
				break
			}
			m.entries = m.Mapper.Entries()
			m.move(0)
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.move(0)
	}

	return m, nil
}

func (m Model) visible() int {
	return max(1, m.height-chromeHeight)
}

func (m *Model) move(delta int) {
	if len(m.entries) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.entries)-1)

	rows := m.visible()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// Cursor returns the selected entry index
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	warnStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())

	direction := "dev->gm"
	if m.Mapper.Reverse() {
		direction = "gm->dev"
	}
	header := headerStyle.Render(fmt.Sprintf("notemap  %s  %s  %d drums  gm-ch:%d",
		m.Name, direction, len(m.entries), m.Mapper.GMChannel))

	var out strings.Builder
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(Header(m.Theme, m.Mapper))
	out.WriteString("\n")

	end := min(m.offset+m.visible(), len(m.entries))
	for i := m.offset; i < end; i++ {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		out.WriteString(marker)
		out.WriteString(Row(m.Theme, m.Mapper, m.entries[i], i == m.cursor))
		out.WriteString("\n")
	}

	if m.status != "" {
		out.WriteString(warnStyle.Render(m.status))
		out.WriteString("\n")
	}
	out.WriteString(dimStyle.Render("j/k:move  g/G:top/bottom  r:reverse  q:quit"))

	return out.String()
}
