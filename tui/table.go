package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-notemap/notemap"
	"go-notemap/theme"
)

// Header labels the columns produced by Row
func Header(th *theme.Theme, m *notemap.Mapper) string {
	from, to := "DEV", "GM"
	if m.Reverse() {
		from, to = "GM", "DEV"
	}
	style := lipgloss.NewStyle().Foreground(th.Accent()).Bold(true)
	return style.Render(fmt.Sprintf("%4s -> %-4s  %-24s %-24s %s", from, to, "dev-name", "gm-name", "GM drum"))
}

// Row formats one entry, source note first
func Row(th *theme.Theme, m *notemap.Mapper, e notemap.Entry, selected bool) string {
	src, dst := e.DevNote, e.GMNote
	if m.Reverse() {
		src, dst = e.GMNote, e.DevNote
	}

	noteStyle := lipgloss.NewStyle().Foreground(th.NoteColor(src))
	dstStyle := lipgloss.NewStyle().Foreground(th.NoteColor(dst))
	nameStyle := lipgloss.NewStyle().Foreground(th.FG())
	dimStyle := lipgloss.NewStyle().Foreground(th.Muted())
	if selected {
		nameStyle = nameStyle.Foreground(th.Cursor()).Bold(true)
	}

	return fmt.Sprintf("%s -> %s  %s %s %s",
		noteStyle.Render(fmt.Sprintf("%4d", src)),
		dstStyle.Render(fmt.Sprintf("%-4d", dst)),
		nameStyle.Render(fmt.Sprintf("%-24s", truncate(e.DevName, 24))),
		nameStyle.Render(fmt.Sprintf("%-24s", truncate(e.GMName, 24))),
		dimStyle.Render(notemap.GMDrumName(e.GMNote)),
	)
}

// Table renders every entry of m, for non-interactive output
func Table(th *theme.Theme, m *notemap.Mapper) string {
	var out strings.Builder
	out.WriteString(Header(th, m))
	out.WriteString("\n")
	for _, e := range m.Entries() {
		out.WriteString(Row(th, m, e, false))
		out.WriteString("\n")
	}
	return out.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
