package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-notemap/notemap"
	"go-notemap/theme"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testModel(t *testing.T) Model {
	t.Helper()
	m := notemap.NewMapper()
	for _, e := range notemap.TestEntries() {
		require.NoError(t, m.Add(e))
	}
	return NewModel(m, theme.New(theme.DefaultPalette()), notemap.TestFileName)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelNavigation(t *testing.T) {
	m := update(t, testModel(t), tea.WindowSizeMsg{Width: 80, Height: 15})

	m = update(t, m, key("j"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Cursor())

	m = update(t, m, key("k"))
	assert.Equal(t, 1, m.Cursor())

	m = update(t, m, key("G"))
	assert.Equal(t, 115, m.Cursor())
	assert.Equal(t, 115-(15-chromeHeight)+1, m.offset)

	m = update(t, m, key("j"))
	assert.Equal(t, 115, m.Cursor())

	m = update(t, m, key("g"))
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, 0, m.offset)
}

func TestModelView(t *testing.T) {
	m := update(t, testModel(t), tea.WindowSizeMsg{Width: 80, Height: 10})
	view := m.View()

	assert.Contains(t, view, "test.notemap")
	assert.Contains(t, view, "dev->gm")
	assert.Contains(t, view, "Dev note 12")
	assert.NotContains(t, view, "Dev note 30")
	assert.Equal(t, 1, strings.Count(view, "\n> "))
}

func TestModelReverse(t *testing.T) {
	m := update(t, testModel(t), key("r"))
	assert.True(t, m.Mapper.Reverse())
	assert.Contains(t, m.View(), "gm->dev")
	assert.Empty(t, m.status)
}

func TestModelReverseCollision(t *testing.T) {
	mapper := notemap.NewMapper()
	require.NoError(t, mapper.Add(notemap.Entry{DevNote: 36, GMNote: 35}))
	require.NoError(t, mapper.Add(notemap.Entry{DevNote: 37, GMNote: 35}))
	m := NewModel(mapper, theme.New(theme.DefaultPalette()), "dup.drums")

	m = update(t, m, key("r"))
	assert.False(t, m.Mapper.Reverse())
	assert.Contains(t, m.status, "duplicate note")
}

func TestModelQuit(t *testing.T) {
	next, cmd := testModel(t).Update(key("q"))
	require.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestTable(t *testing.T) {
	mapper := notemap.NewMapper()
	require.NoError(t, mapper.Add(notemap.Entry{DevNote: 36, GMNote: 35, DevName: "Kick", GMName: "Bass"}))

	out := Table(theme.New(theme.DefaultPalette()), mapper)
	assert.Contains(t, out, "DEV")
	assert.Contains(t, out, "Kick")
	assert.Contains(t, out, "Acoustic Bass Drum")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}
