package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(n, height int) *Model[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return New(items, height, 80, func(item int, selected bool) string {
		if selected {
			return fmt.Sprintf("> item-%d", item)
		}
		return fmt.Sprintf("  item-%d", item)
	})
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_Navigation(t *testing.T) {
	tests := []struct {
		name         string
		msgs         []tea.KeyMsg
		wantSelected int
	}{
		{name: "down", msgs: []tea.KeyMsg{keyMsg(tea.KeyDown)}, wantSelected: 1},
		{name: "down then up", msgs: []tea.KeyMsg{keyMsg(tea.KeyDown), keyMsg(tea.KeyUp)}, wantSelected: 0},
		{name: "up at top stays", msgs: []tea.KeyMsg{keyMsg(tea.KeyUp)}, wantSelected: 0},
		{name: "vim j", msgs: []tea.KeyMsg{runeMsg('j'), runeMsg('j')}, wantSelected: 2},
		{name: "vim k clamps", msgs: []tea.KeyMsg{runeMsg('k')}, wantSelected: 0},
		{name: "end", msgs: []tea.KeyMsg{keyMsg(tea.KeyEnd)}, wantSelected: 49},
		{name: "G", msgs: []tea.KeyMsg{runeMsg('G')}, wantSelected: 49},
		{name: "G then g", msgs: []tea.KeyMsg{runeMsg('G'), runeMsg('g')}, wantSelected: 0},
		{name: "page down", msgs: []tea.KeyMsg{keyMsg(tea.KeyPgDown)}, wantSelected: 10},
		{name: "home after end", msgs: []tea.KeyMsg{keyMsg(tea.KeyEnd), keyMsg(tea.KeyHome)}, wantSelected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestList(50, 10)
			for _, msg := range tt.msgs {
				_, _ = m.Update(msg)
			}
			assert.Equal(t, tt.wantSelected, m.Selected())
		})
	}
}

func TestModel_DownAtBottomStays(t *testing.T) {
	m := newTestList(3, 10)
	m.SetSelected(2)
	_, _ = m.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, 2, m.Selected())
	assert.True(t, m.AtEnd())
}

func TestModel_ViewShowsSelection(t *testing.T) {
	m := newTestList(5, 10)
	m.SetSelected(2)

	view := m.View()

	assert.Contains(t, view, "> item-2")
	assert.Contains(t, view, "  item-0")
	assert.NotContains(t, view, "> item-0")
}

func TestModel_ViewWindowsLargeLists(t *testing.T) {
	m := newTestList(1000, 10)
	m.SetSelected(500)

	view := m.View()
	lines := strings.Split(view, "\n")

	// Viewport plus buffer, never the whole list.
	assert.LessOrEqual(t, len(lines), 10+2*renderBuffer)
	assert.Contains(t, view, "> item-500")
	assert.NotContains(t, view, "item-0\n")
	assert.NotContains(t, view, "item-999")
}

func TestModel_VisibleRangeFollowsSelection(t *testing.T) {
	m := newTestList(100, 10)

	m.SetSelected(50)
	assert.LessOrEqual(t, m.VisibleFrom(), 50)
	assert.Greater(t, m.VisibleTo(), 50)

	m.SetSelected(99)
	assert.Equal(t, 100, m.VisibleTo())
	assert.Equal(t, 90, m.VisibleFrom())
}

func TestModel_SetItems(t *testing.T) {
	m := newTestList(10, 10)
	m.SetSelected(9)

	// Appending keeps the cursor.
	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}
	m.SetItems(items)
	assert.Equal(t, 9, m.Selected())
	assert.Equal(t, 20, m.Len())

	// Shrinking clamps the cursor.
	m.SetSelected(19)
	m.SetItems(items[:5])
	assert.Equal(t, 4, m.Selected())

	// Emptying resets it.
	m.SetItems(nil)
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, "", m.View())
	assert.Nil(t, m.SelectedItem())
}

func TestModel_EmptyListIgnoresKeys(t *testing.T) {
	m := newTestList(0, 10)
	_, cmd := m.Update(keyMsg(tea.KeyDown))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Selected())
	assert.False(t, m.AtEnd())
}

func TestModel_SelectedItem(t *testing.T) {
	m := newTestList(5, 10)
	m.SetSelected(3)

	item := m.SelectedItem()
	require.NotNil(t, item)
	assert.Equal(t, 3, *item)
}

func TestModel_Resize(t *testing.T) {
	m := newTestList(100, 10)
	m.SetSelected(50)

	_, _ = m.Update(tea.WindowSizeMsg{Height: 30, Width: 120})

	span := m.VisibleTo() - m.VisibleFrom()
	assert.Equal(t, 30, span)
}
