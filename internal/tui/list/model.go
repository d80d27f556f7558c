// Package listview implements the scrollable list used by the catalog
// browser. Only the visible window plus a small buffer is rendered, so the
// list stays responsive regardless of how many pages have been loaded.
package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// renderBuffer is the number of extra rows rendered above and below the
// viewport for smooth scrolling.
const renderBuffer = 3

// RenderFunc renders a single item. selected indicates whether the item is
// the current cursor position.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a virtual-scrolling list over items of type T.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	// selected is the cursor position (0-based).
	selected int

	// visibleFrom/visibleTo bound the viewport window (to exclusive).
	visibleFrom int
	visibleTo   int

	// height and width are the viewport dimensions in cells.
	height int
	width  int
}

// New creates a list model over items with the given viewport dimensions.
func New[T any](items []T, height, width int, renderFunc RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     height,
		width:      width,
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes. Unknown messages are ignored
// so the model composes into a parent Update loop.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.SetSize(msg.Height, msg.Width)
		return m, nil
	}
	return m, nil
}

// handleKey moves the cursor for navigation keys, including vim-style j/k.
//
//nolint:exhaustive // Only navigation keys are handled; the rest belong to the parent model.
func (m *Model[T]) handleKey(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.Type {
	case tea.KeyUp:
		m.MoveUp()
	case tea.KeyDown:
		m.MoveDown()
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.height)
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.height)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return
		}
		switch msg.Runes[0] {
		case 'j':
			m.MoveDown()
		case 'k':
			m.MoveUp()
		case 'g':
			m.SetSelected(0)
		case 'G':
			m.SetSelected(len(m.items) - 1)
		}
	default:
	}
}

// MoveUp moves the cursor one row up.
func (m *Model[T]) MoveUp() {
	if m.selected > 0 {
		m.selected--
		m.updateVisibleRange()
	}
}

// MoveDown moves the cursor one row down.
func (m *Model[T]) MoveDown() {
	if m.selected < len(m.items)-1 {
		m.selected++
		m.updateVisibleRange()
	}
}

// AtEnd reports whether the cursor sits on the last loaded item. The parent
// model uses this to trigger loading the next page.
func (m *Model[T]) AtEnd() bool {
	return len(m.items) > 0 && m.selected == len(m.items)-1
}

// SetItems replaces the list contents, keeping the cursor on the same index
// when possible. Used when a page load appends items or a refresh replaces
// them.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	if m.selected >= len(items) {
		m.selected = len(items) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.updateVisibleRange()
}

// SetSize updates the viewport dimensions.
func (m *Model[T]) SetSize(height, width int) {
	m.height = height
	m.width = width
	m.updateVisibleRange()
}

// updateVisibleRange recomputes the viewport window so the cursor stays
// visible, centered when possible.
func (m *Model[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	half := m.height / 2
	from := m.selected - half
	to := m.selected + half

	if from < 0 {
		from = 0
		to = m.height
	}
	if to > len(m.items) {
		to = len(m.items)
		from = to - m.height
		if from < 0 {
			from = 0
		}
	}

	m.visibleFrom = from
	m.visibleTo = to
}

// View renders the viewport window plus the render buffer.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	from := m.visibleFrom - renderBuffer
	if from < 0 {
		from = 0
	}
	to := m.visibleTo + renderBuffer
	if to > len(m.items) {
		to = len(m.items)
	}

	var sb strings.Builder
	for i := from; i < to; i++ {
		if i > from {
			sb.WriteString("\n")
		}
		sb.WriteString(m.renderFunc(m.items[i], i == m.selected))
	}
	return sb.String()
}

// Len returns the number of items in the list.
func (m *Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the cursor position.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SetSelected moves the cursor, clamping to valid bounds.
func (m *Model[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0:
		m.selected = 0
	case index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	m.updateVisibleRange()
}

// SelectedItem returns the item under the cursor, or nil when empty.
func (m *Model[T]) SelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}

// VisibleFrom returns the first visible index (inclusive).
func (m *Model[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible index (exclusive).
func (m *Model[T]) VisibleTo() int {
	return m.visibleTo
}
