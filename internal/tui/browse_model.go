package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/storewalk/storewalk/internal/catalog"
	"github.com/storewalk/storewalk/internal/catalog/pager"
	listview "github.com/storewalk/storewalk/internal/tui/list"
)

// BrowseState represents the current state of the catalog browser.
type BrowseState int

const (
	// BrowseStateLoading indicates the first page is in flight and only
	// skeleton rows are shown.
	BrowseStateLoading BrowseState = iota
	// BrowseStateBrowsing indicates the list is populated and scrollable.
	BrowseStateBrowsing
	// BrowseStateError indicates a fetch failed with nothing to show.
	BrowseStateError
)

// Default dimensions used before the first WindowSizeMsg arrives.
const (
	browseDefaultWidth  = 80
	browseDefaultHeight = 24

	// chromeHeight is the number of rows reserved for header, footer, and
	// help line around the list viewport.
	chromeHeight = 6
)

// snapshotMsg delivers the controller state after an asynchronous load or
// refresh completes.
type snapshotMsg struct {
	snap pager.Snapshot
}

// BrowseModel is the Bubble Tea model for the scrollable product catalog:
// skeleton rows while the first page loads, a virtual list once populated, a
// footer load-more indicator, an error banner with a retry hint, and a
// refresh key standing in for the pull-to-refresh gesture.
type BrowseModel struct {
	ctx  context.Context
	ctrl *pager.Controller

	list    *listview.Model[catalog.Product]
	spinner spinner.Model
	price   *PriceFormatter

	state      BrowseState
	snap       pager.Snapshot
	refreshing bool
	quitting   bool

	width  int
	height int
}

// NewBrowseModel creates the catalog browser over a pagination controller.
// currencyCode selects the price rendering currency.
func NewBrowseModel(ctx context.Context, ctrl *pager.Controller, currencyCode string) *BrowseModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = HeaderStyle

	m := &BrowseModel{
		ctx:     ctx,
		ctrl:    ctrl,
		spinner: sp,
		price:   NewPriceFormatter(currencyCode),
		state:   BrowseStateLoading,
		width:   browseDefaultWidth,
		height:  browseDefaultHeight,
	}
	m.list = listview.New[catalog.Product](nil, m.listHeight(), m.width, m.renderRow)
	return m
}

// renderRow adapts renderProductRow to the list's RenderFunc.
func (m *BrowseModel) renderRow(p catalog.Product, selected bool) string {
	return renderProductRow(m.price, p, selected)
}

// listHeight returns the viewport rows available to the list.
func (m *BrowseModel) listHeight() int {
	h := m.height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

// Init starts the spinner and kicks off the first page load.
func (m *BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadNextCmd())
}

// loadNextCmd runs LoadNext off the UI goroutine and delivers the resulting
// snapshot as a message.
func (m *BrowseModel) loadNextCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return snapshotMsg{snap: ctrl.LoadNext(ctx)}
	}
}

// refreshCmd runs Refresh off the UI goroutine.
func (m *BrowseModel) refreshCmd() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return snapshotMsg{snap: ctrl.Refresh(ctx)}
	}
}

// Update handles messages and updates the model state.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.listHeight(), m.width)
		return m, nil

	case snapshotMsg:
		return m.handleSnapshot(msg.snap)

	case spinner.TickMsg:
		if !m.snap.Loading && m.state != BrowseStateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleSnapshot applies a completed load or refresh.
func (m *BrowseModel) handleSnapshot(snap pager.Snapshot) (tea.Model, tea.Cmd) {
	m.snap = snap
	if !snap.Loading {
		m.refreshing = false
	}
	m.list.SetItems(snap.Items)

	switch {
	case snap.ErrMsg != "" && len(snap.Items) == 0:
		m.state = BrowseStateError
	case snap.Loading && len(snap.Items) == 0:
		m.state = BrowseStateLoading
	default:
		m.state = BrowseStateBrowsing
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m *BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "r":
		// Refresh is the terminal stand-in for pull-to-refresh. The
		// controller discards any stale in-flight completion itself.
		m.refreshing = true
		if len(m.snap.Items) == 0 {
			m.state = BrowseStateLoading
		}
		return m, tea.Batch(m.spinner.Tick, m.refreshCmd())
	}

	if m.state != BrowseStateBrowsing {
		return m, nil
	}

	atEndBefore := m.list.AtEnd()
	_, _ = m.list.Update(msg)

	// Scrolling past the last loaded row triggers the next page, exactly
	// once thanks to the controller's loading guard.
	if atEndBefore && m.list.AtEnd() && isDownKey(msg) && m.snap.HasMore && !m.snap.Loading {
		m.snap.Loading = true // optimistic; confirmed by the next snapshot
		return m, tea.Batch(m.spinner.Tick, m.loadNextCmd())
	}

	return m, nil
}

// isDownKey reports whether the key moves the cursor toward the end of the
// list.
func isDownKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "down", "j", "pgdown", "end", "G":
		return true
	}
	return false
}

// View renders the catalog browser.
func (m *BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")

	switch m.state {
	case BrowseStateLoading:
		sb.WriteString(m.renderSkeleton())
	case BrowseStateError:
		sb.WriteString(m.renderError())
	case BrowseStateBrowsing:
		if m.snap.ErrMsg != "" {
			// Load-more failure with items still on screen.
			sb.WriteString(ErrorBannerStyle.Render(m.snap.ErrMsg))
			sb.WriteString("\n")
		}
		sb.WriteString(m.list.View())
		sb.WriteString("\n")
		sb.WriteString(m.renderFooter())
	}

	sb.WriteString("\n")
	sb.WriteString(SubtleStyle.Render("↑/↓ navigate • r refresh • q quit"))
	return sb.String()
}

// renderHeader renders the title bar with the loaded item count.
func (m *BrowseModel) renderHeader() string {
	title := HeaderStyle.Render("STOREWALK")
	sub := LabelStyle.Render("  product catalog")
	if n := len(m.snap.Items); n > 0 {
		sub += SubtleStyle.Render(fmt.Sprintf("  (%d items loaded)", n))
	}
	return title + sub
}

// renderSkeleton renders placeholder rows plus the spinner while the first
// page is in flight.
func (m *BrowseModel) renderSkeleton() string {
	var sb strings.Builder
	rows := m.ctrl.PageSize()
	if rows > m.listHeight() {
		rows = m.listHeight()
	}
	for i := 0; i < rows; i++ {
		sb.WriteString(renderSkeletonRow())
		sb.WriteString("\n")
	}
	sb.WriteString(m.spinner.View())
	sb.WriteString(LabelStyle.Render(" fetching catalog..."))
	return sb.String()
}

// renderError renders the empty-list failure state.
func (m *BrowseModel) renderError() string {
	var sb strings.Builder
	sb.WriteString(ErrorBannerStyle.Render(m.snap.ErrMsg))
	sb.WriteString("\n")
	sb.WriteString(SubtleStyle.Render("press r to retry"))
	return sb.String()
}

// renderFooter renders the load-more indicator line.
func (m *BrowseModel) renderFooter() string {
	switch {
	case m.refreshing:
		return m.spinner.View() + LabelStyle.Render(" refreshing...")
	case m.snap.Loading:
		return m.spinner.View() + LabelStyle.Render(" loading more...")
	case !m.snap.HasMore:
		return SubtleStyle.Render("— end of catalog —")
	default:
		return SubtleStyle.Render("↓ scroll for more")
	}
}

// State returns the current browse state (exposed for tests).
func (m *BrowseModel) State() BrowseState {
	return m.state
}

// Snapshot returns the last controller snapshot seen by the model.
func (m *BrowseModel) Snapshot() pager.Snapshot {
	return m.snap
}
