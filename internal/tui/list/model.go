package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/findash/internal/pager"
)

// wheelStep is the number of rows a single mouse wheel notch moves the cursor.
const wheelStep = 1

// RenderFunc renders one row. cursor is true for the highlighted row.
type RenderFunc[T any] func(item T, cursor bool) string

// VirtualListModel shows a fixed-height slice of a longer row set and keeps
// the highlighted row on screen. Only the rows in [visibleFrom, visibleTo)
// are rendered.
type VirtualListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	cursor      int
	visibleFrom int
	visibleTo   int // exclusive

	height int
	width  int
}

// NewVirtualListModel creates a list over items with a viewport of height rows.
func NewVirtualListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	m := &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     height,
		width:      width,
	}
	m.reframe()
	return m
}

// Init implements tea.Model.
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update moves the cursor for navigation keys and wheel events and resizes the
// viewport on tea.WindowSizeMsg.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if delta, jump, ok := m.keyMovement(msg); ok {
			m.move(delta, jump)
		}
	case tea.MouseMsg:
		m.wheel(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// keyMovement translates a key into either a relative move (delta) or an
// absolute jump.
//
//nolint:exhaustive // Only navigation keys move the cursor.
func (m *VirtualListModel[T]) keyMovement(msg tea.KeyMsg) (int, int, bool) {
	const noJump = -1
	switch msg.Type {
	case tea.KeyUp:
		return -1, noJump, true
	case tea.KeyDown:
		return 1, noJump, true
	case tea.KeyPgUp:
		return -m.height, noJump, true
	case tea.KeyPgDown:
		return m.height, noJump, true
	case tea.KeyHome:
		return 0, 0, true
	case tea.KeyEnd:
		return 0, len(m.items) - 1, true
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "j":
			return 1, noJump, true
		case "k":
			return -1, noJump, true
		}
	}
	return 0, noJump, false
}

func (m *VirtualListModel[T]) move(delta, jump int) {
	if len(m.items) == 0 {
		return
	}
	if jump >= 0 {
		m.SetCursor(jump)
		return
	}
	m.SetCursor(m.cursor + delta)
}

//nolint:exhaustive // Only wheel buttons scroll the list.
func (m *VirtualListModel[T]) wheel(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.move(-wheelStep, -1)
	case tea.MouseButtonWheelDown:
		m.move(wheelStep, -1)
	}
}

// reframe centres the viewport on the cursor, sliding it back inside the
// row set at either end.
func (m *VirtualListModel[T]) reframe() {
	n := len(m.items)
	if n == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}

	from := max(m.cursor-m.height/2, 0) //nolint:mnd // Half the viewport.
	to := from + m.height
	if to > n {
		to = n
		from = max(to-m.height, 0)
	}
	m.visibleFrom, m.visibleTo = from, to
}

// View renders the rows currently on screen, one per line.
func (m *VirtualListModel[T]) View() string {
	rows := make([]string, 0, m.visibleTo-m.visibleFrom)
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		rows = append(rows, m.renderFunc(m.items[i], i == m.cursor))
	}
	return strings.Join(rows, "\n")
}

// SetItems swaps in a new row set. The cursor index is kept, clamped to the
// new length.
func (m *VirtualListModel[T]) SetItems(items []T) {
	m.items = items
	m.SetCursor(m.cursor)
}

// SetSize updates the viewport dimensions.
func (m *VirtualListModel[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.reframe()
}

// ScrollPosition reports the viewport as scroll measurements in rows:
// the first visible row, the number of loaded rows and the rows on screen.
func (m *VirtualListModel[T]) ScrollPosition() pager.ScrollPosition {
	return pager.ScrollPosition{
		Top:          m.visibleFrom,
		Height:       len(m.items),
		ClientHeight: m.visibleTo - m.visibleFrom,
	}
}

// RowAt maps a viewport-relative line to an item index.
func (m *VirtualListModel[T]) RowAt(line int) (int, bool) {
	idx := m.visibleFrom + line
	if line < 0 || idx >= m.visibleTo {
		return 0, false
	}
	return idx, true
}

// ItemCount returns the number of loaded rows.
func (m *VirtualListModel[T]) ItemCount() int { return len(m.items) }

// Cursor returns the highlighted row index.
func (m *VirtualListModel[T]) Cursor() int { return m.cursor }

// SetCursor highlights index, clamped to the row set.
func (m *VirtualListModel[T]) SetCursor(index int) {
	m.cursor = max(min(index, len(m.items)-1), 0)
	m.reframe()
}

// VisibleFrom returns the first visible row index.
func (m *VirtualListModel[T]) VisibleFrom() int { return m.visibleFrom }

// VisibleTo returns the index just past the last visible row.
func (m *VirtualListModel[T]) VisibleTo() int { return m.visibleTo }

// Height returns the viewport height.
func (m *VirtualListModel[T]) Height() int { return m.height }

// Width returns the viewport width.
func (m *VirtualListModel[T]) Width() int { return m.width }

// CursorItem returns the highlighted row, or nil when the list is empty.
func (m *VirtualListModel[T]) CursorItem() *T {
	if m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}
