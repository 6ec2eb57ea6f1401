package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/findash/internal/invoice"
	"github.com/rshade/findash/internal/logging"
	"github.com/rshade/findash/internal/pager"
	listview "github.com/rshade/findash/internal/tui/list"
)

// invoicesChromeLines is the number of lines around the list: title, subtitle,
// blank, column header and the footer.
const invoicesChromeLines = 5

// invoicesListTop is the line offset of the first list row within the page.
const invoicesListTop = 4

// masterRatioNum/masterRatioDen give the share of the page used by the invoice table.
const (
	masterRatioNum = 3
	masterRatioDen = 5
)

// minDetailWidth keeps the detail pane readable on narrow terminals.
const minDetailWidth = 30

// scrollSettledMsg is scheduled after a scroll event. Only the message carrying the
// most recent sequence number is evaluated.
type scrollSettledMsg struct {
	seq int
}

// InvoicesOptions configures the invoices page.
type InvoicesOptions struct {
	PageSize  int
	Threshold int
	// Coalesce is how long a burst of scroll events is collected before the most
	// recent position is evaluated. Zero evaluates every event immediately.
	Coalesce time.Duration
}

// InvoicesModel is the master/detail invoice page. The table shows the growing
// window of the controller and the detail pane shows the selected invoice.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type InvoicesModel struct {
	ctx        context.Context
	controller *pager.Controller[invoice.Invoice]
	list       *listview.VirtualListModel[invoice.Invoice]

	coalesce  time.Duration
	pending   pager.ScrollPosition
	scrollSeq int

	width  int
	height int
}

// NewInvoicesModel creates the invoices page over dataset.
func NewInvoicesModel(ctx context.Context, dataset []invoice.Invoice, opts InvoicesOptions) InvoicesModel {
	controller := pager.New(dataset, invoice.Key,
		pager.WithPageSize(opts.PageSize),
		pager.WithThreshold(opts.Threshold),
	)

	m := InvoicesModel{
		ctx:        ctx,
		controller: controller,
		coalesce:   opts.Coalesce,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.list = listview.NewVirtualListModel(controller.Window(), m.listHeight(), m.masterWidth(), m.renderRow)
	return m
}

// Init initializes the model (Bubble Tea interface).
func (m InvoicesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.masterWidth(), m.listHeight())
		return m, nil
	case scrollSettledMsg:
		if msg.seq != m.scrollSeq {
			return m, nil
		}
		m.evaluateScroll()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m InvoicesModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEnter:
		if item := m.list.CursorItem(); item != nil {
			m.selectInvoice(*item)
		}
		return m, nil
	case "up", "down", "j", "k", "pgup", "pgdown", "home", "end":
		_, _ = m.list.Update(msg)
		return m, m.recordScroll()
	default:
		return m, nil
	}
}

func (m InvoicesModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp, msg.Button == tea.MouseButtonWheelDown:
		_, _ = m.list.Update(msg)
		return m, m.recordScroll()
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if msg.X >= m.masterWidth() {
			return m, nil
		}
		idx, ok := m.list.RowAt(msg.Y - invoicesListTop)
		if !ok {
			return m, nil
		}
		m.list.SetCursor(idx)
		if item := m.list.CursorItem(); item != nil {
			m.selectInvoice(*item)
		}
		return m, nil
	default:
		return m, nil
	}
}

// recordScroll stores the latest scroll position and schedules its evaluation.
func (m *InvoicesModel) recordScroll() tea.Cmd {
	m.pending = m.list.ScrollPosition()
	m.scrollSeq++
	if m.coalesce <= 0 {
		m.evaluateScroll()
		return nil
	}
	seq := m.scrollSeq
	return tea.Tick(m.coalesce, func(time.Time) tea.Msg {
		return scrollSettledMsg{seq: seq}
	})
}

func (m *InvoicesModel) evaluateScroll() {
	change := m.controller.OnScroll(m.pending)
	if !change.Has(pager.WindowChanged) {
		return
	}
	m.list.SetItems(m.controller.Window())

	log := logging.FromContext(m.ctx)
	log.Debug().Ctx(m.ctx).
		Str("component", "tui").
		Int("page", m.controller.Page()).
		Int("window", m.controller.WindowLen()).
		Msg("invoice window grown")
	if change.Has(pager.ExhaustionReached) {
		log.Info().Ctx(m.ctx).
			Str("component", "tui").
			Int("invoices", m.controller.Len()).
			Msg("all invoices loaded")
	}
}

func (m *InvoicesModel) selectInvoice(inv invoice.Invoice) {
	if m.controller.Select(inv.ID).None() {
		return
	}
	logging.FromContext(m.ctx).Debug().Ctx(m.ctx).
		Str("component", "tui").
		Str("invoice_id", inv.ID).
		Msg("invoice selected")
}

// Selected returns the invoice shown in the detail pane.
func (m InvoicesModel) Selected() (invoice.Invoice, bool) {
	return m.controller.Selected()
}

// WindowLen returns the number of invoices currently loaded into the table.
func (m InvoicesModel) WindowLen() int {
	return m.controller.WindowLen()
}

// Exhausted reports whether every invoice is loaded.
func (m InvoicesModel) Exhausted() bool {
	return m.controller.Exhausted()
}

func (m InvoicesModel) masterWidth() int {
	w := m.width * masterRatioNum / masterRatioDen
	if w < tableWidth+1 {
		w = tableWidth + 1
	}
	return w
}

func (m InvoicesModel) detailWidth() int {
	w := m.width - m.masterWidth()
	if w < minDetailWidth {
		w = minDetailWidth
	}
	return w
}

func (m InvoicesModel) listHeight() int {
	h := m.height - invoicesChromeLines
	if h < minHeight {
		h = minHeight
	}
	return h
}
