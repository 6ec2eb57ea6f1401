package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/findash/internal/invoice"
	"github.com/rshade/findash/internal/logging"
)

// statusBarLines is the height of the help line below the pages.
const statusBarLines = 1

// AppOptions configures the dashboard shell.
type AppOptions struct {
	Invoices      InvoicesOptions
	Profile       Profile
	ActivityLimit int
}

// AppModel is the root Bubble Tea model: a collapsible sidebar and the active page.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type AppModel struct {
	ctx       context.Context
	page      Page
	collapsed bool
	quitting  bool

	width  int
	height int

	summary  invoice.Summary
	activity []invoice.Activity
	profile  Profile

	invoices   InvoicesModel
	upload     UploadModel
	uploadOpen bool
	notice     string
}

// NewAppModel creates the dashboard shell over dataset.
func NewAppModel(ctx context.Context, dataset []invoice.Invoice, opts AppOptions) AppModel {
	limit := opts.ActivityLimit
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	m := AppModel{
		ctx:      ctx,
		page:     PageDashboard,
		width:    defaultWidth,
		height:   defaultHeight,
		summary:  invoice.Summarize(dataset),
		activity: invoice.RecentActivity(dataset, limit),
		profile:  opts.Profile,
		invoices: NewInvoicesModel(ctx, dataset, opts.Invoices),
	}
	m.resizePages()
	return m
}

// Init initializes the model (Bubble Tea interface).
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePages()
		return m, nil
	case scrollSettledMsg:
		return m.updateInvoices(msg)
	case UploadCompletedMsg:
		m.uploadOpen = false
		m.notice = fmt.Sprintf("Uploaded %s (%.2f KB)", msg.File.Name, msg.File.SizeKB())
		return m, nil
	case UploadCancelledMsg:
		m.uploadOpen = false
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if m.uploadOpen {
		return m.updateUpload(msg)
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	if m.uploadOpen {
		return m.updateUpload(msg)
	}

	switch msg.String() {
	case keyQuit:
		m.quitting = true
		return m, tea.Quit
	case keyTab:
		m.SetPage((m.page + 1) % numPages)
		return m, nil
	case keyShiftTab:
		m.SetPage((m.page + numPages - 1) % numPages)
		return m, nil
	case "1", "2", "3", "4", "5":
		m.SetPage(Page(msg.Runes[0] - '1'))
		return m, nil
	case keyCollapse:
		m.collapsed = !m.collapsed
		m.resizePages()
		return m, nil
	case keyAdd:
		return m.openUpload()
	}

	if m.page == PageInvoices {
		return m.updateInvoices(msg)
	}
	return m, nil
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.uploadOpen {
		return m, nil
	}
	offset := sidebarOuterWidth(m.collapsed)
	if msg.X < offset {
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			if page, ok := pageAtLine(msg.Y); ok {
				m.SetPage(page)
			}
		}
		return m, nil
	}
	if m.page != PageInvoices {
		return m, nil
	}
	msg.X -= offset
	return m.updateInvoices(msg)
}

func (m AppModel) updateInvoices(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.invoices.Update(msg)
	if im, ok := updated.(InvoicesModel); ok {
		m.invoices = im
	}
	return m, cmd
}

func (m AppModel) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.upload.Update(msg)
	if um, ok := updated.(UploadModel); ok {
		m.upload = um
	}
	return m, cmd
}

func (m AppModel) openUpload() (tea.Model, tea.Cmd) {
	m.upload = NewUploadModel(m.ctx)
	m.uploadOpen = true
	m.notice = ""
	logging.FromContext(m.ctx).Debug().Ctx(m.ctx).
		Str("component", "tui").
		Msg("upload modal opened")
	return m, m.upload.Init()
}

// SetPage switches the active page.
func (m *AppModel) SetPage(page Page) {
	if page < 0 || page >= numPages {
		return
	}
	m.page = page
}

// ActivePage returns the active page.
func (m AppModel) ActivePage() Page {
	return m.page
}

// Collapsed reports whether the sidebar is collapsed.
func (m AppModel) Collapsed() bool {
	return m.collapsed
}

// UploadOpen reports whether the upload modal is capturing input.
func (m AppModel) UploadOpen() bool {
	return m.uploadOpen
}

// Invoices returns the invoices page.
func (m AppModel) Invoices() InvoicesModel {
	return m.invoices
}

func (m AppModel) contentWidth() int {
	return m.width - sidebarOuterWidth(m.collapsed)
}

func (m AppModel) contentHeight() int {
	return m.height - statusBarLines
}

// resizePages propagates the content area size to the pages.
func (m *AppModel) resizePages() {
	size := tea.WindowSizeMsg{Width: m.contentWidth(), Height: m.contentHeight()}
	updated, _ := m.invoices.Update(size)
	if im, ok := updated.(InvoicesModel); ok {
		m.invoices = im
	}
}

// View renders the current view (Bubble Tea interface).
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	sidebar := renderSidebar(m.page, m.collapsed, m.profile, m.contentHeight())
	content := m.renderPage()
	if m.uploadOpen {
		content = lipgloss.Place(m.contentWidth(), m.contentHeight(),
			lipgloss.Center, lipgloss.Center, m.upload.View())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m AppModel) renderPage() string {
	switch m.page {
	case PageDashboard:
		return RenderDashboard(m.summary, m.activity, m.contentWidth())
	case PageInvoices:
		return m.invoices.View()
	case PageSubscriptions:
		return renderPlaceholder("Subscriptions", "Manage recurring billing")
	case PageSettings:
		return renderPlaceholder("Settings", "Configure your workspace")
	case PageProfile:
		return renderProfile(m.profile, m.contentWidth())
	default:
		return ""
	}
}

func (m AppModel) renderStatusBar() string {
	if m.notice != "" {
		return SuccessStyle.Render(m.notice)
	}
	if m.uploadOpen {
		return SubtleStyle.Render("enter: confirm • esc: cancel • ctrl+c: quit")
	}
	help := "tab: next page • 1-5: jump • [: collapse • a: add invoice • q: quit"
	if m.page == PageInvoices {
		help = "↑/↓ j/k: scroll • enter: select • " + help
	}
	return SubtleStyle.Render(help)
}
