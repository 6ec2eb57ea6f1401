package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/findash/internal/invoice"
)

// Column widths of the invoice table.
const (
	colNumber = 10
	colClient = 20
	colAmount = 9
	colStatus = 8
	colDue    = 10
)

// tableWidth is the rendered width of a row including the cursor marker and separators.
const tableWidth = len(cursorMarker) + colNumber + colClient + colAmount + colStatus + colDue + 4

// cursorMarker prefixes the highlighted row.
const cursorMarker = "> "

// View renders the current view (Bubble Tea interface).
func (m InvoicesModel) View() string {
	master := m.renderMaster()
	detail := m.renderDetail()
	return lipgloss.JoinHorizontal(lipgloss.Top, master, detail)
}

func (m InvoicesModel) renderMaster() string {
	sections := []string{
		HeaderStyle.Render("Invoices"),
		SubtleStyle.Render(fmt.Sprintf("Showing %d of %d invoices", m.controller.WindowLen(), m.controller.Len())),
		"",
		TableHeaderStyle.Render("  " + formatColumns("Invoice #", "Client", "Amount", "Status", "Due Date")),
	}

	if m.controller.Len() == 0 {
		sections = append(sections, InfoStyle.Render("No invoices to display."))
	} else {
		sections = append(sections, m.list.View())
	}

	if !m.controller.Exhausted() {
		sections = append(sections, InfoStyle.Render("Scroll for more invoices..."))
	}

	return lipgloss.NewStyle().Width(m.masterWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderRow renders a table row. The cursor row is highlighted and the selected
// invoice is marked.
func (m InvoicesModel) renderRow(inv invoice.Invoice, cursor bool) string {
	prefix := "  "
	if cursor {
		prefix = cursorMarker
	}
	id, ok := m.controller.SelectedID()
	chosen := ok && id == inv.ID

	if cursor {
		return TableSelectedStyle.Render(prefix + formatColumns(
			inv.Number, inv.Client, invoice.FormatAmount(inv.Amount), inv.Status.Title(), inv.DueDateString()))
	}

	number := fmt.Sprintf("%-*s", colNumber, inv.Number)
	if chosen {
		number = TableChosenStyle.Render(number)
	}
	status := StatusStyle(inv.Status).Render(fmt.Sprintf("%-*s", colStatus, inv.Status.Title()))
	return fmt.Sprintf("%s%s %-*s %*s %s %s",
		prefix, number,
		colClient, truncate(inv.Client, colClient),
		colAmount, invoice.FormatAmount(inv.Amount),
		status, inv.DueDateString())
}

func formatColumns(number, client, amount, status, due string) string {
	return fmt.Sprintf("%-*s %-*s %*s %-*s %s",
		colNumber, number,
		colClient, truncate(client, colClient),
		colAmount, amount,
		colStatus, status,
		due)
}

func (m InvoicesModel) renderDetail() string {
	width := m.detailWidth() - borderPadding
	inv, ok := m.controller.Selected()
	if !ok {
		return BoxStyle.Width(width).Render(SubtleStyle.Render("Select an invoice to view details"))
	}

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("INVOICE DETAIL"))
	content.WriteString("\n\n")
	writeField(&content, "Invoice #:   ", ValueStyle.Render(inv.Number))
	writeField(&content, "Client:      ", ValueStyle.Render(inv.Client))
	writeField(&content, "Amount:      ", ValueStyle.Render(invoice.FormatAmount(inv.Amount)))
	writeField(&content, "Status:      ", StatusStyle(inv.Status).Render(inv.Status.Title()))
	writeField(&content, "Issue Date:  ", ValueStyle.Render(inv.IssueDateString()))
	writeField(&content, "Due Date:    ", ValueStyle.Render(inv.DueDateString()))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(inv.Description)

	return BoxStyle.Width(width).Render(content.String())
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(LabelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

// truncate shortens s to at most maxLen runes, marking the cut with "...".
func truncate(s string, maxLen int) string {
	const ellipsis = "..."
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= len(ellipsis) {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}
