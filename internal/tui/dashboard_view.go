package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/findash/internal/invoice"
)

// DefaultActivityLimit is the number of entries in the recent activity list.
const DefaultActivityLimit = 5

// Stat card layout.
const (
	numStatCards      = 4
	minCardWidth      = 20
	cardGap           = 1
	narrowCardsPerRow = 2
)

// statCard is one headline figure of the dashboard.
type statCard struct {
	title  string
	value  string
	change invoice.Change
	// risingIsBad flips the trend colors for figures that should go down.
	risingIsBad bool
}

// RenderDashboard renders the stat cards and the recent activity list.
func RenderDashboard(summary invoice.Summary, activity []invoice.Activity, width int) string {
	cards := []statCard{
		{title: "Total Revenue", value: invoice.FormatAmount(summary.Revenue), change: summary.RevenueChange},
		{title: "Open Invoices", value: strconv.Itoa(summary.OpenCount), change: summary.OpenCountDelta, risingIsBad: true},
		{title: "Pending Payments", value: invoice.FormatAmount(summary.PendingAmount), change: summary.PendingChange},
		{title: "Overdue", value: invoice.FormatAmount(summary.OverdueAmount), change: summary.OverdueChange, risingIsBad: true},
	}

	sections := []string{
		HeaderStyle.Render("Dashboard"),
		SubtleStyle.Render("Overview of your invoices and payments"),
		"",
		renderStatCards(cards, width),
		"",
		renderActivity(activity, width),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderStatCards(cards []statCard, width int) string {
	perRow := numStatCards
	if width < numStatCards*(minCardWidth+cardGap) {
		perRow = narrowCardsPerRow
	}
	cardWidth := width/perRow - cardGap - borderPadding
	if cardWidth < minCardWidth-borderPadding {
		cardWidth = minCardWidth - borderPadding
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rendered := make([]string, 0, end-start)
		for _, card := range cards[start:end] {
			rendered = append(rendered, renderStatCard(card, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderStatCard(card statCard, width int) string {
	var content strings.Builder
	content.WriteString(LabelStyle.Render(card.title))
	content.WriteString("\n")
	content.WriteString(ValueStyle.Render(card.value))
	content.WriteString("\n")
	content.WriteString(renderTrend(card.change, card.risingIsBad))
	content.WriteString(SubtleStyle.Render(" from last month"))

	return BoxStyle.Width(width).MarginRight(cardGap).Render(content.String())
}

// renderTrend renders a change as an arrow badge.
func renderTrend(change invoice.Change, risingIsBad bool) string {
	switch change.Trend() {
	case invoice.TrendUp:
		style := SuccessStyle
		if risingIsBad {
			style = CriticalStyle
		}
		return style.Render("▲ " + change.String())
	case invoice.TrendDown:
		style := CriticalStyle
		if risingIsBad {
			style = SuccessStyle
		}
		return style.Render("▼ " + change.String())
	default:
		return SubtleStyle.Render("- " + change.String())
	}
}

func renderActivity(activity []invoice.Activity, width int) string {
	var content strings.Builder
	content.WriteString(HeaderStyle.Render("Recent Activity"))
	content.WriteString("\n")

	if len(activity) == 0 {
		content.WriteString(SubtleStyle.Render("No recent activity."))
		return BoxStyle.Width(width - borderPadding).Render(content.String())
	}

	for _, entry := range activity {
		amountStyle := ValueStyle
		if entry.Credit {
			amountStyle = SuccessStyle
		}
		content.WriteString("\n")
		content.WriteString(fmt.Sprintf("%s %s  %s",
			activityIcon(entry.Kind),
			entry.Description,
			amountStyle.Render(entry.Amount)))
		content.WriteString("\n")
		content.WriteString(SubtleStyle.Render("  " + entry.When.Format(invoice.DateLayout)))
	}

	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

func activityIcon(kind invoice.ActivityKind) string {
	switch kind {
	case invoice.ActivityPayment:
		return SuccessStyle.Render("$")
	case invoice.ActivityOverdue:
		return CriticalStyle.Render("!")
	default:
		return InfoStyle.Render("#")
	}
}
