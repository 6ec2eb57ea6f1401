package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Page identifies a sidebar destination.
type Page int

const (
	// PageDashboard shows the stat cards and recent activity.
	PageDashboard Page = iota
	// PageInvoices shows the invoice table and detail pane.
	PageInvoices
	// PageSubscriptions is a placeholder.
	PageSubscriptions
	// PageSettings is a placeholder.
	PageSettings
	// PageProfile shows the configured user.
	PageProfile
)

// numPages is the number of sidebar destinations.
const numPages = 5

// Pages returns the sidebar destinations in display order.
func Pages() []Page {
	return []Page{PageDashboard, PageInvoices, PageSubscriptions, PageSettings, PageProfile}
}

// Title returns the navigation label of the page.
func (p Page) Title() string {
	switch p {
	case PageDashboard:
		return "Dashboard"
	case PageInvoices:
		return "Invoices"
	case PageSubscriptions:
		return "Subscriptions"
	case PageSettings:
		return "Settings"
	case PageProfile:
		return "User Profile"
	default:
		return "Unknown"
	}
}

// Profile is the user shown on the profile page and in the sidebar.
type Profile struct {
	Name  string
	Email string
}

// Initials returns up to two initials of the profile name.
func (p Profile) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(p.Name) {
		b.WriteString(strings.ToUpper(string([]rune(part)[0])))
		if b.Len() == 2 { //nolint:mnd // Two initials.
			break
		}
	}
	return b.String()
}

func renderPlaceholder(title, subtitle string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render(title),
		SubtleStyle.Render(subtitle),
		"",
		InfoStyle.Render("Coming soon."),
	)
}

func renderProfile(p Profile, width int) string {
	var content strings.Builder
	content.WriteString(HeaderStyle.Render(p.Initials()))
	content.WriteString("\n\n")
	writeField(&content, "Name:   ", ValueStyle.Render(p.Name))
	writeField(&content, "Email:  ", ValueStyle.Render(p.Email))

	return lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render("User Profile"),
		SubtleStyle.Render("Your account details"),
		"",
		BoxStyle.Width(width-borderPadding).Render(strings.TrimSuffix(content.String(), "\n")),
	)
}
