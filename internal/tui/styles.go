package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/findash/internal/invoice"
)

// Color palette shared by all pages.
var (
	ColorHeader    = lipgloss.Color("63")  //nolint:gochecknoglobals // Palette constant.
	ColorLabel     = lipgloss.Color("245") //nolint:gochecknoglobals // Palette constant.
	ColorValue     = lipgloss.Color("255") //nolint:gochecknoglobals // Palette constant.
	ColorMuted     = lipgloss.Color("241") //nolint:gochecknoglobals // Palette constant.
	ColorHighlight = lipgloss.Color("212") //nolint:gochecknoglobals // Palette constant.
	ColorAccent    = lipgloss.Color("33")  //nolint:gochecknoglobals // Palette constant.
	ColorPaid      = lipgloss.Color("42")  //nolint:gochecknoglobals // Palette constant.
	ColorPending   = lipgloss.Color("214") //nolint:gochecknoglobals // Palette constant.
	ColorOverdue   = lipgloss.Color("196") //nolint:gochecknoglobals // Palette constant.
	ColorBorder    = lipgloss.Color("238") //nolint:gochecknoglobals // Palette constant.
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorAccent)
	// WarningStyle marks pending amounts and recoverable errors.
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorPending).Bold(true)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorOverdue).Bold(true)
	SuccessStyle  = lipgloss.NewStyle().Foreground(ColorPaid).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	TableSelectedStyle = lipgloss.NewStyle().Foreground(ColorValue).Background(lipgloss.Color("57"))
	TableChosenStyle   = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	NavItemStyle       = lipgloss.NewStyle().Foreground(ColorLabel)
	NavItemActiveStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)
)

// StatusStyle returns the badge style for an invoice status.
func StatusStyle(status invoice.Status) lipgloss.Style {
	switch status {
	case invoice.StatusPaid:
		return SuccessStyle
	case invoice.StatusPending:
		return WarningStyle
	case invoice.StatusOverdue:
		return CriticalStyle
	default:
		return LabelStyle
	}
}
