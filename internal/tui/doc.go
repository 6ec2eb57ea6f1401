// Package tui implements the interactive finance dashboard on Bubble Tea.
//
// AppModel is the root model. It owns a collapsible sidebar and routes input to
// the active page. The invoices page binds a pager.Controller to a virtual list:
// every cursor or wheel movement reports a scroll position in rows, bursts are
// coalesced with tea.Tick, and only the most recent position is evaluated.
//
// Styles are shared lipgloss definitions; DetectOutputMode decides whether the
// CLI starts the program or prints plain text.
package tui
