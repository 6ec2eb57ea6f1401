package tui

import (
	"fmt"
	"strings"
)

// Sidebar widths including the right border.
const (
	sidebarWidth          = 24
	sidebarCollapsedWidth = 6
)

// sidebarNavTop is the line of the first navigation item: brand, blank.
const sidebarNavTop = 2

func sidebarOuterWidth(collapsed bool) int {
	if collapsed {
		return sidebarCollapsedWidth
	}
	return sidebarWidth
}

// renderSidebar renders the navigation column.
func renderSidebar(active Page, collapsed bool, profile Profile, height int) string {
	var lines []string
	if collapsed {
		lines = append(lines, HeaderStyle.Render("FD"), "")
	} else {
		lines = append(lines, HeaderStyle.Render("FinDash"), "")
	}

	for i, page := range Pages() {
		label := fmt.Sprintf("%d %s", i+1, page.Title())
		if collapsed {
			label = fmt.Sprintf("%d", i+1)
		}
		if page == active {
			lines = append(lines, NavItemActiveStyle.Render(label))
		} else {
			lines = append(lines, NavItemStyle.Render(label))
		}
	}

	footer := profile.Name
	if collapsed {
		footer = profile.Initials()
	}
	// Pad so the footer sits at the bottom of the column.
	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, SubtleStyle.Render(footer))

	// Width includes the padding but not the right border.
	inner := sidebarOuterWidth(collapsed) - 1
	return SidebarStyle.Width(inner).Render(strings.Join(lines, "\n"))
}

// pageAtLine maps a sidebar line to a navigation item.
func pageAtLine(line int) (Page, bool) {
	idx := line - sidebarNavTop
	if idx < 0 || idx >= numPages {
		return 0, false
	}
	return Pages()[idx], true
}
