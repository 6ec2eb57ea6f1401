package tui

import (
	"os"

	"golang.org/x/term"
)

// Key bindings shared by the pages.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyCollapse = "["
	keyAdd      = "a"
)

// Layout defaults used before the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
	minHeight     = 5
	borderPadding = 2
)

// OutputMode selects how results are presented on stdout.
type OutputMode int

const (
	// OutputModePlain prints unstyled text, for pipes and NO_COLOR.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints lipgloss-styled text without taking over the terminal.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the output mode for stdout.
// plain and noColor force plain output; forceColor yields styled output even when stdout is not a terminal.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, term.IsTerminal(int(os.Stdout.Fd())), os.LookupEnv)
}

func detectOutputMode(
	forceColor, noColor, plain, isTTY bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if termName, _ := lookupEnv("TERM"); termName == "dumb" {
		return OutputModePlain
	}
	if forceColor {
		if isTTY {
			return OutputModeInteractive
		}
		return OutputModeStyled
	}
	if isTTY {
		return OutputModeInteractive
	}
	return OutputModePlain
}

// TerminalWidth returns the width of stdout, or defaultWidth when it cannot be determined.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
