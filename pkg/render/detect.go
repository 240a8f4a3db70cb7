package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode is the process-wide colorization override.
type Mode int

const (
	// ModeAuto detects color support from the output stream and environment.
	ModeAuto Mode = iota
	// ModeAlways forces ANSI output even when the destination is not a terminal.
	ModeAlways
	// ModeNever suppresses all escape sequences.
	ModeNever
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseMode parses a string into a Mode value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ModeAuto, nil
	case "always", "on":
		return ModeAlways, nil
	case "never", "off":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// Apply sets the global lipgloss color profile according to the mode.
// ModeAuto leaves detection to lipgloss.
func (m Mode) Apply() {
	switch m {
	case ModeAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case ModeNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Detect picks a backend for the given output stream, honoring NO_COLOR,
// piped or redirected output, and the terminal's reported color support.
func Detect(out *os.File) Backend {
	if os.Getenv("NO_COLOR") != "" {
		return Plain{}
	}

	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return Plain{}
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return Plain{}
	}

	return Terminal{}
}

// ForMode applies the mode globally and returns the matching backend,
// falling back to detection for ModeAuto.
func ForMode(m Mode, out *os.File) Backend {
	m.Apply()
	switch m {
	case ModeAlways:
		return Terminal{}
	case ModeNever:
		return Plain{}
	default:
		return Detect(out)
	}
}
