// Package render is the styling backend: it turns a unit of text plus a
// resolved style into output, either ANSI-escaped for terminals or
// verbatim for plain destinations.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/spantint/pkg/style"
)

// Backend converts a unit of text plus a resolved style into its final
// output form. Terminal backends return a self-terminating fragment: the
// escape codes apply, the text follows, and a reset closes it, so
// fragments concatenate safely in any order.
type Backend interface {
	Render(text string, st style.Style) string
}

// Terminal renders styles as ANSI SGR escape sequences via lipgloss. The
// emitted sequences honor lipgloss's process-wide color profile, so
// forcing or disabling color globally needs no changes here.
type Terminal struct{}

// Render wraps text in the escape codes for st followed by a reset. A zero
// style returns text unchanged.
func (Terminal) Render(text string, st style.Style) string {
	if st.IsZero() {
		return text
	}
	ls := lipgloss.NewStyle()
	if fg := st.Fg(); fg.IsSet() {
		ls = ls.Foreground(lipgloss.Color(fg.Token()))
	}
	if bg := st.Bg(); bg.IsSet() {
		ls = ls.Background(lipgloss.Color(bg.Token()))
	}
	if st.Has(style.Bold) {
		ls = ls.Bold(true)
	}
	if st.Has(style.Dimmed) {
		ls = ls.Faint(true)
	}
	if st.Has(style.Italic) {
		ls = ls.Italic(true)
	}
	if st.Has(style.Underline) {
		ls = ls.Underline(true)
	}
	if st.Has(style.Blink) {
		ls = ls.Blink(true)
	}
	if st.Has(style.Reversed) {
		ls = ls.Reverse(true)
	}
	if st.Has(style.Strikethrough) {
		ls = ls.Strikethrough(true)
	}
	return ls.Render(text)
}

// Plain emits text verbatim, dropping all styling.
type Plain struct{}

// Render returns text unchanged.
func (Plain) Render(text string, _ style.Style) string {
	return text
}
