package style

import (
	"fmt"
	"strconv"
)

// colorKind discriminates how a Color is encoded.
type colorKind uint8

const (
	colorNone colorKind = iota
	colorANSI
	colorRGB
)

// Color is a terminal color: one of the 16 named ANSI palette colors or an
// RGB ("true color") triple. The zero value is unset.
type Color struct {
	kind    colorKind
	ansi    uint8
	r, g, b uint8
}

// Named ANSI colors (palette indices 0-15).
var (
	Black         = ansiColor(0)
	Red           = ansiColor(1)
	Green         = ansiColor(2)
	Yellow        = ansiColor(3)
	Blue          = ansiColor(4)
	Magenta       = ansiColor(5)
	Cyan          = ansiColor(6)
	White         = ansiColor(7)
	BrightBlack   = ansiColor(8)
	BrightRed     = ansiColor(9)
	BrightGreen   = ansiColor(10)
	BrightYellow  = ansiColor(11)
	BrightBlue    = ansiColor(12)
	BrightMagenta = ansiColor(13)
	BrightCyan    = ansiColor(14)
	BrightWhite   = ansiColor(15)
)

func ansiColor(n uint8) Color {
	return Color{kind: colorANSI, ansi: n}
}

// RGB returns a true-color Color from red, green and blue components.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// IsSet reports whether c holds a color.
func (c Color) IsSet() bool {
	return c.kind != colorNone
}

// Token returns the color in the form lipgloss understands: a palette
// index ("9") for named colors, "#rrggbb" for RGB, "" when unset.
func (c Color) Token() string {
	switch c.kind {
	case colorANSI:
		return strconv.Itoa(int(c.ansi))
	case colorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return ""
	}
}
