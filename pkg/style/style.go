// Package style defines the Style value type used throughout spantint: an
// optional foreground color, an optional background color, and a set of
// text attributes.
//
// Styles are values, built by merging primitives:
//
//	st := style.Foreground(style.Red).Merge(style.Attr(style.Bold))
//
// Merge is additive: a field once set can only be overridden by a later
// merge, never unset.
package style

// Attribute is a bitmask of text attributes. The set matches what the
// terminal backend can express.
type Attribute uint8

const (
	Bold Attribute = 1 << iota
	Dimmed
	Italic
	Underline
	Blink
	Reversed
	Strikethrough
)

// Style pairs optional foreground and background colors with a set of text
// attributes. The zero value renders as plain text.
type Style struct {
	fg    Color
	bg    Color
	attrs Attribute
}

// Foreground returns a Style that sets only the lettering color.
func Foreground(c Color) Style {
	return Style{fg: c}
}

// Background returns a Style that sets only the background color.
func Background(c Color) Style {
	return Style{bg: c}
}

// Attr returns a Style that sets only the given attributes.
func Attr(attrs ...Attribute) Style {
	var s Style
	for _, a := range attrs {
		s.attrs |= a
	}
	return s
}

// Merge combines s with o. o's foreground and background win when set;
// attributes are the union of both sets. Merge is associative and total.
// It is not commutative on the color fields (the later operand wins) but
// is commutative on attributes.
func (s Style) Merge(o Style) Style {
	if o.fg.IsSet() {
		s.fg = o.fg
	}
	if o.bg.IsSet() {
		s.bg = o.bg
	}
	s.attrs |= o.attrs
	return s
}

// Merge combines a and b, with b taking precedence. See Style.Merge.
func Merge(a, b Style) Style {
	return a.Merge(b)
}

// Fg returns the foreground color, which may be unset.
func (s Style) Fg() Color { return s.fg }

// Bg returns the background color, which may be unset.
func (s Style) Bg() Color { return s.bg }

// Has reports whether every attribute in a is set on s.
func (s Style) Has(a Attribute) bool {
	return s.attrs&a == a
}

// IsZero reports whether s styles nothing, i.e. renders plain text.
func (s Style) IsZero() bool {
	return !s.fg.IsSet() && !s.bg.IsSet() && s.attrs == 0
}
