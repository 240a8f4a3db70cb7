// Package colorize resolves ordered substring styling rules over a base
// string and renders the result as ANSI-styled text.
//
// A Rule's Span must be a substring of the base string itself — a string
// value produced by slicing it, such as base[2:5] — not merely text that
// compares equal. Rules referencing any other string are silently skipped.
// Where spans overlap, the later rule wins for every character both cover:
//
//	rainbow := "Rainbow"
//	out := colorize.Colorize(rainbow, style.Foreground(style.White),
//		colorize.Rule{Span: rainbow[0:6], Style: style.Foreground(style.Red)},
//		colorize.Rule{Span: rainbow[1:6], Style: style.Foreground(style.RGB(255, 160, 0))},
//		colorize.Rule{Span: rainbow[2:6], Style: style.Foreground(style.Yellow)},
//	)
//
// Here only 'R' stays red and only 'a' orange; the final 'w' falls through
// to the general style.
package colorize

import (
	"strings"
	"unsafe"

	"github.com/arthur-debert/spantint/pkg/render"
	"github.com/arthur-debert/spantint/pkg/style"
)

// Rule applies a style to one span of the base string. Span is held as a
// read-only alias of the caller's string; it is never retained past the
// Colorize call.
type Rule struct {
	Span  string
	Style style.Style
}

// extent returns the half-open address range backing s. Identity, not
// content, is what ties a span to its base string.
func extent(s string) (start, end uintptr) {
	if len(s) == 0 {
		return 0, 0
	}
	p := uintptr(unsafe.Pointer(unsafe.StringData(s)))
	return p, p + uintptr(len(s))
}

// Colorize styles base according to rules, in order, and returns the
// concatenated styled output. general, when non-zero, applies to every
// character; a covering rule's style merges on top of it (rule wins color
// conflicts, attributes union). Rules whose Span does not alias base's
// storage, or does not overlap it, have no effect. Colorize never fails
// and never mutates its inputs.
//
// Output honors lipgloss's process-wide color profile; with color disabled
// the result is base itself.
func Colorize(base string, general style.Style, rules ...Rule) string {
	return RenderWith(render.Terminal{}, base, general, rules...)
}

// RenderWith runs the same resolution as Colorize against an explicit
// backend, keeping the algorithm independent of global terminal state.
func RenderWith(b render.Backend, base string, general style.Style, rules ...Rule) string {
	if base == "" {
		return ""
	}

	baseStart, baseEnd := extent(base)

	// Resolution table: winning rule index per byte of base, -1 where no
	// rule applies. Later rules overwrite earlier ones byte by byte, so a
	// narrower later rule only peels off the bytes it actually covers.
	winner := make([]int, len(base))
	for i := range winner {
		winner[i] = -1
	}

	for ri := range rules {
		spanStart, spanEnd := extent(rules[ri].Span)
		if spanEnd <= baseStart || spanStart >= baseEnd {
			continue
		}
		lo, hi := 0, len(base)
		if spanStart > baseStart {
			lo = int(spanStart - baseStart)
		}
		if spanEnd < baseEnd {
			hi = int(spanEnd - baseStart)
		}
		for i := lo; i < hi; i++ {
			winner[i] = ri
		}
	}

	// Spans are byte ranges but the emitted unit is a rune, so multi-byte
	// characters are never split by escape codes. The rune's first byte
	// decides its winner.
	var out strings.Builder
	for i, r := range base {
		st := general
		if w := winner[i]; w >= 0 {
			st = st.Merge(rules[w].Style)
		}
		out.WriteString(b.Render(string(r), st))
	}
	return out.String()
}
