package colorize

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/spantint/pkg/style"
)

// fragment records one backend invocation: a single rendered unit and the
// style resolved for it.
type fragment struct {
	text string
	st   style.Style
}

// recording passes text through unchanged while capturing every resolved
// (text, style) pair, so resolution can be asserted without parsing ANSI.
type recording struct {
	frags []fragment
}

func (r *recording) Render(text string, st style.Style) string {
	r.frags = append(r.frags, fragment{text, st})
	return text
}

func TestNoRulesNoDefault(t *testing.T) {
	base := "hello world"
	rec := &recording{}

	got := RenderWith(rec, base, style.Style{})

	assert.Equal(t, base, got)
	require.Len(t, rec.frags, len(base))
	for _, f := range rec.frags {
		assert.True(t, f.st.IsZero(), "expected plain style for %q", f.text)
	}
}

func TestEmptyBase(t *testing.T) {
	rec := &recording{}
	assert.Equal(t, "", RenderWith(rec, "", style.Foreground(style.Red)))
	assert.Empty(t, rec.frags)
}

func TestFullCoverage(t *testing.T) {
	base := "cover"
	def := style.Foreground(style.White).Merge(style.Background(style.Black))
	rule := Rule{Span: base[:], Style: style.Foreground(style.Red)}
	rec := &recording{}

	RenderWith(rec, base, def, rule)

	require.Len(t, rec.frags, len(base))
	want := def.Merge(rule.Style)
	for _, f := range rec.frags {
		assert.Equal(t, want, f.st)
	}
}

func TestOverlapLastWins(t *testing.T) {
	base := "layers"
	wide := Rule{Span: base[0:6], Style: style.Foreground(style.Red)}
	narrow := Rule{Span: base[1:6], Style: style.Foreground(style.Blue)}
	rec := &recording{}

	RenderWith(rec, base, style.Style{}, wide, narrow)

	require.Len(t, rec.frags, 6)
	assert.Equal(t, style.Red, rec.frags[0].st.Fg(), "char 0 keeps the wide rule")
	for i := 1; i < 6; i++ {
		assert.Equal(t, style.Blue, rec.frags[i].st.Fg(), "char %d takes the later rule", i)
	}
}

// The layered rainbow: each successive narrower rule recolors only its own
// sub-span, and the character no rule reaches falls back to the default.
func TestRainbowLayering(t *testing.T) {
	rainbow := "Rainbow"
	def := style.Foreground(style.White)
	rules := []Rule{
		{Span: rainbow[0:6], Style: style.Foreground(style.Red)},
		{Span: rainbow[1:6], Style: style.Foreground(style.RGB(255, 160, 0))},
		{Span: rainbow[2:6], Style: style.Foreground(style.Yellow)},
		{Span: rainbow[3:6], Style: style.Foreground(style.Green)},
		{Span: rainbow[4:6], Style: style.Foreground(style.Blue)},
		{Span: rainbow[5:6], Style: style.Foreground(style.Magenta)},
	}
	rec := &recording{}

	got := RenderWith(rec, rainbow, def, rules...)

	assert.Equal(t, rainbow, got)
	require.Len(t, rec.frags, 7)
	want := []style.Color{
		style.Red,
		style.RGB(255, 160, 0),
		style.Yellow,
		style.Green,
		style.Blue,
		style.Magenta,
		style.White, // 'w' is uncovered, general style applies
	}
	for i, c := range want {
		assert.Equal(t, c, rec.frags[i].st.Fg(), "char %d (%q)", i, rec.frags[i].text)
	}
}

func TestForeignSpanRejected(t *testing.T) {
	base := "Red, no red"
	other := "Another string"
	rules := []Rule{
		{Span: base[0:3], Style: style.Foreground(style.Red)},
		{Span: other[5:], Style: style.Foreground(style.Green)},
	}
	rec := &recording{}

	got := RenderWith(rec, base, style.Style{}, rules...)

	assert.Equal(t, base, got)
	require.Len(t, rec.frags, len(base))
	for i, f := range rec.frags {
		if i < 3 {
			assert.Equal(t, style.Red, f.st.Fg(), "char %d", i)
		} else {
			assert.True(t, f.st.IsZero(), "char %d should be plain", i)
		}
	}
}

func TestIdenticalContentDoesNotMatch(t *testing.T) {
	base := "duplicate"
	copied := strings.Clone(base)
	rec := &recording{}

	RenderWith(rec, base, style.Style{}, Rule{Span: copied[0:4], Style: style.Foreground(style.Green)})

	for i, f := range rec.frags {
		assert.True(t, f.st.IsZero(), "char %d styled by a foreign span", i)
	}
}

func TestUncoveredWithDefault(t *testing.T) {
	base := "abcdef"
	def := style.Background(style.Blue).Merge(style.Attr(style.Bold))
	rec := &recording{}

	RenderWith(rec, base, def, Rule{Span: base[2:4], Style: style.Foreground(style.Red)})

	require.Len(t, rec.frags, 6)
	for i, f := range rec.frags {
		if i >= 2 && i < 4 {
			assert.Equal(t, def.Merge(style.Foreground(style.Red)), f.st, "char %d", i)
		} else {
			assert.Equal(t, def, f.st, "char %d renders with the default verbatim", i)
		}
	}
}

func TestRuleMergesOntoDefault(t *testing.T) {
	base := "x"
	def := style.Foreground(style.White).Merge(style.Background(style.Black))
	rec := &recording{}

	RenderWith(rec, base, def, Rule{Span: base[:], Style: style.Foreground(style.Red)})

	require.Len(t, rec.frags, 1)
	got := rec.frags[0].st
	assert.Equal(t, style.Red, got.Fg(), "rule wins the foreground conflict")
	assert.Equal(t, style.Black, got.Bg(), "default background survives the merge")
}

func TestEmptySpanSkipped(t *testing.T) {
	base := "abc"
	rec := &recording{}

	RenderWith(rec, base, style.Style{}, Rule{Span: base[1:1], Style: style.Foreground(style.Red)})

	for i, f := range rec.frags {
		assert.True(t, f.st.IsZero(), "char %d", i)
	}
}

func TestPartialOverlapClamped(t *testing.T) {
	whole := strings.Clone("XXinnerYY")
	base := whole[2:7] // "inner"
	rec := &recording{}

	// The span hangs off base's left edge; only the overlapping bytes
	// ("inn") take the style.
	RenderWith(rec, base, style.Style{}, Rule{Span: whole[0:5], Style: style.Foreground(style.Cyan)})

	require.Len(t, rec.frags, 5)
	for i, f := range rec.frags {
		if i < 3 {
			assert.Equal(t, style.Cyan, f.st.Fg(), "char %d", i)
		} else {
			assert.True(t, f.st.IsZero(), "char %d", i)
		}
	}
}

// Crossing, non-nested spans: strict input order decides each character,
// not span width.
func TestCrossingSpansInputOrderWins(t *testing.T) {
	base := "abcdef"
	first := Rule{Span: base[0:4], Style: style.Foreground(style.Red)}
	second := Rule{Span: base[2:6], Style: style.Foreground(style.Green)}
	rec := &recording{}

	RenderWith(rec, base, style.Style{}, first, second)

	want := []style.Color{style.Red, style.Red, style.Green, style.Green, style.Green, style.Green}
	for i, c := range want {
		assert.Equal(t, c, rec.frags[i].st.Fg(), "char %d", i)
	}
}

func TestMultiByteRunesStayWhole(t *testing.T) {
	base := "héllo"
	rec := &recording{}

	got := RenderWith(rec, base, style.Style{}, Rule{Span: base[:], Style: style.Foreground(style.Red)})

	assert.Equal(t, base, got)
	require.Len(t, rec.frags, 5, "one fragment per rune, not per byte")
	assert.Equal(t, "é", rec.frags[1].text)
}

func TestColorizeEmitsAnsi(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.TrueColor)

	base := "hi"
	got := Colorize(base, style.Style{}, Rule{Span: base[0:1], Style: style.Foreground(style.Red)})

	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "h")
	assert.Contains(t, got, "i")

	t.Run("disabled profile yields the input", func(t *testing.T) {
		lipgloss.SetColorProfile(termenv.Ascii)
		defer lipgloss.SetColorProfile(termenv.TrueColor)

		got := Colorize(base, style.Foreground(style.Red), Rule{Span: base[:], Style: style.Background(style.Blue)})
		assert.Equal(t, base, got)
	})
}

func TestColorizeDoesNotMutateInputs(t *testing.T) {
	base := "immutable"
	rule := Rule{Span: base[0:4], Style: style.Foreground(style.Red)}

	RenderWith(&recording{}, base, style.Style{}, rule)

	assert.Equal(t, "immutable", base)
	assert.Equal(t, "immu", rule.Span)
}
