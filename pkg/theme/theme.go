// Package theme maps semantic names to styles, loaded from YAML.
//
// The embedded theme.yaml ships a default set ("error", "success",
// "highlight", ...) used by the CLI so rules can reference styles by name.
// A custom theme file with the same layout can be loaded from disk.
package theme

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/spantint/pkg/style"
)

// StyleDef is one style definition in YAML. Color fields accept a named
// ANSI color ("red", "brightcyan"), a color from the theme's colors
// section, or a "#rrggbb" literal.
type StyleDef struct {
	Foreground    string `yaml:"foreground,omitempty"`
	Background    string `yaml:"background,omitempty"`
	Bold          bool   `yaml:"bold,omitempty"`
	Dimmed        bool   `yaml:"dimmed,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Blink         bool   `yaml:"blink,omitempty"`
	Reversed      bool   `yaml:"reversed,omitempty"`
	Strikethrough bool   `yaml:"strikethrough,omitempty"`
}

// Config is the complete theme file layout.
type Config struct {
	Colors map[string]string   `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed theme.yaml
var embeddedTheme []byte

// Theme resolves names to styles.
type Theme struct {
	colors map[string]style.Color
	styles map[string]style.Style
}

var ansiNames = map[string]style.Color{
	"black":         style.Black,
	"red":           style.Red,
	"green":         style.Green,
	"yellow":        style.Yellow,
	"blue":          style.Blue,
	"magenta":       style.Magenta,
	"cyan":          style.Cyan,
	"white":         style.White,
	"brightblack":   style.BrightBlack,
	"brightred":     style.BrightRed,
	"brightgreen":   style.BrightGreen,
	"brightyellow":  style.BrightYellow,
	"brightblue":    style.BrightBlue,
	"brightmagenta": style.BrightMagenta,
	"brightcyan":    style.BrightCyan,
	"brightwhite":   style.BrightWhite,
}

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// Default returns the theme parsed from the embedded theme.yaml. If the
// embedded data cannot be parsed it returns an empty theme rather than
// failing.
func Default() *Theme {
	defaultOnce.Do(func() {
		t, err := Parse(embeddedTheme)
		if err != nil {
			t = &Theme{
				colors: map[string]style.Color{},
				styles: map[string]style.Style{},
			}
		}
		defaultTheme = t
	})
	return defaultTheme
}

// Load reads and parses a theme file from disk.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	return t, nil
}

// Parse builds a Theme from YAML data.
func Parse(data []byte) (*Theme, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme yaml: %w", err)
	}

	t := &Theme{
		colors: make(map[string]style.Color, len(cfg.Colors)),
		styles: make(map[string]style.Style, len(cfg.Styles)),
	}

	for name, def := range cfg.Colors {
		c, err := t.parseColor(def)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		t.colors[strings.ToLower(name)] = c
	}

	for name, def := range cfg.Styles {
		st, err := t.buildStyle(def)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		t.styles[strings.ToLower(name)] = st
	}

	return t, nil
}

// Style returns the named style.
func (t *Theme) Style(name string) (style.Style, bool) {
	st, ok := t.styles[strings.ToLower(name)]
	return st, ok
}

// Names returns the theme's style names, sorted.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves spec to a style: first as a style name, then as a color
// (theme color, ANSI name, or "#rrggbb") applied to the foreground.
func (t *Theme) Lookup(spec string) (style.Style, error) {
	if st, ok := t.Style(spec); ok {
		return st, nil
	}
	if c, err := t.parseColor(spec); err == nil {
		return style.Foreground(c), nil
	}
	return style.Style{}, fmt.Errorf("unknown style or color: %s", spec)
}

func (t *Theme) buildStyle(def StyleDef) (style.Style, error) {
	var st style.Style
	if def.Foreground != "" {
		c, err := t.parseColor(def.Foreground)
		if err != nil {
			return style.Style{}, err
		}
		st = st.Merge(style.Foreground(c))
	}
	if def.Background != "" {
		c, err := t.parseColor(def.Background)
		if err != nil {
			return style.Style{}, err
		}
		st = st.Merge(style.Background(c))
	}
	for attr, set := range map[style.Attribute]bool{
		style.Bold:          def.Bold,
		style.Dimmed:        def.Dimmed,
		style.Italic:        def.Italic,
		style.Underline:     def.Underline,
		style.Blink:         def.Blink,
		style.Reversed:      def.Reversed,
		style.Strikethrough: def.Strikethrough,
	} {
		if set {
			st = st.Merge(style.Attr(attr))
		}
	}
	return st, nil
}

func (t *Theme) parseColor(s string) (style.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		return parseHex(name)
	}
	if c, ok := t.colors[name]; ok {
		return c, nil
	}
	if c, ok := ansiNames[name]; ok {
		return c, nil
	}
	return style.Color{}, fmt.Errorf("unknown color: %s", s)
}

func parseHex(s string) (style.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return style.Color{}, fmt.Errorf("invalid hex color: %s", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return style.Color{}, fmt.Errorf("invalid hex color: %s", s)
	}
	return style.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
