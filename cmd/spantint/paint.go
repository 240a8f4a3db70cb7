package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/spantint/pkg/colorize"
	"github.com/arthur-debert/spantint/pkg/style"
)

var (
	ruleSpecs    []string
	defaultStyle string

	paintCmd = &cobra.Command{
		Use:   "paint TEXT",
		Short: "Apply styling rules to spans of TEXT",
		Example: `  spantint paint "Red, no red" --rule 0:3:red
  spantint paint Rainbow --rule 0:6:red --rule 1:6:#ffa000 --default muted`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := args[0]

			general := style.Style{}
			name := defaultStyle
			if name == "" {
				name = cfg.DefaultStyle
			}
			if name != "" {
				st, err := activeTheme.Lookup(name)
				if err != nil {
					return fmt.Errorf("default style: %w", err)
				}
				general = st
			}

			rules := make([]colorize.Rule, 0, len(ruleSpecs))
			for _, spec := range ruleSpecs {
				r, err := parseRule(base, spec)
				if err != nil {
					return fmt.Errorf("rule %q: %w", spec, err)
				}
				rules = append(rules, r)
			}
			log.Debug().Int("rules", len(rules)).Int("bytes", len(base)).Msg("Painting text")

			fmt.Fprintln(cmd.OutOrStdout(), colorize.RenderWith(backend, base, general, rules...))
			return nil
		},
	}
)

func init() {
	paintCmd.Flags().StringArrayVarP(&ruleSpecs, "rule", "r", nil, "styling rule as START:END:STYLE (repeatable, later rules win)")
	paintCmd.Flags().StringVarP(&defaultStyle, "default", "d", "", "style for characters no rule covers")
}

// parseRule turns a START:END:STYLE spec into a Rule whose span slices
// base. Offsets are byte positions and are clamped to base's length.
func parseRule(base, spec string) (colorize.Rule, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return colorize.Rule{}, fmt.Errorf("expected START:END:STYLE")
	}

	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return colorize.Rule{}, fmt.Errorf("invalid start offset %q", parts[0])
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return colorize.Rule{}, fmt.Errorf("invalid end offset %q", parts[1])
	}

	start = clamp(start, 0, len(base))
	end = clamp(end, start, len(base))

	st, err := activeTheme.Lookup(parts[2])
	if err != nil {
		return colorize.Rule{}, err
	}

	return colorize.Rule{Span: base[start:end], Style: st}, nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
