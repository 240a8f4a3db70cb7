package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/spantint/internal/version"
	"github.com/arthur-debert/spantint/pkg/config"
	"github.com/arthur-debert/spantint/pkg/logging"
	"github.com/arthur-debert/spantint/pkg/render"
	"github.com/arthur-debert/spantint/pkg/theme"
)

var (
	verbosity int
	cfgFile   string
	colorFlag string
	themeFile string

	// Resolved in PersistentPreRunE, used by subcommands.
	cfg         *config.Config
	activeTheme *theme.Theme
	backend     render.Backend

	rootCmd = &cobra.Command{
		Use:   "spantint",
		Short: "Colorize substrings of text with ANSI styles",
		Long: `spantint styles spans of a string with ANSI colors and attributes.

Rules are given as START:END:STYLE byte ranges; later rules win where
ranges overlap. STYLE is a theme style name, an ANSI color name, or a
#rrggbb literal.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}

			colorSetting := cfg.Color
			if colorFlag != "" {
				colorSetting = colorFlag
			}
			mode, err := render.ParseMode(colorSetting)
			if err != nil {
				return err
			}
			backend = render.ForMode(mode, os.Stdout)

			themePath := cfg.Theme
			if themeFile != "" {
				themePath = themeFile
			}
			if themePath != "" {
				activeTheme, err = theme.Load(themePath)
				if err != nil {
					return err
				}
				log.Debug().Str("path", themePath).Msg("Loaded custom theme")
			} else {
				activeTheme = theme.Default()
			}
			return nil
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v, -vv, -vvv)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/spantint/config.toml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "when to emit color: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&themeFile, "theme", "", "path to a custom theme YAML file")

	rootCmd.AddCommand(paintCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("spantint %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
	},
}
