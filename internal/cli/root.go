// Package cli provides the command-line interface for the palette
// generator.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/aguscruiz/color-palette-generator/internal/config"
	"github.com/aguscruiz/color-palette-generator/internal/version"
)

var (
	// Global flags
	flagVerbose    bool
	flagQuiet      bool
	flagConfigPath string

	// log is the shared logger, configured from the global flags before any
	// command runs.
	log = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "color-palette-generator",
		Short: "Perceptually uniform OKLCH colour scale generator",
		Long: `color-palette-generator builds perceptually uniform colour scales in the
OKLCH colour space from a small set of base colours.

Each family expands into an ordered scale whose lightness descends from
near-white to near-black at fixed chroma and hue. Individual steps can be
pinned to a WCAG contrast ratio against a reference colour; a bounded
binary search finds the lightness that meets the target.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Info
			if flagVerbose {
				level = hclog.Debug
			}
			if flagQuiet {
				level = hclog.Error
			}
			log = hclog.New(&hclog.LoggerOptions{
				Name:   "palette",
				Output: os.Stderr,
				Level:  level,
			})
		},
	}
)

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to config file (default: XDG config dir)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(familyCmd)
}

// configPath resolves the configuration file path from the --config flag or
// the default location.
func configPath() (string, error) {
	if flagConfigPath != "" {
		return flagConfigPath, nil
	}
	return config.DefaultPath()
}

// loadConfig loads the configuration the commands operate on.
func loadConfig() (config.Config, string, error) {
	path, err := configPath()
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	log.Debug("loaded config", "path", path, "families", len(cfg.Families))
	return cfg, path, nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
