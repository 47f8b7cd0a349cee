// Package cli provides the command-line interface for Huegen.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/huegen/internal/version"
)

var (
	// Global flags
	rootVerbose bool
	rootQuiet   bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "huegen",
		Short: "A perceptual colour palette and scheme generator",
		Long: `Huegen generates colour palettes and Base16/Base24 colour schemes from a
seed colour using perceptually grounded colour math.

Palettes can be derived from classical hue harmonies, sampled with golden
ratio stepping or Poisson-disk rejection, or walked with gradient noise.
Schemes follow the tinted-theming conventions and can be rendered to the
terminal, to palette images, or applied to syntax-highlighted code.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// NewRootCmd returns the configured root command. Used by main and tests.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// normalizeFlags accepts British spellings for the colour list flags.
func normalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "colours" {
		name = "colors"
	}
	return pflag.NormalizedName(name)
}

func init() {
	rootCmd.SetGlobalNormalizationFunc(normalizeFlags)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(schemeCmd)
	rootCmd.AddCommand(gradientCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(demoCmd)
}

// newLogger builds the command logger from the verbosity flags.
func newLogger() hclog.Logger {
	if rootVerbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "huegen",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huegen",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// progressf writes user-facing progress to stderr unless --quiet is set.
func progressf(format string, args ...any) {
	if rootQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
