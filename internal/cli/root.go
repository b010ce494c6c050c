// Package cli implements the factforge command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "factforge",
	Short: "FactForge - document fact-checking pipeline",
	Long: `FactForge extracts verifiable factual claims from documents and checks
them against current web evidence.

For every claim it gathers search results, ranks them by source
reputation, and asks a language model for a verdict: verified,
inaccurate (with the corrected value), or false. Known myths are
caught instantly from a built-in table without any search.

Verdicts are model-assisted judgments, not ground truth. Review them
before acting on them.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for FactForge.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("factforge v0.2.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.factforge/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.factforge")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match FACTFORGE_*
	viper.SetEnvPrefix("FACTFORGE")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// initLogging routes zerolog through a console writer on stderr so log
// lines never mix into rendered report output on stdout.
func initLogging() {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}
