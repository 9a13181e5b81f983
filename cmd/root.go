package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/talqui/cx-insight/internal"
)

var (
	verbose      bool
	dataDir      string
	messagesPath string
	sessionsPath string
	pluginsPath  string
	sqlitePath   string
	cacheDir     string
	noCache      bool
	clearCache   bool

	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cx-insight",
	Short: "Analyze exported customer-support interaction logs",
	Long: `cx-insight computes descriptive analytics over exported support
chat logs (messages and sessions): operator performance, temporal volume
patterns, keyword sentiment, customer segmentation and headline insights.

Inputs are the platform's CSV exports (or a SQLite export) supplied via
--data, --messages/--sessions/--plugins or --sqlite. Normalized tables
are cached between runs and invalidated when a source file changes.

Quick Start:
  cx-insight summary --data ./data        # Dataset overview
  cx-insight operators --data ./data      # Operator performance table
  cx-insight report --data ./data -f html # Full static report`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data", "Data directory to scan for CSV exports")
	rootCmd.PersistentFlags().StringVar(&messagesPath, "messages", "", "Explicit path to the messages CSV export")
	rootCmd.PersistentFlags().StringVar(&sessionsPath, "sessions", "", "Explicit path to the sessions CSV export")
	rootCmd.PersistentFlags().StringVar(&pluginsPath, "plugins", "", "Explicit path to the sessions-with-plugins CSV export")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite", "", "Load tables from a SQLite export instead of CSV")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "Cache directory (default ~/.cx-insight-cache)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the table cache entirely")
	rootCmd.PersistentFlags().BoolVar(&clearCache, "clear-cache", false, "Clear the cache before running")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
