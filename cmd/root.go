package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagVerbose  bool
	flagDatasets []string
)

var rootCmd = &cobra.Command{
	Use:          "s2k",
	Short:        "SCOS-2000 MIB command and telemetry lookup",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `s2k indexes SCOS-2000 ASCII MIB tables (CCF, CDF, PID, PLF, PCF,
CVE, CVP, TXP) and answers ranked free-text queries against the resulting
command/telemetry index.

Datasets are directories containing the tab-delimited table files. Point
s2k at them with -d, or list them once in ~/.s2k/config.yaml.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringSliceVarP(&flagDatasets, "dataset", "d", nil, "MIB dataset directory (repeatable, overrides config)")
	cobra.OnInitialize(setupLogging)
}

func setupLogging() {
	log.SetReportTimestamp(false)
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
