package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markkmetz/scos2000/internal/config"
)

var flagIndexForce bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build (or rebuild) the on-disk index cache",
	Long: `Parse the configured datasets and write the index cache under
~/.s2k/cache/. Other commands do this lazily; index does it eagerly so a
large dataset is parsed once, not on first query.`,
	Args: cobra.NoArgs,
	RunE: runIndexCmd,
}

func init() {
	indexCmd.Flags().BoolVar(&flagIndexForce, "force", false, "Rebuild even if the cached index is still valid")
	rootCmd.AddCommand(indexCmd)
}

func runIndexCmd(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	ix, err := loadIndex(cfg, flagIndexForce)
	if err != nil {
		return err
	}
	printOK("", fmt.Sprintf("indexed %d telecommands, %d telemetry reports", len(ix.TcByID), len(ix.TmBySID)))
	return nil
}
