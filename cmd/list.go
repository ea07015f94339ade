package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/markkmetz/scos2000/internal/config"
	"github.com/markkmetz/scos2000/internal/search"
)

var flagListTelemetry bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every indexed telecommand or telemetry report",
	Long: `List prints the whole index in ID order. This is the empty-query mode
of the ranker: every command is retained with score zero.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListTelemetry, "telemetry", false, "List telemetry reports instead of telecommands")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	ix, err := loadIndex(cfg, false)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if flagListTelemetry {
		sids := make([]string, 0, len(ix.TmBySID))
		for sid := range ix.TmBySID {
			sids = append(sids, sid)
		}
		sort.Strings(sids)
		fmt.Printf("Telemetry reports (%d):\n", len(sids))
		for _, sid := range sids {
			tm := ix.TmBySID[sid]
			fmt.Fprintf(w, "%s\t%s/%s\t%s\n", tm.SID, tm.Service, tm.SubService, tm.Description)
		}
		return nil
	}

	entries := search.BuildEntryIndex(ix.Commands())
	results := search.Rank(entries, "", len(entries))
	fmt.Printf("Telecommands (%d):\n", len(results))
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Entry.ID, r.Entry.Name, r.Entry.Description)
	}
	return nil
}
