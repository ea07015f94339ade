package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/markkmetz/scos2000/internal/config"
	"github.com/markkmetz/scos2000/internal/search"
)

var (
	flagSearchK    int
	flagSearchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search telecommands by ID, name, parameter or description",
	Long: `Search ranks every indexed telecommand against the query with strict
tiers: an ID or name match beats a parameter-name match, which beats a
description match. Matching is case-insensitive substring containment.

Example:
  s2k search deploy
  s2k -d /data/mib search "solar array" -k 3`,
	Args: cobra.MinimumNArgs(0),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&flagSearchK, "k", 0, "Number of results to show (default from config)")
	searchCmd.Flags().BoolVar(&flagSearchJSON, "json", false, "Emit results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	if len(args) == 0 {
		return cmd.Help()
	}
	query := strings.Join(args, " ")

	ix, err := loadIndex(cfg, false)
	if err != nil {
		return err
	}

	limit := flagSearchK
	if limit <= 0 {
		limit = cfg.DefaultLimit
	}

	entries := search.BuildEntryIndex(ix.Commands())
	results := search.Rank(entries, query, limit)

	if flagSearchJSON {
		return printResultsJSON(results)
	}
	printResults(query, results)
	return nil
}

func printResults(query string, results []search.Result) {
	fmt.Printf("\ns2k search %q\n\n", query)
	fmt.Printf("Results (%d found):\n", len(results))
	if len(results) == 0 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, r := range results {
		desc := r.Entry.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		fmt.Fprintf(w, "%2d.\t%s\t%s\t%s\t[%s]\n",
			i+1, r.Entry.ID, r.Entry.Name, desc, tierLabel(r.Score))
	}
	w.Flush()
}

func tierLabel(score int) string {
	switch score {
	case search.ScoreIdentifier:
		return "id/name"
	case search.ScoreParam:
		return "param"
	case search.ScoreDescription:
		return "descr"
	default:
		return "-"
	}
}

func printResultsJSON(results []search.Result) error {
	type row struct {
		ID          string `json:"id"`
		Name        string `json:"name,omitempty"`
		Description string `json:"description,omitempty"`
		Score       int    `json:"score"`
	}
	rows := make([]row, 0, len(results))
	for _, r := range results {
		rows = append(rows, row{
			ID:          r.Entry.ID,
			Name:        r.Entry.Name,
			Description: r.Entry.Description,
			Score:       r.Score,
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
