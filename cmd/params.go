package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markkmetz/scos2000/internal/config"
	"github.com/markkmetz/scos2000/internal/mib"
)

var paramsCmd = &cobra.Command{
	Use:   "params <id-or-name>",
	Short: "Show a telecommand's required/optional parameter split and snippet",
	Long: `Partition a telecommand's parameters into the required set (templated
slots an operator must fill) and the optional set (filler and
ground-supplied values), and print the resulting completion snippet.`,
	Args: cobra.ExactArgs(1),
	RunE: runParams,
}

func init() {
	rootCmd.AddCommand(paramsCmd)
}

func runParams(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	ix, err := loadIndex(cfg, false)
	if err != nil {
		return err
	}

	tc := ix.LookupCommand(args[0])
	if tc == nil {
		return fmt.Errorf("no telecommand matches %q", args[0])
	}

	required, optional := mib.SplitParams(tc)

	printSection("Parameters of " + tc.ID)
	printBullet(fmt.Sprintf("Required (%d):", len(required)))
	for _, p := range required {
		printOK("", p.Name)
	}
	printBullet(fmt.Sprintf("Optional (%d):", len(optional)))
	for _, p := range optional {
		name := p.Name
		if name == "" {
			name = "(unnamed, param id " + p.ParamID + ")"
		}
		printSkip("", name)
	}

	fmt.Printf("\nSnippet: %s\n", mib.Snippet(tc))
	return nil
}
