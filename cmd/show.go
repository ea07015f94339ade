package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/markkmetz/scos2000/internal/config"
	"github.com/markkmetz/scos2000/internal/mib"
)

var showCmd = &cobra.Command{
	Use:   "show <id-or-line>",
	Short: "Show one telecommand or telemetry report in full",
	Long: `Display a telecommand (by ID or name) or a telemetry report (by SID),
including its parameters, their classification and any enumeration labels.

The argument may also be a whole procedure line; s2k takes its first
whitespace-delimited token as the identifier, so a line pasted straight
out of a procedure file works:

  s2k show "  S2KTC002  X=1 Y=2"`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	ref := mib.FirstToken(args[0])
	if ref == "" {
		return fmt.Errorf("argument is blank; expected a command ID, name or SID")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	ix, err := loadIndex(cfg, false)
	if err != nil {
		return err
	}

	if tc := ix.LookupCommand(ref); tc != nil {
		printCommand(tc)
		return nil
	}
	if tm, ok := ix.TmBySID[ref]; ok {
		printTelemetry(tm)
		return nil
	}
	return fmt.Errorf("no telecommand or telemetry report matches %q", ref)
}

func printCommand(tc *mib.TcEntry) {
	printSection("Telecommand " + tc.ID)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", tc.Name)
	fmt.Fprintf(w, "Description:\t%s\n", tc.Description)
	fmt.Fprintf(w, "Service:\t%s/%s\n", tc.ServiceType, tc.SubService)
	fmt.Fprintf(w, "APID:\t%s\n", tc.APID)
	fmt.Fprintf(w, "Header:\t%s\n", tc.Header)
	fmt.Fprintf(w, "Source:\t%s:%d\n", tc.SourcePath, tc.SourceLine)
	w.Flush()

	if len(tc.Params) == 0 {
		return
	}
	printBullet(fmt.Sprintf("Parameters (%d):", len(tc.Params)))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range tc.Params {
		class := "optional"
		if mib.IsRequiredParam(p.Name, p.Kind) {
			class = "required"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\tlen=%s off=%s\t%s\n",
			p.Name, class, p.Kind, p.BitLength, p.BitOffset, enumSummary(p))
	}
	w.Flush()
}

func printTelemetry(tm *mib.TelemetryEntry) {
	printSection("Telemetry " + tm.SID)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Description:\t%s\n", tm.Description)
	fmt.Fprintf(w, "Service:\t%s/%s\n", tm.Service, tm.SubService)
	fmt.Fprintf(w, "Source:\t%s:%d\n", tm.SourcePath, tm.SourceLine)
	w.Flush()

	if len(tm.Params) == 0 {
		return
	}
	printBullet(fmt.Sprintf("Parameters (%d):", len(tm.Params)))
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, p := range tm.Params {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", p.Name, p.ParamID, enumSummary(p))
	}
	w.Flush()
}

// enumSummary renders up to four enum labels inline; real enum sets can
// run to hundreds of states.
func enumSummary(p *mib.ParamEntry) string {
	if len(p.Enumerations) == 0 {
		return ""
	}
	labels := p.Enumerations
	suffix := ""
	if len(labels) > 4 {
		labels = labels[:4]
		suffix = fmt.Sprintf(", +%d more", len(p.Enumerations)-4)
	}
	return "{" + strings.Join(labels, ", ") + suffix + "}"
}
