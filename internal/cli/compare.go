package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/randbench/internal/output"
	"github.com/wesleyorama2/randbench/internal/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare BASELINE CURRENT",
	Short: "Compare two benchmark report files",
	Long: `Compare a current JSON report against a baseline and flag regressions.

Both files are validated against the report schema first. A benchmark
counts as regressed when its ns/op grew by more than the threshold
percentage. The exit code is non-zero when any regression is found.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if !noColor && !output.IsTerminal(os.Stdout) {
			noColor = true
		}

		baseline, err := report.LoadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		current, err := report.LoadFile(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		comparison, err := report.Compare(baseline, current, threshold)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		printComparison(cmd.OutOrStdout(), comparison, noColor)

		if comparison.HasRegressions() {
			os.Exit(1)
		}
	},
}

// printComparison renders per-benchmark deltas and a closing verdict.
func printComparison(w io.Writer, c *report.Comparison, noColor bool) {
	scheme := output.DefaultColorScheme()
	if noColor {
		scheme = output.NoColorScheme()
	}

	fmt.Fprintf(w, "%s (threshold %.1f%%)\n",
		scheme.Heading.Sprintf("COMPARE: %s", c.CurrentSuite), c.ThresholdPct)

	for _, d := range c.Deltas {
		switch {
		case d.OnlyInBaseline:
			fmt.Fprintf(w, "%-24s  only in baseline\n", d.Name)
		case d.OnlyInCurrent:
			fmt.Fprintf(w, "%-24s  only in current (%.1f ns/op)\n", d.Name, d.CurrentNsPerOp)
		case d.Regression:
			fmt.Fprintf(w, "%-24s  %10.1f -> %10.1f ns/op  %s\n",
				d.Name, d.BaselineNsPerOp, d.CurrentNsPerOp,
				scheme.Regressed.Sprintf("+%.1f%%", d.PercentChange))
		default:
			fmt.Fprintf(w, "%-24s  %10.1f -> %10.1f ns/op  %s\n",
				d.Name, d.BaselineNsPerOp, d.CurrentNsPerOp,
				scheme.Improved.Sprintf("%+.1f%%", d.PercentChange))
		}
	}

	if c.HasRegressions() {
		fmt.Fprintf(w, "%s %d benchmark(s) regressed\n", output.ErrorIcon(noColor), c.Regressions)
	} else {
		fmt.Fprintf(w, "%s no regressions\n", output.SuccessIcon(noColor))
	}
}

func init() {
	compareCmd.Flags().Float64P("threshold", "t", 5.0, "Regression threshold for ns/op growth, in percent")
	compareCmd.Flags().Bool("no-color", false, "Disable colored output")
}
