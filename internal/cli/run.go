package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/randbench/internal/bench"
	"github.com/wesleyorama2/randbench/internal/config"
	"github.com/wesleyorama2/randbench/internal/output"
	"github.com/wesleyorama2/randbench/internal/randstr"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a benchmark suite",
	Long: `Run generation benchmarks from a suite file or from flags.

Suite file mode:
  randbench run --config suite.yaml

Quick CLI mode (single benchmark):
  randbench run --strategy builder --length 64 --benchtime 500ms

Write a comparable JSON report:
  randbench run --config suite.yaml --output results.json`,
	Run: func(cmd *cobra.Command, args []string) {
		runBenchmarks(cmd, args)
	},
}

// Sinks keep the measured results observable so the work cannot be
// optimized away.
var (
	benchSinkBytes  []byte
	benchSinkString string
)

// runBenchmarks executes a suite and renders its results.
func runBenchmarks(cmd *cobra.Command, args []string) {
	configFile, _ := cmd.Flags().GetString("config")
	strategy, _ := cmd.Flags().GetString("strategy")
	length, _ := cmd.Flags().GetInt("length")
	benchtime, _ := cmd.Flags().GetString("benchtime")
	seed, _ := cmd.Flags().GetInt64("seed")
	iterations, _ := cmd.Flags().GetInt("iterations")
	jsonOut, _ := cmd.Flags().GetBool("json")
	outputPath, _ := cmd.Flags().GetString("output")
	noColor, _ := cmd.Flags().GetBool("no-color")
	quiet, _ := cmd.Flags().GetBool("quiet")

	var suite *config.Suite
	var err error

	if configFile != "" {
		suite, err = config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading suite: %v\n", err)
			os.Exit(1)
		}
	} else {
		suite, err = buildSuiteFromFlags(strategy, length, benchtime, seed, iterations)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building suite: %v\n", err)
			os.Exit(1)
		}
	}

	if !noColor && !output.IsTerminal(os.Stdout) {
		noColor = true
	}

	results, err := executeSuite(suite, cmd.OutOrStdout(), quiet || jsonOut, noColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running suite: %v\n", err)
		os.Exit(1)
	}

	report := output.NewReport(suite.Name, version, results)

	if jsonOut {
		doc, err := report.ToJSON(true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(cmd.OutOrStdout(), doc)
	}

	if outputPath != "" {
		format := output.FormatJSON
		if ext := strings.ToLower(filepath.Ext(outputPath)); ext == ".yaml" || ext == ".yml" {
			format = output.FormatYAML
		}
		if err := report.WriteFile(outputPath, format); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			os.Exit(1)
		}
		if !quiet && !jsonOut {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputPath)
		}
	}
}

// buildSuiteFromFlags assembles a single-benchmark suite for quick runs.
func buildSuiteFromFlags(strategy string, length int, benchtime string, seed int64, iterations int) (*config.Suite, error) {
	if strategy == "" {
		strategy = "bytes"
	}

	suite := &config.Suite{
		Name: fmt.Sprintf("%s-%d", strategy, length),
		Settings: config.Settings{
			Benchtime: benchtime,
		},
		Benchmarks: []config.Benchmark{
			{
				Name:             fmt.Sprintf("%s-%d", strategy, length),
				Strategy:         strategy,
				Length:           length,
				Seed:             seed,
				Iterations:       iterations,
				ReportAllocs:     true,
				ReportThroughput: true,
			},
		},
	}

	if err := config.Validate(suite); err != nil {
		return nil, err
	}
	return suite, nil
}

// executeSuite runs every benchmark in the suite in order, printing
// results as they complete unless quiet is set.
func executeSuite(suite *config.Suite, w io.Writer, quiet, noColor bool) ([]*bench.Result, error) {
	benchtime, err := suite.Settings.ParseBenchtime()
	if err != nil {
		return nil, err
	}

	formatter := output.NewFormatter(false, noColor)
	if !quiet {
		fmt.Fprint(w, formatter.FormatHeader(suite.Name, len(suite.Benchmarks)))
	}

	started := time.Now()
	results := make([]*bench.Result, 0, len(suite.Benchmarks))

	for _, bm := range suite.Benchmarks {
		opts := bench.Options{
			Benchtime:        benchtime,
			FixedIterations:  bm.Iterations,
			MaxIterations:    suite.Settings.MaxIterations,
			WarmupIterations: suite.Settings.Warmup,
			SampleLatencies:  suite.Settings.SamplingEnabled(),
		}

		runner, err := bench.NewRunner(opts)
		if err != nil {
			return nil, fmt.Errorf("benchmark %q: %w", bm.Name, err)
		}

		fn := benchmarkFunc(bm, newGenerator(bm.Seed))

		result, err := runner.Run(bm.Name, fn)
		if err != nil {
			return nil, fmt.Errorf("benchmark %q: %w", bm.Name, err)
		}
		results = append(results, result)

		if !quiet {
			fmt.Fprintln(w, formatter.FormatResult(result))
			if latency := formatter.FormatLatency(result); latency != "" {
				fmt.Fprintln(w, latency)
			}
		}
	}

	elapsed := time.Since(started)
	if !quiet {
		fmt.Fprintln(w, formatter.FormatSummary(results, elapsed))
	}

	return results, nil
}

// benchmarkFunc builds the measured closure for one suite entry. The
// strategy set is closed; config validation rejects anything else.
func benchmarkFunc(bm config.Benchmark, g *randstr.Generator) func(*bench.B) {
	n := bm.Length

	configure := func(b *bench.B) {
		if bm.ReportAllocs {
			b.ReportAllocs()
		}
		if bm.ReportThroughput && n > 0 {
			b.SetBytes(int64(n))
		}
	}

	switch bm.Strategy {
	case "string":
		return func(b *bench.B) {
			configure(b)
			for i := 0; i < b.N; i++ {
				benchSinkString = g.String(n)
			}
		}
	case "builder":
		return func(b *bench.B) {
			configure(b)
			for i := 0; i < b.N; i++ {
				benchSinkString = g.BuilderString(n)
			}
		}
	case "concat":
		return func(b *bench.B) {
			configure(b)
			for i := 0; i < b.N; i++ {
				benchSinkString = g.ConcatString(n)
			}
		}
	case "append":
		buf := make([]byte, 0, n)
		return func(b *bench.B) {
			configure(b)
			for i := 0; i < b.N; i++ {
				buf = g.AppendBytes(buf[:0], n)
			}
			benchSinkBytes = buf
			b.ReportMetric(float64(n), "chars/op")
		}
	default: // "bytes"
		return func(b *bench.B) {
			configure(b)
			for i := 0; i < b.N; i++ {
				benchSinkBytes = g.Bytes(n)
			}
		}
	}
}

func init() {
	runCmd.Flags().StringP("config", "f", "", "Path to a suite YAML file")
	runCmd.Flags().String("strategy", "bytes", "Generation strategy for quick mode (bytes, string, builder, concat, append)")
	runCmd.Flags().IntP("length", "l", 64, "Characters generated per iteration in quick mode")
	runCmd.Flags().String("benchtime", "", "Target run time per benchmark (default 1s)")
	runCmd.Flags().Int64P("seed", "s", 0, "Random seed (0 = time-derived)")
	runCmd.Flags().IntP("iterations", "n", 0, "Pin the iteration count instead of calibrating")
	runCmd.Flags().Bool("json", false, "Print the report as JSON instead of text")
	runCmd.Flags().StringP("output", "o", "", "Write a report file (.json, .yaml)")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
	runCmd.Flags().BoolP("quiet", "q", false, "Suppress per-benchmark output")
}
