// Package output renders benchmark results for the console and for
// machine-readable report documents.
package output

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/wesleyorama2/randbench/internal/bench"
)

// Formatter formats benchmark results as human-readable text.
type Formatter struct {
	Verbose bool
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}

	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		scheme:  scheme,
	}
}

// FormatHeader formats the suite banner printed before the first result.
func (f *Formatter) FormatHeader(suiteName string, count int) string {
	var sb strings.Builder

	sb.WriteString(f.scheme.Heading.Sprintf("SUITE: %s", suiteName))
	sb.WriteString(fmt.Sprintf(" (%d benchmarks)\n", count))

	return sb.String()
}

// FormatResult formats one result as a go-test-style line:
//
//	bytes-64    5000000    245.0 ns/op    64 B/op    1 allocs/op    261.2 MB/s
func (f *Formatter) FormatResult(r *bench.Result) string {
	var sb strings.Builder

	sb.WriteString(f.scheme.BenchName.Sprintf("%-24s", r.Name))
	sb.WriteString(fmt.Sprintf("  %12d", r.Iterations))
	sb.WriteString(fmt.Sprintf("  %s", formatNsPerOp(r.NsPerOp)))

	if r.AllocsReported {
		sb.WriteString(fmt.Sprintf("  %8.0f B/op", r.AllocBytesPerOp))
		sb.WriteString(fmt.Sprintf("  %6.1f allocs/op", r.AllocsPerOp))
	}

	if r.MBPerSec > 0 {
		sb.WriteString(fmt.Sprintf("  %8.2f MB/s", r.MBPerSec))
	}

	// Custom metrics in stable order.
	if len(r.Extra) > 0 {
		units := make([]string, 0, len(r.Extra))
		for unit := range r.Extra {
			units = append(units, unit)
		}
		sort.Strings(units)

		for _, unit := range units {
			sb.WriteString(fmt.Sprintf("  %10.2f %s", r.Extra[unit], unit))
		}
	}

	return sb.String()
}

// FormatLatency formats the sampled latency distribution for one result.
// Returns an empty string when sampling was disabled.
func (f *Formatter) FormatLatency(r *bench.Result) string {
	if r.Latency == nil {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %-24s", ""))
	sb.WriteString(fmt.Sprintf("min=%s ", FormatDuration(r.Latency.Min)))
	sb.WriteString(fmt.Sprintf("p50=%s ", FormatDuration(r.Latency.P50)))
	sb.WriteString(fmt.Sprintf("p90=%s ", FormatDuration(r.Latency.P90)))
	sb.WriteString(fmt.Sprintf("p99=%s ", FormatDuration(r.Latency.P99)))
	sb.WriteString(fmt.Sprintf("max=%s ", FormatDuration(r.Latency.Max)))
	sb.WriteString(fmt.Sprintf("(%d samples)", r.Latency.Count))

	return sb.String()
}

// FormatSummary formats the closing line for a suite run.
func (f *Formatter) FormatSummary(results []*bench.Result, elapsed time.Duration) string {
	var sb strings.Builder

	sb.WriteString(f.scheme.Success.Sprintf("ok"))
	sb.WriteString(fmt.Sprintf("  %d benchmarks in %s", len(results), FormatDuration(elapsed)))

	return sb.String()
}

// formatNsPerOp renders a per-op time with a unit scaled to magnitude.
func formatNsPerOp(ns float64) string {
	switch {
	case ns >= 1e9:
		return fmt.Sprintf("%10.2f s/op", ns/1e9)
	case ns >= 1e6:
		return fmt.Sprintf("%10.2f ms/op", ns/1e6)
	case ns >= 1e4:
		return fmt.Sprintf("%10.2f µs/op", ns/1e3)
	default:
		return fmt.Sprintf("%10.1f ns/op", ns)
	}
}

// FormatDuration renders a duration compactly, trimming sub-precision
// noise the way test output does.
func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
