package output

import (
	"strings"
	"testing"
	"time"

	"github.com/wesleyorama2/randbench/internal/bench"
)

func sampleResult() *bench.Result {
	return &bench.Result{
		Name:            "bytes-64",
		Iterations:      5000000,
		NsPerOp:         245.0,
		AllocsReported:  true,
		AllocsPerOp:     1,
		AllocBytesPerOp: 64,
		BytesPerOp:      64,
		MBPerSec:        261.2,
		Extra:           map[string]float64{"chars/op": 64},
		Latency: &bench.LatencyStats{
			Min:   200 * time.Nanosecond,
			Max:   3 * time.Microsecond,
			Mean:  250 * time.Nanosecond,
			P50:   240 * time.Nanosecond,
			P90:   300 * time.Nanosecond,
			P99:   900 * time.Nanosecond,
			Count: 1000,
		},
	}
}

func TestFormatResult(t *testing.T) {
	f := NewFormatter(false, true) // no color

	line := f.FormatResult(sampleResult())

	expectedParts := []string{
		"bytes-64",
		"5000000",
		"245.0 ns/op",
		"64 B/op",
		"1.0 allocs/op",
		"261.20 MB/s",
		"chars/op",
	}
	for _, part := range expectedParts {
		if !strings.Contains(line, part) {
			t.Errorf("Expected result line to contain %q, got: %s", part, line)
		}
	}
}

func TestFormatResultWithoutOptionalFigures(t *testing.T) {
	f := NewFormatter(false, true)

	r := &bench.Result{Name: "plain", Iterations: 10, NsPerOp: 100}
	line := f.FormatResult(r)

	for _, absent := range []string{"B/op", "allocs/op", "MB/s"} {
		if strings.Contains(line, absent) {
			t.Errorf("Expected line without %q, got: %s", absent, line)
		}
	}
}

func TestFormatLatency(t *testing.T) {
	f := NewFormatter(true, true)

	line := f.FormatLatency(sampleResult())

	for _, part := range []string{"min=", "p50=", "p90=", "p99=", "max=", "1000 samples"} {
		if !strings.Contains(line, part) {
			t.Errorf("Expected latency line to contain %q, got: %s", part, line)
		}
	}

	// No latency stats, no line.
	if got := f.FormatLatency(&bench.Result{Name: "x"}); got != "" {
		t.Errorf("Expected empty latency line, got: %s", got)
	}
}

func TestFormatNsPerOpScaling(t *testing.T) {
	tests := []struct {
		ns   float64
		want string
	}{
		{42, "ns/op"},
		{42000, "µs/op"},
		{4200000, "ms/op"},
		{4.2e9, "s/op"},
	}

	for _, tc := range tests {
		got := formatNsPerOp(tc.ns)
		if !strings.Contains(got, tc.want) {
			t.Errorf("formatNsPerOp(%v): expected unit %q, got %q", tc.ns, tc.want, got)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "500ns"},
		{42 * time.Microsecond, "42.0µs"},
		{15 * time.Millisecond, "15.00ms"},
		{2 * time.Second, "2.00s"},
	}

	for _, tc := range tests {
		if got := FormatDuration(tc.d); got != tc.want {
			t.Errorf("FormatDuration(%v): expected %q, got %q", tc.d, tc.want, got)
		}
	}
}

func TestFormatSummary(t *testing.T) {
	f := NewFormatter(false, true)

	line := f.FormatSummary([]*bench.Result{sampleResult()}, 3*time.Second)
	if !strings.Contains(line, "ok") || !strings.Contains(line, "1 benchmarks") {
		t.Errorf("Unexpected summary line: %s", line)
	}
}
