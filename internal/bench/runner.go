package bench

import (
	"fmt"
	"time"
)

const (
	// Hard cap on calibrated iterations, matching the testing package.
	maxIterations = 1e9

	// Upper bound on single-iteration latency samples per run.
	maxLatencySamples = 1000
)

// Options controls how a benchmark run is calibrated and measured.
type Options struct {
	// Benchtime is the target run time the iteration count is calibrated
	// against (default: 1s). Ignored when FixedIterations is set.
	Benchtime time.Duration

	// FixedIterations pins the iteration count, skipping calibration.
	FixedIterations int

	// MaxIterations caps the calibrated iteration count (default: 1e9).
	MaxIterations int

	// WarmupIterations are run and discarded before measurement
	// (default: 0).
	WarmupIterations int

	// SampleLatencies enables the per-operation latency sampling phase
	// that feeds the histogram (default: true via DefaultOptions).
	SampleLatencies bool
}

// DefaultOptions returns the default run options.
func DefaultOptions() Options {
	return Options{
		Benchtime:       time.Second,
		MaxIterations:   maxIterations,
		SampleLatencies: true,
	}
}

// Result contains the measured figures for one benchmark run.
type Result struct {
	Name       string    `json:"name" yaml:"name"`
	Iterations int64     `json:"iterations" yaml:"iterations"`
	NsPerOp    float64   `json:"nsPerOp" yaml:"nsPerOp"`
	Elapsed    int64     `json:"elapsedNs" yaml:"elapsedNs"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`

	// Allocation figures, present when ReportAllocs was called.
	AllocsReported  bool    `json:"allocsReported" yaml:"allocsReported"`
	AllocsPerOp     float64 `json:"allocsPerOp,omitempty" yaml:"allocsPerOp,omitempty"`
	AllocBytesPerOp float64 `json:"allocBytesPerOp,omitempty" yaml:"allocBytesPerOp,omitempty"`

	// Throughput figures, present when SetBytes was called.
	BytesPerOp int64   `json:"bytesPerOp,omitempty" yaml:"bytesPerOp,omitempty"`
	MBPerSec   float64 `json:"mbPerSec,omitempty" yaml:"mbPerSec,omitempty"`

	// Extra holds caller-defined metrics keyed by unit.
	Extra map[string]float64 `json:"extra,omitempty" yaml:"extra,omitempty"`

	// Latency is the sampled per-operation distribution, nil when
	// sampling was disabled.
	Latency *LatencyStats `json:"latency,omitempty" yaml:"latency,omitempty"`
}

// Runner executes benchmark functions with calibrated iteration counts.
type Runner struct {
	opts      Options
	collector *Collector
}

// NewRunner creates a runner with the given options. Zero-valued fields
// fall back to their defaults.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Benchtime == 0 {
		opts.Benchtime = time.Second
	}
	if opts.Benchtime < 0 {
		return nil, fmt.Errorf("benchtime cannot be negative: %v", opts.Benchtime)
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = maxIterations
	}
	if opts.FixedIterations < 0 {
		return nil, fmt.Errorf("fixed iterations cannot be negative: %d", opts.FixedIterations)
	}
	if opts.WarmupIterations < 0 {
		return nil, fmt.Errorf("warmup iterations cannot be negative: %d", opts.WarmupIterations)
	}

	return &Runner{
		opts:      opts,
		collector: NewCollector(),
	}, nil
}

// Run measures fn and returns its result.
//
// The function is first warmed up, then run with a growing iteration
// count until the accumulated run time reaches the benchtime target (or
// the count is pinned by FixedIterations), then optionally sampled one
// iteration at a time to build the latency distribution.
func (r *Runner) Run(name string, fn func(*B)) (*Result, error) {
	if name == "" {
		return nil, fmt.Errorf("benchmark name cannot be empty")
	}
	if fn == nil {
		return nil, fmt.Errorf("benchmark function cannot be nil")
	}

	if r.opts.WarmupIterations > 0 {
		runN(fn, r.opts.WarmupIterations)
	}

	var b *B
	if r.opts.FixedIterations > 0 {
		b = runN(fn, r.opts.FixedIterations)
	} else {
		b = r.calibrate(fn)
	}

	result := &Result{
		Name:       name,
		Iterations: int64(b.N),
		Elapsed:    b.duration.Nanoseconds(),
		Timestamp:  time.Now().UTC(),
	}

	if b.N > 0 {
		result.NsPerOp = float64(b.duration.Nanoseconds()) / float64(b.N)
	}

	if b.reportAllocs && b.N > 0 {
		result.AllocsReported = true
		result.AllocsPerOp = float64(b.netAllocs) / float64(b.N)
		result.AllocBytesPerOp = float64(b.netBytes) / float64(b.N)
	}

	if b.bytes > 0 && b.duration > 0 {
		result.BytesPerOp = b.bytes
		processed := float64(b.bytes) * float64(b.N)
		result.MBPerSec = processed / 1e6 / b.duration.Seconds()
	}

	if len(b.extra) > 0 {
		result.Extra = make(map[string]float64, len(b.extra))
		for unit, value := range b.extra {
			result.Extra[unit] = value
		}
	}

	if r.opts.SampleLatencies {
		stats := r.sampleLatencies(fn, b.N)
		result.Latency = &stats
	}

	return result, nil
}

// calibrate grows the iteration count until the run time target is met,
// following the prediction scheme of the standard testing package.
func (r *Runner) calibrate(fn func(*B)) *B {
	b := runN(fn, 1)

	n := int64(1)
	for b.duration < r.opts.Benchtime && n < int64(r.opts.MaxIterations) {
		goalns := r.opts.Benchtime.Nanoseconds()
		prevIters := int64(b.N)

		prevns := b.duration.Nanoseconds()
		if prevns <= 0 {
			// Round up to avoid a divide-by-zero on very fast functions.
			prevns = 1
		}

		// Predict the iteration count needed to reach the goal, padded
		// by 20%, growing at most 100x per round.
		n = goalns * prevIters / prevns
		n += n / 5
		n = min64(n, 100*prevIters)
		n = max64(n, prevIters+1)
		n = min64(n, int64(r.opts.MaxIterations))

		b = runN(fn, int(n))
	}

	return b
}

// sampleLatencies times individual iterations to populate the histogram.
//
// The sample count is bounded both by the calibrated iteration count (no
// reason to sample more precision than the run itself had) and by a fixed
// cap that keeps the phase short.
func (r *Runner) sampleLatencies(fn func(*B), calibratedN int) LatencyStats {
	r.collector.Reset()

	samples := calibratedN
	if samples > maxLatencySamples {
		samples = maxLatencySamples
	}
	if samples < 1 {
		samples = 1
	}

	for i := 0; i < samples; i++ {
		// Bare context: no MemStats reads inside the timed window, so
		// the sample measures the function alone.
		b := &B{N: 1}
		start := time.Now()
		fn(b)
		r.collector.RecordOp(time.Since(start))
	}

	return r.collector.Stats()
}

// runN executes fn once with b.N = n and the timer running.
func runN(fn func(*B), n int) *B {
	b := &B{N: n}
	b.ResetTimer()
	b.StartTimer()
	fn(b)
	b.StopTimer()
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
