// Package bench is a small measurement harness for in-process functions.
//
// It mirrors the semantics of the standard testing.B facility: the runner
// calibrates an iteration count against a target run time, then reports
// per-iteration wall time, optional allocation figures, optional
// throughput derived from a caller-declared byte count, and
// caller-supplied named metrics.
package bench

import (
	"runtime"
	"time"
)

// B is the measurement context handed to a benchmarked function.
//
// The function must execute its measured work exactly N times, reading N
// from the context, just as with testing.B:
//
//	runner.Run("bytes-64", func(b *bench.B) {
//		for i := 0; i < b.N; i++ {
//			sink = gen.Bytes(64)
//		}
//	})
type B struct {
	// N is the number of iterations the function must perform.
	N int

	timerOn  bool
	start    time.Time
	duration time.Duration

	bytes        int64
	reportAllocs bool
	extra        map[string]float64

	// MemStats captured at timer start; deltas accumulate into net*.
	startAllocs uint64
	startBytes  uint64
	netAllocs   uint64
	netBytes    uint64
}

// StartTimer starts timing the benchmarked work. It also snapshots the
// allocation counters so allocations outside the timed region are not
// charged to the benchmark.
func (b *B) StartTimer() {
	if b.timerOn {
		return
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	b.startAllocs = ms.Mallocs
	b.startBytes = ms.TotalAlloc
	b.start = time.Now()
	b.timerOn = true
}

// StopTimer stops timing and accumulates elapsed time and allocation deltas.
func (b *B) StopTimer() {
	if !b.timerOn {
		return
	}
	b.duration += time.Since(b.start)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	b.netAllocs += ms.Mallocs - b.startAllocs
	b.netBytes += ms.TotalAlloc - b.startBytes
	b.timerOn = false
}

// ResetTimer discards accumulated time and allocation figures. Call it
// after expensive setup inside the benchmarked function.
func (b *B) ResetTimer() {
	if b.timerOn {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		b.startAllocs = ms.Mallocs
		b.startBytes = ms.TotalAlloc
		b.start = time.Now()
	}
	b.duration = 0
	b.netAllocs = 0
	b.netBytes = 0
}

// SetBytes declares the number of bytes one iteration processes. A
// non-zero value makes the runner report throughput in MB/s.
func (b *B) SetBytes(n int64) {
	b.bytes = n
}

// ReportAllocs enables allocation reporting for this run.
func (b *B) ReportAllocs() {
	b.reportAllocs = true
}

// ReportMetric records a caller-defined metric with the given unit, to be
// reported alongside the standard figures. The value is understood to be
// per iteration. Calling it again with the same unit overwrites the value.
func (b *B) ReportMetric(value float64, unit string) {
	if b.extra == nil {
		b.extra = make(map[string]float64)
	}
	b.extra[unit] = value
}

// elapsed returns accumulated run time including a still-running timer.
func (b *B) elapsed() time.Duration {
	if b.timerOn {
		return b.duration + time.Since(b.start)
	}
	return b.duration
}
