package bench

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Collector aggregates per-operation latency samples in an HDR histogram.
//
// HDR histograms give O(1) percentile queries at a fixed memory cost,
// which keeps the sampling phase from distorting the numbers it records.
// Collector is safe for concurrent use; RecordValue on the underlying
// histogram is not, so all access holds the mutex.
type Collector struct {
	hist   *hdrhistogram.Histogram
	histMu sync.Mutex
	config CollectorConfig
}

// CollectorConfig contains configuration for the latency collector.
type CollectorConfig struct {
	// HistogramMin is the minimum recordable value in nanoseconds (default: 1)
	HistogramMin int64

	// HistogramMax is the maximum recordable value in nanoseconds (default: 1 minute)
	HistogramMax int64

	// HistogramSigFigs is the number of significant figures (default: 3)
	HistogramSigFigs int
}

// DefaultCollectorConfig returns the default configuration.
//
// The range covers a single operation from 1ns up to one minute, which is
// generous for an in-process function call.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		HistogramMin:     1,
		HistogramMax:     int64(time.Minute),
		HistogramSigFigs: 3,
	}
}

// NewCollector creates a latency collector with default configuration.
func NewCollector() *Collector {
	return NewCollectorWithConfig(DefaultCollectorConfig())
}

// NewCollectorWithConfig creates a latency collector with custom configuration.
func NewCollectorWithConfig(config CollectorConfig) *Collector {
	return &Collector{
		hist:   hdrhistogram.New(config.HistogramMin, config.HistogramMax, config.HistogramSigFigs),
		config: config,
	}
}

// RecordOp records the duration of a single operation.
//
// Values outside the histogram range are clamped rather than dropped so
// the sample count stays honest.
func (c *Collector) RecordOp(d time.Duration) {
	ns := d.Nanoseconds()

	if ns < c.config.HistogramMin {
		ns = c.config.HistogramMin
	}
	if ns > c.config.HistogramMax {
		ns = c.config.HistogramMax
	}

	c.histMu.Lock()
	c.hist.RecordValue(ns)
	c.histMu.Unlock()
}

// Count returns the number of recorded samples.
func (c *Collector) Count() int64 {
	c.histMu.Lock()
	defer c.histMu.Unlock()
	return c.hist.TotalCount()
}

// Stats returns a snapshot of the recorded latency distribution.
func (c *Collector) Stats() LatencyStats {
	c.histMu.Lock()
	defer c.histMu.Unlock()

	return LatencyStats{
		Min:   time.Duration(c.hist.Min()),
		Max:   time.Duration(c.hist.Max()),
		Mean:  time.Duration(c.hist.Mean()),
		P50:   time.Duration(c.hist.ValueAtQuantile(50)),
		P90:   time.Duration(c.hist.ValueAtQuantile(90)),
		P99:   time.Duration(c.hist.ValueAtQuantile(99)),
		Count: c.hist.TotalCount(),
	}
}

// Reset discards all recorded samples.
func (c *Collector) Reset() {
	c.histMu.Lock()
	defer c.histMu.Unlock()
	c.hist.Reset()
}

// LatencyStats contains per-operation latency statistics.
type LatencyStats struct {
	Min   time.Duration `json:"min" yaml:"min"`
	Max   time.Duration `json:"max" yaml:"max"`
	Mean  time.Duration `json:"mean" yaml:"mean"`
	P50   time.Duration `json:"p50" yaml:"p50"`
	P90   time.Duration `json:"p90" yaml:"p90"`
	P99   time.Duration `json:"p99" yaml:"p99"`
	Count int64         `json:"count" yaml:"count"`
}
