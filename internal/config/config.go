// Package config provides loading and validation of benchmark suite files.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Suite is the root configuration for a benchmark run.
//
// Example YAML:
//
//	name: "string generation"
//	settings:
//	  benchtime: 1s
//	  warmup: 100
//	benchmarks:
//	  - name: bytes-64
//	    strategy: bytes
//	    length: 64
//	    reportAllocs: true
//	    reportThroughput: true
type Suite struct {
	// Name of the suite (for reporting)
	Name string `yaml:"name"`

	// Description of the suite (optional)
	Description string `yaml:"description,omitempty"`

	// Settings contains run settings shared by all benchmarks
	Settings Settings `yaml:"settings,omitempty"`

	// Benchmarks lists the benchmarks to run, in order
	Benchmarks []Benchmark `yaml:"benchmarks"`
}

// Settings contains run settings shared by all benchmarks in a suite.
type Settings struct {
	// Benchtime is the target run time per benchmark, e.g. "1s", "500ms"
	Benchtime string `yaml:"benchtime,omitempty"`

	// Warmup is the number of discarded warmup iterations per benchmark
	Warmup int `yaml:"warmup,omitempty"`

	// MaxIterations caps the calibrated iteration count
	MaxIterations int `yaml:"maxIterations,omitempty"`

	// SampleLatencies toggles the latency histogram phase (default true)
	SampleLatencies *bool `yaml:"sampleLatencies,omitempty"`
}

// Benchmark describes one measured generation strategy.
type Benchmark struct {
	// Name identifies the benchmark in reports; unique within a suite
	Name string `yaml:"name"`

	// Strategy selects the generation variant to measure
	// Options: "bytes", "string", "builder", "concat", "append"
	Strategy string `yaml:"strategy"`

	// Length is the number of characters generated per iteration
	Length int `yaml:"length"`

	// Seed fixes the random source; 0 means time-derived
	Seed int64 `yaml:"seed,omitempty"`

	// Iterations pins the iteration count, bypassing calibration
	Iterations int `yaml:"iterations,omitempty"`

	// ReportAllocs enables allocation reporting
	ReportAllocs bool `yaml:"reportAllocs,omitempty"`

	// ReportThroughput reports MB/s derived from Length
	ReportThroughput bool `yaml:"reportThroughput,omitempty"`
}

// ValidStrategies are the accepted values for Benchmark.Strategy.
var ValidStrategies = []string{"bytes", "string", "builder", "concat", "append"}

// Load reads and validates a suite file.
func Load(path string) (*Suite, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("suite file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading suite file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates suite YAML.
func Parse(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("error parsing suite file: %w", err)
	}

	if err := Validate(&suite); err != nil {
		return nil, fmt.Errorf("suite validation failed: %w", err)
	}

	return &suite, nil
}

// ParseBenchtime parses the settings benchtime string, returning the
// default of one second when unset.
func (s *Settings) ParseBenchtime() (time.Duration, error) {
	if s.Benchtime == "" {
		return time.Second, nil
	}

	d, err := time.ParseDuration(s.Benchtime)
	if err != nil {
		return 0, fmt.Errorf("invalid benchtime %q: %w", s.Benchtime, err)
	}
	return d, nil
}

// SamplingEnabled reports whether latency sampling is on, defaulting to true.
func (s *Settings) SamplingEnabled() bool {
	if s.SampleLatencies == nil {
		return true
	}
	return *s.SampleLatencies
}
