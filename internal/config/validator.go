package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate validates a complete suite configuration.
func Validate(suite *Suite) error {
	if suite == nil {
		return fmt.Errorf("suite cannot be nil")
	}

	if suite.Name == "" {
		return fmt.Errorf("suite name cannot be empty")
	}

	if err := ValidateSettings(&suite.Settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if len(suite.Benchmarks) == 0 {
		return fmt.Errorf("suite must define at least one benchmark")
	}

	seen := make(map[string]bool)
	for i, bm := range suite.Benchmarks {
		if err := ValidateBenchmark(&bm); err != nil {
			return fmt.Errorf("invalid benchmark %d (%q): %w", i, bm.Name, err)
		}
		if seen[bm.Name] {
			return fmt.Errorf("duplicate benchmark name %q", bm.Name)
		}
		seen[bm.Name] = true
	}

	return nil
}

// ValidateSettings validates shared run settings.
func ValidateSettings(settings *Settings) error {
	if settings == nil {
		return nil // All settings are optional
	}

	if settings.Benchtime != "" {
		d, err := time.ParseDuration(settings.Benchtime)
		if err != nil {
			return fmt.Errorf("invalid benchtime %q: %w", settings.Benchtime, err)
		}
		if d <= 0 {
			return fmt.Errorf("benchtime must be positive, got %q", settings.Benchtime)
		}
	}

	if settings.Warmup < 0 {
		return fmt.Errorf("warmup cannot be negative")
	}

	if settings.MaxIterations < 0 {
		return fmt.Errorf("maxIterations cannot be negative")
	}

	return nil
}

// ValidateBenchmark validates a single benchmark entry.
func ValidateBenchmark(bm *Benchmark) error {
	if bm == nil {
		return fmt.Errorf("benchmark cannot be nil")
	}

	if bm.Name == "" {
		return fmt.Errorf("benchmark name cannot be empty")
	}

	if bm.Strategy == "" {
		return fmt.Errorf("benchmark must specify a strategy")
	}
	if !stringInSlice(bm.Strategy, ValidStrategies) {
		return fmt.Errorf("invalid strategy %q, must be one of: %s",
			bm.Strategy, strings.Join(ValidStrategies, ", "))
	}

	if bm.Length < 0 {
		return fmt.Errorf("length cannot be negative")
	}

	if bm.Iterations < 0 {
		return fmt.Errorf("iterations cannot be negative")
	}

	return nil
}

// stringInSlice checks if a string is in a slice
func stringInSlice(str string, slice []string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}
