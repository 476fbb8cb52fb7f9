package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/randbench/internal/bench"
)

// Format represents the available report formats
type Format string

const (
	// FormatText is the default human-readable text format
	FormatText Format = "text"
	// FormatJSON outputs in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs in YAML format
	FormatYAML Format = "yaml"
)

// Report is the machine-readable document for one suite run. Its JSON
// form is what `randbench compare` consumes.
type Report struct {
	Tool      string          `json:"tool" yaml:"tool"`
	Version   string          `json:"version" yaml:"version"`
	Suite     string          `json:"suite" yaml:"suite"`
	Timestamp string          `json:"timestamp" yaml:"timestamp"`
	Results   []*bench.Result `json:"results" yaml:"results"`
}

// NewReport builds a report document for a completed suite run.
func NewReport(suiteName, version string, results []*bench.Result) *Report {
	return &Report{
		Tool:      "randbench",
		Version:   version,
		Suite:     suiteName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Results:   results,
	}
}

// ToJSON serializes the report as JSON.
func (r *Report) ToJSON(pretty bool) (string, error) {
	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = json.MarshalIndent(r, "", "  ")
	} else {
		data, err = json.Marshal(r)
	}
	if err != nil {
		return "", fmt.Errorf("error serializing report to JSON: %w", err)
	}

	return string(data), nil
}

// ToYAML serializes the report as YAML.
func (r *Report) ToYAML() (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("error serializing report to YAML: %w", err)
	}
	return string(data), nil
}

// WriteFile writes the report to path in the given format. Text is not a
// document format; callers wanting text use the Formatter instead.
func (r *Report) WriteFile(path string, format Format) error {
	var (
		content string
		err     error
	)

	switch format {
	case FormatJSON:
		content, err = r.ToJSON(true)
	case FormatYAML:
		content, err = r.ToYAML()
	default:
		return fmt.Errorf("unsupported report file format %q", format)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}

	return nil
}
