package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/randbench/internal/bench"
)

func TestReportToJSON(t *testing.T) {
	report := NewReport("demo", "0.1.0", []*bench.Result{sampleResult()})

	out, err := report.ToJSON(true)
	if err != nil {
		t.Fatalf("Expected report to serialize, got error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Report JSON does not round-trip: %v", err)
	}

	if decoded["tool"] != "randbench" {
		t.Errorf("Expected tool 'randbench', got %v", decoded["tool"])
	}
	if decoded["suite"] != "demo" {
		t.Errorf("Expected suite 'demo', got %v", decoded["suite"])
	}

	results, ok := decoded["results"].([]interface{})
	if !ok || len(results) != 1 {
		t.Fatalf("Expected 1 result in report, got %v", decoded["results"])
	}

	first := results[0].(map[string]interface{})
	if first["name"] != "bytes-64" {
		t.Errorf("Expected result name 'bytes-64', got %v", first["name"])
	}
	if first["nsPerOp"].(float64) != 245.0 {
		t.Errorf("Expected nsPerOp 245.0, got %v", first["nsPerOp"])
	}
}

func TestReportToYAML(t *testing.T) {
	report := NewReport("demo", "0.1.0", []*bench.Result{sampleResult()})

	out, err := report.ToYAML()
	if err != nil {
		t.Fatalf("Expected report to serialize, got error: %v", err)
	}

	var decoded Report
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Report YAML does not round-trip: %v", err)
	}
	if decoded.Suite != "demo" || len(decoded.Results) != 1 {
		t.Errorf("Unexpected decoded report: %+v", decoded)
	}
}

func TestReportWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	report := NewReport("demo", "0.1.0", []*bench.Result{sampleResult()})
	if err := report.WriteFile(path, FormatJSON); err != nil {
		t.Fatalf("Expected report file to be written, got error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"suite": "demo"`) {
		t.Errorf("Report file missing suite field:\n%s", data)
	}

	// Text is console-only, not a document format.
	if err := report.WriteFile(filepath.Join(dir, "report.txt"), FormatText); err == nil {
		t.Error("Expected error for text file format")
	}
}
