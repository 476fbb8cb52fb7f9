package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validate validates a report document against the report schema.
// Returns true if the report is valid, false with a descriptive error
// otherwise; a parse failure is an error in its own right.
func Validate(reportJSON string) (bool, error) {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource("report-schema.json", strings.NewReader(ReportSchema)); err != nil {
		return false, fmt.Errorf("invalid report schema: %w", err)
	}

	schema, err := compiler.Compile("report-schema.json")
	if err != nil {
		return false, fmt.Errorf("invalid report schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(reportJSON), &doc); err != nil {
		return false, fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return false, fmt.Errorf("report does not match schema: %w", err)
	}

	return true, nil
}

// LoadFile reads a report file and validates it, returning its contents.
func LoadFile(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("report file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading report file: %w", err)
	}

	if _, err := Validate(string(data)); err != nil {
		return "", fmt.Errorf("invalid report file %s: %w", path, err)
	}

	return string(data), nil
}
